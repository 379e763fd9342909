package resume_test

import (
	"testing"

	"careerlink/internal/resume"
	"careerlink/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExtractor_ReadsTextWithoutLicense(t *testing.T) {
	e, err := resume.NewPDFExtractor("")
	require.NoError(t, err)

	text, err := e.ExtractText(testutil.PDF("Jane Doe", "Senior Go Engineer"))
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior Go Engineer")
}

func TestPDFExtractor_EmptyPage(t *testing.T) {
	e, err := resume.NewPDFExtractor("")
	require.NoError(t, err)

	_, err = e.ExtractText(testutil.PDF())
	assert.ErrorIs(t, err, resume.ErrNoText)
}

func TestPDFExtractor_BrokenInput(t *testing.T) {
	e, err := resume.NewPDFExtractor("")
	require.NoError(t, err)

	for _, data := range [][]byte{
		[]byte("definitely not a pdf"),
		[]byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n"),
	} {
		_, err = e.ExtractText(data)
		require.Error(t, err)
		assert.NotErrorIs(t, err, resume.ErrNoText, "read failures are not an empty document")
	}
}
