package resume

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

var ErrNoText = errors.New("no extractable text in document")

// TextExtractor pulls plain text out of an uploaded resume.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// PDFExtractor reads PDF text with unipdf when a license key is configured.
// unipdf refuses to extract without one, so unlicensed installs use
// ledongthuc/pdf instead.
type PDFExtractor struct {
	licensed bool
}

func NewPDFExtractor(licenseKey string) (*PDFExtractor, error) {
	if licenseKey == "" {
		return &PDFExtractor{}, nil
	}
	if err := license.SetMeteredKey(licenseKey); err != nil {
		return nil, fmt.Errorf("set unipdf license: %w", err)
	}
	return &PDFExtractor{licensed: true}, nil
}

// ExtractText returns the trimmed document text, ErrNoText when the document
// has none, or the first read error.
func (e *PDFExtractor) ExtractText(data []byte) (string, error) {
	var (
		text string
		err  error
	)
	if e.licensed {
		text, err = extractUnipdf(data)
	} else {
		text, err = extractPlain(data)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func extractUnipdf(data []byte) (string, error) {
	pdfReader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("failed to get page count: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return "", fmt.Errorf("read page %d: %w", i, err)
		}
		ex, err := extractor.New(page)
		if err != nil {
			return "", fmt.Errorf("page %d extractor: %w", i, err)
		}
		pageText, err := ex.ExtractText()
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractPlain(data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return buf.String(), nil
}
