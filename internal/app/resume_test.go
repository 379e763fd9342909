package app_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careerlink/internal/models"
	"careerlink/internal/resume"
	"careerlink/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePDF = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n"

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestResumeUploadAndReview(t *testing.T) {
	ts := testutil.NewTestServer(t)
	seeker := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
	cookie := ts.Cookie(t, seeker)

	w := ts.Send(uploadRequest(t, "My CV.pdf", samplePDF), cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	uploaded := testutil.Decode[map[string]string](t, w)
	url := uploaded["resumeUrl"]
	assert.Equal(t, "Resume uploaded successfully", uploaded["message"])
	assert.True(t, strings.HasPrefix(url, "/uploads/resumes/"+seeker.ID+"/my-cv-"), url)
	assert.True(t, strings.HasSuffix(url, ".pdf"), url)

	t.Run("url is readable by any signed-in user", func(t *testing.T) {
		other := testutil.CreateEmployer(t, ts.DB)
		w := ts.Do(t, http.MethodGet, "/api/resume/"+seeker.ID, ts.Cookie(t, other), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, url, testutil.Decode[map[string]string](t, w)["resumeUrl"])
	})

	t.Run("file is served", func(t *testing.T) {
		w := ts.Do(t, http.MethodGet, url, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, samplePDF, w.Body.String())
	})

	t.Run("review is cached", func(t *testing.T) {
		for range 2 {
			w := ts.Do(t, http.MethodGet, "/api/resume/analyze/"+seeker.ID, cookie, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, "1. Quantify impact", testutil.Decode[map[string]string](t, w)["review"])
		}
		assert.Equal(t, 1, ts.Model.Calls())
		assert.Contains(t, ts.Model.Prompts[0], "Go developer")
	})

	t.Run("re-upload drops the cached review", func(t *testing.T) {
		w := ts.Send(uploadRequest(t, "cv.pdf", samplePDF), cookie)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = ts.Do(t, http.MethodGet, url, nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "previous file removed")

		w = ts.Do(t, http.MethodGet, "/api/resume/analyze/"+seeker.ID, cookie, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, ts.Model.Calls())
	})

	t.Run("only the owner can analyze", func(t *testing.T) {
		other := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
		w := ts.Do(t, http.MethodGet, "/api/resume/analyze/"+seeker.ID, ts.Cookie(t, other), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestResumeReviewWithDefaultExtractor(t *testing.T) {
	ts := testutil.NewTestServer(t, testutil.WithPDFExtractor())
	seeker := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
	cookie := ts.Cookie(t, seeker)

	w := ts.Send(uploadRequest(t, "cv.pdf", string(testutil.PDF("Jane Doe", "Senior Go Engineer"))), cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.Do(t, http.MethodGet, "/api/resume/analyze/"+seeker.ID, cookie, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, 1, ts.Model.Calls())
	assert.Contains(t, ts.Model.Prompts[0], "Senior Go Engineer")
}

func TestResumeUploadRejections(t *testing.T) {
	ts := testutil.NewTestServer(t)
	seeker := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
	cookie := ts.Cookie(t, seeker)

	t.Run("plain text", func(t *testing.T) {
		w := ts.Send(uploadRequest(t, "cv.pdf", "just some text"), cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := testutil.Decode[testutil.ErrorBody](t, w)
		assert.Equal(t, "UNSUPPORTED_FILE_TYPE", body.Error.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/resume", nil)
		w := ts.Send(req, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Resume file is required", testutil.Decode[testutil.ErrorBody](t, w).Error.Message)
	})

	t.Run("too large", func(t *testing.T) {
		big := samplePDF + strings.Repeat("x", int(ts.Config.Upload.MaxSize))
		w := ts.Send(uploadRequest(t, "cv.pdf", big), cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Resume file is too large", testutil.Decode[testutil.ErrorBody](t, w).Error.Message)
	})

	t.Run("employers cannot upload", func(t *testing.T) {
		employer := testutil.CreateEmployer(t, ts.DB)
		w := ts.Send(uploadRequest(t, "cv.pdf", samplePDF), ts.Cookie(t, employer))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestResumeAnalyzeErrors(t *testing.T) {
	t.Run("no resume", func(t *testing.T) {
		ts := testutil.NewTestServer(t)
		seeker := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
		w := ts.Do(t, http.MethodGet, "/api/resume/analyze/"+seeker.ID, ts.Cookie(t, seeker), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Resume not found", testutil.Decode[testutil.ErrorBody](t, w).Error.Message)

		w = ts.Do(t, http.MethodGet, "/api/resume/"+seeker.ID, ts.Cookie(t, seeker), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("reviewer not configured", func(t *testing.T) {
		ts := testutil.NewTestServer(t, testutil.WithoutReviewer())
		seeker := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
		w := ts.Do(t, http.MethodGet, "/api/resume/analyze/"+seeker.ID, ts.Cookie(t, seeker), nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("extraction failure", func(t *testing.T) {
		ts := testutil.NewTestServer(t, testutil.WithExtractor(&testutil.Extractor{Err: errors.New("page 1: bad xref")}))
		seeker := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
		cookie := ts.Cookie(t, seeker)

		w := ts.Send(uploadRequest(t, "cv.pdf", samplePDF), cookie)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = ts.Do(t, http.MethodGet, "/api/resume/analyze/"+seeker.ID, cookie, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to review resume.", testutil.Decode[testutil.ErrorBody](t, w).Error.Message)
	})

	t.Run("no extractable text", func(t *testing.T) {
		ts := testutil.NewTestServer(t, testutil.WithExtractor(&testutil.Extractor{Err: resume.ErrNoText}))
		seeker := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
		cookie := ts.Cookie(t, seeker)

		w := ts.Send(uploadRequest(t, "cv.pdf", samplePDF), cookie)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = ts.Do(t, http.MethodGet, "/api/resume/analyze/"+seeker.ID, cookie, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "Could not extract text from resume", testutil.Decode[testutil.ErrorBody](t, w).Error.Message)
		assert.Zero(t, ts.Model.Calls())
	})
}
