package app_test

import (
	"net/http"
	"testing"

	"careerlink/internal/models"
	"careerlink/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)
	employer := testutil.CreateEmployer(t, ts.DB)
	seeker := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
	job := testutil.CreateJob(t, ts.DB, employer, "Platform Engineer", nil)
	seekerCookie := ts.Cookie(t, seeker)
	employerCookie := ts.Cookie(t, employer)

	w := ts.Do(t, http.MethodPost, "/api/applications", seekerCookie, map[string]any{"jobId": job.ID, "userId": seeker.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	app := testutil.Decode[map[string]any](t, w)
	assert.Equal(t, "APPLIED", app["status"])
	assert.Equal(t, []string{"New application: Platform Engineer"}, ts.Mailer.SentTo(employer.Email))

	t.Run("applying twice is rejected", func(t *testing.T) {
		w := ts.Do(t, http.MethodPost, "/api/applications", seekerCookie, map[string]any{"jobId": job.ID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := testutil.Decode[testutil.ErrorBody](t, w)
		assert.Equal(t, "ALREADY_EXISTS", body.Error.Code)
		assert.Equal(t, "Already applied to this job", body.Error.Message)
	})

	t.Run("cannot apply for someone else", func(t *testing.T) {
		w := ts.Do(t, http.MethodPost, "/api/applications", seekerCookie, map[string]any{"jobId": job.ID, "userId": employer.ID})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown job", func(t *testing.T) {
		w := ts.Do(t, http.MethodPost, "/api/applications", seekerCookie, map[string]any{"jobId": "00000000-0000-0000-0000-000000000000"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("seeker lists own applications", func(t *testing.T) {
		w := ts.Do(t, http.MethodGet, "/api/applications/"+seeker.ID, seekerCookie, nil)
		require.Equal(t, http.StatusOK, w.Code)
		apps := testutil.Decode[[]map[string]any](t, w)
		require.Len(t, apps, 1)
		assert.Equal(t, "Platform Engineer", apps[0]["job"].(map[string]any)["title"])

		other := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
		w = ts.Do(t, http.MethodGet, "/api/applications/"+seeker.ID, ts.Cookie(t, other), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("employer sees applicants", func(t *testing.T) {
		w := ts.Do(t, http.MethodGet, "/api/applications/employer", employerCookie, nil)
		require.Equal(t, http.StatusOK, w.Code)
		rows := testutil.Decode[[]map[string]any](t, w)
		require.Len(t, rows, 1)
		assert.Equal(t, seeker.Email, rows[0]["applicantEmail"])
		assert.Equal(t, "Platform Engineer", rows[0]["jobTitle"])

		w = ts.Do(t, http.MethodGet, "/api/applications/employer/job?jobId="+job.ID, employerCookie, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, testutil.Decode[[]map[string]any](t, w), 1)
	})

	t.Run("job listing rules", func(t *testing.T) {
		w := ts.Do(t, http.MethodGet, "/api/applications/employer/job", employerCookie, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Job ID is required", testutil.Decode[testutil.ErrorBody](t, w).Error.Message)

		rival := testutil.CreateEmployer(t, ts.DB)
		w = ts.Do(t, http.MethodGet, "/api/applications/employer/job?jobId="+job.ID, ts.Cookie(t, rival), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("status update", func(t *testing.T) {
		id := app["id"].(string)

		w := ts.Do(t, http.MethodPut, "/api/applications/"+id+"/status", employerCookie, map[string]any{"status": "HIRED"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		rival := testutil.CreateEmployer(t, ts.DB)
		w = ts.Do(t, http.MethodPut, "/api/applications/"+id+"/status", ts.Cookie(t, rival), map[string]any{"status": "ACCEPTED"})
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = ts.Do(t, http.MethodPut, "/api/applications/00000000-0000-0000-0000-000000000000/status", employerCookie, map[string]any{"status": "ACCEPTED"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Application not found", testutil.Decode[testutil.ErrorBody](t, w).Error.Message)

		w = ts.Do(t, http.MethodPut, "/api/applications/"+id+"/status", employerCookie, map[string]any{"status": "UNDER_REVIEW"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "UNDER_REVIEW", testutil.Decode[map[string]any](t, w)["status"])
		assert.Equal(t, []string{"Application update: Platform Engineer"}, ts.Mailer.SentTo(seeker.Email))
	})

	t.Run("employers cannot apply", func(t *testing.T) {
		w := ts.Do(t, http.MethodPost, "/api/applications", employerCookie, map[string]any{"jobId": job.ID})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestApplyToDeletedJob(t *testing.T) {
	ts := testutil.NewTestServer(t)
	employer := testutil.CreateEmployer(t, ts.DB)
	seeker := testutil.CreateUser(t, ts.DB, models.UserRoleJobSeeker, nil)
	job := testutil.CreateJob(t, ts.DB, employer, "Gone", nil)
	require.NoError(t, ts.DB.Model(job).Update("is_deleted", true).Error)

	w := ts.Do(t, http.MethodPost, "/api/applications", ts.Cookie(t, seeker), map[string]any{"jobId": job.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
