package validator

import (
	"encoding/json"
	"testing"

	"careerlink/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

type statusUpdate struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type dated struct {
	StartDate string `json:"startDate" validate:"omitempty,is-date"`
}

func TestValidate_JSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signup{Email: "nope", Password: "123", Role: "ADMIN"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["username"])
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Contains(t, vErr.Errors["password"], "at least 6")
	assert.Equal(t, "Must be JOB_SEEKER or EMPLOYER", vErr.Errors["role"])
	assert.Equal(t, []string{"username"}, vErr.Missing)
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signup{Username: "a", Email: "a@b.co", Password: "secret", Role: "employer"}))
	assert.NoError(t, v.Validate(&statusUpdate{Status: "UNDER_REVIEW"}))
	assert.Error(t, v.Validate(&statusUpdate{Status: "HIRED"}))
	assert.NoError(t, v.Validate(&dated{}))
	assert.NoError(t, v.Validate(&dated{StartDate: "2022-05-01"}))
	assert.Error(t, v.Validate(&dated{StartDate: "yesterday"}))
}

func TestValidate_Salary(t *testing.T) {
	v := New()

	for body, wantErr := range map[string]bool{
		`{"salary":""}`:      false,
		`{"salary":"  "}`:    false,
		`{"salary":null}`:    false,
		`{}`:                 false,
		`{"salary":"85000"}`: false,
		`{"salary":0}`:       false,
		`{"salary":-1}`:      true,
		`{"salary":"-12.5"}`: true,
	} {
		var req dto.CreateJobRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		err := v.Validate(&req)
		if wantErr {
			require.Error(t, err, body)
			assert.Equal(t, "Must be at least 0", err.(*ValidationError).Errors["salary"])
		} else {
			assert.NoError(t, err, body)
		}
	}

	var req dto.CreateJobRequest
	require.NoError(t, json.Unmarshal([]byte(`{"salary":""}`), &req))
	assert.Nil(t, req.Salary.Float())
	assert.Error(t, json.Unmarshal([]byte(`{"salary":"lots"}`), &req))
}
