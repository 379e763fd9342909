package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"careerlink/internal/models"
)

// Salary accepts a JSON number or a numeric string. null, "" and blank
// strings leave it unset, since forms post an untouched salary field as "".
type Salary struct {
	value *float64
}

func (s *Salary) UnmarshalJSON(b []byte) error {
	s.value = nil
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(str))
		if len(b) == 0 {
			return nil
		}
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("salary must be numeric, got %s", b)
	}
	s.value = &f
	return nil
}

// Float returns nil when no salary was sent.
func (s Salary) Float() *float64 {
	if s.value == nil {
		return nil
	}
	f := *s.value
	return &f
}

func (s Salary) IsSet() bool {
	return s.value != nil
}

type CreateJobRequest struct {
	Title        string  `json:"title" validate:"max=255"`
	Description  string  `json:"description"`
	Location     string  `json:"location" validate:"max=255"`
	Salary       Salary  `json:"salary" validate:"omitempty,gte=0"`
	Requirements string  `json:"requirements"`
}

// UpdateJobRequest is a partial update; nil fields are left alone.
type UpdateJobRequest struct {
	Title        *string `json:"title" validate:"omitempty,max=255"`
	Description  *string `json:"description"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
	Salary       Salary  `json:"salary" validate:"omitempty,gte=0"`
	Requirements *string `json:"requirements"`
}

type JobQuery struct {
	Title     string `form:"title"`
	Location  string `form:"location"`
	MinSalary string `form:"minSalary"`
}

type JobCompany struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Website  string `json:"website"`
}

type JobEmployer struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type JobResponse struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	Salary       *float64     `json:"salary"`
	Requirements string       `json:"requirements"`
	EmployerID   string       `json:"employerId"`
	CompanyID    string       `json:"companyId"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Company      *JobCompany  `json:"company,omitempty"`
	Employer     *JobEmployer `json:"employer,omitempty"`
}

func NewJobResponse(j *models.Job) *JobResponse {
	resp := &JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Location:     j.Location,
		Salary:       j.Salary,
		Requirements: j.Requirements,
		EmployerID:   j.EmployerID,
		CompanyID:    j.CompanyID,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
	if j.Company != nil {
		resp.Company = &JobCompany{Name: j.Company.Name, Location: j.Company.Location, Website: j.Company.Website}
	}
	if j.Employer != nil {
		resp.Employer = &JobEmployer{Username: j.Employer.Username, Email: j.Employer.Email}
	}
	return resp
}
