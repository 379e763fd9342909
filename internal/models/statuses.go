package models

import "strings"

type UserRole string
type ApplicationStatus string

const (
	UserRoleJobSeeker UserRole = "JOB_SEEKER"
	UserRoleEmployer  UserRole = "EMPLOYER"

	ApplicationStatusApplied     ApplicationStatus = "APPLIED"
	ApplicationStatusUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationStatusAccepted    ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
)

// ParseRole normalizes a role name case-insensitively.
func ParseRole(s string) (UserRole, bool) {
	switch r := UserRole(strings.ToUpper(strings.TrimSpace(s))); r {
	case UserRoleJobSeeker, UserRoleEmployer:
		return r, true
	default:
		return "", false
	}
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusUnderReview, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}
