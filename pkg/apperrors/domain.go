package apperrors

import (
	"net/http"
)

// =========================================================================
// Domain factories
// =========================================================================

func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrAlreadyExists(domain, message string) *AppError {
	return New(CodeAlreadyExists, domain, message, http.StatusConflict)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

func ErrUnprocessable(domain, message string) *AppError {
	return New(CodeUnprocessable, domain, message, http.StatusUnprocessableEntity)
}

func ErrServiceUnavailable(domain, message string) *AppError {
	return New(CodeServiceUnavailable, domain, message, http.StatusServiceUnavailable)
}

func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusInternalServerError)
}

// =========================================================================
// Predefined errors
// =========================================================================

var (
	ErrInvalidCredentials  = New(CodeInvalidCredentials, "auth", "Invalid credentials", http.StatusUnauthorized)
	ErrUnauthorized        = New(CodeUnauthorized, "auth", "Unauthorized", http.StatusUnauthorized)
	ErrRequestUnauthorized = New(CodeUnauthorized, "auth", "Request Unauthorized", http.StatusUnauthorized)
	ErrNotRecordOwner      = New(CodeForbidden, "profile", "You are not authorized to update this record", http.StatusForbidden)
)
