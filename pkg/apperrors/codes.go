package apperrors

// ErrorCode is the machine-readable error code returned to clients.
type ErrorCode string

const (
	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeServiceUnavailable   ErrorCode = "SERVICE_UNAVAILABLE"

	// Business logic
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeAlreadyExists       ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	CodeInvalidStatus       ErrorCode = "INVALID_STATUS"
	CodeUnprocessable       ErrorCode = "UNPROCESSABLE"
	CodePayloadTooLarge     ErrorCode = "PAYLOAD_TOO_LARGE"
	CodeUnsupportedFileType ErrorCode = "UNSUPPORTED_FILE_TYPE"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
)
