package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for every error body.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError renders err. Anything that is not an *AppError becomes a 500
// with a generic message.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
