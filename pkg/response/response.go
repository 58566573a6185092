// Package response defines the uniform API envelope shared by the HTTP
// layer and the message-bus reply path.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agenin-transaction/pkg/apperror"
)

// Body is the envelope wrapping every response, success or failure.
type Body struct {
	Code    int          `json:"code"`
	Results any          `json:"results"`
	Message string       `json:"message"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries a machine-readable error category and context.
type ErrorDetail struct {
	Details map[string]any `json:"error"`
}

// Success builds a success envelope without writing it anywhere.
// Used for message-bus replies, where there is no gin context.
func Success(results any, message string) Body {
	return Body{
		Code:    http.StatusOK,
		Results: results,
		Message: message,
	}
}

// Failure builds a failure envelope from any error.
func Failure(err error) Body {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	return Body{
		Code:    appErr.HTTPStatus,
		Message: appErr.Message,
		Error: &ErrorDetail{
			Details: map[string]any{
				"type": appErr.Code,
			},
		},
	}
}

// OK writes a success envelope to the HTTP response.
func OK(c *gin.Context, status int, results any, message string) {
	c.JSON(status, Body{
		Code:    status,
		Results: results,
		Message: message,
	})
}

// Error writes a failure envelope to the HTTP response. Unrecognized
// errors are masked as internal errors so no detail leaks to clients.
func Error(c *gin.Context, err error) {
	body := Failure(err)
	c.JSON(body.Code, body)
}
