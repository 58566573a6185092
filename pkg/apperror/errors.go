package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Lookup failures.

func ErrNotFound(entity string) *AppError {
	return New("NOT_FOUND", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Request validation.

func ErrInvalidArgument(message string) *AppError {
	return New("INVALID_ARGUMENT", message, http.StatusBadRequest)
}

// Credential checks.

func ErrUnauthorized() *AppError {
	return New("UNAUTHORIZED", "Invalid credentials", http.StatusUnauthorized)
}

// Ledger business rules.

func ErrInsufficientFunds() *AppError {
	return New("INSUFFICIENT_FUNDS", "Insufficient commission balance", http.StatusPaymentRequired)
}

func ErrDataIntegrity(message string) *AppError {
	return New("DATA_INTEGRITY", message, http.StatusConflict)
}

func ErrInvalidState(message string) *AppError {
	return New("INVALID_STATE", message, http.StatusConflict)
}

// Audit emission.

func ErrSerialization(err error) *AppError {
	return Wrap("SERIALIZATION", "Audit record could not be encoded", http.StatusInternalServerError, err)
}

// Messaging bridge.

func ErrTimeout() *AppError {
	return New("TIMEOUT", "No correlated reply received in time", http.StatusGatewayTimeout)
}

func ErrTransport(err error) *AppError {
	return Wrap("TRANSPORT", "Message transport failure", http.StatusBadGateway, err)
}

// Persistence.

func ErrStorage(err error) *AppError {
	return Wrap("STORAGE", "Internal storage error", http.StatusInternalServerError, err)
}

// InternalError wraps any other internal failure.
func InternalError(err error) *AppError {
	return Wrap("INTERNAL", "Internal server error", http.StatusInternalServerError, err)
}
