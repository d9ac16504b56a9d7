package apperror

import "net/http"

// FieldViolation is a single field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Details []FieldViolation `json:"details,omitempty"`
	Err     error            `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Conflict reports a uniqueness conflict on a caller-supplied field.
// Surfaced as 400 because the caller can fix it by picking another value.
func Conflict(message string, err error) *AppError {
	return New(http.StatusBadRequest, message, err)
}

// Validation wraps field-level violations collected by the validation layer.
func Validation(details []FieldViolation) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Details: details,
	}
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal server error", err)
}
