package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrValidation
	ErrUnauthorized
	ErrConflict
	ErrAlreadyExists
	ErrInternal
)

// FieldError describes a single failing field in a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents an application error
type AppError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error to its HTTP status. Conflict maps to 400 by
// convention of this API, not 409.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrValidation, ErrConflict:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NotFound returns a 404 error with a generic message. The message never
// distinguishes "absent" from "owned by someone else".
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// Validation returns a 400 error carrying every failing field.
func Validation(fields []FieldError) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// ValidationMsg returns a 400 error with a single message, used for
// cross-reference failures and id mismatches.
func ValidationMsg(message string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: message,
	}
}

// Conflict reports a referential guard violation naming the blocking relationship.
func Conflict(message string) *AppError {
	return &AppError{
		Code:    ErrConflict,
		Message: message,
	}
}

// AlreadyExists reports a uniqueness conflict, e.g. a taken email.
func AlreadyExists(message string) *AppError {
	return &AppError{
		Code:    ErrAlreadyExists,
		Message: message,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    ErrUnauthorized,
		Message: message,
	}
}

// Internal wraps an unexpected persistence or infrastructure failure. The
// wrapped cause is logged server-side but never returned to the caller.
func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a not-found AppError.
func IsNotFound(err error) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == ErrNotFound
	}
	return false
}
