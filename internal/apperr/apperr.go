package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Code is the stable error category returned to API clients.
type Code string

const (
	CodeValidation    Code = "validation"
	CodeNotFound      Code = "not_found"
	CodeConflict      Code = "conflict"
	CodeUnauthorized  Code = "unauthorized"
	CodeAuthorization Code = "authorization"
	CodeInternal      Code = "internal"
)

// Error carries a client-facing category and message. Internal details
// stay in Err and never reach the response body.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...interface{}) *Error {
	return &Error{Code: CodeUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...interface{}) *Error {
	return &Error{Code: CodeAuthorization, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps a persistence or other unexpected failure behind a
// generic message.
func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: "an internal error occurred", Err: err}
}

// CodeOf extracts the category from err, defaulting to internal for
// anything untagged.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "an internal error occurred"
}

// IsDuplicateKey reports whether err is a PostgreSQL unique constraint
// violation (code 23505).
func IsDuplicateKey(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "duplicate key"))
}

// IsForeignKey reports whether err is a PostgreSQL foreign key violation
// (code 23503).
func IsForeignKey(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "23503") || strings.Contains(err.Error(), "foreign key"))
}
