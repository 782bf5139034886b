// Package apperr defines the error taxonomy shared by the persistence layer
// and the domain services: stable machine-readable codes with human-readable
// messages, returned as values and mapped to HTTP status codes at the handler
// boundary.
package apperr

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeNotFound         Code = "not_found"
	CodeValidation       Code = "validation"
	CodeConflict         Code = "conflict"
	CodeNetwork          Code = "network"
	CodeInvalidState     Code = "invalid_state"
	CodeAlreadyConfirmed Code = "already_confirmed"
)

// Error carries a taxonomy code alongside the message. Two errors are
// considered equivalent by errors.Is when their codes match, so services can
// return rich messages while callers branch on bare sentinels.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound         = &Error{Code: CodeNotFound, Message: "record not found"}
	ErrConflict         = &Error{Code: CodeConflict, Message: "conflicting record"}
	ErrNetwork          = &Error{Code: CodeNetwork, Message: "persistence call failed"}
	ErrInvalidState     = &Error{Code: CodeInvalidState, Message: "operation not allowed in current state"}
	ErrAlreadyConfirmed = &Error{Code: CodeAlreadyConfirmed, Message: "appointment already confirmed"}
)

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func Network(format string, args ...interface{}) *Error {
	return &Error{Code: CodeNetwork, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the taxonomy code from err, or empty when err is not a
// taxonomy error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HTTPStatus maps a taxonomy code to its HTTP status. Errors outside the
// taxonomy map to 500.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return 404
	case CodeValidation:
		return 400
	case CodeConflict, CodeInvalidState, CodeAlreadyConfirmed:
		return 409
	case CodeNetwork:
		return 502
	default:
		return 500
	}
}
