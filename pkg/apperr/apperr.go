// Package apperr classifies business errors so HTTP delivery can map them to
// status codes without string matching.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind describes how an error should be surfaced to the caller
type Kind int

const (
	// KindUnexpected is anything not explicitly classified (500)
	KindUnexpected Kind = iota
	// KindValidation is missing or malformed input (400)
	KindValidation
	// KindNotFound is a referenced entity that does not exist (404)
	KindNotFound
	// KindBusinessRule is a rejected domain rule, e.g. credit limit or
	// insufficient stock (400, message carries specifics)
	KindBusinessRule
)

// Error is a classified application error
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validationf creates a validation error
func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a not-found error
func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// BusinessRulef creates a business-rule violation
func BusinessRulef(format string, args ...interface{}) error {
	return &Error{Kind: KindBusinessRule, Message: fmt.Sprintf(format, args...)}
}

// Unexpected wraps an unclassified error, keeping the original for diagnostics
func Unexpected(message string, err error) error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindUnexpected for plain errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// Message returns the caller-facing message for err
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

// HTTPStatus maps an error kind to a status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindBusinessRule:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
