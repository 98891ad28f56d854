// Package apperr carries the service error taxonomy. Handlers map each kind
// to an HTTP status; raw storage errors are wrapped as Internal so they are
// logged server-side but never leaked to clients.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	NotFound Kind = iota + 1
	Conflict
	Validation
	Unauthorized
	Forbidden
	Internal
)

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

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap keeps the cause for server-side logs while Message stays
// client-presentable.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, defaulting to Internal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// FieldError is a policy-check failure on a named request field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Field builds a Validation error that keeps the offending field name in its
// message.
func Field(field, message string) *Error {
	return &Error{Kind: Validation, Message: FieldError{Field: field, Message: message}.Error()}
}
