package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller; handlers map it to a status code.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
	KindDegradedInput Kind = "degraded_input"
	KindStorage       Kind = "storage"
	KindUnauthorized  Kind = "unauthorized"
	KindForbidden     Kind = "forbidden"
	KindInvalidState  Kind = "invalid_state"
	KindUnknown       Kind = "unknown"
)

// Error is an application error: kind, domain and a user-facing message.
type Error struct {
	Kind    Kind
	Domain  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind.
func New(kind Kind, domain, message string) *Error {
	return &Error{Kind: kind, Domain: domain, Message: message}
}

// Wrap attaches kind/domain/message to an underlying error.
func Wrap(err error, kind Kind, domain, message string) *Error {
	return &Error{Kind: kind, Domain: domain, Message: message, Err: err}
}

func Validation(domain, message string) *Error { return New(KindValidation, domain, message) }
func Conflict(domain, message string) *Error   { return New(KindConflict, domain, message) }
func NotFound(domain, message string) *Error   { return New(KindNotFound, domain, message) }
func Forbidden(domain, message string) *Error  { return New(KindForbidden, domain, message) }
func InvalidState(domain, message string) *Error {
	return New(KindInvalidState, domain, message)
}

// Storage wraps a driver/IO failure. The message is generic on purpose:
// callers show it as is.
func Storage(domain string, err error) *Error {
	return Wrap(err, KindStorage, domain, "ошибка хранилища")
}

// KindOf returns the kind of the first *Error in the chain, KindUnknown otherwise.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// Message returns the user-facing message of err.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }
