// Package apperr defines the error taxonomy shared by storage and services.
package apperr

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"
)

// Kind classifies an error for the caller.
type Kind string

const (
	KindInternal        Kind = "INTERNAL"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindNotFound        Kind = "NOT_FOUND"
	KindValidation      Kind = "VALIDATION"
	KindOwnership       Kind = "OWNERSHIP"
)

// ConnectCode maps a kind to the connect status code returned to clients.
func (k Kind) ConnectCode() connect.Code {
	switch k {
	case KindUnauthenticated:
		return connect.CodeUnauthenticated
	case KindNotFound:
		return connect.CodeNotFound
	case KindValidation:
		return connect.CodeInvalidArgument
	case KindOwnership:
		return connect.CodePermissionDenied
	default:
		return connect.CodeInternal
	}
}

// Error is a classified error with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so errors.Is(err, apperr.ErrNotFound)
// works regardless of message.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is checks.
var (
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated, Message: "no session found"}
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "not found"}
	ErrValidation      = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrOwnership       = &Error{Kind: KindOwnership, Message: "not owned by user"}
)

// NotFound reports a missing record, e.g. NotFound("ledger", id).
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", entity, id)}
}

// Validation reports rejected input.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Ownership reports a mutation attempted by a user who does not own the record.
func Ownership(entity, id string) *Error {
	return &Error{Kind: KindOwnership, Message: fmt.Sprintf("%s %s is not owned by user", entity, id)}
}

// Unauthenticated reports a missing or invalid session.
func Unauthenticated(cause error) *Error {
	return &Error{Kind: KindUnauthenticated, Message: "no session found", Cause: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ToConnect converts err into a connect error carrying the mapped code.
// Errors that already are connect errors pass through unchanged.
func ToConnect(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}
	return connect.NewError(KindOf(err).ConnectCode(), err)
}
