// Package serrors provides semantic error kinds used across the service
// layer and the transports built on top of it. Transports translate a Kind
// into their own vocabulary (HTTP status, CLI exit message) without knowing
// about the concrete causes.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only NewKind creates Kinds.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (k kind) isKind()       {}

// NewKind creates a Kind named name. Kinds compare by value.
func NewKind(name string) Kind { return kind{name: name} }

// Kinds shared by the service and its transports.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the caller supplied invalid input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnprocessable indicates valid input that could not be satisfied,
	// e.g. a generation request that exhausted its retry budget.
	ErrUnprocessable = NewKind("UNPROCESSABLE")
	// ErrInternal indicates an internal error.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a collaborator (e.g. history storage) is not
	// configured or temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// KindOf returns the first Kind found in err's chain, or fallback when err
// carries none.
func KindOf(err error, fallback Kind) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return fallback
}

// MessageOf returns the message of the first *Error in err's chain that
// carries one. The message is meant for the caller and never includes the
// cause.
func MessageOf(err error) (string, bool) {
	var serr *Error
	if errors.As(err, &serr) && serr.msg != "" {
		return serr.msg, true
	}

	return "", false
}

// Error attaches a Kind and a caller facing message to an optional cause.
//
// errors.Is matches the kind as well as anything in the cause chain, and
// errors.As extracts either. Error() renders "msg: cause", falling back to
// whichever part is set and finally to the kind name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k wrapping err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns an error of kind k without message or cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the cause. The kind is reached through Is and As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the kind of e. Causes are matched by
// errors.Is through Unwrap.
func (e *Error) Is(target error) bool {
	if e == nil || e.kind == nil {
		return false
	}
	k, ok := target.(Kind)

	return ok && k == e.kind
}

// As stores the kind of e in target when target is a *Kind. Causes are
// matched by errors.As through Unwrap.
func (e *Error) As(target any) bool {
	if e == nil || e.kind == nil {
		return false
	}
	p, ok := target.(*Kind)
	if ok {
		*p = e.kind
	}

	return ok
}

// Kind returns the kind of e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the caller facing message of e.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error { return e.err }
