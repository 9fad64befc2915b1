// Package serrors provides semantic error kinds shared across the service.
// A Kind is a comparable sentinel describing what went wrong (not found,
// unauthorized, rate limited, ...) and Error attaches a kind plus an optional
// cause and message while staying fully errors.Is/As compatible.
package serrors

import (
	"errors"
	"fmt"
	"time"
)

// Kind is the marker interface implemented by all semantic kinds created with
// NewKind. It distinguishes kind sentinels from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (k kind) isKind()       {}

// NewKind creates a new semantic kind sentinel. Kinds are comparable and
// match through errors.Is on any Error carrying them.
func NewKind(name string) Kind { return kind{name: name} }

// The kinds the relay cares about.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the caller sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a state conflict, e.g. duplicate work.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates a dependency is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates the upstream asked us to back off. Errors of
	// this kind usually carry a RetryAfter hint.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error is a semantic error: a kind sentinel, an optional wrapped cause, an
// optional message, and for rate-limit errors an optional retry-after hint.
//
// errors.Is matches against both the kind and the wrapped cause.
type Error struct {
	kind       Kind
	err        error
	msg        string
	retryAfter time.Duration
}

// With builds a semantic error from a kind and a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds a semantic error that wraps a concrete cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// RateLimited builds an ErrRateLimited error carrying the upstream's
// retry-after hint.
func RateLimited(retryAfter time.Duration, msgFmt string, args ...any) *Error {
	return &Error{kind: ErrRateLimited, msg: fmt.Sprintf(msgFmt, args...), retryAfter: retryAfter}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
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

// Unwrap exposes the wrapped cause to errors.Unwrap/Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches the target against the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// Kind returns the semantic kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to the error.
func (e *Error) Message() string { return e.msg }

// RetryAfter returns the backoff hint attached to the error, zero if none.
func (e *Error) RetryAfter() time.Duration { return e.retryAfter }

// KindOf extracts the semantic kind from anywhere in err's chain, or nil if
// the chain carries no semantic error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind()
	}
	var k kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// MessageOf extracts the semantic message from anywhere in err's chain,
// falling back to the full error text. Suitable for client-facing output.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) && se.Message() != "" {
		return se.Message()
	}
	if err == nil {
		return ""
	}

	return err.Error()
}

// RetryAfterOf extracts the retry-after hint from anywhere in err's chain.
func RetryAfterOf(err error) time.Duration {
	var se *Error
	if errors.As(err, &se) {
		return se.RetryAfter()
	}

	return 0
}
