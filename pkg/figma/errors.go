package figma

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure returned by this package.
// The set is closed: callers can switch over it exhaustively.
type ErrorKind int

const (
	// ConfigError reports a missing or invalid configuration value.
	// It is returned before any network call is attempted.
	ConfigError ErrorKind = iota + 1
	// TransportError reports a connection failure, a timeout or cancellation,
	// or a non-2xx HTTP status.
	TransportError
	// SchemaMismatch reports a response body that is not valid JSON for the
	// expected resource, or that lacks a required field.
	SchemaMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigError:
		return "config error"
	case TransportError:
		return "transport error"
	case SchemaMismatch:
		return "schema mismatch"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error implements the error interface so a kind can be used directly as an
// errors.Is target, e.g. errors.Is(err, figma.TransportError).
func (k ErrorKind) Error() string {
	return k.String()
}

// Error is the typed failure returned by the client and the decoder.
type Error struct {
	Kind       ErrorKind
	Op         string // e.g. "get project files"
	StatusCode int    // HTTP status, TransportError only; 0 if no response was received
	Err        error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrorKind of e.
func (e *Error) Is(target error) bool {
	if k, ok := target.(ErrorKind); ok {
		return e.Kind == k
	}
	return false
}

// KindOf returns the ErrorKind carried by err, or 0 if err is nil or was not
// produced by this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
