package storage

import (
	"errors"
	"strings"
)

// Error kinds. Every failure returned by this package is an *Error whose
// Kind is one of these, so callers can branch with errors.Is.
var (
	// ErrUnsupportedEnvironment means the host offers no writable
	// persistent storage (the data directory cannot be created or written).
	ErrUnsupportedEnvironment = errors.New("persistent storage unavailable")

	// ErrOpenFailed covers driver, pragma and migration failures during Open.
	ErrOpenFailed = errors.New("open database failed")

	ErrReadFailed  = errors.New("read failed")
	ErrWriteFailed = errors.New("write failed")

	// ErrInvalidCollection is wrapped inside a read or write failure when a
	// collection is unknown or used with the wrong kind of operation.
	ErrInvalidCollection = errors.New("invalid collection")
)

// Error describes a failed storage operation.
type Error struct {
	Kind       error
	Op         string
	Collection Collection
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("storage: ")
	b.WriteString(e.Op)
	if e.Collection != "" {
		b.WriteString(" ")
		b.WriteString(string(e.Collection))
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func opError(kind error, op string, c Collection, err error) *Error {
	return &Error{Kind: kind, Op: op, Collection: c, Err: err}
}
