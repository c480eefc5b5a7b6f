package photos

import (
	"errors"
	"fmt"
)

// Error kinds. Every kind aborts the run; they exist so callers can tell
// failures apart with errors.Is.
var (
	// ErrConfiguration reports invalid settings or a missing source directory.
	ErrConfiguration = errors.New("configuration error")
	// ErrDecode reports an unreadable or corrupt source image.
	ErrDecode = errors.New("decode error")
	// ErrEncodeOrWrite reports a failure while encoding or saving an output file.
	ErrEncodeOrWrite = errors.New("encode or write error")
	// ErrUnexpected covers everything else.
	ErrUnexpected = errors.New("unexpected error")
)

// Error is a failure of a given kind with an optional underlying cause.
// errors.Is matches the kind; errors.Unwrap returns the cause.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func newError(kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

func (e *Error) Error() string {
	msg := e.Summary()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Summary returns the kind and message without the cause.
func (e *Error) Summary() string {
	return e.Kind.Error() + ": " + e.Msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}
