package service

import "errors"

// Error kinds. Handlers map each kind to one HTTP status.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
)

// Error is a client-facing failure. Msg is safe to return to the caller;
// errors.Is matches it against its Kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func invalidArgument(msg string) error { return &Error{Kind: ErrInvalidArgument, Msg: msg} }

func unauthenticated(msg string) error { return &Error{Kind: ErrUnauthenticated, Msg: msg} }

func conflict(msg string) error { return &Error{Kind: ErrConflict, Msg: msg} }

func notFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }
