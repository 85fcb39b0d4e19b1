package store

import "errors"

// Error kinds. Handlers map them to HTTP status codes; anything else coming
// out of the store is a storage failure.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrRateLimited     = errors.New("rate limited")
)

// Error carries a client-facing message for one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func invalid(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func unauthenticated() error {
	return &Error{Kind: ErrUnauthenticated, Message: "Unauthorized"}
}

func notFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

func rateLimited(msg string) error {
	return &Error{Kind: ErrRateLimited, Message: msg}
}
