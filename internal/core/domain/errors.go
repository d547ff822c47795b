package domain

import "errors"

// Error kinds. Every failure surfaced to a caller matches exactly one of them
// through errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreFailure       = errors.New("store failure")
)

// Error pairs an error kind with the fixed message shown to API callers.
// Cause holds the internal error, if any; it is logged but never rendered.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

// NewError returns an Error of the given kind without an underlying cause.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError returns an Error of the given kind wrapping cause.
func WrapError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// AsStoreFailure leaves classified errors untouched and turns anything else
// into a StoreFailure carrying the given public message.
func AsStoreFailure(err error, message string) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return WrapError(ErrStoreFailure, message, err)
}
