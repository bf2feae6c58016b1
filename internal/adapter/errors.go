package adapter

import "errors"

// Errors returned by the marketplace adapter. Server failures are wrapped
// with the message the API reported, so callers can show it verbatim while
// still matching on the status class with errors.Is.
var (
	ErrEmptyAddress        = errors.New("empty address")
	ErrInvalidAddress      = errors.New("address must include host and scheme")
	ErrNotLoggedIn         = errors.New("not logged in")
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)
