package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrPartialReveal is returned with a report in which some teams failed
	// to reveal.
	ErrPartialReveal = errors.New("some teams failed to reveal")
	// ErrNotLoggedIn is returned by commissioner calls made without a token.
	ErrNotLoggedIn = errors.New("commissioner is not logged in")
)
