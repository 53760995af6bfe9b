// Package common defines shared constants and sentinel errors used across
// Threadboard components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Registration conflicts. Deliberately distinct so the API can report
	// which field collided.
	ErrorUsernameTaken = errors.New("username already exists")
	ErrorEmailTaken    = errors.New("email already exists")

	// Token-validation errors. The HTTP auth gate collapses all of these
	// into one uniform unauthorized response; the distinction exists for
	// server-side logging only.
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("bad token signature")
	ErrBadPayload     = errors.New("bad token payload")
	ErrTokenExpired   = errors.New("token expired")
)
