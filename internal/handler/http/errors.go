package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("no authorization token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry the "Bearer <token>" shape.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
