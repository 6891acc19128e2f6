package authenticating

import "errors"

var (
	ErrAuthDisabled   = errors.New("authentication is disabled: AUTH_SECRET is empty")
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("expired token")
	ErrMissingSubject = errors.New("token subject is required")
)
