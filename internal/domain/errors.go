package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these onto HTTP status codes; everything else is treated as internal.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateURL   = errors.New("custom url already taken")
)

var (
	ErrNotConnected = errors.New("integration not connected")
)
