package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrMalformedSource marks a season file or identity store that could not be decoded.
	ErrMalformedSource       = errors.New("malformed source")
)
