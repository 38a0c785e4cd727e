package usecase

import "errors"

// Sentinel errors shared by the usecases; handlers map them to HTTP
// status codes.
var (
	ErrInternal        = errors.New("internal error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrProfileNotFound = errors.New("student profile not found")
	ErrJobNotFound     = errors.New("job not found")
)
