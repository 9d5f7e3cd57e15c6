package domain

import "errors"

// Domain errors are returned by the driver and can be checked with errors.Is.
var (
	// ErrUnknownDomain is returned when a domain name is not in the table.
	ErrUnknownDomain = errors.New("boundcheck: unknown domain")

	// ErrUnknownOperation is returned for operations other than
	// accumulate and decumulate.
	ErrUnknownOperation = errors.New("boundcheck: unknown operation")

	// ErrInvalidValue is returned when a value cannot be represented in
	// the requested domain.
	ErrInvalidValue = errors.New("boundcheck: invalid value")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("boundcheck: invalid configuration")
)
