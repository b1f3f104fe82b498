// Package data defines domain-specific errors
package data

import "errors"

// Domain errors - defined once, used everywhere
var (
	// Converter errors
	ErrNilConverter      = errors.New("converter function cannot be nil")
	ErrUntypedConverter  = errors.New("converter endpoints must have a type ID")
	ErrConverterNotFound = errors.New("no converter registered for type pair")
	ErrSelfConversion    = errors.New("converter endpoints must differ")
)
