package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateID indicates two catalog entries share an identifier.
	ErrDuplicateID = errors.New("duplicate vehicle id")

	// ErrGeneratorUnavailable indicates no generative AI service is configured.
	// Catalog browsing keeps working without it.
	ErrGeneratorUnavailable = errors.New("generator unavailable")

	// ErrGenerationFailed is the single opaque failure surfaced for any
	// generation request. Callers may retry manually.
	ErrGenerationFailed = errors.New("generation failed")
)
