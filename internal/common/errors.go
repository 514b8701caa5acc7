// Package common defines sentinel errors shared across the userkeeper
// layers, plus small helpers for handling password buffers. Callers should
// use errors.Is to match the sentinel values.
package common

import "errors"

var (
	// Store-level errors.
	ErrStoreFull = errors.New("user limit reached")
	ErrNoUsers   = errors.New("no users")

	// Validation errors. The store wraps this with the name of the
	// offending field, so errors.Is still matches.
	ErrInvalidField = errors.New("invalid field")
)
