// Package idgen provides IDGenerator implementations.
package idgen

import "github.com/google/uuid"

// UUID generates random UUIDv4 identifiers.
type UUID struct{}

// New returns a new random identifier.
func (UUID) New() string {
	return uuid.NewString()
}

// Fixed always returns the same identifier, for testing.
type Fixed string

// New returns the fixed identifier.
func (f Fixed) New() string {
	return string(f)
}
