// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/ and core/registry.
package ports

import (
	"context"
	"errors"
	"time"

	"github.com/artpar/varmsg/domain/msgtype"
)

// ErrNotFound is returned by stores when a record does not exist.
var ErrNotFound = errors.New("not found")

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique identifiers.
type IDGenerator interface {
	New() string
}

// -----------------------------------------------------------------------------
// Resolution Ports
// -----------------------------------------------------------------------------

// PackageLocator maps a package name to its filesystem root.
type PackageLocator interface {
	// Locate returns the package root path, or ok=false when the package
	// has no resolvable path.
	Locate(pkg string) (path string, ok bool)
}

// FieldMatch is the result of recognizing one field declaration line.
type FieldMatch struct {
	// Type is the referenced member type name as written, possibly
	// package-qualified, possibly the bare Header alias.
	Type string

	// Name is the declared field name.
	Name string

	// Array is true for the array declaration form.
	Array bool

	// Size is the fixed array size, or 0 for an unbounded array.
	Size int
}

// LineMatcher recognizes field declaration lines of a schema definition.
// The concrete grammar is the matcher's concern; the resolver only relies
// on the referenced member type of a successful match.
type LineMatcher interface {
	// Match recognizes a scalar field declaration ("type name").
	Match(line string) (FieldMatch, bool)

	// MatchArray recognizes an array field declaration ("type[size] name").
	MatchArray(line string) (FieldMatch, bool)

	// MatchConstant recognizes a constant declaration ("type NAME=value").
	MatchConstant(line string) (FieldMatch, bool)
}

// TypeRegistry answers data type lookups during resolution.
// Implementations must be safe for concurrent reads; parallel resolutions
// share the registry read-only.
type TypeRegistry interface {
	// IsBuiltin reports whether the data type is a primitive requiring no
	// further schema resolution.
	IsBuiltin(dataType string) bool
}

// -----------------------------------------------------------------------------
// Data Store Ports
// -----------------------------------------------------------------------------

// SchemaStore persists resolved schema descriptors.
type SchemaStore interface {
	// Save stores a resolved descriptor, replacing any existing record
	// for the same data type.
	Save(ctx context.Context, rec msgtype.Record) error

	// Get retrieves the record for a data type.
	// Returns ErrNotFound when no record exists.
	Get(ctx context.Context, dataType string) (msgtype.Record, error)

	// List returns all stored records ordered by data type.
	List(ctx context.Context) ([]msgtype.Record, error)

	// Delete removes the record for a data type.
	// Returns ErrNotFound when no record exists.
	Delete(ctx context.Context, dataType string) error
}
