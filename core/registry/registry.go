// Package registry manages the mapping from data type names to variant
// factories. It answers builtin lookups for the resolver and produces
// default-constructed variants for registered message types.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/artpar/varmsg/core/variant"
	"github.com/artpar/varmsg/domain/errs"
)

// Registry maps data type names to variant factories.
// Reads are safe for concurrent use; parallel resolutions share one
// registry read-only.
type Registry struct {
	mu sync.RWMutex

	// message factories by package-qualified data type
	factories map[string]variant.Factory
}

// New creates an empty registry. Builtin primitives are always present and
// need no registration.
func New() *Registry {
	return &Registry{
		factories: make(map[string]variant.Factory),
	}
}

// IsBuiltin implements ports.TypeRegistry.
func (r *Registry) IsBuiltin(dataType string) bool {
	return IsBuiltin(dataType)
}

// Register binds a package-qualified data type name to a factory.
// Builtin names and already-bound names are immutable.
func (r *Registry) Register(dataType string, f variant.Factory) error {
	if dataType == "" || f == nil {
		return errs.ErrInvalidDataType
	}
	if IsBuiltin(dataType) {
		return errs.ErrImmutableDataType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[dataType]; exists {
		return errs.ErrImmutableDataType
	}
	r.factories[dataType] = f
	return nil
}

// Lookup returns the factory bound to a data type name. Builtins resolve to
// their primitive factories. A bare local name is matched against the local
// part of every registered type: no match is NoSuchDataTypeError, more than
// one is AmbiguousDataTypeError.
func (r *Registry) Lookup(dataType string) (variant.Factory, error) {
	if f, ok := builtinFactories[dataType]; ok {
		return f, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if f, ok := r.factories[dataType]; ok {
		return f, nil
	}

	if !strings.Contains(dataType, "/") {
		var found variant.Factory
		matches := 0
		for name, f := range r.factories {
			if strings.HasSuffix(name, "/"+dataType) {
				found = f
				matches++
			}
		}
		switch matches {
		case 0:
			return nil, &errs.NoSuchDataTypeError{Identifier: dataType}
		case 1:
			return found, nil
		default:
			return nil, &errs.AmbiguousDataTypeError{Identifier: dataType}
		}
	}

	return nil, &errs.NoSuchDataTypeError{Identifier: dataType}
}

// Create produces a default-constructed variant for a data type name.
func (r *Registry) Create(dataType string) (variant.Variant, error) {
	f, err := r.Lookup(dataType)
	if err != nil {
		return variant.Empty(), err
	}
	return f.Create(), nil
}

// List returns the registered message type names in sorted order.
// Builtins are not included.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
