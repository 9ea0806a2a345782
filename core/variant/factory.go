package variant

import "reflect"

// Factory produces default-constructed variants of one concrete type.
// It is the type-erasure boundary between a statically typed value and the
// dynamically typed registry: the registry holds one Factory per registered
// data type and never needs the concrete type at compile time.
//
// Construction is total: any registrable type is default-constructible, so
// Create has no failure mode.
type Factory interface {
	// TypeInfo returns the stable runtime identity of the produced type.
	TypeInfo() reflect.Type

	// Create returns a variant holding a default-constructed value.
	Create() Variant
}

type factory[T any] struct{}

// NewFactory returns the factory for the concrete type T.
// Factories for the same T report equal type identities.
func NewFactory[T any]() Factory {
	return factory[T]{}
}

func (factory[T]) TypeInfo() reflect.Type {
	return reflect.TypeFor[T]()
}

func (factory[T]) Create() Variant {
	var zero T
	return Variant{typ: reflect.TypeFor[T](), val: zero}
}
