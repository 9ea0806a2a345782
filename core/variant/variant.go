// Package variant provides a type-erased container for message values and
// the per-type factories that produce default-constructed instances.
package variant

import (
	"fmt"
	"reflect"

	"github.com/artpar/varmsg/domain/errs"
)

// Variant holds exactly one concrete value together with its runtime type
// identity. The zero Variant is empty: it holds no value and no type.
// A Variant exclusively owns its contained value; assigning a new value
// replaces the old one.
type Variant struct {
	typ reflect.Type
	val any
}

// Empty returns an empty variant.
func Empty() Variant {
	return Variant{}
}

// Of wraps a concrete value in a variant. A nil value yields an empty
// variant.
func Of(v any) Variant {
	if v == nil {
		return Variant{}
	}
	return Variant{typ: reflect.TypeOf(v), val: v}
}

// IsEmpty reports whether the variant holds no value.
func (v Variant) IsEmpty() bool {
	return v.typ == nil
}

// Type returns the runtime type identity of the contained value, or nil
// for an empty variant.
func (v Variant) Type() reflect.Type {
	return v.typ
}

// Value returns the contained value.
// Returns ErrInvalidOperation for an empty variant.
func (v Variant) Value() (any, error) {
	if v.IsEmpty() {
		return nil, errs.ErrInvalidOperation
	}
	return v.val, nil
}

// Assign replaces the contained value. An empty variant adopts the type of
// the first assigned value; a non-empty variant only accepts values of its
// established concrete type.
func (v *Variant) Assign(val any) error {
	if val == nil {
		return errs.ErrInvalidDataType
	}
	t := reflect.TypeOf(val)
	if v.typ != nil && t != v.typ {
		return &errs.DataTypeMismatchError{
			Expected: v.typ.String(),
			Provided: t.String(),
		}
	}
	v.typ = t
	v.val = val
	return nil
}

// Equal reports whether two variants hold the same type and a deeply equal
// value. Two empty variants are equal.
func (v Variant) Equal(o Variant) bool {
	if v.typ != o.typ {
		return false
	}
	return reflect.DeepEqual(v.val, o.val)
}

// String formats the contained value, or "<empty>" for an empty variant.
func (v Variant) String() string {
	if v.IsEmpty() {
		return "<empty>"
	}
	return fmt.Sprintf("%v", v.val)
}
