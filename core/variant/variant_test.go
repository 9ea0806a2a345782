package variant

import (
	"errors"
	"reflect"
	"testing"

	"github.com/artpar/varmsg/domain/errs"
)

func TestEmptyVariant(t *testing.T) {
	v := Empty()
	if !v.IsEmpty() {
		t.Error("Empty() should be empty")
	}
	if v.Type() != nil {
		t.Errorf("Type() = %v, want nil", v.Type())
	}
	if _, err := v.Value(); !errors.Is(err, errs.ErrInvalidOperation) {
		t.Errorf("Value() error = %v, want ErrInvalidOperation", err)
	}
	if got := v.String(); got != "<empty>" {
		t.Errorf("String() = %q, want <empty>", got)
	}
}

func TestOf(t *testing.T) {
	v := Of(int32(42))
	if v.IsEmpty() {
		t.Fatal("Of() should not be empty")
	}
	if v.Type() != reflect.TypeFor[int32]() {
		t.Errorf("Type() = %v, want int32", v.Type())
	}
	val, err := v.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if val != int32(42) {
		t.Errorf("Value() = %v, want 42", val)
	}

	if !Of(nil).IsEmpty() {
		t.Error("Of(nil) should be empty")
	}
}

func TestAssign_EmptyAdoptsType(t *testing.T) {
	var v Variant
	if err := v.Assign("hello"); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if v.Type() != reflect.TypeFor[string]() {
		t.Errorf("Type() = %v, want string", v.Type())
	}
}

func TestAssign_RejectsMismatchedType(t *testing.T) {
	v := Of(int32(1))
	err := v.Assign("not an int32")

	var mismatch *errs.DataTypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Assign() error = %v, want DataTypeMismatchError", err)
	}
	if mismatch.Expected != "int32" || mismatch.Provided != "string" {
		t.Errorf("mismatch = %+v, want expected int32, provided string", mismatch)
	}

	// The held value is untouched after a failed assignment.
	val, _ := v.Value()
	if val != int32(1) {
		t.Errorf("Value() = %v after failed Assign, want 1", val)
	}
}

func TestAssign_ReplacesValueOfSameType(t *testing.T) {
	v := Of(int32(1))
	if err := v.Assign(int32(2)); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	val, _ := v.Value()
	if val != int32(2) {
		t.Errorf("Value() = %v, want 2", val)
	}
}

func TestAssign_NilRejected(t *testing.T) {
	var v Variant
	if err := v.Assign(nil); !errors.Is(err, errs.ErrInvalidDataType) {
		t.Errorf("Assign(nil) error = %v, want ErrInvalidDataType", err)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Variant
		want bool
	}{
		{"both empty", Empty(), Empty(), true},
		{"same value", Of(int32(7)), Of(int32(7)), true},
		{"different values", Of(int32(7)), Of(int32(8)), false},
		{"different types same repr", Of(int32(7)), Of(int64(7)), false},
		{"empty vs non-empty", Empty(), Of(int32(7)), false},
		{"slices compare deeply", Of([]string{"a"}), Of([]string{"a"}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFactory_CreateDefault(t *testing.T) {
	f := NewFactory[int32]()
	v := f.Create()
	if v.IsEmpty() {
		t.Fatal("Create() should not be empty")
	}
	val, err := v.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if val != int32(0) {
		t.Errorf("Value() = %v, want the zero value", val)
	}
}

func TestFactory_TypeIdentity(t *testing.T) {
	type pose struct{ X, Y float64 }

	a := NewFactory[pose]()
	b := NewFactory[pose]()
	if a.TypeInfo() != b.TypeInfo() {
		t.Error("factories for the same type should share one type identity")
	}

	c := NewFactory[int32]()
	if a.TypeInfo() == c.TypeInfo() {
		t.Error("factories for different types should have distinct identities")
	}

	if a.Create().Type() != a.TypeInfo() {
		t.Error("created variant should carry the factory's type identity")
	}
}
