package registry

import (
	"time"

	"github.com/artpar/varmsg/core/variant"
)

// Duration is a signed duration with separate second and nanosecond parts,
// mirroring the wire-level duration primitive. It is distinct from
// time.Duration because the wire form is not a single nanosecond count.
type Duration struct {
	Sec  int32
	NSec int32
}

// builtinFactories maps every builtin primitive name to the factory for its
// Go representation. char and byte are deprecated aliases kept for
// compatibility with legacy definitions.
var builtinFactories = map[string]variant.Factory{
	"bool":     variant.NewFactory[bool](),
	"int8":     variant.NewFactory[int8](),
	"uint8":    variant.NewFactory[uint8](),
	"int16":    variant.NewFactory[int16](),
	"uint16":   variant.NewFactory[uint16](),
	"int32":    variant.NewFactory[int32](),
	"uint32":   variant.NewFactory[uint32](),
	"int64":    variant.NewFactory[int64](),
	"uint64":   variant.NewFactory[uint64](),
	"float32":  variant.NewFactory[float32](),
	"float64":  variant.NewFactory[float64](),
	"string":   variant.NewFactory[string](),
	"time":     variant.NewFactory[time.Time](),
	"duration": variant.NewFactory[Duration](),
	"char":     variant.NewFactory[uint8](),
	"byte":     variant.NewFactory[int8](),
}

// IsBuiltin reports whether dataType names a primitive type requiring no
// schema resolution.
func IsBuiltin(dataType string) bool {
	_, ok := builtinFactories[dataType]
	return ok
}

// Builtins returns the builtin primitive type names, unordered.
func Builtins() []string {
	names := make([]string, 0, len(builtinFactories))
	for name := range builtinFactories {
		names = append(names, name)
	}
	return names
}
