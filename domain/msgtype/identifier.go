package msgtype

import (
	"strings"

	"github.com/artpar/varmsg/domain/errs"
)

// DefaultBasePackage is the package assumed for the bare "Header" alias.
const DefaultBasePackage = "std_msgs"

// HeaderType is the only local type name accepted without a package prefix.
const HeaderType = "Header"

// Identifier is a data type name split into its package and local parts.
type Identifier struct {
	Package string
	Type    string
}

// String returns the package-qualified form.
func (id Identifier) String() string {
	return id.Package + "/" + id.Type
}

// ParseIdentifier splits a data type name at its first separator.
// A bare name is accepted only for the Header alias, which resolves to
// basePackage (DefaultBasePackage when empty). Pure string parsing; no I/O.
func ParseIdentifier(dataType, basePackage string) (Identifier, error) {
	if basePackage == "" {
		basePackage = DefaultBasePackage
	}

	var id Identifier
	if i := strings.Index(dataType, "/"); i > 0 {
		id.Package = dataType[:i]
		id.Type = dataType[i+1:]
	} else {
		// No separator, or a leading separator: the whole string is the
		// local name and no package is known.
		id.Type = dataType
	}

	if id.Package == "" {
		if id.Type != HeaderType {
			return Identifier{}, &errs.InvalidMessageTypeError{DataType: dataType}
		}
		id.Package = basePackage
	}

	if id.Type == "" {
		return Identifier{}, errs.ErrInvalidDataType
	}

	return id, nil
}
