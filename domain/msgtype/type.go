// Package msgtype provides the message type descriptor value object.
// A MessageType identifies a message schema by its canonical data type name,
// its MD5 sum, and the flattened definition text that inlines every
// transitively referenced schema.
package msgtype

const (
	// WildcardMD5Sum marks a descriptor whose checksum is unspecified.
	WildcardMD5Sum = "*"

	// MD5SumLength is the length of a computed MD5 sum in hex form.
	MD5SumLength = 32
)

// MessageType describes a message schema (immutable value type).
// The zero value is invalid; use New or Clear to obtain the canonical
// unresolved state.
type MessageType struct {
	// DataType is the canonical, package-qualified type name
	// (e.g. "std_msgs/Header"). Empty when unresolved.
	DataType string

	// MD5Sum is the checksum of the fully expanded schema, or the
	// wildcard "*" when unspecified.
	MD5Sum string

	// Definition is the flattened definition text. Empty when unresolved.
	Definition string
}

// New creates a message type descriptor from a known triple.
// An empty md5Sum is normalized to the wildcard.
func New(dataType, md5Sum, definition string) MessageType {
	if md5Sum == "" {
		md5Sum = WildcardMD5Sum
	}
	return MessageType{
		DataType:   dataType,
		MD5Sum:     md5Sum,
		Definition: definition,
	}
}

// IsValid reports whether the descriptor can be used to construct
// transport objects: a non-empty data type and definition, and an MD5 sum
// that is either the wildcard or a full 32-character sum.
func (t MessageType) IsValid() bool {
	return t.MD5Sum != "" &&
		(t.MD5Sum == WildcardMD5Sum || len(t.MD5Sum) == MD5SumLength) &&
		t.DataType != "" &&
		t.Definition != ""
}

// Clear resets the descriptor to its unresolved state.
func (t *MessageType) Clear() {
	t.DataType = ""
	t.MD5Sum = WildcardMD5Sum
	t.Definition = ""
}

// Equal reports whether two descriptors identify the same schema.
// The definition text does not participate: two descriptors with the same
// data type and MD5 sum describe identical schemas.
func (t MessageType) Equal(o MessageType) bool {
	return t.DataType == o.DataType && t.MD5Sum == o.MD5Sum
}

// String returns the data type name.
func (t MessageType) String() string {
	return t.DataType
}
