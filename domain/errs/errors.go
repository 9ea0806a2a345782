// Package errs defines the closed failure vocabulary shared by the schema
// resolution and variant machinery. Every failure kind is distinct and
// matchable with errors.Is or errors.As so callers can branch on cause.
package errs

import (
	"errors"
	"fmt"
)

// Context-free failure kinds.
var (
	// ErrInvalidOperation signals execution of an operation that is not
	// available in the current state.
	ErrInvalidOperation = errors.New("attempted execution of an invalid operation")

	// ErrInvalidDataType signals use of an invalid data type.
	ErrInvalidDataType = errors.New("attempted use of an invalid data type")

	// ErrImmutableDataType signals modification of an immutable data type.
	ErrImmutableDataType = errors.New("attempted modification of an immutable data type")

	// ErrInvalidMessageMember signals use of an invalid message member.
	ErrInvalidMessageMember = errors.New("attempted use of an invalid message member")
)

// NoSuchDataTypeError reports a lookup of an unknown data type.
type NoSuchDataTypeError struct {
	Identifier string
}

func (e *NoSuchDataTypeError) Error() string {
	return fmt.Sprintf("data type [%s] does not exist", e.Identifier)
}

// AmbiguousDataTypeError reports a bare identifier matching more than one
// registered data type.
type AmbiguousDataTypeError struct {
	Identifier string
}

func (e *AmbiguousDataTypeError) Error() string {
	return fmt.Sprintf("data type identifier [%s] is used ambiguously", e.Identifier)
}

// DataTypeMismatchError reports a provided data type that differs from the
// expected one.
type DataTypeMismatchError struct {
	Expected string
	Provided string
}

func (e *DataTypeMismatchError) Error() string {
	return fmt.Sprintf("provided data type [%s] mismatches expected data type [%s]",
		e.Provided, e.Expected)
}

// NoSuchMemberError reports an out-of-range message member index.
type NoSuchMemberError struct {
	Index int
}

func (e *NoSuchMemberError) Error() string {
	return fmt.Sprintf("member with index [%d] does not exist", e.Index)
}

// ChecksumMismatchError reports a provided MD5 sum that differs from the
// expected one.
type ChecksumMismatchError struct {
	Expected string
	Provided string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("provided MD5 sum [%s] mismatches expected MD5 sum [%s]",
		e.Provided, e.Expected)
}

// NoSuchFieldError reports a message field lookup that failed, either by
// index or by name. Name takes precedence in the diagnostic when set.
type NoSuchFieldError struct {
	Index int
	Name  string
}

func (e *NoSuchFieldError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("field with name [%s] does not exist", e.Name)
	}
	return fmt.Sprintf("field with index [%d] does not exist", e.Index)
}

// InvalidMessageTypeError reports a message type identifier that cannot be
// resolved, such as a bare name with no well-known default package.
type InvalidMessageTypeError struct {
	DataType string
}

func (e *InvalidMessageTypeError) Error() string {
	return fmt.Sprintf("message type [%s] is invalid", e.DataType)
}

// DefinitionParseError reports a definition line that could not be parsed.
type DefinitionParseError struct {
	DataType string
	Line     string
	Reason   string
}

func (e *DefinitionParseError) Error() string {
	return fmt.Sprintf("error parsing the definition for [%s]: %s\n%s",
		e.DataType, e.Reason, e.Line)
}

// PackageNotFoundError reports a package with no resolvable path.
type PackageNotFoundError struct {
	Package string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("package [%s] not found", e.Package)
}

// FileOpenError reports a schema file that could not be opened.
type FileOpenError struct {
	Filename string
	Err      error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("error opening file [%s]", e.Filename)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}
