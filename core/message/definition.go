// Package message parses flattened definition text into structured
// sections and fields. The flattened format is the resolver's output: the
// root schema text followed by separator-delimited sections, one per
// inlined dependency.
package message

import (
	"strings"

	"github.com/artpar/varmsg/core/resolve"
	"github.com/artpar/varmsg/domain/errs"
	"github.com/artpar/varmsg/ports"
)

// sectionMarker prefixes the line naming an inlined dependency.
const sectionMarker = "MSG: "

// Field is one declared field of a message schema.
type Field struct {
	Name  string
	Type  string
	Array bool

	// Size is the fixed array size, 0 for unbounded arrays and scalars.
	Size int

	// Constant is true for constant declarations.
	Constant bool
}

// Section is the definition of one message type within a flattened
// definition: the root schema or one inlined dependency.
type Section struct {
	// DataType names the section's type. Empty for the root section when
	// the flattened text carries no marker for it.
	DataType string

	Fields []Field
}

// FieldByName returns the section field with the given name.
func (s Section) FieldByName(name string) (Field, error) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, &errs.NoSuchFieldError{Name: name}
}

// FieldAt returns the section field at the given index.
func (s Section) FieldAt(index int) (Field, error) {
	if index < 0 || index >= len(s.Fields) {
		return Field{}, &errs.NoSuchFieldError{Index: index}
	}
	return s.Fields[index], nil
}

// Definition is a parsed flattened definition.
type Definition struct {
	// DataType is the root type the definition was parsed for.
	DataType string

	Sections []Section
}

// Root returns the root section.
func (d Definition) Root() (Section, error) {
	return d.Section(0)
}

// Section returns the section at the given index, the root being index 0
// and inlined dependencies following in discovery order.
func (d Definition) Section(index int) (Section, error) {
	if index < 0 || index >= len(d.Sections) {
		return Section{}, &errs.NoSuchMemberError{Index: index}
	}
	return d.Sections[index], nil
}

// Parser parses flattened definition text with an injected line matcher.
type Parser struct {
	matcher ports.LineMatcher
}

// NewParser creates a definition parser.
func NewParser(matcher ports.LineMatcher) *Parser {
	return &Parser{matcher: matcher}
}

// Parse parses the flattened definition of dataType. Blank lines and
// comment lines are skipped; separator rules open a new section; any other
// unrecognizable line is a parse failure.
func (p *Parser) Parse(dataType, definition string) (Definition, error) {
	def := Definition{
		DataType: dataType,
		Sections: []Section{{DataType: dataType}},
	}

	cur := 0
	for _, line := range strings.Split(definition, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			continue

		case isSeparatorRule(trimmed):
			def.Sections = append(def.Sections, Section{})
			cur = len(def.Sections) - 1
			continue

		case strings.HasPrefix(trimmed, sectionMarker):
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, sectionMarker))
			if name == "" {
				return Definition{}, &errs.DefinitionParseError{
					DataType: dataType,
					Line:     line,
					Reason:   "missing type name after section marker",
				}
			}
			def.Sections[cur].DataType = name
			continue
		}

		if m, ok := p.matchField(line); ok {
			def.Sections[cur].Fields = append(def.Sections[cur].Fields, m)
			continue
		}

		return Definition{}, &errs.DefinitionParseError{
			DataType: dataType,
			Line:     line,
			Reason:   "unrecognized definition line",
		}
	}

	return def, nil
}

func (p *Parser) matchField(line string) (Field, bool) {
	if m, ok := p.matcher.MatchArray(line); ok {
		return Field{Name: m.Name, Type: m.Type, Array: true, Size: m.Size}, true
	}
	if m, ok := p.matcher.Match(line); ok {
		return Field{Name: m.Name, Type: m.Type}, true
	}
	if m, ok := p.matcher.MatchConstant(line); ok {
		return Field{Name: m.Name, Type: m.Type, Constant: true}, true
	}
	return Field{}, false
}

// isSeparatorRule reports whether a line is the 80-character rule emitted
// between inlined definitions.
func isSeparatorRule(line string) bool {
	if len(line) != resolve.SeparatorRuleLength {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '=' {
			return false
		}
	}
	return true
}
