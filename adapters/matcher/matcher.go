// Package matcher provides the regular-grammar line matcher for schema
// definition files.
package matcher

import (
	"regexp"
	"strconv"

	"github.com/artpar/varmsg/ports"
)

var (
	// type name  # comment
	scalarRe = regexp.MustCompile(`^\s*([a-zA-Z][a-zA-Z0-9_/]*)\s+([a-zA-Z][a-zA-Z0-9_]*)\s*(?:#.*)?$`)

	// type[size] name  # comment
	arrayRe = regexp.MustCompile(`^\s*([a-zA-Z][a-zA-Z0-9_/]*)\s*\[\s*([0-9]*)\s*\]\s+([a-zA-Z][a-zA-Z0-9_]*)\s*(?:#.*)?$`)

	// type NAME=value
	constantRe = regexp.MustCompile(`^\s*([a-zA-Z][a-zA-Z0-9_/]*)\s+([a-zA-Z][a-zA-Z0-9_]*)\s*=\s*(\S.*?)\s*$`)
)

// Matcher recognizes field declaration lines. The zero value is usable.
type Matcher struct{}

// New creates a line matcher.
func New() *Matcher {
	return &Matcher{}
}

// Match implements ports.LineMatcher for the scalar form.
func (*Matcher) Match(line string) (ports.FieldMatch, bool) {
	m := scalarRe.FindStringSubmatch(line)
	if m == nil {
		return ports.FieldMatch{}, false
	}
	return ports.FieldMatch{Type: m[1], Name: m[2]}, true
}

// MatchArray implements ports.LineMatcher for the array form.
// An empty size ("type[] name") is an unbounded array.
func (*Matcher) MatchArray(line string) (ports.FieldMatch, bool) {
	m := arrayRe.FindStringSubmatch(line)
	if m == nil {
		return ports.FieldMatch{}, false
	}
	size := 0
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return ports.FieldMatch{}, false
		}
		size = n
	}
	return ports.FieldMatch{Type: m[1], Name: m[3], Array: true, Size: size}, true
}

// MatchConstant implements ports.LineMatcher for the constant form.
func (*Matcher) MatchConstant(line string) (ports.FieldMatch, bool) {
	m := constantRe.FindStringSubmatch(line)
	if m == nil {
		return ports.FieldMatch{}, false
	}
	return ports.FieldMatch{Type: m[1], Name: m[2]}, true
}
