// Package resolve implements message definition resolution: expanding a
// named message schema into a self-contained descriptor whose definition
// text inlines every transitively referenced schema.
package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/artpar/varmsg/domain/errs"
	"github.com/artpar/varmsg/domain/msgtype"
	"github.com/artpar/varmsg/ports"
)

// SeparatorRuleLength is the width of the rule line separating inlined
// definitions in the flattened text.
const SeparatorRuleLength = 80

// schemaDir is the directory under a package root holding schema files.
const schemaDir = "msg"

// schemaExt is the schema file extension.
const schemaExt = ".msg"

// Resolver resolves message data types into flattened descriptors.
// All collaborators are injected; a Resolver holds no mutable state and is
// safe for concurrent use as long as its collaborators are.
type Resolver struct {
	locator     ports.PackageLocator
	matcher     ports.LineMatcher
	registry    ports.TypeRegistry
	basePackage string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBasePackage overrides the package assumed for the bare Header alias.
func WithBasePackage(pkg string) Option {
	return func(r *Resolver) {
		if pkg != "" {
			r.basePackage = pkg
		}
	}
}

// New creates a resolver with the given collaborators.
func New(locator ports.PackageLocator, matcher ports.LineMatcher, registry ports.TypeRegistry, opts ...Option) *Resolver {
	r := &Resolver{
		locator:     locator,
		matcher:     matcher,
		registry:    registry,
		basePackage: msgtype.DefaultBasePackage,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// state is the traversal state of one Resolve call: a set of visited data
// types and an order-preserving frontier of data types still to inline.
// It is discarded when the call returns.
type state struct {
	visited map[string]struct{}
	pending []string
}

func newState(root string) *state {
	return &state{
		visited: map[string]struct{}{root: {}},
		pending: []string{root},
	}
}

// discover enqueues a data type unless it was already seen.
func (s *state) discover(dataType string) {
	if _, seen := s.visited[dataType]; seen {
		return
	}
	s.visited[dataType] = struct{}{}
	s.pending = append(s.pending, dataType)
}

// Resolve expands the schema named by dataType into a flattened descriptor.
//
// Dependencies are discovered breadth-first and inlined in first-discovery
// order, each exactly once regardless of how often it is referenced. The
// flattened text is the root schema's raw text followed, for each further
// dependency, by an 80-character rule, a "MSG: <type>" marker line, and the
// dependency's raw text. The MD5 sum is left as the wildcard; computing a
// real sum is the caller's concern.
//
// A failure at any point yields no descriptor at all. A root schema whose
// file exists but is empty yields an unresolved descriptor without error.
func (r *Resolver) Resolve(dataType string) (msgtype.MessageType, error) {
	resolved := msgtype.New("", msgtype.WildcardMD5Sum, "")

	st := newState(dataType)
	var definition strings.Builder

	for len(st.pending) > 0 {
		current := st.pending[0]

		id, err := msgtype.ParseIdentifier(current, r.basePackage)
		if err != nil {
			return msgtype.MessageType{}, err
		}

		pkgPath, ok := r.locator.Locate(id.Package)
		if !ok {
			return msgtype.MessageType{}, &errs.PackageNotFoundError{Package: id.Package}
		}

		filename := filepath.Join(pkgPath, schemaDir, id.Type+schemaExt)
		text, err := os.ReadFile(filename)
		if err != nil {
			return msgtype.MessageType{}, &errs.FileOpenError{Filename: filename, Err: err}
		}

		if len(text) > 0 {
			r.scan(string(text), st)

			if definition.Len() > 0 {
				definition.WriteString("\n" + strings.Repeat("=", SeparatorRuleLength) + "\n")
				definition.WriteString("MSG: " + current + "\n")
			}
			definition.Write(text)
		}

		st.pending = st.pending[1:]
	}

	resolved.Definition = definition.String()
	if resolved.Definition != "" {
		resolved.DataType = dataType
	}
	return resolved, nil
}

// scan extracts member type references from one schema text and enqueues
// every non-builtin type not yet visited.
func (r *Resolver) scan(text string, st *state) {
	for _, line := range strings.Split(text, "\n") {
		match, ok := r.matcher.MatchArray(line)
		if !ok {
			match, ok = r.matcher.Match(line)
		}
		if !ok {
			continue
		}

		memberType := match.Type
		if memberType == msgtype.HeaderType {
			memberType = r.basePackage + "/" + msgtype.HeaderType
		}

		if r.registry.IsBuiltin(memberType) {
			continue
		}
		st.discover(memberType)
	}
}
