package message

import (
	"errors"
	"strings"
	"testing"

	"github.com/artpar/varmsg/adapters/matcher"
	"github.com/artpar/varmsg/core/resolve"
	"github.com/artpar/varmsg/domain/errs"
)

func newTestParser() *Parser {
	return NewParser(matcher.New())
}

func rule() string {
	return strings.Repeat("=", resolve.SeparatorRuleLength)
}

func TestParse_SingleSection(t *testing.T) {
	definition := `# a point in space
float64 x
float64 y
float64[3] covariance
float64[] history
int32 VERSION=2
`
	def, err := newTestParser().Parse("pkgA/Point", definition)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if def.DataType != "pkgA/Point" {
		t.Errorf("DataType = %q, want pkgA/Point", def.DataType)
	}
	if len(def.Sections) != 1 {
		t.Fatalf("len(Sections) = %d, want 1", len(def.Sections))
	}

	root, err := def.Root()
	if err != nil {
		t.Fatalf("Root() error = %v", err)
	}
	if root.DataType != "pkgA/Point" {
		t.Errorf("root DataType = %q, want pkgA/Point", root.DataType)
	}

	want := []Field{
		{Name: "x", Type: "float64"},
		{Name: "y", Type: "float64"},
		{Name: "covariance", Type: "float64", Array: true, Size: 3},
		{Name: "history", Type: "float64", Array: true},
		{Name: "VERSION", Type: "int32", Constant: true},
	}
	if len(root.Fields) != len(want) {
		t.Fatalf("len(Fields) = %d, want %d", len(root.Fields), len(want))
	}
	for i, f := range want {
		if root.Fields[i] != f {
			t.Errorf("Fields[%d] = %+v, want %+v", i, root.Fields[i], f)
		}
	}
}

func TestParse_FlattenedSections(t *testing.T) {
	definition := "std_msgs/Header header\npkgA/Point position\n" +
		"\n" + rule() + "\nMSG: std_msgs/Header\nuint32 seq\nstring frame_id\n" +
		"\n" + rule() + "\nMSG: pkgA/Point\nfloat64 x\n"

	def, err := newTestParser().Parse("pkgA/Pose", definition)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(def.Sections) != 3 {
		t.Fatalf("len(Sections) = %d, want 3", len(def.Sections))
	}

	sec, err := def.Section(1)
	if err != nil {
		t.Fatalf("Section(1) error = %v", err)
	}
	if sec.DataType != "std_msgs/Header" {
		t.Errorf("Section(1).DataType = %q, want std_msgs/Header", sec.DataType)
	}

	f, err := sec.FieldByName("frame_id")
	if err != nil {
		t.Fatalf("FieldByName(frame_id) error = %v", err)
	}
	if f.Type != "string" {
		t.Errorf("frame_id type = %q, want string", f.Type)
	}
}

func TestParse_UnrecognizedLine(t *testing.T) {
	_, err := newTestParser().Parse("pkgA/Bad", "float64 x\n!!! not a field\n")

	var parseErr *errs.DefinitionParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %v, want DefinitionParseError", err)
	}
	if parseErr.DataType != "pkgA/Bad" {
		t.Errorf("DataType = %q, want pkgA/Bad", parseErr.DataType)
	}
	if !strings.Contains(parseErr.Line, "not a field") {
		t.Errorf("Line = %q, want the offending line", parseErr.Line)
	}
}

func TestParse_MarkerWithoutName(t *testing.T) {
	definition := "float64 x\n" + rule() + "\nMSG: \nfloat64 y\n"
	_, err := newTestParser().Parse("pkgA/Bad", definition)

	var parseErr *errs.DefinitionParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %v, want DefinitionParseError", err)
	}
}

func TestParse_ShortRuleIsNotASeparator(t *testing.T) {
	// A run of '=' shorter than the separator rule is not a section break
	// and is not a field either.
	_, err := newTestParser().Parse("pkgA/Bad", "float64 x\n====\n")
	var parseErr *errs.DefinitionParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %v, want DefinitionParseError", err)
	}
}

func TestSectionAccessErrors(t *testing.T) {
	def, err := newTestParser().Parse("pkgA/Point", "float64 x\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	_, err = def.Section(1)
	var noMember *errs.NoSuchMemberError
	if !errors.As(err, &noMember) {
		t.Fatalf("Section(1) error = %v, want NoSuchMemberError", err)
	}
	if noMember.Index != 1 {
		t.Errorf("Index = %d, want 1", noMember.Index)
	}

	root, _ := def.Root()
	_, err = root.FieldAt(5)
	var noField *errs.NoSuchFieldError
	if !errors.As(err, &noField) {
		t.Fatalf("FieldAt(5) error = %v, want NoSuchFieldError", err)
	}
	if noField.Index != 5 {
		t.Errorf("Index = %d, want 5", noField.Index)
	}

	_, err = root.FieldByName("missing")
	if !errors.As(err, &noField) {
		t.Fatalf("FieldByName(missing) error = %v, want NoSuchFieldError", err)
	}
	if noField.Name != "missing" {
		t.Errorf("Name = %q, want missing", noField.Name)
	}
}
