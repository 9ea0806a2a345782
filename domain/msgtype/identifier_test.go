package msgtype

import (
	"errors"
	"testing"

	"github.com/artpar/varmsg/domain/errs"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		dataType    string
		basePackage string
		want        Identifier
	}{
		{"std_msgs/Header", "", Identifier{"std_msgs", "Header"}},
		{"geometry_msgs/PoseStamped", "", Identifier{"geometry_msgs", "PoseStamped"}},
		{"Header", "", Identifier{"std_msgs", "Header"}},
		{"Header", "my_msgs", Identifier{"my_msgs", "Header"}},
		// Only the first separator splits.
		{"pkg/sub/Type", "", Identifier{"pkg", "sub/Type"}},
	}
	for _, tt := range tests {
		t.Run(tt.dataType, func(t *testing.T) {
			got, err := ParseIdentifier(tt.dataType, tt.basePackage)
			if err != nil {
				t.Fatalf("ParseIdentifier(%q) error = %v", tt.dataType, err)
			}
			if got != tt.want {
				t.Errorf("ParseIdentifier(%q) = %+v, want %+v", tt.dataType, got, tt.want)
			}
		})
	}
}

func TestParseIdentifier_BareNameRejected(t *testing.T) {
	for _, dataType := range []string{"bareType", "/Header", ""} {
		_, err := ParseIdentifier(dataType, "")
		var invalidType *errs.InvalidMessageTypeError
		if !errors.As(err, &invalidType) {
			t.Errorf("ParseIdentifier(%q) error = %v, want InvalidMessageTypeError", dataType, err)
			continue
		}
		if invalidType.DataType != dataType {
			t.Errorf("DataType = %q, want %q", invalidType.DataType, dataType)
		}
	}
}

func TestParseIdentifier_EmptyLocalType(t *testing.T) {
	_, err := ParseIdentifier("pkgA/", "")
	if !errors.Is(err, errs.ErrInvalidDataType) {
		t.Errorf("ParseIdentifier(pkgA/) error = %v, want ErrInvalidDataType", err)
	}
}

func TestIdentifierString(t *testing.T) {
	id := Identifier{Package: "std_msgs", Type: "Header"}
	if got := id.String(); got != "std_msgs/Header" {
		t.Errorf("String() = %q, want std_msgs/Header", got)
	}
}
