package ingest

import (
	"strings"
	"testing"
)

// TestParseReadings verifies that a well-formed readings file yields one
// package per line with code and parameters in input order.
func TestParseReadings(t *testing.T) {
	input := `SWM;720;1;80;25;40
RUN;15000;1;75
WLK;9000;1;75;180
`
	packages, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packages) != 3 {
		t.Fatalf("got %d packages, want 3", len(packages))
	}
	if packages[0].Code != "SWM" || len(packages[0].Params) != 5 {
		t.Errorf("package 0 = %+v, want SWM with 5 params", packages[0])
	}
	if packages[1].Code != "RUN" || packages[1].Params[0] != 15000 {
		t.Errorf("package 1 = %+v, want RUN starting with 15000", packages[1])
	}
	if packages[2].Code != "WLK" || packages[2].Params[3] != 180 {
		t.Errorf("package 2 = %+v, want WLK ending with 180", packages[2])
	}
}

// TestParseSkipsBlanksAndComments verifies that blank lines and # comments
// are ignored.
func TestParseSkipsBlanksAndComments(t *testing.T) {
	input := `# morning batch

RUN;15000;1;75

# end
`
	packages, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packages) != 1 {
		t.Fatalf("got %d packages, want 1", len(packages))
	}
}

// TestParseTrimsFieldWhitespace verifies that spaces around fields are
// tolerated.
func TestParseTrimsFieldWhitespace(t *testing.T) {
	packages, err := Parse(strings.NewReader("RUN; 15000 ; 1; 75\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if packages[0].Params[0] != 15000 {
		t.Errorf("params = %v, want [15000 1 75]", packages[0].Params)
	}
}

// TestParseBadNumber verifies that a malformed numeric field fails the parse
// and names the line.
func TestParseBadNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("RUN;15000;one;75\n"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error %q does not name the line", err)
	}
}

// TestParseMissingCode verifies that a line starting with a separator is
// rejected.
func TestParseMissingCode(t *testing.T) {
	if _, err := Parse(strings.NewReader(";720;1;80\n")); err == nil {
		t.Fatal("expected error, got nil")
	}
}

// TestParseEmptyInput verifies that an empty reader yields no packages and
// no error.
func TestParseEmptyInput(t *testing.T) {
	packages, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packages) != 0 {
		t.Errorf("got %d packages, want 0", len(packages))
	}
}

// TestParseLeavesValidationToDecode verifies that a semantically wrong but
// well-formed reading still parses; arity checks belong to sensor.Decode.
func TestParseLeavesValidationToDecode(t *testing.T) {
	packages, err := Parse(strings.NewReader("RUN;15000\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packages) != 1 || len(packages[0].Params) != 1 {
		t.Errorf("packages = %+v, want one RUN package with one param", packages)
	}
}
