package applier_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/MyNameIsTrez/grugast/internal/applier"
	"github.com/MyNameIsTrez/grugast/internal/dumper"
	"github.com/MyNameIsTrez/grugast/internal/jsonvalue"
	"github.com/MyNameIsTrez/grugast/internal/parser"
)

func applyJSON(t *testing.T, doc string) (string, error) {
	t.Helper()
	root, err := jsonvalue.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("jsonvalue.Parse: %v", err)
	}
	var buf bytes.Buffer
	err = applier.ApplyFile(&buf, root, applier.DefaultOptions())
	return buf.String(), err
}

func TestApplyFileEmptyFunction(t *testing.T) {
	got, err := applyJSON(t, `[{"type":"GLOBAL_ON_FN","name":"on_init"}]`)
	if err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	want := "on_init() {\n}\n"
	if got != want {
		t.Fatalf("ApplyFile() = %q, want %q", got, want)
	}
}

func TestApplyFileBinaryPrecedenceIsPreservedStructurally(t *testing.T) {
	doc := `[{"type":"GLOBAL_VARIABLE","name":"x","variable_type":"i32","assignment":` +
		`{"type":"BINARY_EXPR","left_expr":{"type":"I32_EXPR","value":"1"},"operator":"PLUS",` +
		`"right_expr":{"type":"BINARY_EXPR","left_expr":{"type":"I32_EXPR","value":"2"},"operator":"MULTIPLICATION",` +
		`"right_expr":{"type":"I32_EXPR","value":"3"}}}}]`
	got, err := applyJSON(t, doc)
	if err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	want := "x: i32 = 1 + 2 * 3\n"
	if got != want {
		t.Fatalf("ApplyFile() = %q, want %q", got, want)
	}
}

func TestApplyFileElseIfChainStaysOnOneLine(t *testing.T) {
	doc := `[{"type":"GLOBAL_ON_FN","name":"on_tick","statements":[{"type":"IF_STATEMENT",` +
		`"condition":{"type":"CALL_EXPR","name":"a"},` +
		`"else_statements":[{"type":"IF_STATEMENT","condition":{"type":"CALL_EXPR","name":"b"}}]}]}]`
	got, err := applyJSON(t, doc)
	if err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	want := "on_tick() {\n    if a() {\n    } else if b() {\n    }\n}\n"
	if got != want {
		t.Fatalf("ApplyFile() = %q, want %q", got, want)
	}
}

func TestApplyFileRejectsNonArrayRoot(t *testing.T) {
	if _, err := applyJSON(t, `{"type":"GLOBAL_ON_FN","name":"on_init"}`); err == nil {
		t.Fatal("ApplyFile() on an object root returned nil error")
	}
}

func TestApplyFileRejectsMissingTypeDiscriminant(t *testing.T) {
	if _, err := applyJSON(t, `[{"name":"on_init"}]`); err == nil {
		t.Fatal("ApplyFile() on a global missing \"type\" returned nil error")
	}
}

func TestApplyFileRejectsOutOfOrderFields(t *testing.T) {
	doc := `[{"type":"GLOBAL_VARIABLE","variable_type":"i32","name":"x","assignment":{"type":"I32_EXPR","value":"1"}}]`
	if _, err := applyJSON(t, doc); err == nil {
		t.Fatal("ApplyFile() on out-of-order fields returned nil error")
	}
}

func TestApplyFileRejectsMissingRequiredField(t *testing.T) {
	if _, err := applyJSON(t, `[{"type":"GLOBAL_VARIABLE","name":"x"}]`); err == nil {
		t.Fatal("ApplyFile() on a global missing a required field returned nil error")
	}
}

func TestApplyFileRejectsUnknownExtraField(t *testing.T) {
	doc := `[{"type":"GLOBAL_ON_FN","name":"on_init","bogus":"field"}]`
	if _, err := applyJSON(t, doc); err == nil {
		t.Fatal("ApplyFile() on a global with an unrecognized field returned nil error")
	}
}

func TestApplyFileRejectsWrongFieldKind(t *testing.T) {
	doc := `[{"type":"GLOBAL_VARIABLE","name":"x","variable_type":"i32","assignment":"not an object"}]`
	if _, err := applyJSON(t, doc); err == nil {
		t.Fatal("ApplyFile() with a string in place of an object field returned nil error")
	}
}

func TestApplyFileRejectsUnknownType(t *testing.T) {
	if _, err := applyJSON(t, `[{"type":"NOT_A_REAL_KIND"}]`); err == nil {
		t.Fatal("ApplyFile() on an unrecognized \"type\" returned nil error")
	}
}

func TestApplyFileRejectsEmptyElseStatements(t *testing.T) {
	doc := `[{"type":"GLOBAL_ON_FN","name":"on_tick","statements":[{"type":"IF_STATEMENT",` +
		`"condition":{"type":"TRUE_EXPR"},"else_statements":[]}]}]`
	if _, err := applyJSON(t, doc); err == nil {
		t.Fatal("ApplyFile() with an empty else_statements array returned nil error")
	}
}

func TestApplyFileRejectsMalformedArgument(t *testing.T) {
	doc := `[{"type":"GLOBAL_ON_FN","name":"f","arguments":[{"type":"i32","name":"x"}]}]`
	if _, err := applyJSON(t, doc); err == nil {
		t.Fatal("ApplyFile() with an out-of-order argument object returned nil error")
	}
}

func TestApplyFileEscapesStringLiteralsBackToSourceForm(t *testing.T) {
	doc := `[{"type":"GLOBAL_VARIABLE","name":"x","variable_type":"string","assignment":` +
		`{"type":"STRING_EXPR","str":"line\nwith\ttab and \"quote\""}}]`
	got, err := applyJSON(t, doc)
	if err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	want := `x: string = "line\nwith\ttab and \"quote\""` + "\n"
	if got != want {
		t.Fatalf("ApplyFile() = %q, want %q", got, want)
	}
}

func TestApplyFileUsesTabsWhenConfigured(t *testing.T) {
	root, err := jsonvalue.Parse([]byte(`[{"type":"GLOBAL_ON_FN","name":"f","statements":[{"type":"BREAK_STATEMENT"}]}]`))
	if err != nil {
		t.Fatalf("jsonvalue.Parse: %v", err)
	}
	var buf bytes.Buffer
	if err := applier.ApplyFile(&buf, root, applier.Options{UseTabs: true}); err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	want := "f() {\n\tbreak\n}\n"
	if buf.String() != want {
		t.Fatalf("ApplyFile() = %q, want %q", buf.String(), want)
	}
}

// TestRoundTripFixtures checks Property 1/5/6 from the spec: dumping a
// fixture then applying the result back reproduces the original byte for
// byte.
func TestRoundTripFixtures(t *testing.T) {
	fixtures, err := filepath.Glob("../../testdata/fixtures/*.grug")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}
	for _, path := range fixtures {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}

			p, err := parser.New(string(src))
			if err != nil {
				t.Fatalf("parser.New: %v", err)
			}
			file, err := p.ParseFile()
			if err != nil {
				t.Fatalf("ParseFile: %v", err)
			}

			var dumped bytes.Buffer
			if err := dumper.DumpFile(&dumped, file); err != nil {
				t.Fatalf("DumpFile: %v", err)
			}

			root, err := jsonvalue.Parse(dumped.Bytes())
			if err != nil {
				t.Fatalf("jsonvalue.Parse: %v", err)
			}
			var applied bytes.Buffer
			if err := applier.ApplyFile(&applied, root, applier.DefaultOptions()); err != nil {
				t.Fatalf("ApplyFile: %v", err)
			}

			if applied.String() != string(src) {
				t.Fatalf("round trip mismatch:\n got: %q\nwant: %q", applied.String(), string(src))
			}
		})
	}
}
