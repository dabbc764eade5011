package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenOutputStdoutWhenPathEmpty(t *testing.T) {
	out, closeOut, err := openOutput("")
	defer closeOut()
	if err != nil {
		t.Fatalf("openOutput(\"\"): %v", err)
	}
	if out != os.Stdout {
		t.Fatal("openOutput(\"\") did not return os.Stdout")
	}
}

func TestOpenOutputCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	out, closeOut, err := openOutput(path)
	if err != nil {
		t.Fatalf("openOutput: %v", err)
	}
	out.WriteString("data")
	closeOut()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "data" {
		t.Fatalf("file content = %q, want %q", got, "data")
	}
}

func TestRunDumpFileWritesJSON(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.grug")
	if err := os.WriteFile(src, []byte("on_init() {\n}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	out := filepath.Join(dir, "a.json")

	dumpFileOutput = out
	defer func() { dumpFileOutput = "" }()

	if err := runDumpFile(dumpFileCmd, []string{src}); err != nil {
		t.Fatalf("runDumpFile: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := `[{"type":"GLOBAL_ON_FN","name":"on_init"}]` + "\n"
	if string(got) != want {
		t.Fatalf("dump-file output = %q, want %q", got, want)
	}
}

func TestRunDumpFilePropagatesParseErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.grug")
	if err := os.WriteFile(src, []byte("on_init( {\n}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	dumpFileOutput = ""
	if err := runDumpFile(dumpFileCmd, []string{src}); err == nil {
		t.Fatal("runDumpFile() on malformed source returned nil error")
	}
}

func TestRunApplyFileWritesSource(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "a.json")
	doc := `[{"type":"GLOBAL_ON_FN","name":"on_init"}]`
	if err := os.WriteFile(jsonPath, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	out := filepath.Join(dir, "a.grug")

	applyFileOutput = out
	defer func() { applyFileOutput = "" }()

	if err := runApplyFile(applyFileCmd, []string{jsonPath}); err != nil {
		t.Fatalf("runApplyFile: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "on_init() {\n}\n" {
		t.Fatalf("apply-file output = %q", got)
	}
}

func TestRunApplyFilePropagatesValidationErrors(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(jsonPath, []byte(`[{"name":"on_init"}]`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	applyFileOutput = ""
	if err := runApplyFile(applyFileCmd, []string{jsonPath}); err == nil {
		t.Fatal("runApplyFile() on a JSON document missing \"type\" returned nil error")
	}
}

func TestRunDumpTreeThenRunApplyTreeRoundTrip(t *testing.T) {
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "a.grug"), []byte("on_tick() {\n}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	treeJSON := filepath.Join(t.TempDir(), "tree.json")
	dumpTreeOutput = treeJSON
	dumpTreeNoSort = false
	defer func() { dumpTreeOutput = ""; dumpTreeNoSort = false }()

	if err := runDumpTree(dumpTreeCmd, []string{src}); err != nil {
		t.Fatalf("runDumpTree: %v", err)
	}

	outDir := filepath.Join(t.TempDir(), "restored")
	if err := runApplyTree(applyTreeCmd, []string{treeJSON, outDir}); err != nil {
		t.Fatalf("runApplyTree: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(outDir, "a.grug"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "on_tick() {\n}\n" {
		t.Fatalf("restored a.grug = %q", got)
	}
}
