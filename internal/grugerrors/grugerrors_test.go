package grugerrors_test

import (
	"strings"
	"testing"

	"github.com/MyNameIsTrez/grugast/internal/grugerrors"
	"github.com/MyNameIsTrez/grugast/internal/token"
)

func TestFormatWithFileAndSourceLine(t *testing.T) {
	src := "x: i32 = 1 +\n"
	e := grugerrors.New(token.Position{Line: 1, Column: 13}, "expected expression, got NEWLINE", src, "bad.grug")

	got := e.Format()
	if !strings.HasPrefix(got, "bad.grug:1:13: expected expression, got NEWLINE\n") {
		t.Fatalf("Format() header = %q", got)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("Format() has %d lines, want 3:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[1], src[:len(src)-1]) {
		t.Fatalf("Format() source line = %q, want it to contain %q", lines[1], src)
	}
	caretCol := strings.Index(lines[2], "^")
	if caretCol != len(lines[1])-1 {
		t.Fatalf("caret at column %d, want it under column %d", caretCol, len(lines[1])-1)
	}
}

func TestFormatWithoutFile(t *testing.T) {
	e := grugerrors.New(token.Position{Line: 2, Column: 1}, "bad", "", "")
	if got := e.Format(); got != "2:1: bad" {
		t.Fatalf("Format() = %q, want %q", got, "2:1: bad")
	}
}

func TestErrorMatchesFormat(t *testing.T) {
	e := grugerrors.New(token.Position{Line: 1, Column: 1}, "oops", "", "")
	if e.Error() != e.Format() {
		t.Fatalf("Error() = %q, Format() = %q, want equal", e.Error(), e.Format())
	}
}

func TestListSingleError(t *testing.T) {
	e := grugerrors.New(token.Position{Line: 1, Column: 1}, "oops", "", "")
	if got := grugerrors.List([]*grugerrors.SourceError{e}); got != e.Format() {
		t.Fatalf("List() of one error = %q, want bare Format() %q", got, e.Format())
	}
}

func TestListMultipleErrorsAreNumbered(t *testing.T) {
	e1 := grugerrors.New(token.Position{Line: 1, Column: 1}, "first", "", "a.grug")
	e2 := grugerrors.New(token.Position{Line: 2, Column: 1}, "second", "", "a.grug")

	got := grugerrors.List([]*grugerrors.SourceError{e1, e2})
	if !strings.HasPrefix(got, "2 errors:\n\n") {
		t.Fatalf("List() = %q, want it to start with the error count", got)
	}
	if !strings.Contains(got, "[1/2] ") || !strings.Contains(got, "[2/2] ") {
		t.Fatalf("List() = %q, want both entries numbered", got)
	}
}

func TestListEmpty(t *testing.T) {
	if got := grugerrors.List(nil); got != "" {
		t.Fatalf("List(nil) = %q, want empty string", got)
	}
}
