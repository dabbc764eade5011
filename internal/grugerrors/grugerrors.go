// Package grugerrors formats source errors with position information and a
// caret pointing at the offending column. The lexer, parser and applier
// report errors through their own types and do not build a SourceError.
package grugerrors

import (
	"fmt"
	"strings"

	"github.com/MyNameIsTrez/grugast/internal/token"
)

// SourceError is a single error tied to a position in a grug source file or
// the JSON document an Applier is reconstructing source from.
type SourceError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New builds a SourceError.
func New(pos token.Position, message, source, file string) *SourceError {
	return &SourceError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return e.Format()
}

// Format renders the error with its file header, source line, and caret.
func (e *SourceError) Format() string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%d:%d: ", e.Pos.Line, e.Pos.Column)
	}
	sb.WriteString(e.Message)

	line := e.sourceLine(e.Pos.Line)
	if line == "" {
		return sb.String()
	}

	lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString("\n")
	sb.WriteString(lineNumStr)
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
	sb.WriteString("^")

	return sb.String()
}

func (e *SourceError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// List formats multiple errors, one per section, numbered when there is
// more than one.
func List(errs []*SourceError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[%d/%d] ", i+1, len(errs))
		sb.WriteString(e.Format())
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
