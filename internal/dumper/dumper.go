// Package dumper converts a grug AST into its canonical JSON form,
// streaming output exactly as the original C implementation's dump()
// macro does (_examples/original_source/src/10_dumping_ast.c), field by
// field in the order spec §6.2 specifies. Optional fields are elided
// entirely when absent rather than emitted as null (spec §4.3).
package dumper

import (
	"bufio"
	"fmt"
	"io"

	"github.com/MyNameIsTrez/grugast/internal/ast"
)

// writer wraps a bufio.Writer and remembers the first abort error so every
// call site can ignore write failures until a final Flush/err check, the
// same "abort on first error" posture as the rest of the pipeline.
type writer struct {
	w   *bufio.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = err
	}
}

func (w *writer) key(name string) { w.raw(`"` + name + `":`) }

func (w *writer) str(s string) {
	w.raw(`"`)
	w.raw(escapeJSONString(s))
	w.raw(`"`)
}

// escapeJSONString escapes the characters that would otherwise produce
// malformed JSON (spec §9: "A hardened implementation must escape on dump").
func escapeJSONString(s string) string {
	needsEscape := false
	for _, r := range s {
		if r == '"' || r == '\\' || r < 0x20 {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}
	out := make([]byte, 0, len(s)+8)
	for _, r := range s {
		switch r {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\t':
			out = append(out, '\\', 't')
		case '\r':
			out = append(out, '\\', 'r')
		default:
			if r < 0x20 {
				out = append(out, []byte(fmt.Sprintf(`\u%04x`, r))...)
			} else {
				out = append(out, string(r)...)
			}
		}
	}
	return string(out)
}

// EscapeString escapes s for embedding as a JSON string payload, the same
// rule DumpFile applies to every string field it writes. Exported for the
// Directory Walker, which must escape filenames used as JSON object keys.
func EscapeString(s string) string { return escapeJSONString(s) }

// DumpFile writes file's canonical JSON array-of-globals form to w.
func DumpFile(w io.Writer, file *ast.File) error {
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw}

	wr.raw("[")
	for i, g := range file.Globals {
		if i > 0 {
			wr.raw(",")
		}
		wr.raw("{")
		dumpGlobal(wr, g)
		wr.raw("}")
	}
	wr.raw("]\n")

	if wr.err != nil {
		return wr.err
	}
	return bw.Flush()
}

func dumpGlobal(w *writer, g ast.Global) {
	switch n := g.(type) {
	case *ast.GlobalVariable:
		w.key("type")
		w.str(ast.GlobalVariableKind.String())
		w.raw(",")
		w.key("name")
		w.str(n.Name)
		w.raw(",")
		w.key("variable_type")
		w.str(n.TypeName)
		w.raw(",")
		w.key("assignment")
		w.raw("{")
		dumpExpr(w, n.Assignment)
		w.raw("}")
	case *ast.GlobalOnFn:
		w.key("type")
		w.str(ast.GlobalOnFnKind.String())
		w.raw(",")
		w.key("name")
		w.str(n.Name)
		if len(n.Args) > 0 {
			w.raw(",")
			w.key("arguments")
			dumpArguments(w, n.Args)
		}
		if len(n.Body) > 0 {
			w.raw(",")
			w.key("statements")
			dumpStatements(w, n.Body)
		}
	case *ast.GlobalHelperFn:
		w.key("type")
		w.str(ast.GlobalHelperFnKind.String())
		w.raw(",")
		w.key("name")
		w.str(n.Name)
		if len(n.Args) > 0 {
			w.raw(",")
			w.key("arguments")
			dumpArguments(w, n.Args)
		}
		if n.ReturnType != "" {
			w.raw(",")
			w.key("return_type")
			w.str(n.ReturnType)
		}
		if len(n.Body) > 0 {
			w.raw(",")
			w.key("statements")
			dumpStatements(w, n.Body)
		}
	case *ast.GlobalComment:
		w.key("type")
		w.str(ast.GlobalCommentKind.String())
		w.raw(",")
		w.key("comment")
		w.str(n.Comment)
	case *ast.GlobalEmptyLine:
		w.key("type")
		w.str(ast.GlobalEmptyLineKind.String())
	default:
		w.err = fmt.Errorf("dumper: unknown global node %T", g)
	}
}

func dumpArguments(w *writer, args []ast.Argument) {
	w.raw("[")
	for i, a := range args {
		if i > 0 {
			w.raw(",")
		}
		w.raw("{")
		w.key("name")
		w.str(a.Name)
		w.raw(",")
		w.key("type")
		w.str(a.TypeName)
		w.raw("}")
	}
	w.raw("]")
}

func dumpStatements(w *writer, stmts []ast.Stmt) {
	w.raw("[")
	for i, s := range stmts {
		if i > 0 {
			w.raw(",")
		}
		w.raw("{")
		dumpStatement(w, s)
		w.raw("}")
	}
	w.raw("]")
}

func dumpStatement(w *writer, s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VariableStmt:
		w.key("type")
		w.str(ast.VariableStmtKind.String())
		w.raw(",")
		w.key("name")
		w.str(n.Name)
		if n.TypeName != "" {
			w.raw(",")
			w.key("variable_type")
			w.str(n.TypeName)
		}
		w.raw(",")
		w.key("assignment")
		w.raw("{")
		dumpExpr(w, n.Assignment)
		w.raw("}")
	case *ast.CallStmt:
		w.key("type")
		w.str(ast.CallStmtKind.String())
		w.raw(",")
		dumpCallFields(w, n.Call)
	case *ast.IfStmt:
		w.key("type")
		w.str(ast.IfStmtKind.String())
		w.raw(",")
		w.key("condition")
		w.raw("{")
		dumpExpr(w, n.Condition)
		w.raw("}")
		if len(n.IfBody) > 0 {
			w.raw(",")
			w.key("if_statements")
			dumpStatements(w, n.IfBody)
		}
		if len(n.ElseBody) > 0 {
			w.raw(",")
			w.key("else_statements")
			dumpStatements(w, n.ElseBody)
		}
	case *ast.ReturnStmt:
		w.key("type")
		w.str(ast.ReturnStmtKind.String())
		if n.Value != nil {
			w.raw(",")
			w.key("expr")
			w.raw("{")
			dumpExpr(w, n.Value)
			w.raw("}")
		}
	case *ast.WhileStmt:
		w.key("type")
		w.str(ast.WhileStmtKind.String())
		w.raw(",")
		w.key("condition")
		w.raw("{")
		dumpExpr(w, n.Condition)
		w.raw("},")
		w.key("statements")
		dumpStatements(w, n.Body)
	case *ast.BreakStmt:
		w.key("type")
		w.str(ast.BreakStmtKind.String())
	case *ast.ContinueStmt:
		w.key("type")
		w.str(ast.ContinueStmtKind.String())
	case *ast.CommentStmt:
		w.key("type")
		w.str(ast.CommentStmtKind.String())
		w.raw(",")
		w.key("comment")
		w.str(n.Comment)
	case *ast.EmptyLineStmt:
		w.key("type")
		w.str(ast.EmptyLineStmtKind.String())
	default:
		w.err = fmt.Errorf("dumper: unknown statement node %T", s)
	}
}

func dumpCallFields(w *writer, call *ast.CallExpr) {
	w.key("name")
	w.str(call.Name)
	if len(call.Args) > 0 {
		w.raw(",")
		w.key("arguments")
		w.raw("[")
		for i, a := range call.Args {
			if i > 0 {
				w.raw(",")
			}
			w.raw("{")
			dumpExpr(w, a)
			w.raw("}")
		}
		w.raw("]")
	}
}

func dumpExpr(w *writer, e ast.Expr) {
	switch n := e.(type) {
	case *ast.TrueExpr:
		w.key("type")
		w.str(ast.TrueExprKind.String())
	case *ast.FalseExpr:
		w.key("type")
		w.str(ast.FalseExprKind.String())
	case *ast.StringExpr:
		w.key("type")
		w.str(ast.StringExprKind.String())
		w.raw(",")
		w.key("str")
		w.str(n.Str)
	case *ast.ResourceExpr:
		w.key("type")
		w.str(ast.ResourceExprKind.String())
		w.raw(",")
		w.key("str")
		w.str(n.Str)
	case *ast.EntityExpr:
		w.key("type")
		w.str(ast.EntityExprKind.String())
		w.raw(",")
		w.key("str")
		w.str(n.Str)
	case *ast.IdentifierExpr:
		w.key("type")
		w.str(ast.IdentifierExprKind.String())
		w.raw(",")
		w.key("str")
		w.str(n.Str)
	case *ast.I32Expr:
		w.key("type")
		w.str(ast.I32ExprKind.String())
		w.raw(",")
		w.key("value")
		w.str(n.Value)
	case *ast.F32Expr:
		w.key("type")
		w.str(ast.F32ExprKind.String())
		w.raw(",")
		w.key("value")
		w.str(n.Value)
	case *ast.UnaryExpr:
		w.key("type")
		w.str(ast.UnaryExprKind.String())
		w.raw(",")
		w.key("operator")
		w.str(n.Operator.String())
		w.raw(",")
		w.key("expr")
		w.raw("{")
		dumpExpr(w, n.Expr)
		w.raw("}")
	case *ast.BinaryExpr:
		w.key("type")
		w.str(ast.BinaryExprKind.String())
		w.raw(",")
		dumpBinaryFields(w, n.Left, n.Operator, n.Right)
	case *ast.LogicalExpr:
		w.key("type")
		w.str(ast.LogicalExprKind.String())
		w.raw(",")
		dumpBinaryFields(w, n.Left, n.Operator, n.Right)
	case *ast.CallExpr:
		w.key("type")
		w.str(ast.CallExprKind.String())
		w.raw(",")
		dumpCallFields(w, n)
	case *ast.ParenthesizedExpr:
		w.key("type")
		w.str(ast.ParenthesizedExprKind.String())
		w.raw(",")
		w.key("expr")
		w.raw("{")
		dumpExpr(w, n.Expr)
		w.raw("}")
	default:
		w.err = fmt.Errorf("dumper: unknown expression node %T", e)
	}
}

func dumpBinaryFields(w *writer, left ast.Expr, op interface{ String() string }, right ast.Expr) {
	w.key("left_expr")
	w.raw("{")
	dumpExpr(w, left)
	w.raw("},")
	w.key("operator")
	w.str(op.String())
	w.raw(",")
	w.key("right_expr")
	w.raw("{")
	dumpExpr(w, right)
	w.raw("}")
}
