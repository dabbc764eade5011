package applier

import (
	"fmt"

	"github.com/MyNameIsTrez/grugast/internal/jsonvalue"
)

// applyStatement emits a single statement at the writer's current depth.
// The caller is responsible for the leading indent and trailing newline.
func applyStatement(w *writer, node *jsonvalue.Value) error {
	ctx := "statement"
	typ, err := readType(node, ctx)
	if err != nil {
		return err
	}
	spec, ok := stmtSchema[typ]
	if !ok {
		return fmt.Errorf("%s: unknown statement type %q", ctx, typ)
	}
	ctx = "statement " + typ
	if err := validateFields(node, spec, ctx); err != nil {
		return err
	}

	switch typ {
	case "VARIABLE_STATEMENT":
		name := node.ObjectGet("name").StringValue()
		if err := requireNonEmpty(name, ctx, "name"); err != nil {
			return err
		}
		w.raw(name)
		if vt := node.ObjectGet("variable_type"); vt != nil {
			w.raw(": ")
			w.raw(vt.StringValue())
		}
		w.raw(" = ")
		return applyExpr(w, node.ObjectGet("assignment"))

	case "CALL_STATEMENT":
		return applyCall(w, node, ctx)

	case "IF_STATEMENT":
		return applyIf(w, node, ctx)

	case "RETURN_STATEMENT":
		w.raw("return")
		if v := node.ObjectGet("expr"); v != nil {
			w.raw(" ")
			if err := applyExpr(w, v); err != nil {
				return err
			}
		}
		return nil

	case "WHILE_STATEMENT":
		w.raw("while ")
		if err := applyExpr(w, node.ObjectGet("condition")); err != nil {
			return err
		}
		w.raw(" {\n")
		if err := applyBody(w, node.ObjectGet("statements")); err != nil {
			return err
		}
		w.indent()
		w.raw("}")
		return nil

	case "BREAK_STATEMENT":
		w.raw("break")
		return nil

	case "CONTINUE_STATEMENT":
		w.raw("continue")
		return nil

	case "COMMENT_STATEMENT":
		w.raw("#")
		w.raw(node.ObjectGet("comment").StringValue())
		return nil

	case "EMPTY_LINE_STATEMENT":
		return nil

	default:
		return fmt.Errorf("%s: unhandled statement type", ctx)
	}
}

// applyIf emits `if <cond> {\n<body>}`, then, per spec §4.4's else-if
// reconstruction algorithm, peeks at else_statements: if its sole element
// is itself an IF_STATEMENT, the else is rendered as `} else <nested-if>`
// on one line rather than wrapping it in its own braces.
func applyIf(w *writer, node *jsonvalue.Value, ctx string) error {
	w.raw("if ")
	if err := applyExpr(w, node.ObjectGet("condition")); err != nil {
		return err
	}
	w.raw(" {\n")
	if err := applyBody(w, node.ObjectGet("if_statements")); err != nil {
		return err
	}
	w.indent()
	w.raw("}")

	elseStmts := node.ObjectGet("else_statements")
	if elseStmts == nil {
		return nil
	}
	elems := elseStmts.ArrayElements()
	if len(elems) == 0 {
		return fmt.Errorf("%s: \"else_statements\" must not be an empty array when present", ctx)
	}

	if len(elems) == 1 {
		if nestedType, err := readType(elems[0], ctx+" else_statements[0]"); err == nil && nestedType == "IF_STATEMENT" {
			w.raw(" else ")
			nestedSpec := stmtSchema["IF_STATEMENT"]
			nestedCtx := "statement IF_STATEMENT"
			if err := validateFields(elems[0], nestedSpec, nestedCtx); err != nil {
				return err
			}
			return applyIf(w, elems[0], nestedCtx)
		}
	}

	w.raw(" else {\n")
	w.depth++
	for _, s := range elems {
		w.indent()
		if err := applyStatement(w, s); err != nil {
			w.depth--
			return err
		}
		w.raw("\n")
	}
	w.depth--
	w.indent()
	w.raw("}")
	return nil
}
