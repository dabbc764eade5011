package applier

import (
	"fmt"
	"strings"

	"github.com/MyNameIsTrez/grugast/internal/jsonvalue"
)

func applyExpr(w *writer, node *jsonvalue.Value) error {
	ctx := "expression"
	typ, err := readType(node, ctx)
	if err != nil {
		return err
	}
	spec, ok := exprSchema[typ]
	if !ok {
		return fmt.Errorf("%s: unknown expression type %q", ctx, typ)
	}
	ctx = "expression " + typ
	if err := validateFields(node, spec, ctx); err != nil {
		return err
	}

	switch typ {
	case "TRUE_EXPR":
		w.raw("true")
	case "FALSE_EXPR":
		w.raw("false")
	case "STRING_EXPR":
		w.raw(`"`)
		w.raw(escapeSourceString(node.ObjectGet("str").StringValue()))
		w.raw(`"`)
	case "RESOURCE_EXPR":
		w.raw(`"`)
		w.raw(escapeSourceString(node.ObjectGet("str").StringValue()))
		w.raw(`"`)
	case "ENTITY_EXPR":
		w.raw(`"`)
		w.raw(escapeSourceString(node.ObjectGet("str").StringValue()))
		w.raw(`"`)
	case "IDENTIFIER_EXPR":
		str := node.ObjectGet("str").StringValue()
		if err := requireNonEmpty(str, ctx, "str"); err != nil {
			return err
		}
		w.raw(str)
	case "I32_EXPR", "F32_EXPR":
		value := node.ObjectGet("value").StringValue()
		if err := requireNonEmpty(value, ctx, "value"); err != nil {
			return err
		}
		w.raw(value)
	case "UNARY_EXPR":
		op, err := unarySpelling(node.ObjectGet("operator").StringValue(), ctx)
		if err != nil {
			return err
		}
		w.raw(op)
		if err := applyExpr(w, node.ObjectGet("expr")); err != nil {
			return err
		}
	case "BINARY_EXPR":
		if err := applyExpr(w, node.ObjectGet("left_expr")); err != nil {
			return err
		}
		op, err := binarySpelling(node.ObjectGet("operator").StringValue(), ctx)
		if err != nil {
			return err
		}
		w.raw(" ")
		w.raw(op)
		w.raw(" ")
		if err := applyExpr(w, node.ObjectGet("right_expr")); err != nil {
			return err
		}
	case "LOGICAL_EXPR":
		if err := applyExpr(w, node.ObjectGet("left_expr")); err != nil {
			return err
		}
		op, err := logicalSpelling(node.ObjectGet("operator").StringValue(), ctx)
		if err != nil {
			return err
		}
		w.raw(" ")
		w.raw(op)
		w.raw(" ")
		if err := applyExpr(w, node.ObjectGet("right_expr")); err != nil {
			return err
		}
	case "CALL_EXPR":
		if err := applyCall(w, node, ctx); err != nil {
			return err
		}
	case "PARENTHESIZED_EXPR":
		w.raw("(")
		if err := applyExpr(w, node.ObjectGet("expr")); err != nil {
			return err
		}
		w.raw(")")
	default:
		return fmt.Errorf("%s: unhandled expression type", ctx)
	}
	return nil
}

// applyCall writes `name(arg1, arg2)`; shared by CALL_EXPR and
// CALL_STATEMENT, which have identical "name"/"arguments" fields.
func applyCall(w *writer, node *jsonvalue.Value, ctx string) error {
	name := node.ObjectGet("name").StringValue()
	if err := requireNonEmpty(name, ctx, "name"); err != nil {
		return err
	}
	w.raw(name)
	w.raw("(")
	if args := node.ObjectGet("arguments"); args != nil {
		for i, a := range args.ArrayElements() {
			if i > 0 {
				w.raw(", ")
			}
			if err := applyExpr(w, a); err != nil {
				return err
			}
		}
	}
	w.raw(")")
	return nil
}

// escapeSourceString reverses the lexer's string-literal escape handling
// (internal/lexer.scanString), turning literal control characters back
// into the `\n \t \" \\` source-level escape sequences grug recognizes.
func escapeSourceString(s string) string {
	if !strings.ContainsAny(s, "\"\\\n\t") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
