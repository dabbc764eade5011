// Package applier reconstructs grug source text from a generic, schema-less
// JSON node tree (internal/jsonvalue). Unlike the dumper, which walks a
// strongly-typed AST, the applier must validate the shape of every node as
// it emits source for it — schema validation and emission happen in one
// pass, driven by the per-variant field tables in schema.go (spec §9:
// "a per-variant schema table... shrinks the applier substantially").
package applier

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MyNameIsTrez/grugast/internal/jsonvalue"
)

// Options configures indentation. Defaults match spec §6.3 (four spaces).
type Options struct {
	IndentWidth int
	UseTabs     bool
}

// DefaultOptions returns the spec-mandated four-space indentation.
func DefaultOptions() Options {
	return Options{IndentWidth: 4, UseTabs: false}
}

type writer struct {
	w     *bufio.Writer
	err   error
	depth int
	unit  string // one indentation level's worth of whitespace
}

func newWriter(w io.Writer, opts Options) *writer {
	unit := strings.Repeat(" ", opts.IndentWidth)
	if opts.UseTabs {
		unit = "\t"
	}
	return &writer{w: bufio.NewWriter(w), unit: unit}
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = err
	}
}

func (w *writer) indent() { w.raw(strings.Repeat(w.unit, w.depth)) }

// ApplyFile validates root (expected to be a top-level array of globals,
// spec §6.2 "File JSON") and writes the reconstructed source to w.
func ApplyFile(w io.Writer, root *jsonvalue.Value, opts Options) error {
	if root == nil || root.Kind() != jsonvalue.KindArray {
		return fmt.Errorf("top-level JSON document must be an array of globals")
	}

	aw := newWriter(w, opts)
	globals := root.ArrayElements()
	for _, g := range globals {
		if err := applyGlobal(aw, g); err != nil {
			return err
		}
	}

	if aw.err != nil {
		return aw.err
	}
	return aw.w.Flush()
}

func applyGlobal(w *writer, node *jsonvalue.Value) error {
	ctx := "global"
	typ, err := readType(node, ctx)
	if err != nil {
		return err
	}
	spec, ok := globalSchema[typ]
	if !ok {
		return fmt.Errorf("%s: unknown global type %q", ctx, typ)
	}
	ctx = "global " + typ
	if err := validateFields(node, spec, ctx); err != nil {
		return err
	}

	switch typ {
	case "GLOBAL_VARIABLE":
		name := node.ObjectGet("name").StringValue()
		if err := requireNonEmpty(name, ctx, "name"); err != nil {
			return err
		}
		typeName := node.ObjectGet("variable_type").StringValue()
		if err := requireNonEmpty(typeName, ctx, "variable_type"); err != nil {
			return err
		}
		w.raw(name)
		w.raw(": ")
		w.raw(typeName)
		w.raw(" = ")
		if err := applyExpr(w, node.ObjectGet("assignment")); err != nil {
			return err
		}
		w.raw("\n")
		return nil

	case "GLOBAL_ON_FN":
		name := node.ObjectGet("name").StringValue()
		if err := requireNonEmpty(name, ctx, "name"); err != nil {
			return err
		}
		w.raw(name)
		if err := applyArguments(w, node.ObjectGet("arguments"), ctx); err != nil {
			return err
		}
		w.raw(" {\n")
		if err := applyBody(w, node.ObjectGet("statements")); err != nil {
			return err
		}
		w.raw("}\n")
		return nil

	case "GLOBAL_HELPER_FN":
		name := node.ObjectGet("name").StringValue()
		if err := requireNonEmpty(name, ctx, "name"); err != nil {
			return err
		}
		w.raw(name)
		if err := applyArguments(w, node.ObjectGet("arguments"), ctx); err != nil {
			return err
		}
		if rt := node.ObjectGet("return_type"); rt != nil {
			w.raw(" ")
			w.raw(rt.StringValue())
		}
		w.raw(" {\n")
		if err := applyBody(w, node.ObjectGet("statements")); err != nil {
			return err
		}
		w.raw("}\n")
		return nil

	case "GLOBAL_COMMENT":
		w.raw("#")
		w.raw(node.ObjectGet("comment").StringValue())
		w.raw("\n")
		return nil

	case "GLOBAL_EMPTY_LINE":
		w.raw("\n")
		return nil

	default:
		return fmt.Errorf("%s: unhandled global type", ctx)
	}
}

// applyArguments writes `(arg1: type1, arg2: type2)`. A missing/absent
// arguments array is treated as an empty parameter list.
func applyArguments(w *writer, args *jsonvalue.Value, ctx string) error {
	w.raw("(")
	if args != nil {
		for i, a := range args.ArrayElements() {
			if i > 0 {
				w.raw(", ")
			}
			if err := validateExactFields(a, argumentSchema, ctx+" argument"); err != nil {
				return err
			}
			name := a.ObjectGet("name").StringValue()
			typeName := a.ObjectGet("type").StringValue()
			if err := requireNonEmpty(name, ctx+" argument", "name"); err != nil {
				return err
			}
			if err := requireNonEmpty(typeName, ctx+" argument", "type"); err != nil {
				return err
			}
			w.raw(name)
			w.raw(": ")
			w.raw(typeName)
		}
	}
	w.raw(")")
	return nil
}

// applyBody writes an indented statement list; a nil/absent statements
// array produces an empty body (spec: "Empty body still emits `{` on one
// line and `}` on the next").
func applyBody(w *writer, stmts *jsonvalue.Value) error {
	w.depth++
	defer func() { w.depth-- }()

	if stmts == nil {
		return nil
	}
	for _, s := range stmts.ArrayElements() {
		w.indent()
		if err := applyStatement(w, s); err != nil {
			return err
		}
		w.raw("\n")
	}
	return nil
}
