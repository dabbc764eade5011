package applier

import (
	"fmt"

	"github.com/MyNameIsTrez/grugast/internal/jsonvalue"
)

// fieldSpec describes one field of a JSON object schema: its key, whether
// it's required, and the JSON kind it must have when present. Validation
// walks a variant's []fieldSpec in order against the object's own key
// order, so field-order mismatches (spec invariant 3) are caught for free.
type fieldSpec struct {
	Key      string
	Required bool
	Kind     jsonvalue.Kind
}

// Expression variant schemas, keyed by the "type" discriminant, fields
// listed after "type" itself (spec §6.2).
var exprSchema = map[string][]fieldSpec{
	"TRUE_EXPR":  {},
	"FALSE_EXPR": {},
	"STRING_EXPR": {
		{Key: "str", Required: true, Kind: jsonvalue.KindString},
	},
	"RESOURCE_EXPR": {
		{Key: "str", Required: true, Kind: jsonvalue.KindString},
	},
	"ENTITY_EXPR": {
		{Key: "str", Required: true, Kind: jsonvalue.KindString},
	},
	"IDENTIFIER_EXPR": {
		{Key: "str", Required: true, Kind: jsonvalue.KindString},
	},
	"I32_EXPR": {
		{Key: "value", Required: true, Kind: jsonvalue.KindString},
	},
	"F32_EXPR": {
		{Key: "value", Required: true, Kind: jsonvalue.KindString},
	},
	"UNARY_EXPR": {
		{Key: "operator", Required: true, Kind: jsonvalue.KindString},
		{Key: "expr", Required: true, Kind: jsonvalue.KindObject},
	},
	"BINARY_EXPR": {
		{Key: "left_expr", Required: true, Kind: jsonvalue.KindObject},
		{Key: "operator", Required: true, Kind: jsonvalue.KindString},
		{Key: "right_expr", Required: true, Kind: jsonvalue.KindObject},
	},
	"LOGICAL_EXPR": {
		{Key: "left_expr", Required: true, Kind: jsonvalue.KindObject},
		{Key: "operator", Required: true, Kind: jsonvalue.KindString},
		{Key: "right_expr", Required: true, Kind: jsonvalue.KindObject},
	},
	"CALL_EXPR": {
		{Key: "name", Required: true, Kind: jsonvalue.KindString},
		{Key: "arguments", Required: false, Kind: jsonvalue.KindArray},
	},
	"PARENTHESIZED_EXPR": {
		{Key: "expr", Required: true, Kind: jsonvalue.KindObject},
	},
}

// Statement variant schemas.
var stmtSchema = map[string][]fieldSpec{
	"VARIABLE_STATEMENT": {
		{Key: "name", Required: true, Kind: jsonvalue.KindString},
		{Key: "variable_type", Required: false, Kind: jsonvalue.KindString},
		{Key: "assignment", Required: true, Kind: jsonvalue.KindObject},
	},
	"CALL_STATEMENT": {
		{Key: "name", Required: true, Kind: jsonvalue.KindString},
		{Key: "arguments", Required: false, Kind: jsonvalue.KindArray},
	},
	"IF_STATEMENT": {
		{Key: "condition", Required: true, Kind: jsonvalue.KindObject},
		{Key: "if_statements", Required: false, Kind: jsonvalue.KindArray},
		{Key: "else_statements", Required: false, Kind: jsonvalue.KindArray},
	},
	"RETURN_STATEMENT": {
		{Key: "expr", Required: false, Kind: jsonvalue.KindObject},
	},
	"WHILE_STATEMENT": {
		{Key: "condition", Required: true, Kind: jsonvalue.KindObject},
		{Key: "statements", Required: true, Kind: jsonvalue.KindArray},
	},
	"BREAK_STATEMENT":      {},
	"CONTINUE_STATEMENT":   {},
	"EMPTY_LINE_STATEMENT": {},
	"COMMENT_STATEMENT": {
		{Key: "comment", Required: true, Kind: jsonvalue.KindString},
	},
}

// Global variant schemas.
var globalSchema = map[string][]fieldSpec{
	"GLOBAL_VARIABLE": {
		{Key: "name", Required: true, Kind: jsonvalue.KindString},
		{Key: "variable_type", Required: true, Kind: jsonvalue.KindString},
		{Key: "assignment", Required: true, Kind: jsonvalue.KindObject},
	},
	"GLOBAL_ON_FN": {
		{Key: "name", Required: true, Kind: jsonvalue.KindString},
		{Key: "arguments", Required: false, Kind: jsonvalue.KindArray},
		{Key: "statements", Required: false, Kind: jsonvalue.KindArray},
	},
	"GLOBAL_HELPER_FN": {
		{Key: "name", Required: true, Kind: jsonvalue.KindString},
		{Key: "arguments", Required: false, Kind: jsonvalue.KindArray},
		{Key: "return_type", Required: false, Kind: jsonvalue.KindString},
		{Key: "statements", Required: false, Kind: jsonvalue.KindArray},
	},
	"GLOBAL_COMMENT": {
		{Key: "comment", Required: true, Kind: jsonvalue.KindString},
	},
	"GLOBAL_EMPTY_LINE": {},
}

// argumentSchema validates a single {"name", "type"} pair.
var argumentSchema = []fieldSpec{
	{Key: "name", Required: true, Kind: jsonvalue.KindString},
	{Key: "type", Required: true, Kind: jsonvalue.KindString},
}

// readType extracts and validates the mandatory, first, string-typed "type"
// discriminant field of an object (spec §6.2: "type" always leads).
func readType(node *jsonvalue.Value, context string) (string, error) {
	if node == nil || node.Kind() != jsonvalue.KindObject {
		return "", fmt.Errorf("%s: expected a JSON object", context)
	}
	keys := node.ObjectKeys()
	if len(keys) == 0 || keys[0] != "type" {
		return "", fmt.Errorf("%s: expected \"type\" as the first field", context)
	}
	typeVal := node.ObjectGet("type")
	if typeVal.Kind() != jsonvalue.KindString {
		return "", fmt.Errorf("%s: \"type\" must be a string", context)
	}
	return typeVal.StringValue(), nil
}

// validateFields walks spec against node's keys (after "type"), in order,
// enforcing presence, absence, kind, and rejecting any leftover or
// out-of-order field.
func validateFields(node *jsonvalue.Value, spec []fieldSpec, context string) error {
	keys := node.ObjectKeys()
	idx := 1 // keys[0] is "type", already consumed by readType

	for _, fs := range spec {
		if idx < len(keys) && keys[idx] == fs.Key {
			child := node.ObjectGet(fs.Key)
			if child.Kind() != fs.Kind {
				return fmt.Errorf("%s: field %q must be a %s, got %s", context, fs.Key, fs.Kind, child.Kind())
			}
			idx++
			continue
		}
		if fs.Required {
			return fmt.Errorf("%s: missing required field %q", context, fs.Key)
		}
	}

	if idx != len(keys) {
		return fmt.Errorf("%s: unexpected field %q", context, keys[idx])
	}
	return nil
}

// validateExactFields checks an object with no "type" discriminant (the
// Argument shape, spec §6.2) against spec: every listed field must appear,
// in order, with no extras.
func validateExactFields(node *jsonvalue.Value, spec []fieldSpec, context string) error {
	if node == nil || node.Kind() != jsonvalue.KindObject {
		return fmt.Errorf("%s: expected a JSON object", context)
	}
	keys := node.ObjectKeys()
	if len(keys) != len(spec) {
		return fmt.Errorf("%s: expected exactly %d fields, got %d", context, len(spec), len(keys))
	}
	for i, fs := range spec {
		if keys[i] != fs.Key {
			return fmt.Errorf("%s: expected field %q at position %d, got %q", context, fs.Key, i, keys[i])
		}
		child := node.ObjectGet(fs.Key)
		if child.Kind() != fs.Kind {
			return fmt.Errorf("%s: field %q must be a %s, got %s", context, fs.Key, fs.Kind, child.Kind())
		}
	}
	return nil
}

func requireNonEmpty(s, context, field string) error {
	if s == "" {
		return fmt.Errorf("%s: field %q must not be empty", context, field)
	}
	return nil
}
