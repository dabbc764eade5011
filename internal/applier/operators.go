package applier

import "fmt"

// unarySpellings maps the "operator" field of a UNARY_EXPR to its textual
// source form. NOT includes its trailing space (spec §4.4).
var unarySpellings = map[string]string{
	"MINUS": "-",
	"NOT":   "not ",
}

// binarySpellings maps a BINARY_EXPR "operator" field to its infix symbol.
var binarySpellings = map[string]string{
	"PLUS":             "+",
	"MINUS":            "-",
	"MULTIPLICATION":   "*",
	"DIVISION":         "/",
	"REMAINDER":        "%",
	"EQUALS":           "==",
	"NOT_EQUALS":       "!=",
	"GREATER_OR_EQUAL": ">=",
	"GREATER":          ">",
	"LESS_OR_EQUAL":    "<=",
	"LESS":             "<",
}

// logicalSpellings maps a LOGICAL_EXPR "operator" field to its keyword.
var logicalSpellings = map[string]string{
	"AND": "and",
	"OR":  "or",
}

func unarySpelling(op, context string) (string, error) {
	s, ok := unarySpellings[op]
	if !ok {
		return "", fmt.Errorf("%s: unknown unary operator %q", context, op)
	}
	return s, nil
}

func binarySpelling(op, context string) (string, error) {
	s, ok := binarySpellings[op]
	if !ok {
		return "", fmt.Errorf("%s: unknown binary operator %q", context, op)
	}
	return s, nil
}

func logicalSpelling(op, context string) (string, error) {
	s, ok := logicalSpellings[op]
	if !ok {
		return "", fmt.Errorf("%s: unknown logical operator %q", context, op)
	}
	return s, nil
}
