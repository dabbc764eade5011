package ast

import "github.com/MyNameIsTrez/grugast/internal/token"

// ExprKind is the "type" discriminant of a dumped expression object.
type ExprKind int

const (
	TrueExprKind ExprKind = iota
	FalseExprKind
	StringExprKind
	ResourceExprKind
	EntityExprKind
	IdentifierExprKind
	I32ExprKind
	F32ExprKind
	UnaryExprKind
	BinaryExprKind
	LogicalExprKind
	CallExprKind
	ParenthesizedExprKind
)

var exprKindNames = [...]string{
	TrueExprKind:          "TRUE_EXPR",
	FalseExprKind:         "FALSE_EXPR",
	StringExprKind:        "STRING_EXPR",
	ResourceExprKind:      "RESOURCE_EXPR",
	EntityExprKind:        "ENTITY_EXPR",
	IdentifierExprKind:    "IDENTIFIER_EXPR",
	I32ExprKind:           "I32_EXPR",
	F32ExprKind:           "F32_EXPR",
	UnaryExprKind:         "UNARY_EXPR",
	BinaryExprKind:        "BINARY_EXPR",
	LogicalExprKind:       "LOGICAL_EXPR",
	CallExprKind:          "CALL_EXPR",
	ParenthesizedExprKind: "PARENTHESIZED_EXPR",
}

// String returns the canonical JSON "type" value for this expression kind.
func (k ExprKind) String() string {
	if int(k) >= 0 && int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "UNKNOWN_EXPR"
}

// ExprKindFromString reverses String, for the Applier's schema lookup.
func ExprKindFromString(s string) (ExprKind, bool) {
	for i, name := range exprKindNames {
		if name == s {
			return ExprKind(i), true
		}
	}
	return 0, false
}

// TrueExpr is the literal `true`.
type TrueExpr struct{ Token token.Token }

func (e *TrueExpr) exprNode()          {}
func (e *TrueExpr) Pos() token.Position { return e.Token.Pos }

// FalseExpr is the literal `false`.
type FalseExpr struct{ Token token.Token }

func (e *FalseExpr) exprNode()          {}
func (e *FalseExpr) Pos() token.Position { return e.Token.Pos }

// StringExpr is a `"..."` string literal.
type StringExpr struct {
	Token token.Token
	Str   string
}

func (e *StringExpr) exprNode()          {}
func (e *StringExpr) Pos() token.Position { return e.Token.Pos }

// ResourceExpr names a resource literal (spec §9: dump/apply now symmetric).
type ResourceExpr struct {
	Token token.Token
	Str   string
}

func (e *ResourceExpr) exprNode()          {}
func (e *ResourceExpr) Pos() token.Position { return e.Token.Pos }

// EntityExpr names an entity literal (spec §9: dump/apply now symmetric).
type EntityExpr struct {
	Token token.Token
	Str   string
}

func (e *EntityExpr) exprNode()          {}
func (e *EntityExpr) Pos() token.Position { return e.Token.Pos }

// IdentifierExpr references a variable, parameter, or global by name.
type IdentifierExpr struct {
	Token token.Token
	Str   string
}

func (e *IdentifierExpr) exprNode()          {}
func (e *IdentifierExpr) Pos() token.Position { return e.Token.Pos }

// I32Expr is a 32-bit signed integer literal, stored as its lexed string
// form (spec invariant 4: never numerically reparsed).
type I32Expr struct {
	Token token.Token
	Value string
}

func (e *I32Expr) exprNode()          {}
func (e *I32Expr) Pos() token.Position { return e.Token.Pos }

// F32Expr is a 32-bit float literal, stored verbatim as lexed.
type F32Expr struct {
	Token token.Token
	Value string
}

func (e *F32Expr) exprNode()          {}
func (e *F32Expr) Pos() token.Position { return e.Token.Pos }

// UnaryExpr is a prefix unary operation: -expr or not expr.
type UnaryExpr struct {
	Token    token.Token
	Operator token.Type // MINUS or NOT
	Expr     Expr
}

func (e *UnaryExpr) exprNode()          {}
func (e *UnaryExpr) Pos() token.Position { return e.Token.Pos }

// BinaryExpr is an arithmetic or comparison binary operation.
type BinaryExpr struct {
	Token    token.Token
	Left     Expr
	Operator token.Type
	Right    Expr
}

func (e *BinaryExpr) exprNode()          {}
func (e *BinaryExpr) Pos() token.Position { return e.Token.Pos }

// LogicalExpr is `and`/`or`.
type LogicalExpr struct {
	Token    token.Token
	Left     Expr
	Operator token.Type // AND or OR
	Right    Expr
}

func (e *LogicalExpr) exprNode()          {}
func (e *LogicalExpr) Pos() token.Position { return e.Token.Pos }

// CallExpr is a function call: name(args...).
type CallExpr struct {
	Token token.Token
	Name  string
	Args  []Expr
}

func (e *CallExpr) exprNode()          {}
func (e *CallExpr) Pos() token.Position { return e.Token.Pos }

// ParenthesizedExpr wraps an expression in `( )` to preserve round-tripping.
type ParenthesizedExpr struct {
	Token token.Token
	Expr  Expr
}

func (e *ParenthesizedExpr) exprNode()          {}
func (e *ParenthesizedExpr) Pos() token.Position { return e.Token.Pos }
