package ast

import "github.com/MyNameIsTrez/grugast/internal/token"

// StmtKind is the "type" discriminant of a dumped statement object.
type StmtKind int

const (
	VariableStmtKind StmtKind = iota
	CallStmtKind
	IfStmtKind
	ReturnStmtKind
	WhileStmtKind
	BreakStmtKind
	ContinueStmtKind
	CommentStmtKind
	EmptyLineStmtKind
)

var stmtKindNames = [...]string{
	VariableStmtKind:  "VARIABLE_STATEMENT",
	CallStmtKind:      "CALL_STATEMENT",
	IfStmtKind:        "IF_STATEMENT",
	ReturnStmtKind:    "RETURN_STATEMENT",
	WhileStmtKind:     "WHILE_STATEMENT",
	BreakStmtKind:     "BREAK_STATEMENT",
	ContinueStmtKind:  "CONTINUE_STATEMENT",
	CommentStmtKind:   "COMMENT_STATEMENT",
	EmptyLineStmtKind: "EMPTY_LINE_STATEMENT",
}

// String returns the canonical JSON "type" value for this statement kind.
func (k StmtKind) String() string {
	if int(k) >= 0 && int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "UNKNOWN_STATEMENT"
}

// StmtKindFromString reverses String, for the Applier's schema lookup.
func StmtKindFromString(s string) (StmtKind, bool) {
	for i, name := range stmtKindNames {
		if name == s {
			return StmtKind(i), true
		}
	}
	return 0, false
}

// VariableStmt is a local declaration (TypeName != "") or reassignment
// (TypeName == "") of a variable (spec invariant 5).
type VariableStmt struct {
	Token      token.Token
	Name       string
	TypeName   string // empty means assignment, not declaration
	Assignment Expr
}

func (s *VariableStmt) stmtNode()          {}
func (s *VariableStmt) Pos() token.Position { return s.Token.Pos }

// CallStmt is a function call used as a statement.
type CallStmt struct {
	Token token.Token
	Call  *CallExpr
}

func (s *CallStmt) stmtNode()          {}
func (s *CallStmt) Pos() token.Position { return s.Token.Pos }

// IfStmt is a conditional. ElseBody, when it contains exactly one IfStmt as
// its sole element, is an `else if` chain link (spec invariant 2).
type IfStmt struct {
	Token     token.Token
	Condition Expr
	IfBody    []Stmt
	ElseBody  []Stmt
}

func (s *IfStmt) stmtNode()          {}
func (s *IfStmt) Pos() token.Position { return s.Token.Pos }

// IsElseIf reports whether ElseBody encodes an `else if` (spec invariant 2).
func (s *IfStmt) IsElseIf() bool {
	if len(s.ElseBody) != 1 {
		return false
	}
	_, ok := s.ElseBody[0].(*IfStmt)
	return ok
}

// ReturnStmt returns from a function, optionally with a value.
type ReturnStmt struct {
	Token token.Token
	Value Expr // nil when no value
}

func (s *ReturnStmt) stmtNode()          {}
func (s *ReturnStmt) Pos() token.Position { return s.Token.Pos }

// WhileStmt is a condition-first loop.
type WhileStmt struct {
	Token     token.Token
	Condition Expr
	Body      []Stmt
}

func (s *WhileStmt) stmtNode()          {}
func (s *WhileStmt) Pos() token.Position { return s.Token.Pos }

// BreakStmt exits the innermost loop.
type BreakStmt struct{ Token token.Token }

func (s *BreakStmt) stmtNode()          {}
func (s *BreakStmt) Pos() token.Position { return s.Token.Pos }

// ContinueStmt skips to the next loop iteration.
type ContinueStmt struct{ Token token.Token }

func (s *ContinueStmt) stmtNode()          {}
func (s *ContinueStmt) Pos() token.Position { return s.Token.Pos }

// CommentStmt preserves a `# ...` comment as trivia, text without the `#`.
type CommentStmt struct {
	Token   token.Token
	Comment string
}

func (s *CommentStmt) stmtNode()          {}
func (s *CommentStmt) Pos() token.Position { return s.Token.Pos }

// EmptyLineStmt preserves a blank line as trivia.
type EmptyLineStmt struct{ Token token.Token }

func (s *EmptyLineStmt) stmtNode()          {}
func (s *EmptyLineStmt) Pos() token.Position { return s.Token.Pos }
