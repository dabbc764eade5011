package ast

import "github.com/MyNameIsTrez/grugast/internal/token"

// GlobalKind is the "type" discriminant of a dumped global object.
type GlobalKind int

const (
	GlobalVariableKind GlobalKind = iota
	GlobalOnFnKind
	GlobalHelperFnKind
	GlobalCommentKind
	GlobalEmptyLineKind
)

var globalKindNames = [...]string{
	GlobalVariableKind:  "GLOBAL_VARIABLE",
	GlobalOnFnKind:      "GLOBAL_ON_FN",
	GlobalHelperFnKind:  "GLOBAL_HELPER_FN",
	GlobalCommentKind:   "GLOBAL_COMMENT",
	GlobalEmptyLineKind: "GLOBAL_EMPTY_LINE",
}

// String returns the canonical JSON "type" value for this global kind.
func (k GlobalKind) String() string {
	if int(k) >= 0 && int(k) < len(globalKindNames) {
		return globalKindNames[k]
	}
	return "UNKNOWN_GLOBAL"
}

// GlobalKindFromString reverses String, for the Applier's schema lookup.
func GlobalKindFromString(s string) (GlobalKind, bool) {
	for i, name := range globalKindNames {
		if name == s {
			return GlobalKind(i), true
		}
	}
	return 0, false
}

// onFnPrefix identifies event handlers: a global function named "on_*" has
// no return type, per spec §4.2 "Global parsing".
const onFnPrefix = "on_"

// IsOnFnName reports whether name denotes an event handler rather than a
// helper function.
func IsOnFnName(name string) bool {
	return len(name) > len(onFnPrefix) && name[:len(onFnPrefix)] == onFnPrefix
}

// GlobalVariable is a top-level variable declaration; TypeName is mandatory
// (spec invariant 5).
type GlobalVariable struct {
	Token      token.Token
	Name       string
	TypeName   string
	Assignment Expr
}

func (g *GlobalVariable) globalNode()         {}
func (g *GlobalVariable) Pos() token.Position { return g.Token.Pos }

// GlobalOnFn is an event handler: no return type.
type GlobalOnFn struct {
	Token token.Token
	Name  string
	Args  []Argument
	Body  []Stmt
}

func (g *GlobalOnFn) globalNode()         {}
func (g *GlobalOnFn) Pos() token.Position { return g.Token.Pos }

// GlobalHelperFn is a user-defined function, optionally returning a value.
type GlobalHelperFn struct {
	Token      token.Token
	Name       string
	Args       []Argument
	ReturnType string // empty means no return type
	Body       []Stmt
}

func (g *GlobalHelperFn) globalNode()         {}
func (g *GlobalHelperFn) Pos() token.Position { return g.Token.Pos }

// GlobalComment preserves a top-level `# ...` comment as trivia.
type GlobalComment struct {
	Token   token.Token
	Comment string
}

func (g *GlobalComment) globalNode()         {}
func (g *GlobalComment) Pos() token.Position { return g.Token.Pos }

// GlobalEmptyLine preserves a top-level blank line as trivia.
type GlobalEmptyLine struct{ Token token.Token }

func (g *GlobalEmptyLine) globalNode()         {}
func (g *GlobalEmptyLine) Pos() token.Position { return g.Token.Pos }
