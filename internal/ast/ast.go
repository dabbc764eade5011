// Package ast defines the grug abstract syntax tree.
//
// The AST is a closed sum of products (spec §3): every node kind is a
// concrete struct carrying exactly the fields its JSON schema names, behind
// a small marker-interface hierarchy mirroring the teacher's
// Expression/Statement node interfaces. Nodes are immutable once built by
// the parser; the Dumper and Applier only ever read them.
package ast

import "github.com/MyNameIsTrez/grugast/internal/token"

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node (local, inside a body).
type Stmt interface {
	Node
	stmtNode()
}

// Global is implemented by every top-level declaration.
type Global interface {
	Node
	globalNode()
}

// Argument is a single named, typed function parameter.
type Argument struct {
	Name     string
	TypeName string
}

// File is the root of a dumped/applied source file: an ordered list of
// global statements, in source order.
type File struct {
	Globals []Global
}
