package parser_test

import (
	"testing"

	"github.com/MyNameIsTrez/grugast/internal/ast"
	"github.com/MyNameIsTrez/grugast/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	p, err := parser.New(src)
	if err != nil {
		t.Fatalf("parser.New: %v", err)
	}
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	return file
}

func TestParseGlobalVariable(t *testing.T) {
	file := mustParse(t, "x: i32 = 1\n")
	if len(file.Globals) != 1 {
		t.Fatalf("len(Globals) = %d, want 1", len(file.Globals))
	}
	v, ok := file.Globals[0].(*ast.GlobalVariable)
	if !ok {
		t.Fatalf("Globals[0] = %T, want *ast.GlobalVariable", file.Globals[0])
	}
	if v.Name != "x" || v.TypeName != "i32" {
		t.Fatalf("GlobalVariable = %+v", v)
	}
	if _, ok := v.Assignment.(*ast.I32Expr); !ok {
		t.Fatalf("Assignment = %T, want *ast.I32Expr", v.Assignment)
	}
}

func TestParseOnFnHasNoReturnType(t *testing.T) {
	file := mustParse(t, "on_init() {\n}\n")
	fn, ok := file.Globals[0].(*ast.GlobalOnFn)
	if !ok {
		t.Fatalf("Globals[0] = %T, want *ast.GlobalOnFn", file.Globals[0])
	}
	if fn.Name != "on_init" {
		t.Fatalf("Name = %q, want %q", fn.Name, "on_init")
	}
}

func TestParseHelperFnWithReturnTypeAndArgs(t *testing.T) {
	file := mustParse(t, "add(a: i32, b: i32) i32 {\n\treturn a + b\n}\n")
	fn, ok := file.Globals[0].(*ast.GlobalHelperFn)
	if !ok {
		t.Fatalf("Globals[0] = %T, want *ast.GlobalHelperFn", file.Globals[0])
	}
	if fn.ReturnType != "i32" {
		t.Fatalf("ReturnType = %q, want %q", fn.ReturnType, "i32")
	}
	if len(fn.Args) != 2 || fn.Args[0].Name != "a" || fn.Args[1].TypeName != "i32" {
		t.Fatalf("Args = %+v", fn.Args)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1", len(fn.Body))
	}
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ast.ReturnStmt", fn.Body[0])
	}
	if _, ok := ret.Value.(*ast.BinaryExpr); !ok {
		t.Fatalf("ReturnStmt.Value = %T, want *ast.BinaryExpr", ret.Value)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	file := mustParse(t, "x: i32 = 1 + 2 * 3\n")
	v := file.Globals[0].(*ast.GlobalVariable)
	bin, ok := v.Assignment.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("Assignment = %T, want *ast.BinaryExpr", v.Assignment)
	}
	if _, ok := bin.Left.(*ast.I32Expr); !ok {
		t.Fatalf("Left = %T, want *ast.I32Expr (PLUS at the root)", bin.Left)
	}
	right, ok := bin.Right.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("Right = %T, want *ast.BinaryExpr (MULTIPLICATION nested)", bin.Right)
	}
	if right.Operator.String() != "MULTIPLICATION" {
		t.Fatalf("Right.Operator = %s, want MULTIPLICATION", right.Operator)
	}
}

func TestParseElseIfChainNestsAsSingleStatement(t *testing.T) {
	file := mustParse(t, "on_tick() {\n    if a() {\n    } else if b() {\n    } else {\n    }\n}\n")
	fn := file.Globals[0].(*ast.GlobalOnFn)
	outer := fn.Body[0].(*ast.IfStmt)
	if len(outer.ElseBody) != 1 {
		t.Fatalf("len(ElseBody) = %d, want 1 (the nested if)", len(outer.ElseBody))
	}
	nested, ok := outer.ElseBody[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("ElseBody[0] = %T, want *ast.IfStmt", outer.ElseBody[0])
	}
	if len(nested.ElseBody) != 0 {
		t.Fatalf("nested.ElseBody = %+v, want empty (the final bare else)", nested.ElseBody)
	}
}

func TestParseCommentAndBlankLineTrivia(t *testing.T) {
	file := mustParse(t, "# a comment\n\nx: i32 = 1\n")
	if len(file.Globals) != 3 {
		t.Fatalf("len(Globals) = %d, want 3", len(file.Globals))
	}
	if _, ok := file.Globals[0].(*ast.GlobalComment); !ok {
		t.Fatalf("Globals[0] = %T, want *ast.GlobalComment", file.Globals[0])
	}
	if _, ok := file.Globals[1].(*ast.GlobalEmptyLine); !ok {
		t.Fatalf("Globals[1] = %T, want *ast.GlobalEmptyLine", file.Globals[1])
	}
}

func TestParseCallStatementAndExpression(t *testing.T) {
	file := mustParse(t, "on_tick() {\n\tlog(\"hi\", 1)\n}\n")
	fn := file.Globals[0].(*ast.GlobalOnFn)
	call, ok := fn.Body[0].(*ast.CallStmt)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ast.CallStmt", fn.Body[0])
	}
	if call.Call.Name != "log" || len(call.Call.Args) != 2 {
		t.Fatalf("Call = %+v", call.Call)
	}
}

func TestParseUnaryNotAndParenthesized(t *testing.T) {
	file := mustParse(t, "on_tick() {\n\tif not (a() and b()) {\n\t}\n}\n")
	fn := file.Globals[0].(*ast.GlobalOnFn)
	ifStmt := fn.Body[0].(*ast.IfStmt)
	unary, ok := ifStmt.Condition.(*ast.UnaryExpr)
	if !ok {
		t.Fatalf("Condition = %T, want *ast.UnaryExpr", ifStmt.Condition)
	}
	if unary.Operator.String() != "NOT" {
		t.Fatalf("Operator = %s, want NOT", unary.Operator)
	}
	paren, ok := unary.Expr.(*ast.ParenthesizedExpr)
	if !ok {
		t.Fatalf("Expr = %T, want *ast.ParenthesizedExpr", unary.Expr)
	}
	if _, ok := paren.Expr.(*ast.LogicalExpr); !ok {
		t.Fatalf("paren.Expr = %T, want *ast.LogicalExpr", paren.Expr)
	}
}

func TestParseErrorUnclosedBlock(t *testing.T) {
	if _, err := parser.New("on_init() {\n"); err != nil {
		t.Fatalf("parser.New: %v", err)
	}
	p, _ := parser.New("on_init() {\n")
	if _, err := p.ParseFile(); err == nil {
		t.Fatal("ParseFile() on an unclosed block returned nil error")
	}
}

func TestParseErrorMissingColonOrParen(t *testing.T) {
	p, err := parser.New("x 1\n")
	if err != nil {
		t.Fatalf("parser.New: %v", err)
	}
	if _, err := p.ParseFile(); err == nil {
		t.Fatal("ParseFile() on a malformed global returned nil error")
	}
}
