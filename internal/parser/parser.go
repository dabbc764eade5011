// Package parser implements a hand-written recursive-descent parser that
// turns a grug token stream into the AST defined in internal/ast.
//
// The token stream is fully buffered up front (grug source files are small
// scripts, not compilation units), then walked with a simple index cursor —
// this is the teacher's precedence-climbing approach generalized to a much
// smaller grammar and a much smaller token window.
package parser

import (
	"fmt"

	"github.com/MyNameIsTrez/grugast/internal/ast"
	"github.com/MyNameIsTrez/grugast/internal/lexer"
	"github.com/MyNameIsTrez/grugast/internal/token"
)

// Error is a syntax error with its source position.
type Error struct {
	Message string
	Pos     token.Position
}

func (e Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Precedence levels, lowest to highest, matching spec §4.2's grammar.
const (
	_ int = iota
	lowest
	orPrec
	andPrec
	equalityPrec
	comparisonPrec
	additivePrec
	multiplicativePrec
	unaryPrec
)

var precedences = map[token.Type]int{
	token.OR:               orPrec,
	token.AND:              andPrec,
	token.EQUALS:           equalityPrec,
	token.NOT_EQUALS:       equalityPrec,
	token.LESS:             comparisonPrec,
	token.LESS_OR_EQUAL:    comparisonPrec,
	token.GREATER:          comparisonPrec,
	token.GREATER_OR_EQUAL: comparisonPrec,
	token.PLUS:             additivePrec,
	token.MINUS:            additivePrec,
	token.MULTIPLICATION:   multiplicativePrec,
	token.DIVISION:         multiplicativePrec,
	token.REMAINDER:        multiplicativePrec,
}

// Parser turns a token stream into an *ast.File.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New tokenizes src in full and returns a ready-to-use Parser, or the first
// lexical error encountered (spec §7: abort on first error).
func New(src string) (*Parser, error) {
	l := lexer.New(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return &Parser{tokens: toks}, nil
}

func (p *Parser) cur() token.Token  { return p.tokens[p.pos] }
func (p *Parser) peek() token.Token { return p.peekN(1) }

func (p *Parser) peekN(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) errorf(format string, args ...any) error {
	return Error{Message: fmt.Sprintf(format, args...), Pos: p.cur().Pos}
}

func (p *Parser) expect(tt token.Type) (token.Token, error) {
	if p.cur().Type != tt {
		return token.Token{}, p.errorf("expected %s, got %s %q", tt, p.cur().Type, p.cur().Literal)
	}
	return p.advance(), nil
}

// ParseFile parses an entire source file into its list of global statements.
func (p *Parser) ParseFile() (*ast.File, error) {
	file := &ast.File{}
	for p.cur().Type != token.EOF {
		g, err := p.parseGlobal()
		if err != nil {
			return nil, err
		}
		file.Globals = append(file.Globals, g)
	}
	return file, nil
}

func (p *Parser) parseGlobal() (ast.Global, error) {
	switch p.cur().Type {
	case token.COMMENT:
		tok := p.advance()
		return &ast.GlobalComment{Token: tok, Comment: tok.Literal}, nil
	case token.BLANK_LINE:
		tok := p.advance()
		return &ast.GlobalEmptyLine{Token: tok}, nil
	case token.IDENTIFIER:
		switch p.peek().Type {
		case token.COLON:
			return p.parseGlobalVariable()
		case token.LPAREN:
			return p.parseGlobalFunction()
		default:
			return nil, p.errorf("expected ':' or '(' after identifier %q, got %s", p.cur().Literal, p.peek().Type)
		}
	default:
		return nil, p.errorf("expected a global declaration, comment, or blank line, got %s", p.cur().Type)
	}
}

func (p *Parser) parseGlobalVariable() (ast.Global, error) {
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typeTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectStatementEnd(); err != nil {
		return nil, err
	}
	return &ast.GlobalVariable{Token: nameTok, Name: nameTok.Literal, TypeName: typeTok.Literal, Assignment: value}, nil
}

func (p *Parser) parseGlobalFunction() (ast.Global, error) {
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}

	isOnFn := ast.IsOnFnName(nameTok.Literal)

	var returnType string
	if !isOnFn && p.cur().Type == token.IDENTIFIER {
		returnType = p.advance().Literal
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expectStatementEnd(); err != nil {
		return nil, err
	}

	if isOnFn {
		return &ast.GlobalOnFn{Token: nameTok, Name: nameTok.Literal, Args: args, Body: body}, nil
	}
	return &ast.GlobalHelperFn{Token: nameTok, Name: nameTok.Literal, Args: args, ReturnType: returnType, Body: body}, nil
}

func (p *Parser) parseArgumentList() ([]ast.Argument, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Argument
	for p.cur().Type != token.RPAREN {
		if len(args) > 0 {
			if _, err := p.expect(token.COMMA); err != nil {
				return nil, err
			}
		}
		nameTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		typeTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		args = append(args, ast.Argument{Name: nameTok.Literal, TypeName: typeTok.Literal})
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// expectStatementEnd consumes the NEWLINE that terminates a statement. EOF
// and a closing brace are also accepted so the last statement in a file or
// block need not be followed by a trailing newline.
func (p *Parser) expectStatementEnd() error {
	switch p.cur().Type {
	case token.NEWLINE:
		p.advance()
		return nil
	case token.EOF, token.RBRACE:
		return nil
	default:
		return p.errorf("expected end of statement, got %s %q", p.cur().Type, p.cur().Literal)
	}
}

// parseBlock parses a `{` statement* `}` body, where statement* may include
// interleaved COMMENT/BLANK_LINE trivia statements.
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	if p.cur().Type == token.NEWLINE {
		p.advance()
	}

	var body []ast.Stmt
	for p.cur().Type != token.RBRACE {
		if p.cur().Type == token.EOF {
			return nil, p.errorf("unexpected end of file, expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	p.advance() // consume '}'
	return body, nil
}
