package parser

import (
	"github.com/MyNameIsTrez/grugast/internal/ast"
	"github.com/MyNameIsTrez/grugast/internal/token"
)

// parseExpression implements precedence climbing over the grammar in
// spec §4.2: logical_or -> logical_and -> equality -> comparison ->
// additive -> multiplicative -> unary -> primary.
func (p *Parser) parseExpression(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		opTok := p.cur()
		prec, ok := precedences[opTok.Type]
		if !ok || prec < minPrec {
			return left, nil
		}
		p.advance()

		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}

		switch opTok.Type {
		case token.AND, token.OR:
			left = &ast.LogicalExpr{Token: opTok, Left: left, Operator: opTok.Type, Right: right}
		default:
			left = &ast.BinaryExpr{Token: opTok, Left: left, Operator: opTok.Type, Right: right}
		}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.cur().Type {
	case token.MINUS, token.NOT:
		tok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Token: tok, Operator: tok.Type, Expr: operand}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case token.TRUE:
		p.advance()
		return &ast.TrueExpr{Token: tok}, nil
	case token.FALSE:
		p.advance()
		return &ast.FalseExpr{Token: tok}, nil
	case token.STRING:
		p.advance()
		return &ast.StringExpr{Token: tok, Str: tok.Literal}, nil
	case token.I32:
		p.advance()
		return &ast.I32Expr{Token: tok, Value: tok.Literal}, nil
	case token.F32:
		p.advance()
		return &ast.F32Expr{Token: tok, Value: tok.Literal}, nil
	case token.IDENTIFIER:
		if p.peek().Type == token.LPAREN {
			return p.parseCallExpression(tok)
		}
		p.advance()
		return &ast.IdentifierExpr{Token: tok, Str: tok.Literal}, nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ParenthesizedExpr{Token: tok, Expr: inner}, nil
	default:
		return nil, p.errorf("unexpected token %s %q in expression", tok.Type, tok.Literal)
	}
}

func (p *Parser) parseCallExpression(nameTok token.Token) (*ast.CallExpr, error) {
	if _, err := p.expect(token.IDENTIFIER); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var args []ast.Expr
	for p.cur().Type != token.RPAREN {
		if len(args) > 0 {
			if _, err := p.expect(token.COMMA); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	return &ast.CallExpr{Token: nameTok, Name: nameTok.Literal, Args: args}, nil
}
