package parser

import (
	"github.com/MyNameIsTrez/grugast/internal/ast"
	"github.com/MyNameIsTrez/grugast/internal/token"
)

// parseStatement parses one statement (including trivia) inside a body, and
// consumes its terminating newline where one is expected.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur().Type {
	case token.COMMENT:
		tok := p.advance()
		return &ast.CommentStmt{Token: tok, Comment: tok.Literal}, nil
	case token.BLANK_LINE:
		tok := p.advance()
		return &ast.EmptyLineStmt{Token: tok}, nil
	case token.IF:
		stmt, err := p.parseIfStatement()
		if err != nil {
			return nil, err
		}
		if err := p.expectStatementEnd(); err != nil {
			return nil, err
		}
		return stmt, nil
	case token.WHILE:
		stmt, err := p.parseWhileStatement()
		if err != nil {
			return nil, err
		}
		if err := p.expectStatementEnd(); err != nil {
			return nil, err
		}
		return stmt, nil
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		tok := p.advance()
		if err := p.expectStatementEnd(); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{Token: tok}, nil
	case token.CONTINUE:
		tok := p.advance()
		if err := p.expectStatementEnd(); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{Token: tok}, nil
	case token.IDENTIFIER:
		return p.parseIdentifierStatement()
	default:
		return nil, p.errorf("unexpected token %s %q at start of statement", p.cur().Type, p.cur().Literal)
	}
}

// parseIdentifierStatement disambiguates a variable declaration/assignment
// from a bare call statement, both of which start with an identifier.
func (p *Parser) parseIdentifierStatement() (ast.Stmt, error) {
	nameTok := p.cur()

	if p.peek().Type == token.LPAREN {
		call, err := p.parseCallExpression(nameTok)
		if err != nil {
			return nil, err
		}
		if err := p.expectStatementEnd(); err != nil {
			return nil, err
		}
		return &ast.CallStmt{Token: nameTok, Call: call}, nil
	}

	p.advance() // consume identifier

	var typeName string
	if p.cur().Type == token.COLON {
		p.advance()
		typeTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		typeName = typeTok.Literal
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

	return &ast.VariableStmt{Token: nameTok, Name: nameTok.Literal, TypeName: typeName, Assignment: value}, nil
}

func (p *Parser) parseIfStatement() (*ast.IfStmt, error) {
	tok, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	ifBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Token: tok, Condition: cond, IfBody: ifBody}

	if p.cur().Type != token.ELSE {
		return stmt, nil
	}
	p.advance() // consume 'else'

	if p.cur().Type == token.IF {
		nested, err := p.parseIfStatement()
		if err != nil {
			return nil, err
		}
		stmt.ElseBody = []ast.Stmt{nested}
		return stmt, nil
	}

	elseBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt.ElseBody = elseBody
	return stmt, nil
}

func (p *Parser) parseWhileStatement() (*ast.WhileStmt, error) {
	tok, err := p.expect(token.WHILE)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Token: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseReturnStatement() (ast.Stmt, error) {
	tok, err := p.expect(token.RETURN)
	if err != nil {
		return nil, err
	}
	stmt := &ast.ReturnStmt{Token: tok}
	if p.cur().Type != token.NEWLINE && p.cur().Type != token.EOF && p.cur().Type != token.RBRACE {
		value, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}
	if err := p.expectStatementEnd(); err != nil {
		return nil, err
	}
	return stmt, nil
}
