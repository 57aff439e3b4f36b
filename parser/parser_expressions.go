/*
File    : sketch/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
)

// precedence returns the binding strength of a binary operator lexeme:
// comparison/logical group = 0, +/- = 1, */ /% = 2. Higher binds tighter.
func precedence(op string) int {
	switch op {
	case "<", "<=", ">", ">=", "==", "!=", "&&", "||":
		return 0
	case "+", "-":
		return 1
	case "*", "/", "%":
		return 2
	}
	return -1
}

func isBinaryOpKind(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.Lt, lexer.Lte, lexer.Gt, lexer.Gte, lexer.Equiv, lexer.NotEquiv,
		lexer.And, lexer.Or, lexer.Plus, lexer.Minus, lexer.Asterisk, lexer.Slash, lexer.Modulo:
		return true
	}
	return false
}

// parseExpr implements: expr := binary over unary, via a right-recursive
// descent that rotates the tree on the way back up. After parsing
// right = parseExpr(), if right is a Binary(rl, rop, rr) and
// precedence(op) > precedence(rop), the tree is rewritten to
// Binary(Binary(left, op, rl), rop, rr); otherwise left and right are
// combined as-is. This is a literal, single-level (non-recursive) check
// -- exactly the algorithm of the original implementation's parser --
// not a general fixpoint rotation, so equal-precedence chains nest
// right-deep exactly as the original does (see DESIGN.md).
func (p *Parser) parseExpr() ast.Node {
	left := p.parseUnary()
	if !isBinaryOpKind(p.curr.Kind) {
		return left
	}
	opTok := p.curr
	p.advance()
	right := p.parseExpr()

	if rb, ok := right.(*ast.Binary); ok {
		if precedence(opTok.Lexeme) > precedence(rb.Op) {
			return &ast.Binary{
				Left:  &ast.Binary{Left: left, Op: opTok.Lexeme, Right: rb.Left, Position: ast.NewPos(opTok.Line, opTok.Column)},
				Op:    rb.Op,
				Right: rb.Right,
			}
		}
	}
	return &ast.Binary{Left: left, Op: opTok.Lexeme, Right: right, Position: ast.NewPos(opTok.Line, opTok.Column)}
}

// parseUnary implements: unary := '!' unary | call
func (p *Parser) parseUnary() ast.Node {
	if p.curr.Kind == lexer.Not {
		line, col := p.curr.Line, p.curr.Column
		p.advance()
		operand := p.parseUnary()
		return &ast.Unary{Op: "!", Operand: operand, Position: ast.NewPos(line, col)}
	}
	return p.parseCall()
}

// parseCall implements: call := simple ( '(' exprList? ')' | '[' expr ']' | '.' IDENT )*
func (p *Parser) parseCall() ast.Node {
	node := p.parseSimple()
	for {
		switch p.curr.Kind {
		case lexer.LeftParen:
			line, col := p.curr.Line, p.curr.Column
			p.advance()
			args := p.parseExprList(lexer.RightParen)
			if !p.expect(lexer.RightParen) {
				return node
			}
			p.advance()
			node = &ast.Call{Callee: node, Args: args, Position: ast.NewPos(line, col)}
		case lexer.LeftBracket:
			line, col := p.curr.Line, p.curr.Column
			p.advance()
			key := p.parseExpr()
			if !p.expect(lexer.RightBracket) {
				return node
			}
			p.advance()
			node = &ast.Get{Target: node, Key: key, KeyIsExpression: true, Position: ast.NewPos(line, col)}
		case lexer.Period:
			line, col := p.curr.Line, p.curr.Column
			p.advance()
			if !p.expect(lexer.Identifier) {
				return node
			}
			field := p.curr.Lexeme
			p.advance()
			node = &ast.PointGet{Target: node, Field: field, Position: ast.NewPos(line, col)}
		default:
			return node
		}
	}
}

// parseSimple implements:
//
//	simple := LITERAL | IDENT | '[' exprList? ']' | '(' expr ')'
//	        | 'prep' IDENT '(' (IDENT ':' expr (',' IDENT ':' expr)*)? ')'
func (p *Parser) parseSimple() ast.Node {
	line, col := p.curr.Line, p.curr.Column

	switch {
	case p.curr.Kind == lexer.String:
		val := p.curr.Content.(lexer.StringContent).Value
		p.advance()
		return &ast.Literal{Kind: ast.StringContent, Str: val, Position: ast.NewPos(line, col)}
	case p.curr.Kind == lexer.Number:
		val := p.curr.Content.(lexer.NumberContent).Value
		p.advance()
		return &ast.Literal{Kind: ast.NumberContent, Num: val, Position: ast.NewPos(line, col)}
	case p.curr.Kind == lexer.Boolean:
		val := p.curr.Content.(lexer.BooleanContent).Value
		p.advance()
		return &ast.Literal{Kind: ast.BooleanContent, Boolean: val, Position: ast.NewPos(line, col)}
	case p.curr.Kind == lexer.Identifier:
		name := p.curr.Lexeme
		p.advance()
		return &ast.Var{Name: name, Position: ast.NewPos(line, col)}
	case p.curr.Kind == lexer.LeftBracket:
		p.advance()
		items := p.parseExprList(lexer.RightBracket)
		if p.expect(lexer.RightBracket) {
			p.advance()
		}
		return &ast.Array{Items: items, Position: ast.NewPos(line, col)}
	case p.curr.Kind == lexer.LeftParen:
		p.advance()
		inner := p.parseExpr()
		if p.expect(lexer.RightParen) {
			p.advance()
		}
		return inner
	case p.isKeyword("prep"):
		return p.parseInstance()
	default:
		p.errorf("unexpected token %s %q", p.curr.Kind, p.curr.Lexeme)
		p.advance()
		return &ast.None{Position: ast.NewPos(line, col)}
	}
}

// parseInstance implements the 'prep' construction form of simple.
func (p *Parser) parseInstance() ast.Node {
	line, col := p.curr.Line, p.curr.Column
	p.advance() // consume 'prep'
	if !p.expect(lexer.Identifier) {
		return &ast.None{Position: ast.NewPos(line, col)}
	}
	typeName := p.curr.Lexeme
	p.advance()
	if !p.expect(lexer.LeftParen) {
		return &ast.None{Position: ast.NewPos(line, col)}
	}
	p.advance()

	fields := make(map[string]ast.Node)
	var order []string
	for p.curr.Kind != lexer.RightParen && p.curr.Kind != lexer.EOF {
		if !p.expect(lexer.Identifier) {
			break
		}
		name := p.curr.Lexeme
		p.advance()
		if !p.expect(lexer.Colon) {
			break
		}
		p.advance()
		value := p.parseExpr()
		fields[name] = value
		order = append(order, name)
		if p.curr.Kind == lexer.Comma {
			p.advance()
			continue
		}
		break
	}
	if p.expect(lexer.RightParen) {
		p.advance()
	}
	return &ast.Instance{TypeName: typeName, Fields: fields, FieldOrder: order, Position: ast.NewPos(line, col)}
}
