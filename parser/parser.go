/*
File    : sketch/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for sketch source,
// built on the teacher's two-token-lookahead shape (CurrToken/NextToken,
// advance()) rather than a classic Pratt binding-power table: expr's
// left-associativity is achieved by a right-recursive descent that
// rotates the parse tree on the way back up (see parseExpr), the exact
// technique of the original implementation's parser (original_source/
// src/parser.rs `expr`), ported literally rather than "improved" to
// binding powers.
//
// Errors accumulate in Errors instead of panicking, matching the
// teacher's addError/HasErrors/GetErrors pattern.
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/sketcherr"
)

// Parser holds the lexer, its two-token lookahead window, and collected
// parse errors.
type Parser struct {
	lex  *lexer.Lexer
	curr lexer.Token
	next lexer.Token

	lexErr error
	Errors []error
}

// New creates a Parser over src and primes the lookahead window.
func New(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.advance()
	p.advance()
	return p
}

// HasErrors reports whether any parse (or lex) errors were collected.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// advance shifts the lookahead window forward by one token, recording a
// lex error (once) if the underlying lexer fails and treating every
// subsequent token as EOF so parsing winds down instead of looping.
func (p *Parser) advance() {
	p.curr = p.next
	if p.lexErr != nil {
		p.next = lexer.New(lexer.EOF, "", p.curr.Line, p.curr.Column)
		return
	}
	tok, err := p.lex.NextToken()
	if err != nil {
		p.lexErr = err
		p.Errors = append(p.Errors, err)
		p.next = lexer.New(lexer.EOF, "", p.curr.Line, p.curr.Column)
		return
	}
	p.next = tok
}

// errorf records a ParseError anchored at the current token.
func (p *Parser) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.Errors = append(p.Errors, sketcherr.NewParse(p.curr.Line, p.curr.Column, p.curr.Lexeme, "%s", msg))
}

// expect reports (without consuming) whether curr matches kind, recording
// an error if not.
func (p *Parser) expect(kind lexer.TokenKind) bool {
	if p.curr.Kind != kind {
		p.errorf("expected %s, got %s %q", kind, p.curr.Kind, p.curr.Lexeme)
		return false
	}
	return true
}

// expectKeyword reports whether curr is the Keyword token with this exact
// lexeme, recording an error if not.
func (p *Parser) expectKeyword(word string) bool {
	if p.curr.Kind != lexer.Keyword || p.curr.Lexeme != word {
		p.errorf("expected keyword %q, got %s %q", word, p.curr.Kind, p.curr.Lexeme)
		return false
	}
	return true
}

func (p *Parser) isKeyword(word string) bool {
	return p.curr.Kind == lexer.Keyword && p.curr.Lexeme == word
}

// Parse consumes the entire token stream, returning every top-level
// statement, or the parser's accumulated errors.
func (p *Parser) Parse() ([]ast.Node, []error) {
	var stmts []ast.Node
	for p.curr.Kind != lexer.EOF && p.lexErr == nil {
		stmt := p.parseStmt()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, p.Errors
}

// parseStmt implements: stmt := funcDecl | returnStmt | forStmt | whileStmt
//
//	| condStmt | assignStmt | structDecl | expr
func (p *Parser) parseStmt() ast.Node {
	switch {
	case p.isKeyword("sketch"):
		return p.parseFuncDecl()
	case p.isKeyword("finished"):
		return p.parseReturnStmt()
	case p.isKeyword("loop"):
		return p.parseForStmt()
	case p.isKeyword("while"):
		return p.parseWhileStmt()
	case p.isKeyword("if"):
		return p.parseCondStmt()
	case p.isKeyword("prepare"):
		return p.parseAssignStmt()
	case p.isKeyword("brush"):
		return p.parseStructDecl()
	default:
		return p.parseExpr()
	}
}

// parseBlock implements: block := '{' stmt* '}'
func (p *Parser) parseBlock() []ast.Node {
	if !p.expect(lexer.LeftBrace) {
		return nil
	}
	p.advance()
	var body []ast.Node
	for p.curr.Kind != lexer.RightBrace && p.curr.Kind != lexer.EOF && p.lexErr == nil {
		stmt := p.parseStmt()
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	if !p.expect(lexer.RightBrace) {
		return body
	}
	p.advance()
	return body
}

// parseIdentList implements: identList := IDENT (',' IDENT)*
func (p *Parser) parseIdentList() []string {
	var names []string
	if p.curr.Kind != lexer.Identifier {
		return names
	}
	names = append(names, p.curr.Lexeme)
	p.advance()
	for p.curr.Kind == lexer.Comma {
		p.advance()
		if !p.expect(lexer.Identifier) {
			break
		}
		names = append(names, p.curr.Lexeme)
		p.advance()
	}
	return names
}

// parseExprList implements: exprList := expr (',' expr)*
func (p *Parser) parseExprList(terminator lexer.TokenKind) []ast.Node {
	var exprs []ast.Node
	if p.curr.Kind == terminator {
		return exprs
	}
	exprs = append(exprs, p.parseExpr())
	for p.curr.Kind == lexer.Comma {
		p.advance()
		exprs = append(exprs, p.parseExpr())
	}
	return exprs
}

// parseFuncDecl implements: funcDecl := 'sketch' IDENT ('needs' '(' identList ')')? block
func (p *Parser) parseFuncDecl() ast.Node {
	line, col := p.curr.Line, p.curr.Column
	p.advance() // consume 'sketch'
	if !p.expect(lexer.Identifier) {
		return nil
	}
	name := p.curr.Lexeme
	p.advance()

	var params []string
	if p.isKeyword("needs") {
		p.advance()
		if p.expect(lexer.LeftParen) {
			p.advance()
			params = p.parseIdentList()
			if p.expect(lexer.RightParen) {
				p.advance()
			}
		}
	}
	body := p.parseBlock()
	return &ast.Func{Name: name, Params: params, Body: body, Position: ast.NewPos(line, col)}
}

// parseReturnStmt implements: returnStmt := 'finished' expr
func (p *Parser) parseReturnStmt() ast.Node {
	line, col := p.curr.Line, p.curr.Column
	p.advance() // consume 'finished'
	value := p.parseExpr()
	return &ast.Return{Value: value, Position: ast.NewPos(line, col)}
}

// parseForStmt implements: forStmt := 'loop' IDENT 'through' '(' expr ',' expr ')' block
func (p *Parser) parseForStmt() ast.Node {
	line, col := p.curr.Line, p.curr.Column
	p.advance() // consume 'loop'
	if !p.expect(lexer.Identifier) {
		return nil
	}
	id := p.curr.Lexeme
	p.advance()
	if !p.expectKeyword("through") {
		return nil
	}
	p.advance()
	if !p.expect(lexer.LeftParen) {
		return nil
	}
	p.advance()
	begin := p.parseExpr()
	if !p.expect(lexer.Comma) {
		return nil
	}
	p.advance()
	end := p.parseExpr()
	if p.expect(lexer.RightParen) {
		p.advance()
	}
	body := p.parseBlock()
	return &ast.For{ID: id, Range: [2]ast.Node{begin, end}, Body: body, Position: ast.NewPos(line, col)}
}

// parseWhileStmt implements: whileStmt := 'while' '(' expr ')' block
func (p *Parser) parseWhileStmt() ast.Node {
	line, col := p.curr.Line, p.curr.Column
	p.advance() // consume 'while'
	if !p.expect(lexer.LeftParen) {
		return nil
	}
	p.advance()
	cond := p.parseExpr()
	if p.expect(lexer.RightParen) {
		p.advance()
	}
	body := p.parseBlock()
	return &ast.While{Condition: cond, Body: body, Position: ast.NewPos(line, col)}
}

// parseCondStmt implements:
//
//	condStmt := 'if' '(' expr ')' block ( ('elif' '(' expr ')' block) | ('else' block) )*
//
// elif/else clauses are consumed greedily and nested as single-element
// ElseChain entries; a trailing else is recorded with a literal-true
// condition, exactly as spec'd.
func (p *Parser) parseCondStmt() ast.Node {
	line, col := p.curr.Line, p.curr.Column
	p.advance() // consume 'if'
	if !p.expect(lexer.LeftParen) {
		return nil
	}
	p.advance()
	cond := p.parseExpr()
	if p.expect(lexer.RightParen) {
		p.advance()
	}
	then := p.parseBlock()
	node := &ast.Conditional{Condition: cond, Then: then, Position: ast.NewPos(line, col)}

	curr := node
	for p.isKeyword("elif") || p.isKeyword("else") {
		if p.isKeyword("elif") {
			l, c := p.curr.Line, p.curr.Column
			p.advance()
			if !p.expect(lexer.LeftParen) {
				break
			}
			p.advance()
			elifCond := p.parseExpr()
			if p.expect(lexer.RightParen) {
				p.advance()
			}
			elifBody := p.parseBlock()
			clause := &ast.Conditional{Condition: elifCond, Then: elifBody, Position: ast.NewPos(l, c)}
			curr.ElseChain = []*ast.Conditional{clause}
			curr = clause
		} else {
			l, c := p.curr.Line, p.curr.Column
			p.advance() // consume 'else'
			elseBody := p.parseBlock()
			clause := &ast.Conditional{
				Condition: &ast.Literal{Kind: ast.BooleanContent, Boolean: true, Position: ast.NewPos(l, c)},
				Then:      elseBody,
				Position:  ast.NewPos(l, c),
			}
			curr.ElseChain = []*ast.Conditional{clause}
			break
		}
	}
	return node
}

// parseAssignStmt implements:
//
//	assignStmt := 'prepare' IDENT ('.' IDENT 'as' expr | 'as' expr)
func (p *Parser) parseAssignStmt() ast.Node {
	line, col := p.curr.Line, p.curr.Column
	p.advance() // consume 'prepare'
	if !p.expect(lexer.Identifier) {
		return nil
	}
	name := p.curr.Lexeme
	p.advance()

	if p.curr.Kind == lexer.Period {
		p.advance()
		if !p.expect(lexer.Identifier) {
			return nil
		}
		field := p.curr.Lexeme
		p.advance()
		if !p.expectKeyword("as") {
			return nil
		}
		p.advance()
		value := p.parseExpr()
		return &ast.Set{VarName: name, FieldName: field, Value: value, Position: ast.NewPos(line, col)}
	}

	if !p.expectKeyword("as") {
		return nil
	}
	p.advance()
	value := p.parseExpr()
	return &ast.Var{Name: name, Initializer: value, Position: ast.NewPos(line, col)}
}

// parseStructDecl implements: structDecl := 'brush' IDENT 'has' '{' identList '}'
func (p *Parser) parseStructDecl() ast.Node {
	line, col := p.curr.Line, p.curr.Column
	p.advance() // consume 'brush'
	if !p.expect(lexer.Identifier) {
		return nil
	}
	name := p.curr.Lexeme
	p.advance()
	if !p.expectKeyword("has") {
		return nil
	}
	p.advance()
	if !p.expect(lexer.LeftBrace) {
		return nil
	}
	p.advance()
	fields := p.parseIdentList()
	if p.expect(lexer.RightBrace) {
		p.advance()
	}
	return &ast.Struct{Name: name, FieldNames: fields, Position: ast.NewPos(line, col)}
}
