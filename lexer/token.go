/*
File    : sketch/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// TokenKind identifies the syntactic category of a Token. The full set is
// fixed and stable: it is the externally-visible contract of the `--dbg`
// token dump, so new kinds are never added without updating that contract.
type TokenKind string

const (
	LeftParen    TokenKind = "LeftParen"
	RightParen   TokenKind = "RightParen"
	LeftBrace    TokenKind = "LeftBrace"
	RightBrace   TokenKind = "RightBrace"
	LeftBracket  TokenKind = "LeftBracket"
	RightBracket TokenKind = "RightBracket"
	Period       TokenKind = "Period"
	Comma        TokenKind = "Comma"
	Colon        TokenKind = "Colon"
	Keyword      TokenKind = "Keyword"
	Identifier   TokenKind = "Identifier"
	String       TokenKind = "String"
	Number       TokenKind = "Number"
	Boolean      TokenKind = "Boolean"
	Or           TokenKind = "Or"
	Not          TokenKind = "Not"
	And          TokenKind = "And"
	Equiv        TokenKind = "Equiv"
	NotEquiv     TokenKind = "NotEquiv"
	Gt           TokenKind = "Gt"
	Gte          TokenKind = "Gte"
	Lt           TokenKind = "Lt"
	Lte          TokenKind = "Lte"
	Plus         TokenKind = "Plus"
	Minus        TokenKind = "Minus"
	Asterisk     TokenKind = "Asterisk"
	Slash        TokenKind = "Slash"
	Modulo       TokenKind = "Modulo"
	EOF          TokenKind = "EOF"
)

// Keywords is the fixed reserved-word set of the language. Anything not in
// this map that starts with a letter or underscore lexes as an Identifier;
// "true"/"false" are recognized separately as Boolean literals.
var Keywords = map[string]bool{
	"prepare":  true,
	"as":       true,
	"brush":    true,
	"prep":     true,
	"has":      true,
	"sketch":   true,
	"needs":    true,
	"finished": true,
	"loop":     true,
	"through":  true,
	"while":    true,
	"if":       true,
	"elif":     true,
	"else":     true,
}

// TokenContent is the tagged union carried by String/Number/Boolean tokens.
// Structural and keyword tokens carry a nil Content.
type TokenContent interface {
	isTokenContent()
}

type StringContent struct{ Value string }

func (StringContent) isTokenContent() {}

type NumberContent struct{ Value float64 }

func (NumberContent) isTokenContent() {}

type BooleanContent struct{ Value bool }

func (BooleanContent) isTokenContent() {}

// Token is a single lexical token: its kind, its source text, an optional
// typed content payload, and its 1-indexed source position.
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Content TokenContent
	Line    int
	Column  int
}

// New builds a structural/keyword token with no content payload.
func New(kind TokenKind, lexeme string, line, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
}

// NewString builds a String token carrying its decoded text.
func NewString(lexeme, value string, line, column int) Token {
	return Token{Kind: String, Lexeme: lexeme, Content: StringContent{Value: value}, Line: line, Column: column}
}

// NewNumber builds a Number token carrying its parsed double value.
func NewNumber(lexeme string, value float64, line, column int) Token {
	return Token{Kind: Number, Lexeme: lexeme, Content: NumberContent{Value: value}, Line: line, Column: column}
}

// NewBoolean builds a Boolean token carrying its literal value.
func NewBoolean(lexeme string, value bool, line, column int) Token {
	return Token{Kind: Boolean, Lexeme: lexeme, Content: BooleanContent{Value: value}, Line: line, Column: column}
}

// String renders "lexeme:kind", used for quick debugging (not the --dbg dump).
func (t Token) String() string {
	return fmt.Sprintf("%s:%s", t.Lexeme, t.Kind)
}

// lookupIdent classifies a scanned identifier-like lexeme as a Keyword,
// Boolean, or plain Identifier token.
func lookupIdent(ident string, line, column int) Token {
	if ident == "true" {
		return NewBoolean(ident, true, line, column)
	}
	if ident == "false" {
		return NewBoolean(ident, false, line, column)
	}
	if Keywords[ident] {
		return New(Keyword, ident, line, column)
	}
	return New(Identifier, ident, line, column)
}
