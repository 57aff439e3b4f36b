/*
File    : sketch/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/go-mix/sketcherr"
)

// Lexer performs single-pass, line/column-tracked lexical analysis of
// sketch source text. It scans one token per call to NextToken, consuming
// the first applicable rule at the current position:
//
//   - single-char punctuation: ( ) { } [ ] . , : + - * /
//   - quote-delimited strings ('...' or "..."), no escape processing
//   - two-char operators: || && == != >= <=
//   - ~ starts a line comment, discarded to end of line
//   - numbers: digits with at most one decimal point, parsed as float64
//   - identifiers, classified against the fixed keyword set
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	var current byte
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{Src: src, Current: current, SrcLength: len(src), Line: 1, Column: 1}
}

// Peek returns the byte after Current without consuming it, or 0 at EOF.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance consumes Current and moves to the next byte, tracking column.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

func isWhitespace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isDigit(b byte) bool      { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isAlphaNumeric(b byte) bool { return isAlpha(b) || isDigit(b) }

// skipWhitespaceAndComments discards whitespace and ~ line comments,
// tracking line/column, until a meaningful token's first byte is current.
func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case lex.Current == '\n':
			lex.Line++
			lex.Column = 0 // Advance() below brings it to 1
			lex.Advance()
		case isWhitespace(lex.Current):
			lex.Advance()
		case lex.Current == '~':
			for lex.Current != '\n' && lex.Current != 0 {
				lex.Advance()
			}
		default:
			return
		}
	}
}

// NextToken scans and returns the next token, or a *sketcherr.SourceError
// (Kind LexError) on an unterminated string or unrecognized character.
func (lex *Lexer) NextToken() (Token, error) {
	lex.skipWhitespaceAndComments()

	line, column := lex.Line, lex.Column

	if lex.Current == 0 {
		return New(EOF, "", line, column), nil
	}

	switch lex.Current {
	case '(':
		lex.Advance()
		return New(LeftParen, "(", line, column), nil
	case ')':
		lex.Advance()
		return New(RightParen, ")", line, column), nil
	case '{':
		lex.Advance()
		return New(LeftBrace, "{", line, column), nil
	case '}':
		lex.Advance()
		return New(RightBrace, "}", line, column), nil
	case '[':
		lex.Advance()
		return New(LeftBracket, "[", line, column), nil
	case ']':
		lex.Advance()
		return New(RightBracket, "]", line, column), nil
	case '.':
		lex.Advance()
		return New(Period, ".", line, column), nil
	case ',':
		lex.Advance()
		return New(Comma, ",", line, column), nil
	case ':':
		lex.Advance()
		return New(Colon, ":", line, column), nil
	case '+':
		lex.Advance()
		return New(Plus, "+", line, column), nil
	case '-':
		lex.Advance()
		return New(Minus, "-", line, column), nil
	case '*':
		lex.Advance()
		return New(Asterisk, "*", line, column), nil
	case '/':
		lex.Advance()
		return New(Slash, "/", line, column), nil
	case '%':
		lex.Advance()
		return New(Modulo, "%", line, column), nil
	case '=':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return New(Equiv, "==", line, column), nil
		}
		// Standalone '=' is not part of the grammar but still a valid
		// lexical token per the original source: a Keyword lexeme "=".
		lex.Advance()
		return New(Keyword, "=", line, column), nil
	case '!':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return New(NotEquiv, "!=", line, column), nil
		}
		lex.Advance()
		return New(Not, "!", line, column), nil
	case '>':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return New(Gte, ">=", line, column), nil
		}
		lex.Advance()
		return New(Gt, ">", line, column), nil
	case '<':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return New(Lte, "<=", line, column), nil
		}
		lex.Advance()
		return New(Lt, "<", line, column), nil
	case '&':
		if lex.Peek() == '&' {
			lex.Advance()
			lex.Advance()
			return New(And, "&&", line, column), nil
		}
		return Token{}, sketcherr.NewLex(line, column, "unrecognized character '&'")
	case '|':
		if lex.Peek() == '|' {
			lex.Advance()
			lex.Advance()
			return New(Or, "||", line, column), nil
		}
		return Token{}, sketcherr.NewLex(line, column, "unrecognized character '|'")
	case '\'', '"':
		return lex.readString(line, column)
	}

	if isDigit(lex.Current) {
		return lex.readNumber(line, column)
	}
	if isAlpha(lex.Current) {
		return lex.readIdentifier(line, column)
	}

	return Token{}, sketcherr.NewLex(line, column, "unrecognized character '%c'", lex.Current)
}

func (lex *Lexer) readString(line, column int) (Token, error) {
	quote := lex.Current
	lex.Advance() // consume opening quote

	var b strings.Builder
	for lex.Current != quote {
		if lex.Current == 0 {
			return Token{}, sketcherr.NewLex(line, column, "unterminated string")
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		b.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // consume closing quote

	lexeme := string(quote) + b.String() + string(quote)
	return NewString(lexeme, b.String(), line, column), nil
}

func (lex *Lexer) readNumber(line, column int) (Token, error) {
	start := lex.Position
	seenDot := false
	for isDigit(lex.Current) || (lex.Current == '.' && !seenDot && isDigit(lex.Peek())) {
		if lex.Current == '.' {
			seenDot = true
		}
		lex.Advance()
	}
	lexeme := lex.Src[start:lex.Position]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return Token{}, sketcherr.NewLex(line, column, "malformed number literal %q", lexeme)
	}
	return NewNumber(lexeme, value, line, column), nil
}

func (lex *Lexer) readIdentifier(line, column int) (Token, error) {
	start := lex.Position
	for isAlphaNumeric(lex.Current) {
		lex.Advance()
	}
	lexeme := lex.Src[start:lex.Position]
	return lookupIdent(lexeme, line, column), nil
}

// ConsumeTokens tokenizes the entire source, returning every token up to
// and including the trailing EOF sentinel, or the first LexError hit.
func (lex *Lexer) ConsumeTokens() ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}
