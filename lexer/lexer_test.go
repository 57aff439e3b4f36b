/*
File    : sketch/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testConsumeTokens represents a test case for ConsumeTokens: an input
// source string and the token kinds/lexemes it must scan to.
type testConsumeTokens struct {
	Input    string
	Expected []Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []testConsumeTokens{
		{
			Input: `prepare x as 2 + 3 * 4~comment`,
			Expected: []Token{
				New(Keyword, "prepare", 0, 0),
				New(Identifier, "x", 0, 0),
				New(Keyword, "as", 0, 0),
				NewNumber("2", 2, 0, 0),
				New(Plus, "+", 0, 0),
				NewNumber("3", 3, 0, 0),
				New(Asterisk, "*", 0, 0),
				NewNumber("4", 4, 0, 0),
				New(EOF, "", 0, 0),
			},
		},
		{
			Input: `sketch max needs (a, b) { if (a > b) { finished a } finished b }`,
			Expected: []Token{
				New(Keyword, "sketch", 0, 0),
				New(Identifier, "max", 0, 0),
				New(Keyword, "needs", 0, 0),
				New(LeftParen, "(", 0, 0),
				New(Identifier, "a", 0, 0),
				New(Comma, ",", 0, 0),
				New(Identifier, "b", 0, 0),
				New(RightParen, ")", 0, 0),
				New(LeftBrace, "{", 0, 0),
				New(Keyword, "if", 0, 0),
				New(LeftParen, "(", 0, 0),
				New(Identifier, "a", 0, 0),
				New(Gt, ">", 0, 0),
				New(Identifier, "b", 0, 0),
				New(RightParen, ")", 0, 0),
				New(LeftBrace, "{", 0, 0),
				New(Keyword, "finished", 0, 0),
				New(Identifier, "a", 0, 0),
				New(RightBrace, "}", 0, 0),
				New(Keyword, "finished", 0, 0),
				New(Identifier, "b", 0, 0),
				New(RightBrace, "}", 0, 0),
				New(EOF, "", 0, 0),
			},
		},
		{
			Input: `"ab" * 3 == true && false || 1 != 2`,
			Expected: []Token{
				NewString(`"ab"`, "ab", 0, 0),
				New(Asterisk, "*", 0, 0),
				NewNumber("3", 3, 0, 0),
				New(Equiv, "==", 0, 0),
				NewBoolean("true", true, 0, 0),
				New(And, "&&", 0, 0),
				NewBoolean("false", false, 0, 0),
				New(Or, "||", 0, 0),
				NewNumber("1", 1, 0, 0),
				New(NotEquiv, "!=", 0, 0),
				NewNumber("2", 2, 0, 0),
				New(EOF, "", 0, 0),
			},
		},
	}

	for _, tc := range tests {
		lex := NewLexer(tc.Input)
		got, err := lex.ConsumeTokens()
		assert.NoError(t, err)
		if assert.Equal(t, len(tc.Expected), len(got)) {
			for i := range tc.Expected {
				assert.Equal(t, tc.Expected[i].Kind, got[i].Kind)
				assert.Equal(t, tc.Expected[i].Lexeme, got[i].Lexeme)
				assert.Equal(t, tc.Expected[i].Content, got[i].Content)
			}
		}
	}
}

func TestLexer_LineColumnTracking(t *testing.T) {
	lex := NewLexer("prepare x as 1\nprepare y as 2")
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.True(t, toks[0].Line >= 1 && toks[0].Column >= 1)
	// "y" on the second line should have Line == 2
	found := false
	for _, tok := range toks {
		if tok.Lexeme == "y" {
			assert.Equal(t, 2, tok.Line)
			found = true
		}
	}
	assert.True(t, found)
}

func TestLexer_UnterminatedStringFails(t *testing.T) {
	lex := NewLexer(`prepare x as "unterminated`)
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
}

func TestLexer_LoneAmpersandFails(t *testing.T) {
	lex := NewLexer(`a & b`)
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
}
