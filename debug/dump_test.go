/*
File    : sketch/debug/dump_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package debug

import (
	"encoding/json"
	"testing"

	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_EndsWithEOFAndCarriesPosition(t *testing.T) {
	lex := lexer.NewLexer(`prepare x as 2`)
	toks, err := lex.ConsumeTokens()
	require.NoError(t, err)

	raw, err := Tokens(toks)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotEmpty(t, decoded)
	assert.Equal(t, "EOF", decoded[len(decoded)-1]["type"])
	assert.Equal(t, "prepare", decoded[0]["value"])
	assert.EqualValues(t, 1, decoded[0]["line"])
}

func TestAST_BinaryNodeHasLeftOperatorRight(t *testing.T) {
	p := parser.New(`prepare x as 2 + 3 * 4`)
	stmts, errs := p.Parse()
	require.Empty(t, errs)

	raw, err := AST(stmts)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Var", decoded[0]["type"])
	assert.Equal(t, "x", decoded[0]["name"])

	bin := decoded[0]["value"].(map[string]interface{})
	assert.Equal(t, "Binary", bin["type"])
	assert.Contains(t, bin, "left")
	assert.Equal(t, "+", bin["operator"])
	assert.Contains(t, bin, "right")
}

func TestAST_PointGetSerializesAsGet(t *testing.T) {
	p := parser.New(`p.x`)
	stmts, errs := p.Parse()
	require.Empty(t, errs)

	raw, err := AST(stmts)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Get", decoded[0]["type"])
	assert.Equal(t, false, decoded[0]["isExpr"])
}
