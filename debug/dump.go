/*
File    : sketch/debug/dump.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package debug renders the token stream and AST produced by a run into
// the JSON schema SPEC_FULL.md §6.4 names as the parser's only externally
// visible contract: a discriminator "type" key plus a fixed vocabulary of
// variant-specific keys (value/left/operator/right/name/params/body/id/
// range/condition/otherwise/caller/property/members/args/isExpr). Written
// with encoding/json rather than a third-party schema/codec library --
// see DESIGN.md for why nothing in the pack fits this narrow, spec-owned
// shape better.
package debug

import (
	"encoding/json"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
)

// tokenJSON is the --dbg wire shape of a single lexer.Token.
type tokenJSON struct {
	Type    string      `json:"type"`
	Value   string      `json:"value"`
	Content interface{} `json:"content"`
	Line    int         `json:"line"`
	Column  int         `json:"column"`
}

func tokenContent(t lexer.Token) interface{} {
	switch c := t.Content.(type) {
	case lexer.StringContent:
		return c.Value
	case lexer.NumberContent:
		return c.Value
	case lexer.BooleanContent:
		return c.Value
	default:
		return nil
	}
}

// Tokens renders the full token stream (including the trailing EOF) to
// indented JSON.
func Tokens(toks []lexer.Token) ([]byte, error) {
	out := make([]tokenJSON, len(toks))
	for i, t := range toks {
		out[i] = tokenJSON{
			Type:    string(t.Kind),
			Value:   t.Lexeme,
			Content: tokenContent(t),
			Line:    t.Line,
			Column:  t.Column,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// AST renders a parsed statement list to indented JSON, one object per
// top-level statement.
func AST(stmts []ast.Node) ([]byte, error) {
	out := make([]interface{}, len(stmts))
	for i, s := range stmts {
		out[i] = nodeJSON(s)
	}
	return json.MarshalIndent(out, "", "  ")
}

// nodeJSON converts a single ast.Node into the §6.4 discriminated-object
// shape. PointGet has no discriminator of its own -- it is sugar for Get
// (spec.md §3), so it serializes exactly as the Get it desugars to.
func nodeJSON(n ast.Node) map[string]interface{} {
	if n == nil {
		return nil
	}
	switch node := n.(type) {
	case *ast.Literal:
		var value interface{}
		switch node.Kind {
		case ast.StringContent:
			value = node.Str
		case ast.NumberContent:
			value = node.Num
		case ast.BooleanContent:
			value = node.Boolean
		}
		return map[string]interface{}{"type": "Literal", "value": value}

	case *ast.Array:
		items := make([]interface{}, len(node.Items))
		for i, el := range node.Items {
			items[i] = nodeJSON(el)
		}
		return map[string]interface{}{"type": "Array", "value": items}

	case *ast.Var:
		return map[string]interface{}{
			"type":  "Var",
			"name":  node.Name,
			"value": nodeJSON(node.Initializer),
		}

	case *ast.Binary:
		return map[string]interface{}{
			"type":     "Binary",
			"left":     nodeJSON(node.Left),
			"operator": node.Op,
			"right":    nodeJSON(node.Right),
		}

	case *ast.Unary:
		return map[string]interface{}{
			"type":     "Unary",
			"operator": node.Op,
			"right":    nodeJSON(node.Operand),
		}

	case *ast.Func:
		body := make([]interface{}, len(node.Body))
		for i, s := range node.Body {
			body[i] = nodeJSON(s)
		}
		return map[string]interface{}{
			"type":   "Func",
			"name":   node.Name,
			"params": node.Params,
			"body":   body,
		}

	case *ast.Return:
		return map[string]interface{}{"type": "Return", "value": nodeJSON(node.Value)}

	case *ast.For:
		body := make([]interface{}, len(node.Body))
		for i, s := range node.Body {
			body[i] = nodeJSON(s)
		}
		return map[string]interface{}{
			"type":  "For",
			"id":    node.ID,
			"range": []interface{}{nodeJSON(node.Range[0]), nodeJSON(node.Range[1])},
			"body":  body,
		}

	case *ast.While:
		body := make([]interface{}, len(node.Body))
		for i, s := range node.Body {
			body[i] = nodeJSON(s)
		}
		return map[string]interface{}{
			"type":      "While",
			"condition": nodeJSON(node.Condition),
			"body":      body,
		}

	case *ast.Conditional:
		body := make([]interface{}, len(node.Then))
		for i, s := range node.Then {
			body[i] = nodeJSON(s)
		}
		otherwise := make([]interface{}, len(node.ElseChain))
		for i, c := range node.ElseChain {
			otherwise[i] = nodeJSON(c)
		}
		return map[string]interface{}{
			"type":      "Conditional",
			"condition": nodeJSON(node.Condition),
			"body":      body,
			"otherwise": otherwise,
		}

	case *ast.Struct:
		members := make([]interface{}, len(node.FieldNames))
		for i, f := range node.FieldNames {
			members[i] = f
		}
		return map[string]interface{}{"type": "Struct", "name": node.Name, "members": members}

	case *ast.Instance:
		members := make(map[string]interface{}, len(node.FieldOrder))
		for _, name := range node.FieldOrder {
			members[name] = nodeJSON(node.Fields[name])
		}
		return map[string]interface{}{"type": "Instance", "name": node.TypeName, "members": members}

	case *ast.Call:
		args := make([]interface{}, len(node.Args))
		for i, a := range node.Args {
			args[i] = nodeJSON(a)
		}
		return map[string]interface{}{"type": "Call", "caller": nodeJSON(node.Callee), "args": args}

	case *ast.Get:
		return map[string]interface{}{
			"type":     "Get",
			"caller":   nodeJSON(node.Target),
			"property": nodeJSON(node.Key),
			"isExpr":   node.KeyIsExpression,
		}

	case *ast.PointGet:
		return nodeJSON(&ast.Get{
			Target:          node.Target,
			Key:             &ast.Literal{Kind: ast.StringContent, Str: node.Field, Position: ast.NewPos(node.Pos())},
			KeyIsExpression: false,
			Position:        ast.NewPos(node.Pos()),
		})

	case *ast.Set:
		return map[string]interface{}{
			"type":     "Set",
			"name":     node.VarName,
			"property": node.FieldName,
			"value":    nodeJSON(node.Value),
		}

	case *ast.None:
		return map[string]interface{}{"type": "None"}

	default:
		return map[string]interface{}{"type": n.Literal()}
	}
}
