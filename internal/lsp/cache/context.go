// Copyright 2026 The gnls Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/ast/astutil"
	"gnls.dev/go/gn/literal"
	"gnls.dev/go/gn/token"
)

// Token types reported in a [TokenInfo].
const (
	TypeIdentifier = "identifier"
	TypeLiteral    = "literal"
)

// A Context describes what is at a position in a document. Each of Token,
// Function and Variable is nil or empty when nothing applies.
type Context struct {
	// Root is the project root of the document.
	Root string `json:"root"`

	// Token is the most specific token at the position.
	Token *TokenInfo `json:"token,omitempty"`

	// Function is the innermost call whose block contains the position.
	Function *FunctionInfo `json:"function,omitempty"`

	// Variable is the innermost variable being assigned.
	Variable string `json:"variable,omitempty"`
}

// TokenInfo describes a token.
type TokenInfo struct {
	Type  string      `json:"type"` // TypeIdentifier, TypeLiteral or ""
	Value string      `json:"value"`
	Range token.Range `json:"range"`
}

// FunctionInfo describes a call. Literal arguments appear as written in
// the source, quotes included; other arguments are "".
type FunctionInfo struct {
	Name      string   `json:"name"`
	Arguments []string `json:"arguments"`
}

// Target returns the type of target the call declares: the first
// argument of target(), the function name otherwise.
func (f *FunctionInfo) Target() string {
	if f.Name == "target" {
		if len(f.Arguments) == 0 {
			return ""
		}
		return literal.Trim(f.Arguments[0])
	}
	return f.Name
}

// Analyze reports the context at p in the tree rooted at root. The Root
// field of the result is left empty.
func Analyze(root ast.Node, p token.Position) Context {
	var c Context
	path := astutil.Path(root, p)
	if len(path) == 0 {
		return c
	}

	if t, ok := specificToken(path[len(path)-1]); ok {
		c.Token = &TokenInfo{
			Type:  tokenType(t.Kind),
			Value: t.Value,
			Range: t.Range,
		}
	}

	for i := len(path) - 1; i >= 0; i-- {
		switch n := path[i].(type) {
		case *ast.FunctionCall:
			// Only a call whose block the position lies within counts;
			// a call reached through its arguments does not.
			if i+1 < len(path) {
				if _, ok := path[i+1].(*ast.Block); ok {
					c.Function = functionInfo(n)
				}
			}
		case *ast.BinaryOp:
			if id, ok := n.Left.(*ast.Identifier); ok && c.Variable == "" {
				c.Variable = id.Value.Value
			}
		}
		if c.Function != nil {
			break
		}
	}
	return c
}

func specificToken(n ast.Node) (ast.Token, bool) {
	switch n := n.(type) {
	case *ast.Accessor:
		return n.Base, true
	case *ast.FunctionCall:
		return n.Function, true
	case *ast.Identifier:
		return n.Value, true
	case *ast.Literal:
		return n.Value, true
	}
	return ast.Token{}, false
}

func tokenType(k token.Token) string {
	switch k {
	case token.IDENT:
		return TypeIdentifier
	case token.INT, token.STRING, token.TRUE, token.FALSE:
		return TypeLiteral
	}
	return ""
}

func functionInfo(n *ast.FunctionCall) *FunctionInfo {
	f := &FunctionInfo{Name: n.Function.Value, Arguments: []string{}}
	if n.Args == nil {
		return f
	}
	for _, x := range n.Args.Contents {
		arg := ""
		if lit, ok := x.(*ast.Literal); ok {
			arg = lit.Value.Value
		}
		f.Arguments = append(f.Arguments, arg)
	}
	return f
}
