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
	"fmt"

	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/ast/astutil"
	"gnls.dev/go/gn/token"
)

// A SymbolKind classifies a [Symbol].
type SymbolKind int

const (
	SymbolFunction SymbolKind = iota + 1 // a call, possibly with a block
	SymbolVariable                       // an assignment
	SymbolBoolean                        // an if statement
	SymbolOperator                       // the else branch of an if statement
)

var symbolKindNames = [...]string{
	SymbolFunction: "function",
	SymbolVariable: "variable",
	SymbolBoolean:  "boolean",
	SymbolOperator: "operator",
}

func (k SymbolKind) String() string {
	if k > 0 && int(k) < len(symbolKindNames) {
		return symbolKindNames[k]
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}

// MarshalText implements [encoding.TextMarshaler].
func (k SymbolKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// A Symbol is an entry of a document outline. SelectionRange always lies
// within Range.
type Symbol struct {
	Kind           SymbolKind
	Name           string
	Range          token.Range
	SelectionRange token.Range
	Children       []Symbol
}

// Else is the name of the symbol for an else branch.
const Else = "else"

// Outline returns the symbols of the statements in the tree rooted at
// root, in source order.
func Outline(root ast.Node) []Symbol {
	return outline(nil, root)
}

func outline(syms []Symbol, n ast.Node) []Symbol {
	switch n := n.(type) {
	case *ast.Block:
		for _, s := range n.Statements {
			syms = outline(syms, s)
		}

	case *ast.BinaryOp:
		if !n.IsAssignment() {
			break
		}
		syms = append(syms, Symbol{
			Kind:           SymbolVariable,
			Name:           astutil.Render(n.Left),
			Range:          n.Range(),
			SelectionRange: n.Left.Range(),
		})

	case *ast.FunctionCall:
		sel := n.Function.Range
		if n.Args != nil {
			sel = sel.Union(n.Args.Range())
		}
		sym := Symbol{
			Kind:           SymbolFunction,
			Name:           astutil.Render(n),
			Range:          n.Range(),
			SelectionRange: sel,
		}
		if n.Block != nil {
			sym.Children = outline(nil, n.Block)
		}
		syms = append(syms, sym)

	case *ast.Condition:
		sym := Symbol{
			Kind:           SymbolBoolean,
			Name:           astutil.Render(n.Cond),
			Range:          n.Range(),
			SelectionRange: n.Cond.Range(),
		}
		if n.IfTrue != nil {
			sym.Children = outline(nil, n.IfTrue)
		}
		if n.IfFalse != nil {
			r := n.IfFalse.Range()
			sym.Children = append(sym.Children, Symbol{
				Kind:           SymbolOperator,
				Name:           Else,
				Range:          r,
				SelectionRange: r,
				Children:       outline(nil, n.IfFalse),
			})
		}
		syms = append(syms, sym)
	}
	return syms
}
