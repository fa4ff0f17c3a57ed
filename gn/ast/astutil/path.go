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

// Package astutil provides position-aware queries and renderings of GN
// syntax trees.
package astutil // import "gnls.dev/go/gn/ast/astutil"

import (
	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/token"
)

// Path returns the nodes from root down to the most specific node whose
// range contains p. Each node in the result is nested in the one before
// it. The result is empty if root is nil or does not contain p.
//
// At each level the children are tried in a fixed order and the walk
// descends into the first one containing p:
//
//	Accessor      subscript, then member
//	BinaryOp      left, then right
//	Block         statements in order
//	Condition     condition, then if-true block, then if-false branch
//	FunctionCall  arguments, then block
//	List          contents in order
//	UnaryOp       operand
//
// Identifier, Literal and End are leaves.
func Path(root ast.Node, p token.Position) []ast.Node {
	var path []ast.Node
	for n := within(root, p); n != nil; {
		path = append(path, n)
		n = step(n, p)
	}
	return path
}

// step returns the child of n that the walk toward p continues with, or
// nil if n is the deepest match.
func step(n ast.Node, p token.Position) ast.Node {
	switch n := n.(type) {
	case *ast.Accessor:
		if c := within(n.Subscript, p); c != nil {
			return c
		}
		if n.Member != nil {
			return within(n.Member, p)
		}
	case *ast.BinaryOp:
		if c := within(n.Left, p); c != nil {
			return c
		}
		return within(n.Right, p)
	case *ast.Block:
		return first(n.Statements, p)
	case *ast.Condition:
		if c := within(n.Cond, p); c != nil {
			return c
		}
		if n.IfTrue != nil {
			if c := within(n.IfTrue, p); c != nil {
				return c
			}
		}
		return within(n.IfFalse, p)
	case *ast.FunctionCall:
		if n.Args != nil {
			if c := within(n.Args, p); c != nil {
				return c
			}
		}
		if n.Block != nil {
			return within(n.Block, p)
		}
	case *ast.List:
		return first(n.Contents, p)
	case *ast.UnaryOp:
		return within(n.Operand, p)
	case *ast.Identifier, *ast.Literal, *ast.End:
	}
	return nil
}

func first(a []ast.Node, p token.Position) ast.Node {
	for _, x := range a {
		if c := within(x, p); c != nil {
			return c
		}
	}
	return nil
}

// within returns n if it is non-nil and contains p.
func within(n ast.Node, p token.Position) ast.Node {
	if n == nil || !n.Range().Contains(p) {
		return nil
	}
	return n
}
