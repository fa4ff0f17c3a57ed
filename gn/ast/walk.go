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

package ast

import "fmt"

// Walk traverses a syntax tree in depth-first order: It starts by calling
// before(node); node must not be nil. If before returns true, Walk invokes
// itself recursively for each of the non-nil children of node in source
// order, followed by a call of after. Both functions may be nil. If before is
// nil, it is assumed to always return true.
func Walk(node Node, before func(Node) bool, after func(Node)) {
	if before == nil {
		before = func(Node) bool { return true }
	}
	if after == nil {
		after = func(Node) {}
	}
	walk(node, before, after)
}

// Inspect is a shorthand for Walk without an after function.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, f, nil)
}

// Children returns the non-nil children of n in source order.
func Children(n Node) []Node {
	var a []Node
	add := func(c Node) {
		if c != nil {
			a = append(a, c)
		}
	}
	switch n := n.(type) {
	case *Accessor:
		if n.Member != nil {
			add(n.Member)
		}
		add(n.Subscript)
	case *BinaryOp:
		add(n.Left)
		add(n.Right)
	case *Block:
		a = append(a, n.Statements...)
		if n.End != nil {
			add(n.End)
		}
	case *Condition:
		add(n.Cond)
		if n.IfTrue != nil {
			add(n.IfTrue)
		}
		add(n.IfFalse)
	case *FunctionCall:
		if n.Args != nil {
			add(n.Args)
		}
		if n.Block != nil {
			add(n.Block)
		}
	case *List:
		a = append(a, n.Contents...)
		if n.End != nil {
			add(n.End)
		}
	case *UnaryOp:
		add(n.Operand)
	case *Identifier, *Literal, *End:
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
	return a
}

func walk(node Node, before func(Node) bool, after func(Node)) {
	if !before(node) {
		return
	}
	for _, c := range Children(node) {
		walk(c, before, after)
	}
	after(node)
}
