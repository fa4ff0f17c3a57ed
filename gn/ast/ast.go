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

// Package ast declares the types used to represent syntax trees for GN
// build files.
package ast // import "gnls.dev/go/gn/ast"

import (
	"gnls.dev/go/gn/token"
)

// ----------------------------------------------------------------------------
// Interfaces
//
// The set of node types is closed: only the types declared in this file
// implement Node. Code switching over a Node can therefore cover every
// variant: *Accessor, *BinaryOp, *Block, *Condition, *FunctionCall,
// *Identifier, *List, *Literal, *UnaryOp and *End.
//
// Ranges follow GN: they are half-open and a node with delimiters covers
// both delimiters.

// A Node represents any node in the syntax tree.
type Node interface {
	// Range reports the source span covered by the node.
	Range() token.Range

	node()
}

// A Token is a lexeme as it appears in the source.
type Token struct {
	Kind  token.Token
	Value string
	Range token.Range
}

// IsValid reports whether t was produced by the scanner.
func (t Token) IsValid() bool { return t.Range.IsValid() }

func (*Accessor) node()     {}
func (*BinaryOp) node()     {}
func (*Block) node()        {}
func (*Condition) node()    {}
func (*FunctionCall) node() {}
func (*Identifier) node()   {}
func (*List) node()         {}
func (*Literal) node()      {}
func (*UnaryOp) node()      {}
func (*End) node()          {}

// ----------------------------------------------------------------------------
// Nodes

// An Accessor is a member access a.b or a subscript a[i]. Exactly one
// of Member and Subscript is set.
type Accessor struct {
	Base      Token
	Member    *Identifier
	Subscript Node
	RBrack    Token // closing bracket of a subscript
}

func (x *Accessor) Range() token.Range {
	r := x.Base.Range
	switch {
	case x.Subscript != nil && x.RBrack.IsValid():
		r = r.Union(x.RBrack.Range)
	case x.Subscript != nil:
		r = r.Union(x.Subscript.Range())
	case x.Member != nil:
		r = r.Union(x.Member.Range())
	}
	return r
}

// A BinaryOp is an assignment or a binary expression.
type BinaryOp struct {
	Op    Token
	Left  Node
	Right Node
}

func (x *BinaryOp) Range() token.Range {
	return x.Left.Range().Union(x.Right.Range())
}

// IsAssignment reports whether x is one of =, += or -=.
func (x *BinaryOp) IsAssignment() bool { return x.Op.Kind.IsAssign() }

// A Block is a sequence of statements. The top-level block of a file has
// no braces; its Begin token is invalid and End is nil.
type Block struct {
	Begin      Token
	Statements []Node
	End        *End
}

func (x *Block) Range() token.Range {
	if x.Begin.IsValid() && x.End != nil {
		return x.Begin.Range.Union(x.End.Range())
	}
	if n := len(x.Statements); n > 0 {
		return x.Statements[0].Range().Union(x.Statements[n-1].Range())
	}
	return token.Range{}
}

// A Condition is an if statement. IfFalse is nil, a *Block for a plain
// else branch, or a *Condition for an else-if chain.
type Condition struct {
	If      Token
	Cond    Node
	IfTrue  *Block
	IfFalse Node
}

func (x *Condition) Range() token.Range {
	r := x.If.Range
	if x.IfFalse != nil {
		return r.Union(x.IfFalse.Range())
	}
	return r.Union(x.IfTrue.Range())
}

// A FunctionCall is a call expression with an optional trailing block.
type FunctionCall struct {
	Function Token
	Args     *List
	Block    *Block
}

func (x *FunctionCall) Range() token.Range {
	if x.Block != nil {
		return x.Function.Range.Union(x.Block.Range())
	}
	return x.Function.Range.Union(x.Args.Range())
}

// An Identifier is a variable reference or an assignment target.
type Identifier struct {
	Value Token
}

func (x *Identifier) Range() token.Range { return x.Value.Range }

// A List is a bracketed list of expressions, or the parenthesized
// argument list of a function call.
type List struct {
	Begin    Token
	Contents []Node
	End      *End
}

func (x *List) Range() token.Range {
	r := x.Begin.Range
	if x.End != nil {
		r = r.Union(x.End.Range())
	}
	return r
}

// A Literal is an integer, string or boolean constant.
type Literal struct {
	Value Token
}

func (x *Literal) Range() token.Range { return x.Value.Range }

// A UnaryOp is a prefix operator application, such as !x.
type UnaryOp struct {
	Op      Token
	Operand Node
}

func (x *UnaryOp) Range() token.Range {
	return x.Op.Range.Union(x.Operand.Range())
}

// An End marks the closing delimiter of a Block or List.
type End struct {
	Value Token
}

func (x *End) Range() token.Range { return x.Value.Range }

// ----------------------------------------------------------------------------
// Files

// A File holds the syntax tree of a single GN file.
type File struct {
	Filename string
	Root     *Block
	Tokens   []Token // all non-comment tokens in source order
	Comments []Token // all comments in source order, if requested
}

// Range reports the span of the file's statements.
func (f *File) Range() token.Range { return f.Root.Range() }
