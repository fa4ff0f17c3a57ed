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

package astutil

import (
	"strings"

	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/token"
)

// Placeholder is the rendering of nodes that have no compact
// expression form, such as blocks and conditions.
const Placeholder = "..."

// Render returns a compact one-line rendering of an expression, made of
// its tokens without intervening whitespace: config("compiler_defaults"),
// current_os=="linux", deps[0]. Parentheses are added where operator
// precedence requires them. Blocks, conditions and end markers render as
// [Placeholder].
func Render(n ast.Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case *ast.Identifier:
		b.WriteString(n.Value.Value)
	case *ast.Literal:
		b.WriteString(n.Value.Value)
	case *ast.Accessor:
		b.WriteString(n.Base.Value)
		switch {
		case n.Member != nil:
			b.WriteByte('.')
			b.WriteString(n.Member.Value.Value)
		case n.Subscript != nil:
			b.WriteByte('[')
			render(b, n.Subscript)
			b.WriteByte(']')
		}
	case *ast.BinaryOp:
		prec := n.Op.Kind.Precedence()
		operand(b, n.Left, prec)
		b.WriteString(n.Op.Value)
		operand(b, n.Right, prec+1)
	case *ast.UnaryOp:
		b.WriteString(n.Op.Value)
		operand(b, n.Operand, token.UnaryPrec)
	case *ast.List:
		b.WriteString(n.Begin.Value)
		for i, x := range n.Contents {
			if i > 0 {
				b.WriteByte(',')
			}
			render(b, x)
		}
		if n.End != nil {
			b.WriteString(n.End.Value.Value)
		}
	case *ast.FunctionCall:
		b.WriteString(n.Function.Value)
		if n.Args != nil {
			render(b, n.Args)
		} else {
			b.WriteString("()")
		}
	default:
		b.WriteString(Placeholder)
	}
}

// operand renders x, parenthesized if it binds more loosely than prec.
func operand(b *strings.Builder, x ast.Node, prec int) {
	if y, ok := x.(*ast.BinaryOp); ok && y.Op.Kind.Precedence() < prec {
		b.WriteByte('(')
		render(b, x)
		b.WriteByte(')')
		return
	}
	render(b, x)
}
