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

package format

import (
	"bytes"
	"math"
	"strings"

	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/token"
)

const indentUnit = "  "

// A printer writes a syntax tree. Comments are not attached to nodes;
// instead they are interleaved by source position: comments preceding a
// statement or list element are written on their own lines before it, and
// a comment on the last line of a statement follows it on the same line.
type printer struct {
	cfg *config
	buf bytes.Buffer

	comments []ast.Token
	next     int // index of the first comment not yet written

	indent int
}

var endOfFile = token.Position{Line: math.MaxInt32}

func (p *printer) file(f *ast.File) {
	p.statements(f.Root.Statements, endOfFile)
}

// statements writes one statement per line followed by the comments that
// precede end.
func (p *printer) statements(list []ast.Node, end token.Position) {
	prev := 0
	for _, s := range list {
		r := s.Range()
		prev = p.leadingComments(r.Begin, prev)
		p.blankLine(prev, r.Begin.Line)
		p.writeIndent()
		p.statement(s)
		prev = r.End.Line
		p.trailingComment(prev)
		p.newline()
	}
	p.leadingComments(end, prev)
}

// leadingComments writes all pending comments that start before pos, each
// on its own line. It returns the source line of the last item written.
func (p *printer) leadingComments(pos token.Position, prev int) int {
	for p.next < len(p.comments) {
		c := p.comments[p.next]
		if !c.Range.Begin.Before(pos) {
			break
		}
		p.blankLine(prev, c.Range.Begin.Line)
		p.writeIndent()
		p.write(c.Value)
		p.newline()
		prev = c.Range.Begin.Line
		p.next++
	}
	return prev
}

func (p *printer) trailingComment(line int) {
	if p.next < len(p.comments) && p.comments[p.next].Range.Begin.Line == line {
		p.write("  ")
		p.write(p.comments[p.next].Value)
		p.next++
	}
}

// hasComments reports whether a pending comment starts within r.
func (p *printer) hasComments(r token.Range) bool {
	for _, c := range p.comments[p.next:] {
		if !c.Range.Begin.Before(r.End) {
			break
		}
		if r.Contains(c.Range.Begin) {
			return true
		}
	}
	return false
}

// blankLine keeps a single empty line where the source separated two items
// by one or more. prev is zero at the start of a block.
func (p *printer) blankLine(prev, line int) {
	if prev > 0 && line > prev+1 {
		p.newline()
	}
}

func (p *printer) write(s string) { p.buf.WriteString(s) }

func (p *printer) newline() { p.buf.WriteByte('\n') }

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.write(indentUnit)
	}
}

// column returns the number of bytes written on the current line.
func (p *printer) column() int {
	b := p.buf.Bytes()
	return len(b) - (bytes.LastIndexByte(b, '\n') + 1)
}

func (p *printer) statement(n ast.Node) {
	switch n := n.(type) {
	case *ast.BinaryOp:
		if n.IsAssignment() {
			p.expr(n.Left, token.LowestPrec)
			p.write(" " + n.Op.Value + " ")
			p.value(n.Right)
			return
		}
		p.expr(n, token.LowestPrec)
	case *ast.Condition:
		p.condition(n)
	default:
		p.expr(n, token.LowestPrec)
	}
}

func (p *printer) condition(n *ast.Condition) {
	p.write("if (")
	p.expr(n.Cond, token.LowestPrec)
	p.write(") ")
	p.block(n.IfTrue)
	switch x := n.IfFalse.(type) {
	case *ast.Condition:
		p.write(" else ")
		p.condition(x)
	case *ast.Block:
		p.write(" else ")
		p.block(x)
	}
}

func (p *printer) block(b *ast.Block) {
	p.write("{")
	p.newline()
	p.indent++
	end := endOfFile
	if b.End != nil {
		end = b.End.Range().Begin
	}
	p.statements(b.Statements, end)
	p.indent--
	p.writeIndent()
	p.write("}")
}

// value writes the right-hand side of an assignment. Lists with more than
// one element are written one element per line.
func (p *printer) value(n ast.Node) {
	if l, ok := n.(*ast.List); ok {
		p.list(l, len(l.Contents) > 1)
		return
	}
	p.expr(n, token.LowestPrec)
}

func (p *printer) expr(n ast.Node, prec int) {
	switch n := n.(type) {
	case *ast.Identifier:
		p.write(n.Value.Value)
	case *ast.Literal:
		p.write(n.Value.Value)
	case *ast.Accessor:
		p.write(n.Base.Value)
		switch {
		case n.Member != nil:
			p.write(".")
			p.write(n.Member.Value.Value)
		case n.Subscript != nil:
			p.write("[")
			p.expr(n.Subscript, token.LowestPrec)
			p.write("]")
		}
	case *ast.BinaryOp:
		opPrec := n.Op.Kind.Precedence()
		paren := opPrec < prec
		if paren {
			p.write("(")
		}
		p.expr(n.Left, opPrec)
		p.write(" " + n.Op.Value + " ")
		p.expr(n.Right, opPrec+1)
		if paren {
			p.write(")")
		}
	case *ast.UnaryOp:
		p.write(n.Op.Value)
		p.expr(n.Operand, token.UnaryPrec)
	case *ast.FunctionCall:
		p.write(n.Function.Value)
		p.write("(")
		if n.Args != nil {
			for i, x := range n.Args.Contents {
				if i > 0 {
					p.write(", ")
				}
				p.expr(x, token.LowestPrec)
			}
		}
		p.write(")")
		if n.Block != nil {
			p.write(" ")
			p.block(n.Block)
		}
	case *ast.List:
		p.list(n, false)
	case *ast.Block:
		p.block(n)
	case *ast.Condition:
		p.condition(n)
	case *ast.End:
		p.write(n.Value.Value)
	}
}

// list writes l on a single line if it fits, unless multiline is set or l
// contains comments.
func (p *printer) list(l *ast.List, multiline bool) {
	hasComments := p.hasComments(l.Range())
	if len(l.Contents) == 0 && !hasComments {
		p.write("[]")
		return
	}
	if !multiline && !hasComments {
		if s, ok := p.inline(l); ok && p.column()+len(s) <= p.cfg.width {
			p.write(s)
			return
		}
	}

	p.write("[")
	p.newline()
	p.indent++
	prev := 0
	for _, x := range l.Contents {
		r := x.Range()
		prev = p.leadingComments(r.Begin, prev)
		p.blankLine(prev, r.Begin.Line)
		p.writeIndent()
		p.expr(x, token.LowestPrec)
		p.write(",")
		prev = r.End.Line
		p.trailingComment(prev)
		p.newline()
	}
	end := endOfFile
	if l.End != nil {
		end = l.End.Range().Begin
	}
	p.leadingComments(end, prev)
	p.indent--
	p.writeIndent()
	p.write("]")
}

// inline renders l on one line. It reports false if an element cannot be
// written on a single line.
func (p *printer) inline(l *ast.List) (string, bool) {
	q := &printer{cfg: &config{width: math.MaxInt32}, indent: p.indent}
	q.write("[ ")
	for i, x := range l.Contents {
		if i > 0 {
			q.write(", ")
		}
		q.expr(x, token.LowestPrec)
	}
	q.write(" ]")
	s := q.buf.String()
	return s, !strings.Contains(s, "\n")
}
