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

package parser

import (
	"fmt"

	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/errors"
	"gnls.dev/go/gn/token"
)

// The parser structure holds the parser's internal state.
type parser struct {
	filename string
	toks     []ast.Token // non-comment tokens, terminated by EOF
	comments []ast.Token
	err      *errors.SyntaxError

	// Tracing/debugging
	mode   Mode // parsing mode
	trace  bool // == (mode & Trace != 0)
	indent int  // indentation used for tracing output

	// Next token
	index int       // index of tok in toks
	tok   ast.Token // one token look-ahead
}

// bailout is used to abort parsing at the first error.
type bailout struct{}

func (p *parser) init(filename string, toks []ast.Token, mode Mode) {
	p.filename = filename
	p.mode = mode
	p.trace = mode&Trace != 0
	for _, t := range toks {
		if t.Kind == token.COMMENT {
			p.comments = append(p.comments, t)
			continue
		}
		p.toks = append(p.toks, t)
	}
	if n := len(p.toks); n == 0 || p.toks[n-1].Kind != token.EOF {
		var end token.Position
		if n > 0 {
			end = p.toks[n-1].Range.End
		}
		p.toks = append(p.toks, ast.Token{Kind: token.EOF, Range: token.NewRange(end, end)})
	}
	p.index = -1
	p.next()
}

// ----------------------------------------------------------------------------
// Parsing support

func (p *parser) printTrace(a ...interface{}) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	const n = len(dots)
	pos := p.tok.Range.Begin
	fmt.Printf("%5d:%3d: ", pos.Line, pos.Column)
	i := 2 * p.indent
	for i > n {
		fmt.Print(dots)
		i -= n
	}
	// i <= n
	fmt.Print(dots[0:i])
	fmt.Println(a...)
}

func trace(p *parser, msg string) *parser {
	p.printTrace(msg, "(")
	p.indent++
	return p
}

// Usage pattern: defer un(trace(p, "..."))
func un(p *parser) {
	p.indent--
	p.printTrace(")")
}

// Advance to the next token.
func (p *parser) next() {
	if p.trace && p.index >= 0 {
		s := p.tok.Kind.String()
		switch {
		case p.tok.Kind.IsLiteral():
			p.printTrace(s, p.tok.Value)
		case p.tok.Kind.IsOperator(), p.tok.Kind.IsKeyword():
			p.printTrace("\"" + s + "\"")
		default:
			p.printTrace(s)
		}
	}
	if p.index < len(p.toks)-1 {
		p.index++
	}
	p.tok = p.toks[p.index]
}

// peek returns the Kind of the token after the current one.
func (p *parser) peek() token.Token {
	if p.index+1 < len(p.toks) {
		return p.toks[p.index+1].Kind
	}
	return token.EOF
}

// errf records the first syntax error and aborts parsing.
func (p *parser) errf(t ast.Token, help, msg string, args ...interface{}) {
	pos := t.Range.Begin
	pos.Filename = p.filename
	err := errors.Newf(pos, msg, args...)
	r := t.Range
	r.Begin.Filename = p.filename
	r.End.Filename = p.filename
	if t.Range.IsValid() && t.Kind != token.EOF {
		err.WithRange(r)
	}
	if help != "" {
		err.WithHelp(help)
	}
	p.err = err
	panic(bailout{})
}

func describe(t ast.Token) string {
	switch t.Kind {
	case token.EOF:
		return "end of file"
	}
	return fmt.Sprintf("token '%s'", t.Value)
}

func (p *parser) errorExpected(obj, help string) {
	if p.tok.Kind == token.EOF {
		p.errf(p.tok, help, "Expected %s, got end of file.", obj)
	}
	p.errf(p.tok, help, "Expected %s, got %s.", obj, describe(p.tok))
}

func (p *parser) expect(tok token.Token, help string) ast.Token {
	t := p.tok
	if t.Kind != tok {
		p.errorExpected("'"+tok.String()+"'", help)
	}
	p.next() // make progress
	return t
}

// ----------------------------------------------------------------------------
// Statements

func (p *parser) parseFile() *ast.File {
	if p.trace {
		defer un(trace(p, "File"))
	}
	root := &ast.Block{}
	for p.tok.Kind != token.EOF {
		root.Statements = append(root.Statements, p.parseStatement())
	}
	f := &ast.File{
		Filename: p.filename,
		Root:     root,
		Tokens:   p.toks,
	}
	if p.mode&ParseComments != 0 {
		f.Comments = p.comments
	}
	return f
}

func (p *parser) parseStatement() ast.Node {
	if p.trace {
		defer un(trace(p, "Statement"))
	}
	if p.tok.Kind == token.IF {
		return p.parseCondition()
	}

	start := p.tok
	x := p.parseBinaryExpr(token.LowestPrec + 2)
	if p.tok.Kind.IsAssign() {
		switch x.(type) {
		case *ast.Identifier, *ast.Accessor:
		default:
			p.errf(start, "", "The left-hand side of an assignment must be an identifier, scope access, or array access.")
		}
		op := p.tok
		p.next()
		return &ast.BinaryOp{Op: op, Left: x, Right: p.parseBinaryExpr(token.LowestPrec + 2)}
	}
	if _, ok := x.(*ast.FunctionCall); ok {
		return x
	}
	p.errf(start, "", "Expecting assignment or function call.")
	return nil
}

func (p *parser) parseCondition() *ast.Condition {
	if p.trace {
		defer un(trace(p, "Condition"))
	}
	c := &ast.Condition{If: p.expect(token.IF, "")}
	p.expect(token.LPAREN, "If statements need an opening \"(\" after \"if\".")
	c.Cond = p.parseExpr()
	p.expect(token.RPAREN, "Condition of \"if\" statement must be followed by \")\".")
	c.IfTrue = p.parseBlock()
	if p.tok.Kind == token.ELSE {
		p.next()
		switch p.tok.Kind {
		case token.IF:
			c.IfFalse = p.parseCondition()
		case token.LBRACE:
			c.IfFalse = p.parseBlock()
		default:
			p.errf(p.tok, "", "Expected '{' or 'if' after 'else'.")
		}
	}
	return c
}

func (p *parser) parseBlock() *ast.Block {
	if p.trace {
		defer un(trace(p, "Block"))
	}
	b := &ast.Block{Begin: p.expect(token.LBRACE, "")}
	for p.tok.Kind != token.RBRACE {
		if p.tok.Kind == token.EOF {
			p.errf(b.Begin, "", "Unexpected end of file, unmatched '{'.")
		}
		b.Statements = append(b.Statements, p.parseStatement())
	}
	b.End = &ast.End{Value: p.tok}
	p.next()
	return b
}

// ----------------------------------------------------------------------------
// Expressions

func (p *parser) parseExpr() ast.Node {
	if p.trace {
		defer un(trace(p, "Expression"))
	}
	return p.parseBinaryExpr(token.LowestPrec + 2)
}

// parseBinaryExpr parses operators of at least precedence prec1. All binary
// operators are left associative.
func (p *parser) parseBinaryExpr(prec1 int) ast.Node {
	if p.trace {
		defer un(trace(p, "BinaryExpr"))
	}
	x := p.parseUnaryExpr()
	for {
		op := p.tok
		prec := op.Kind.Precedence()
		if prec < prec1 || op.Kind.IsAssign() {
			return x
		}
		p.next()
		y := p.parseBinaryExpr(prec + 1)
		x = &ast.BinaryOp{Op: op, Left: x, Right: y}
	}
}

func (p *parser) parseUnaryExpr() ast.Node {
	if p.trace {
		defer un(trace(p, "UnaryExpr"))
	}
	switch p.tok.Kind {
	case token.NOT:
		op := p.tok
		p.next()
		return &ast.UnaryOp{Op: op, Operand: p.parseUnaryExpr()}
	case token.SUB:
		// Negative numbers are a single literal.
		op := p.tok
		if p.peek() == token.INT {
			p.next()
			lit := p.tok
			if lit.Range.Begin == op.Range.End {
				p.next()
				return &ast.Literal{Value: ast.Token{
					Kind:  token.INT,
					Value: "-" + lit.Value,
					Range: op.Range.Union(lit.Range),
				}}
			}
		}
		p.errf(op, "", "Unexpected token '-'.")
	}
	return p.parsePrimaryExpr()
}

func (p *parser) parsePrimaryExpr() ast.Node {
	if p.trace {
		defer un(trace(p, "PrimaryExpr"))
	}
	t := p.tok
	switch t.Kind {
	case token.INT, token.STRING, token.TRUE, token.FALSE:
		p.next()
		return &ast.Literal{Value: t}

	case token.IDENT:
		p.next()
		switch p.tok.Kind {
		case token.LPAREN:
			return p.parseCall(t)
		case token.PERIOD:
			p.next()
			member := p.tok
			if member.Kind != token.IDENT {
				p.errf(member, "", "Expected identifier for member access, got %s.", describe(member))
			}
			p.next()
			x := &ast.Accessor{Base: t, Member: &ast.Identifier{Value: member}}
			p.checkSuffix()
			return x
		case token.LBRACK:
			p.next()
			x := &ast.Accessor{Base: t, Subscript: p.parseExpr()}
			x.RBrack = p.expect(token.RBRACK, "Subscript must be followed by \"]\".")
			p.checkSuffix()
			return x
		}
		return &ast.Identifier{Value: t}

	case token.LBRACK:
		return p.parseList(token.RBRACK, true)

	case token.LBRACE:
		return p.parseBlock()

	case token.LPAREN:
		p.next()
		x := p.parseExpr()
		p.expect(token.RPAREN, "Expected closing ')' for parenthesized expression.")
		return x
	}

	if t.Kind == token.EOF {
		p.errf(t, "", "Unexpected end of file.")
	}
	p.errf(t, "", "Unexpected token '%s'.", t.Value)
	return nil
}

// checkSuffix reports chained accessors, which GN does not support.
func (p *parser) checkSuffix() {
	switch p.tok.Kind {
	case token.PERIOD:
		p.errf(p.tok, "", "May only use \".\" for identifiers.")
	case token.LBRACK:
		p.errf(p.tok, "", "May only subscript identifiers.")
	case token.LPAREN:
		p.errf(p.tok, "", "Function calls require a plain identifier as the function name.")
	}
}

func (p *parser) parseCall(name ast.Token) *ast.FunctionCall {
	if p.trace {
		defer un(trace(p, "Call"))
	}
	call := &ast.FunctionCall{Function: name, Args: p.parseList(token.RPAREN, false)}
	if p.tok.Kind == token.LBRACE {
		call.Block = p.parseBlock()
	}
	return call
}

func (p *parser) parseList(closing token.Token, allowTrailingComma bool) *ast.List {
	if p.trace {
		defer un(trace(p, "List"))
	}
	l := &ast.List{Begin: p.tok}
	p.next()
	justGotComma := false
	for p.tok.Kind != closing {
		if p.tok.Kind == token.EOF {
			p.errf(l.Begin, "", "Unexpected end of file, unmatched '%s'.", l.Begin.Value)
		}
		if len(l.Contents) > 0 && !justGotComma {
			p.errf(p.tok, "", "Expected ',' or '%s', got %s.", closing, describe(p.tok))
		}
		l.Contents = append(l.Contents, p.parseExpr())
		justGotComma = false
		if p.tok.Kind == token.COMMA {
			comma := p.tok
			p.next()
			justGotComma = true
			if p.tok.Kind == closing && !allowTrailingComma {
				p.errf(comma, "", "Trailing comma not allowed in function call arguments.")
			}
		}
	}
	l.End = &ast.End{Value: p.tok}
	p.next()
	return l
}
