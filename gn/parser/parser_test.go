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
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/errors"
)

func TestParse(t *testing.T) {
	testCases := []struct{ desc, in, out string }{{
		"empty",
		"",
		"",
	}, {
		"assignment",
		"a = 1",
		"(a = 1)",
	}, {
		"append list with trailing comma",
		`sources += [ "a.cc", "b.cc", ]`,
		`(sources += ["a.cc", "b.cc"])`,
	}, {
		"remove",
		`cflags -= [ "-Werror" ]`,
		`(cflags -= ["-Werror"])`,
	}, {
		"call with block",
		"executable(\"hello\") {\n  testonly = true\n}\n",
		`executable("hello"){(testonly = true)}`,
	}, {
		"call without block",
		`import("//build/config.gni")`,
		`import("//build/config.gni")`,
	}, {
		"call with several args",
		`foo("a", 1, bar)`,
		`foo("a", 1, bar)`,
	}, {
		"nested calls",
		"foo(bar(1)) {\n}",
		"foo(bar(1)){}",
	}, {
		"condition chain",
		"if (a == 1 || !b) {\n} else if (c) {\n  d = 2\n} else {\n}",
		"if ((a == 1) || !b) {} else if c {(d = 2)} else {}",
	}, {
		"accessors",
		"a.b = c[1]",
		"(a.b = c[1])",
	}, {
		"negative number",
		"x = -5",
		"(x = -5)",
	}, {
		"left associative",
		"x = 1 + 2 - 3",
		"(x = ((1 + 2) - 3))",
	}, {
		"precedence",
		"x = a && b || c == d",
		"(x = ((a && b) || (c == d)))",
	}, {
		"parenthesised",
		"x = b && (c || d)",
		"(x = (b && (c || d)))",
	}, {
		"relational",
		"x = a + 1 < b",
		"(x = ((a + 1) < b))",
	}, {
		"scope value",
		"x = {\n  a = 1\n}",
		"(x = {(a = 1)})",
	}, {
		"comments are skipped",
		"# leading\na = 1  # trailing\n# last\n",
		"(a = 1)",
	}, {
		"several statements",
		"a = 1\nb = \"x\"\nc(1)\n",
		`(a = 1); (b = "x"); c(1)`,
	}, {
		"empty list",
		"deps = []",
		"(deps = [])",
	}}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			f, err := ParseFile("", tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(debugStr(f.Root), tc.out))
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct{ in, msg, pos string }{
		{"a", "Expecting assignment or function call.", "1:1"},
		{"a + b", "Expecting assignment or function call.", "1:1"},
		{"foo(1,)", "Trailing comma not allowed in function call arguments.", "1:6"},
		{"if (a) {", "Unexpected end of file, unmatched '{'.", "1:8"},
		{"a.b.c = 1", `May only use "." for identifiers.`, "1:4"},
		{"a[0][1] = 1", "May only subscript identifiers.", "1:5"},
		{"a = [1 2]", "Expected ',' or ']', got token '2'.", "1:8"},
		{"a = [1,", "Unexpected end of file, unmatched '['.", "1:5"},
		{"if (a) {\n} else b = 1", "Expected '{' or 'if' after 'else'.", "2:8"},
		{"1 = a", "The left-hand side of an assignment must be an identifier, scope access, or array access.", "1:1"},
		{"a = - 1", "Unexpected token '-'.", "1:5"},
		{"a = ", "Unexpected end of file.", "1:5"},
		{"a = }", "Unexpected token '}'.", "1:5"},
		{"if a {}", "Expected '(', got token 'a'.", "1:4"},
		{"a = \"x", "Unterminated string literal.", "1:5"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			f, err := ParseFile("", tc.in)
			qt.Assert(t, qt.IsNil(f))
			var serr *errors.SyntaxError
			qt.Assert(t, qt.ErrorAs(err, &serr))
			qt.Check(t, qt.Equals(serr.Error(), tc.msg))
			qt.Check(t, qt.Equals(serr.Position().String(), tc.pos))
		})
	}
}

func TestParseErrorHelp(t *testing.T) {
	_, err := ParseFile("BUILD.gn", "if (a {\n}")
	var serr *errors.SyntaxError
	qt.Assert(t, qt.ErrorAs(err, &serr))
	qt.Assert(t, qt.Equals(serr.Position().Filename, "BUILD.gn"))
	qt.Assert(t, qt.Equals(serr.Help, `Condition of "if" statement must be followed by ")".`))
	qt.Assert(t, qt.HasLen(serr.Ranges(), 1))
	qt.Assert(t, qt.Equals(serr.Range().String(), "BUILD.gn:1:7-1:8"))
}

func TestRanges(t *testing.T) {
	src := "executable(\"a\") {\n  x = 1\n}\nif (a) {\n} else {\n}\n"
	f, err := ParseFile("", src)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(f.Root.Statements, 2))

	call := f.Root.Statements[0].(*ast.FunctionCall)
	qt.Check(t, qt.Equals(call.Range().String(), "1:1-3:2"))
	qt.Check(t, qt.Equals(call.Args.Range().String(), "1:11-1:16"))
	qt.Check(t, qt.Equals(call.Block.Range().String(), "1:17-3:2"))

	assign := call.Block.Statements[0].(*ast.BinaryOp)
	qt.Check(t, qt.Equals(assign.Range().String(), "2:3-2:8"))
	qt.Check(t, qt.IsTrue(assign.IsAssignment()))

	cond := f.Root.Statements[1].(*ast.Condition)
	qt.Check(t, qt.Equals(cond.Range().String(), "4:1-6:2"))
	qt.Check(t, qt.Equals(cond.Cond.Range().String(), "4:5-4:6"))

	qt.Check(t, qt.Equals(f.Range().String(), "1:1-6:2"))
}

func TestParseComments(t *testing.T) {
	src := "# one\na = 1 # two\n"
	f, err := ParseFile("", src)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(f.Comments, 0))

	f, err = ParseFile("", src, ParseComments)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(f.Comments, 2))
	qt.Assert(t, qt.Equals(f.Comments[1].Value, "# two"))
	qt.Assert(t, qt.Equals(f.Comments[1].Range.String(), "2:7-2:12"))
}

func TestParseExpr(t *testing.T) {
	x, err := ParseExpr("", `is_linux && !is_chromeos`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(debugStr(x), "(is_linux && !is_chromeos)"))

	_, err = ParseExpr("", `a b`)
	qt.Assert(t, qt.ErrorMatches(err, `Unexpected token 'b'.`))
}

func TestReadSource(t *testing.T) {
	_, err := ParseFile("", 42)
	qt.Assert(t, qt.ErrorMatches(err, `invalid source type int`))

	f, err := ParseFile("", strings.NewReader("a = 1"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(f.Root.Statements, 1))
}

// debugStr renders a tree in a compact form that makes structure and
// operator grouping visible.
func debugStr(n ast.Node) string {
	switch n := n.(type) {
	case nil:
		return "<nil>"
	case *ast.Identifier:
		return n.Value.Value
	case *ast.Literal:
		return n.Value.Value
	case *ast.Accessor:
		if n.Member != nil {
			return n.Base.Value + "." + n.Member.Value.Value
		}
		return n.Base.Value + "[" + debugStr(n.Subscript) + "]"
	case *ast.BinaryOp:
		return "(" + debugStr(n.Left) + " " + n.Op.Value + " " + debugStr(n.Right) + ")"
	case *ast.UnaryOp:
		return n.Op.Value + debugStr(n.Operand)
	case *ast.List:
		var a []string
		for _, x := range n.Contents {
			a = append(a, debugStr(x))
		}
		return n.Begin.Value + strings.Join(a, ", ") + n.End.Value.Value
	case *ast.FunctionCall:
		s := n.Function.Value + debugStr(n.Args)
		if n.Block != nil {
			s += debugStr(n.Block)
		}
		return s
	case *ast.Block:
		var a []string
		for _, x := range n.Statements {
			a = append(a, debugStr(x))
		}
		if !n.Begin.IsValid() {
			return strings.Join(a, "; ")
		}
		return "{" + strings.Join(a, "; ") + "}"
	case *ast.Condition:
		s := "if " + debugStr(n.Cond) + " " + debugStr(n.IfTrue)
		if n.IfFalse != nil {
			s += " else " + debugStr(n.IfFalse)
		}
		return s
	case *ast.End:
		return n.Value.Value
	}
	return "?"
}
