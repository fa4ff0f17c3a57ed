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

package astutil_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/ast/astutil"
	"gnls.dev/go/gn/parser"
	"gnls.dev/go/gn/token"
)

func kinds(path []ast.Node) string {
	var a []string
	for _, n := range path {
		a = append(a, strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast."))
	}
	return strings.Join(a, " ")
}

func TestPath(t *testing.T) {
	const src = "foo(bar(1)) {\n  x = [ a, \"b\" ]\n}\n"
	f, err := parser.ParseFile("BUILD.gn", src)
	qt.Assert(t, qt.IsNil(err))

	testCases := []struct {
		line, column int
		want         string
	}{
		{1, 1, "Block FunctionCall"},
		{1, 9, "Block FunctionCall List FunctionCall List Literal"},
		{1, 5, "Block FunctionCall List FunctionCall"},
		{1, 12, "Block FunctionCall"},
		{1, 13, "Block FunctionCall Block"},
		{2, 3, "Block FunctionCall Block BinaryOp Identifier"},
		{2, 11, "Block FunctionCall Block BinaryOp List"},
		{2, 12, "Block FunctionCall Block BinaryOp List Literal"},
		{2, 16, "Block FunctionCall Block BinaryOp List"},
		{3, 1, "Block FunctionCall Block"},
		{3, 2, ""},
		{4, 1, ""},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d:%d", tc.line, tc.column), func(t *testing.T) {
			p := token.Position{Line: tc.line, Column: tc.column}
			qt.Assert(t, qt.Equals(kinds(astutil.Path(f.Root, p)), tc.want))
		})
	}
}

func TestPathCondition(t *testing.T) {
	const src = "if (a) {\n  b = 1\n} else if (!c) {\n  d = 2\n} else {\n  e = 3\n}\n"
	f, err := parser.ParseFile("", src)
	qt.Assert(t, qt.IsNil(err))

	testCases := []struct {
		line, column int
		want         string
	}{
		{1, 5, "Block Condition Identifier"},
		{2, 3, "Block Condition Block BinaryOp Identifier"},
		{3, 13, "Block Condition Condition UnaryOp Identifier"},
		{4, 7, "Block Condition Condition Block BinaryOp Literal"},
		{6, 3, "Block Condition Condition Block BinaryOp Identifier"},
	}
	for _, tc := range testCases {
		p := token.Position{Line: tc.line, Column: tc.column}
		qt.Check(t, qt.Equals(kinds(astutil.Path(f.Root, p)), tc.want), qt.Commentf("%d:%d", tc.line, tc.column))
	}
}

func TestPathAccessor(t *testing.T) {
	f, err := parser.ParseFile("", "x = a[b] + c.d\n")
	qt.Assert(t, qt.IsNil(err))

	at := func(column int) string {
		return kinds(astutil.Path(f.Root, token.Position{Line: 1, Column: column}))
	}
	qt.Check(t, qt.Equals(at(5), "Block BinaryOp BinaryOp Accessor"))
	qt.Check(t, qt.Equals(at(7), "Block BinaryOp BinaryOp Accessor Identifier"))
	qt.Check(t, qt.Equals(at(12), "Block BinaryOp BinaryOp Accessor"))
	qt.Check(t, qt.Equals(at(14), "Block BinaryOp BinaryOp Accessor Identifier"))
}

func TestPathEmpty(t *testing.T) {
	p := token.Position{Line: 1, Column: 1}
	qt.Assert(t, qt.HasLen(astutil.Path(nil, p), 0))

	// Leading whitespace lies outside the file's statements.
	f, err := parser.ParseFile("", "  a = 1\n")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(astutil.Path(f.Root, p), 0))

	f, err = parser.ParseFile("", "")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(astutil.Path(f.Root, p), 0))
}

// Every node on a path contains the point and lies within its parent.
func TestPathContainment(t *testing.T) {
	const src = `# Copyright
import("//build/config.gni")

if (is_linux && !is_chromeos) {
  sources += [ "linux.cc" ]
} else {
  sources -= [
    "a.cc",
    "b.cc",
  ]
}

template("tmpl") {
  action(target_name) {
    args = [ rebase_path(invoker.out, root_build_dir) ]
    forward_variables_from(invoker, "*")
  }
}
`
	f, err := parser.ParseFile("", src)
	qt.Assert(t, qt.IsNil(err))

	file := token.NewFile("", len(src))
	file.SetLinesForContent([]byte(src))
	for off := 0; off <= len(src); off++ {
		p := file.Position(off)
		path := astutil.Path(f.Root, p)
		for i, n := range path {
			qt.Assert(t, qt.IsTrue(n.Range().Contains(p)), qt.Commentf("%v does not contain %v", n.Range(), p))
			if i > 0 {
				parent := path[i-1].Range()
				qt.Assert(t, qt.IsTrue(parent.ContainsRange(n.Range())), qt.Commentf("%v not within %v", n.Range(), parent))
			}
		}
	}
}

// When siblings overlap, the first child in priority order wins.
func TestPathPriority(t *testing.T) {
	rng := func(c1, c2 int) token.Range {
		return token.NewRange(token.Position{Line: 1, Column: c1}, token.Position{Line: 1, Column: c2})
	}
	left := &ast.Identifier{Value: ast.Token{Kind: token.IDENT, Value: "l", Range: rng(1, 5)}}
	right := &ast.Identifier{Value: ast.Token{Kind: token.IDENT, Value: "r", Range: rng(3, 8)}}
	x := &ast.BinaryOp{Op: ast.Token{Kind: token.ADD, Value: "+", Range: rng(2, 3)}, Left: left, Right: right}

	path := astutil.Path(x, token.Position{Line: 1, Column: 4})
	qt.Assert(t, qt.HasLen(path, 2))
	qt.Assert(t, qt.Equals(path[1], ast.Node(left)))

	path = astutil.Path(x, token.Position{Line: 1, Column: 6})
	qt.Assert(t, qt.HasLen(path, 2))
	qt.Assert(t, qt.Equals(path[1], ast.Node(right)))
}
