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

package cache_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"gnls.dev/go/internal/lsp/cache"
)

// sym is the part of a [cache.Symbol] that does not depend on positions.
type sym struct {
	Kind     cache.SymbolKind
	Name     string
	Children []sym
}

func shape(syms []cache.Symbol) []sym {
	var out []sym
	for _, s := range syms {
		out = append(out, sym{s.Kind, s.Name, shape(s.Children)})
	}
	return out
}

func outline(t *testing.T, src string) []cache.Symbol {
	t.Helper()
	d := cache.NewDocument("", nil)
	d.Update(src)
	qt.Assert(t, qt.IsNil(d.Err()))
	scope, ok := d.Scope()
	qt.Assert(t, qt.IsTrue(ok))
	return scope.Symbols
}

func TestOutline(t *testing.T) {
	testCases := []struct {
		desc string
		src  string
		want []sym
	}{{
		desc: "ordering",
		src:  "a = 1\nb(1) {\n  c = 2\n}\n",
		want: []sym{
			{cache.SymbolVariable, "a", nil},
			{cache.SymbolFunction, "b(1)", []sym{
				{cache.SymbolVariable, "c", nil},
			}},
		},
	}, {
		desc: "append and remove",
		src:  "sources += [ \"a.cc\" ]\ncflags -= [ \"-Werror\" ]\n",
		want: []sym{
			{cache.SymbolVariable, "sources", nil},
			{cache.SymbolVariable, "cflags", nil},
		},
	}, {
		desc: "accessor targets",
		src:  "a.b = 1\nc[0] = 2\n",
		want: []sym{
			{cache.SymbolVariable, "a.b", nil},
			{cache.SymbolVariable, "c[0]", nil},
		},
	}, {
		desc: "call without block",
		src:  "import(\"//build/config.gni\")\n",
		want: []sym{
			{cache.SymbolFunction, `import("//build/config.gni")`, nil},
		},
	}, {
		desc: "else chain",
		src: `if (a) {
  x = 1
} else if (b == "c") {
  y = 2
} else {
  z = 3
}
`,
		want: []sym{
			{cache.SymbolBoolean, "a", []sym{
				{cache.SymbolVariable, "x", nil},
				{cache.SymbolOperator, "else", []sym{
					{cache.SymbolBoolean, `b=="c"`, []sym{
						{cache.SymbolVariable, "y", nil},
						{cache.SymbolOperator, "else", []sym{
							{cache.SymbolVariable, "z", nil},
						}},
					}},
				}},
			}},
		},
	}, {
		desc: "expressions",
		src:  "if (!(a || b) && c) {\n}\nfoo(x + 1, [ 1, 2 ], y.z)\n",
		want: []sym{
			{cache.SymbolBoolean, "!(a||b)&&c", nil},
			{cache.SymbolFunction, "foo(x+1,[1,2],y.z)", nil},
		},
	}, {
		desc: "scope values are opaque",
		src:  "s = {\n  a = 1\n}\n",
		want: []sym{
			{cache.SymbolVariable, "s", nil},
		},
	}, {
		desc: "nested calls",
		src:  "template(\"t\") {\n  group(target_name) {\n    forward_variables_from(invoker, \"*\")\n  }\n}\n",
		want: []sym{
			{cache.SymbolFunction, `template("t")`, []sym{
				{cache.SymbolFunction, "group(target_name)", []sym{
					{cache.SymbolFunction, `forward_variables_from(invoker,"*")`, nil},
				}},
			}},
		},
	}, {
		desc: "empty",
		src:  "# nothing here\n",
		want: nil,
	}}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := shape(outline(t, tc.src))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("outline mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOutlineSimpleBuild(t *testing.T) {
	dir := extract(t, "simple_build.txtar")
	r := cache.NewRegistry(nil)
	path := open(t, r, dir, "build/BUILD.gn")

	scope, ok := r.Parse(path)
	qt.Assert(t, qt.IsTrue(ok))
	want := []sym{
		{cache.SymbolFunction, `config("compiler_defaults")`, []sym{
			{cache.SymbolBoolean, `current_os=="linux"`, []sym{
				{cache.SymbolVariable, "cflags", nil},
			}},
		}},
		{cache.SymbolFunction, `config("executable_ldconfig")`, []sym{
			{cache.SymbolBoolean, "!is_mac", []sym{
				{cache.SymbolVariable, "ldflags", nil},
			}},
		}},
	}
	if diff := cmp.Diff(want, shape(scope.Symbols)); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}

	cfg := scope.Symbols[0]
	qt.Check(t, qt.Equals(lc(cfg.Range.Begin), "5:1"))
	qt.Check(t, qt.Equals(lc(cfg.Range.End), "12:2"))
	qt.Check(t, qt.Equals(lc(cfg.SelectionRange.Begin), "5:1"))
	qt.Check(t, qt.Equals(lc(cfg.SelectionRange.End), "5:28"))
	cond := cfg.Children[0]
	qt.Check(t, qt.Equals(lc(cond.SelectionRange.Begin), "6:7"))
	qt.Check(t, qt.Equals(lc(cond.SelectionRange.End), "6:28"))
}

func TestOutlineToolchain(t *testing.T) {
	dir := extract(t, "simple_build.txtar")
	r := cache.NewRegistry(nil)
	path := open(t, r, dir, "build/toolchain/BUILD.gn")
	scope, ok := r.Parse(path)
	qt.Assert(t, qt.IsTrue(ok))

	// Follow toolchain("gcc") > tool("solink") > is_mac > else.
	syms := scope.Symbols
	for _, step := range []struct {
		name string
		kind cache.SymbolKind
	}{
		{`toolchain("gcc")`, cache.SymbolFunction},
		{`tool("solink")`, cache.SymbolFunction},
		{"is_mac", cache.SymbolBoolean},
		{"else", cache.SymbolOperator},
		{"os_specific_option", cache.SymbolVariable},
	} {
		s, ok := find(syms, step.name)
		qt.Assert(t, qt.IsTrue(ok), qt.Commentf("no symbol %s", step.name))
		qt.Assert(t, qt.Equals(s.Kind, step.kind))
		syms = s.Children
	}
}

func find(syms []cache.Symbol, name string) (cache.Symbol, bool) {
	for _, s := range syms {
		if s.Name == name {
			return s, true
		}
	}
	return cache.Symbol{}, false
}

func TestSelectionRangeContainment(t *testing.T) {
	dir := extract(t, "simple_build.txtar")
	r := cache.NewRegistry(nil)
	for _, name := range []string{"BUILD.gn", "build/BUILD.gn", "build/toolchain/BUILD.gn"} {
		path := open(t, r, dir, name)
		scope, ok := r.Parse(path)
		qt.Assert(t, qt.IsTrue(ok))
		var check func(parent *cache.Symbol, syms []cache.Symbol)
		check = func(parent *cache.Symbol, syms []cache.Symbol) {
			for i := range syms {
				s := &syms[i]
				qt.Check(t, qt.IsTrue(s.Range.IsValid()), qt.Commentf("%s: %s", name, s.Name))
				qt.Check(t, qt.IsTrue(s.Range.ContainsRange(s.SelectionRange)),
					qt.Commentf("%s: %s: %v not within %v", name, s.Name, s.SelectionRange, s.Range))
				if parent != nil {
					qt.Check(t, qt.IsTrue(parent.Range.ContainsRange(s.Range)),
						qt.Commentf("%s: %s outside %s", name, s.Name, parent.Name))
				}
				check(s, s.Children)
			}
		}
		check(nil, scope.Symbols)
	}
}

func TestSymbolKindString(t *testing.T) {
	qt.Assert(t, qt.Equals(cache.SymbolFunction.String(), "function"))
	qt.Assert(t, qt.Equals(cache.SymbolOperator.String(), "operator"))
	qt.Assert(t, qt.Equals(cache.SymbolKind(0).String(), "SymbolKind(0)"))
	b, err := cache.SymbolBoolean.MarshalText()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(b), "boolean"))
}
