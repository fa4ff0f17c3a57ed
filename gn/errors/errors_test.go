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

package errors

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	"gnls.dev/go/gn/token"
)

func pos(file string, line, column int) token.Position {
	return token.Position{Filename: file, Line: line, Column: column}
}

func TestSyntaxError(t *testing.T) {
	p := pos("BUILD.gn", 3, 5)
	r := token.NewRange(p, p.Add(4))
	err := Newf(p, "Unexpected token %q", "else").WithRange(r, token.Range{}).WithHelp("I was expecting a statement.")

	qt.Assert(t, qt.Equals(err.Error(), `Unexpected token "else"`))
	qt.Assert(t, qt.Equals(err.Position(), p))
	qt.Assert(t, qt.DeepEquals(err.Ranges(), []token.Range{r}))
	qt.Assert(t, qt.Equals(err.Range(), r))

	format, args := err.Msg()
	qt.Assert(t, qt.Equals(format, "Unexpected token %q"))
	qt.Assert(t, qt.DeepEquals(args, []interface{}{"else"}))

	bare := &SyntaxError{Location: p, Message: "bad"}
	qt.Assert(t, qt.Equals(bare.Range(), token.NewRange(p, p)))
	format, args = bare.Msg()
	qt.Assert(t, qt.Equals(fmt.Sprintf(format, args...), "bad"))
}

func TestList(t *testing.T) {
	var list List
	qt.Assert(t, qt.IsNil(list.Err()))
	qt.Assert(t, qt.Equals(list.Error(), "no errors"))

	list.AddNewf(pos("b.gn", 1, 1), "second file")
	list.AddNewf(pos("a.gn", 4, 2), "later")
	list.AddNewf(pos("a.gn", 2, 9), "earlier")
	list.Add(fmt.Errorf("plain"))
	list.Sort()

	var got []string
	for _, e := range list {
		got = append(got, e.Error())
	}
	qt.Assert(t, qt.DeepEquals(got, []string{"plain", "earlier", "later", "second file"}))
	qt.Assert(t, qt.Equals(list.Error(), "plain (and 3 more errors)"))
	qt.Assert(t, qt.HasLen(Errors(list.Err()), 4))

	list.Reset()
	qt.Assert(t, qt.HasLen(list, 0))
}

func TestErrors(t *testing.T) {
	qt.Assert(t, qt.IsNil(Errors(nil)))

	e := Newf(pos("x.gn", 1, 1), "oops")
	wrappedErr := fmt.Errorf("loading: %w", e)
	errs := Errors(wrappedErr)
	qt.Assert(t, qt.HasLen(errs, 1))
	qt.Assert(t, qt.Equals(errs[0], Error(e)))

	var target *SyntaxError
	qt.Assert(t, qt.IsTrue(As(wrappedErr, &target)))
	qt.Assert(t, qt.Equals(target, e))
	qt.Assert(t, qt.IsTrue(Is(wrappedErr, e)))
	qt.Assert(t, qt.Equals(Unwrap(wrappedErr), error(e)))
}

func TestPrint(t *testing.T) {
	cwd := filepath.FromSlash("/work/src")
	testCases := []struct {
		name string
		err  error
		want string
	}{{
		name: "relative",
		err:  Newf(pos(filepath.Join(cwd, "BUILD.gn"), 2, 3), "Expecting assignment or function call."),
		want: "Expecting assignment or function call.:\n    ./BUILD.gn:2:3\n",
	}, {
		name: "outside",
		err:  Newf(pos(filepath.FromSlash("/other/BUILD.gn"), 1, 1), "oops"),
		want: "oops:\n    /other/BUILD.gn:1:1\n",
	}, {
		name: "help",
		err:  Newf(pos("", 1, 7), "Unterminated string literal.").WithHelp("Strings end with a quote.\nAdd one."),
		want: "Unterminated string literal.:\n    1:7\n    Strings end with a quote.\n    Add one.\n",
	}, {
		name: "plain",
		err:  New("no position"),
		want: "no position\n",
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Details(tc.err, &Config{Cwd: cwd, ToSlash: true})
			qt.Assert(t, qt.Equals(got, tc.want))
		})
	}
}
