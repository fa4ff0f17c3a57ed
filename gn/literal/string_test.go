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

package literal

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestUnquote(t *testing.T) {
	testCases := []struct {
		in, out string
		err     error
	}{
		{`""`, "", nil},
		{`"abc"`, "abc", nil},
		{`":hello_static"`, ":hello_static", nil},
		{`"a\"b"`, `a"b`, nil},
		{`"a\\b"`, `a\b`, nil},
		{`"\$x"`, `$x`, nil},
		{`"$target_gen_dir/x"`, `$target_gen_dir/x`, nil},
		{`"${a}b"`, `${a}b`, nil},
		{`"a\nb"`, `a\nb`, nil},
		{`"a"b"`, "", errSyntax},
		{`"a\\"b"`, "", errSyntax},
		{`abc`, "", errUnquoted},
		{`"abc`, "", errUnquoted},
		{`"`, "", errUnquoted},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Unquote(tc.in)
			qt.Assert(t, qt.Equals(err, tc.err))
			qt.Assert(t, qt.Equals(got, tc.out))
		})
	}
}

func TestTrim(t *testing.T) {
	qt.Check(t, qt.Equals(Trim(`"//base:base"`), "//base:base"))
	qt.Check(t, qt.Equals(Trim(`"//ba`), "//ba"))
	qt.Check(t, qt.Equals(Trim(`x`), "x"))
	qt.Check(t, qt.Equals(Trim(`""`), ""))
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "abc", `a"b`, `a\b`, "$x"} {
		q := Quote(s)
		got, err := Unquote(q)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, s), qt.Commentf("quoted as %s", q))
	}
}
