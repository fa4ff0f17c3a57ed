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

package server

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
	"go.lsp.dev/protocol"

	"gnls.dev/go/gn/token"
)

func TestMapper(t *testing.T) {
	// é is two bytes and one UTF-16 unit; 𝄞 is four bytes and two units.
	m := newMapper("a = 1\ns = \"é𝄞x\"\n")
	qt.Assert(t, qt.Equals(m.lineCount(), 3))

	testCases := []struct {
		line, char    uint32
		gnLine, gnCol int
	}{
		{0, 0, 1, 1},
		{0, 4, 1, 5},
		{0, 99, 1, 6},
		{1, 5, 2, 6},  // é
		{1, 6, 2, 8},  // 𝄞
		{1, 8, 2, 12}, // x
		{2, 0, 3, 1},
		{7, 3, 8, 4},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d:%d", tc.line, tc.char), func(t *testing.T) {
			line, col := m.toGN(protocol.Position{Line: tc.line, Character: tc.char})
			qt.Assert(t, qt.Equals(line, tc.gnLine))
			qt.Assert(t, qt.Equals(col, tc.gnCol))
			if tc.line < 2 && tc.char < 99 {
				p := m.position(token.Position{Line: line, Column: col})
				qt.Assert(t, qt.Equals(p, protocol.Position{Line: tc.line, Character: tc.char}))
			}
		})
	}
}

func TestMapperRange(t *testing.T) {
	m := newMapper("a = 1\nb = 2\n")
	r := m.rng(token.NewRange(token.Position{Line: 1, Column: 5}, token.Position{Line: 1, Column: 6}))
	qt.Assert(t, qt.Equals(rng(r), "0:4-0:5"))

	// Without an end the range covers the rest of the line.
	r = m.rng(token.Range{Begin: token.Position{Line: 2, Column: 3}})
	qt.Assert(t, qt.Equals(rng(r), "1:2-2:0"))
}

func TestParseReference(t *testing.T) {
	testCases := []struct {
		in      string
		abs     string
		partial string
		target  string
		colon   bool
	}{
		{"//lib:greet", "/src/lib", "/src/lib", "greet", true},
		{"//lib", "/src/lib", "/src", "lib", false},
		{"//lib/sub", "/src/lib/sub", "/src/lib", "sub", false},
		{"//", "/src", "/src", "src", false},
		{":local", "/src/app", "/src/app", "local", true},
		{"file.cc", "/src/app/file.cc", "/src/app", "file.cc", false},
		{"sub/", "/src/app/sub", "/src/app/sub", "sub", false},
		{"/usr/include", "/usr/include", "/usr", "include", false},
		{"//a:b:c", "/src/a", "/src/a", "b", true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			r := parseReference(tc.in, "/src", "/src/app/BUILD.gn")
			qt.Check(t, qt.Equals(r.abs(), tc.abs))
			qt.Check(t, qt.Equals(r.partialDir(), tc.partial))
			qt.Check(t, qt.Equals(r.target(), tc.target))
			qt.Check(t, qt.Equals(r.colon, tc.colon))
		})
	}
}

func TestTextEdits(t *testing.T) {
	testCases := []struct{ before, after string }{
		{"", ""},
		{"a=1\n", "a = 1\n"},
		{"a = 1\nb=2\nc = 3\n", "a = 1\nb = 2\nc = 3\n"},
		{"a = 1\n\n\nb = 2\n", "a = 1\n\nb = 2\n"},
		{"x = [1,2]\n", "x = [\n  1,\n  2,\n]\n"},
	}
	for _, tc := range testCases {
		edits := textEdits("BUILD.gn", tc.before, tc.after)
		qt.Check(t, qt.Equals(applyEdits(tc.before, edits), tc.after), qt.Commentf("%q", tc.before))
		for _, e := range edits {
			qt.Check(t, qt.Equals(e.Range.Start.Character, uint32(0)))
			qt.Check(t, qt.Equals(e.Range.End.Character, uint32(0)))
		}
	}
}
