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

package token

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
)

func checkPos(t *testing.T, msg string, got, want Position) {
	if got.Filename != want.Filename {
		t.Errorf("%s: got filename = %q; want %q", msg, got.Filename, want.Filename)
	}
	if got.Offset != want.Offset {
		t.Errorf("%s: got offset = %d; want %d", msg, got.Offset, want.Offset)
	}
	if got.Line != want.Line {
		t.Errorf("%s: got line = %d; want %d", msg, got.Line, want.Line)
	}
	if got.Column != want.Column {
		t.Errorf("%s: got column = %d; want %d", msg, got.Column, want.Column)
	}
}

var tests = []struct {
	filename string
	source   []byte
	lines    []int
}{
	{"a", []byte{}, []int{0}},
	{"b", []byte("01234"), []int{0}},
	{"c", []byte("\n\n\n"), []int{0, 1, 2, 3}},
	{"d", []byte("a = 1\n\nb = 2"), []int{0, 6, 7}},
	{"e", []byte("a = 1\n\nb = 2\n"), []int{0, 6, 7, 13}},
}

func linecol(lines []int, offs int) (int, int) {
	prevLineOffs := 0
	for line, lineOffs := range lines {
		if offs < lineOffs {
			return line, offs - prevLineOffs + 1
		}
		prevLineOffs = lineOffs
	}
	return len(lines), offs - prevLineOffs + 1
}

func TestPositions(t *testing.T) {
	for _, test := range tests {
		f := NewFile(test.filename, len(test.source))
		f.SetLinesForContent(test.source)
		qt.Assert(t, qt.Equals(f.Name(), test.filename))
		qt.Assert(t, qt.DeepEquals(f.lines, test.lines))
		qt.Assert(t, qt.Equals(f.LineCount(), len(test.lines)))

		for offs := 0; offs <= f.Size(); offs++ {
			line, col := linecol(test.lines, offs)
			msg := fmt.Sprintf("%s (offs = %d)", f.Name(), offs)
			pos := f.Position(offs)
			checkPos(t, msg, pos, Position{f.Name(), offs, line, col})
			if got := f.Offset(pos.Line, pos.Column); got != offs {
				t.Errorf("%s: Offset(%d, %d) = %d; want %d", msg, pos.Line, pos.Column, got, offs)
			}
		}
	}
}

func TestOffsetClamps(t *testing.T) {
	src := []byte("ab\ncd\n")
	f := NewFile("x", len(src))
	f.SetLinesForContent(src)

	qt.Check(t, qt.Equals(f.Offset(0, 4), 0))
	qt.Check(t, qt.Equals(f.Offset(1, 0), 0))
	qt.Check(t, qt.Equals(f.Offset(1, 10), 2))
	qt.Check(t, qt.Equals(f.Offset(2, 2), 4))
	qt.Check(t, qt.Equals(f.Offset(9, 1), len(src)))
	qt.Check(t, qt.Equals(f.Position(-3).Offset, 0))
	qt.Check(t, qt.Equals(f.Position(99).Offset, len(src)))
}

func TestPositionString(t *testing.T) {
	qt.Check(t, qt.Equals(Position{}.String(), "-"))
	qt.Check(t, qt.Equals(Position{Filename: "BUILD.gn"}.String(), "BUILD.gn"))
	qt.Check(t, qt.Equals(Position{Line: 3, Column: 4}.String(), "3:4"))
	qt.Check(t, qt.Equals(Position{Filename: "BUILD.gn", Line: 3, Column: 4}.String(), "BUILD.gn:3:4"))
}

func pos(line, column int) Position {
	return Position{Line: line, Column: column}
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		a, b Position
		want int
	}{
		{pos(1, 1), pos(1, 1), 0},
		{pos(1, 1), pos(1, 2), -1},
		{pos(1, 9), pos(2, 1), -1},
		{pos(3, 1), pos(2, 40), 1},
		{pos(2, 5), pos(2, 4), 1},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v_%v", tc.a, tc.b), func(t *testing.T) {
			qt.Assert(t, qt.Equals(tc.a.Compare(tc.b), tc.want))
			qt.Assert(t, qt.Equals(tc.b.Compare(tc.a), -tc.want))
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(pos(2, 3), pos(4, 1))
	testCases := []struct {
		p    Position
		want bool
	}{
		{pos(2, 2), false},
		{pos(2, 3), true},
		{pos(3, 100), true},
		{pos(3, 1), true},
		{pos(4, 1), false},
		{pos(5, 1), false},
	}
	for _, tc := range testCases {
		qt.Check(t, qt.Equals(r.Contains(tc.p), tc.want), qt.Commentf("%v", tc.p))
	}

	empty := NewRange(pos(1, 1), pos(1, 1))
	qt.Check(t, qt.IsFalse(empty.Contains(pos(1, 1))))
}

func TestRangeUnion(t *testing.T) {
	a := NewRange(pos(1, 5), pos(1, 9))
	b := NewRange(pos(2, 1), pos(3, 2))
	qt.Check(t, qt.Equals(a.Union(b), NewRange(pos(1, 5), pos(3, 2))))
	qt.Check(t, qt.Equals(b.Union(a), NewRange(pos(1, 5), pos(3, 2))))
	qt.Check(t, qt.Equals(a.Union(Range{}), a))
	qt.Check(t, qt.Equals(Range{}.Union(b), b))

	qt.Check(t, qt.IsTrue(a.Union(b).ContainsRange(a)))
	qt.Check(t, qt.IsTrue(a.Union(b).ContainsRange(b)))
	qt.Check(t, qt.IsFalse(a.ContainsRange(b)))
}
