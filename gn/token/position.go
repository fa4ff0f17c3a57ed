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
	"sort"
)

// -----------------------------------------------------------------------------
// Positions

// Position describes an arbitrary and printable source position within a file,
// including offset, line, and column location.
//
// A Position is valid if the line number is > 0.
type Position struct {
	Filename string // filename, if any
	Offset   int    // offset, starting at 0
	Line     int    // line number, starting at 1
	Column   int    // column number, starting at 1 (byte count)
}

// IsValid reports whether the position is valid.
func (pos Position) IsValid() bool { return pos.Line > 0 }

// String returns a human-readable form of a position in one of several forms:
//
//	file:line:column    valid position with file name
//	line:column         valid position without file name
//	file                invalid position with file name
//	-                   invalid position without file name
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Compare returns an integer comparing two positions by line and then by
// column. The result is 0 if pos == q, -1 if pos < q, and +1 if pos > q.
// File names and offsets are not taken into account.
func (pos Position) Compare(q Position) int {
	switch {
	case pos.Line < q.Line:
		return -1
	case pos.Line > q.Line:
		return 1
	case pos.Column < q.Column:
		return -1
	case pos.Column > q.Column:
		return 1
	}
	return 0
}

// Before reports whether pos comes strictly before q.
func (pos Position) Before(q Position) bool { return pos.Compare(q) < 0 }

// Add returns the position n bytes further on the same line.
func (pos Position) Add(n int) Position {
	pos.Offset += n
	pos.Column += n
	return pos
}

// -----------------------------------------------------------------------------
// Ranges

// A Range is a half-open span [Begin, End) of source positions.
type Range struct {
	Begin Position
	End   Position
}

// NewRange returns the range spanning from begin up to, but excluding, end.
func NewRange(begin, end Position) Range {
	return Range{Begin: begin, End: end}
}

// IsValid reports whether the range has a valid beginning.
func (r Range) IsValid() bool { return r.Begin.IsValid() }

// Contains reports whether p lies within r: Begin <= p < End.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Begin) && p.Before(r.End)
}

// ContainsRange reports whether s lies entirely within r.
func (r Range) ContainsRange(s Range) bool {
	return !s.Begin.Before(r.Begin) && !r.End.Before(s.End)
}

// Union returns the smallest range covering both r and s. An invalid
// operand is ignored.
func (r Range) Union(s Range) Range {
	switch {
	case !r.IsValid():
		return s
	case !s.IsValid():
		return r
	}
	if s.Begin.Before(r.Begin) {
		r.Begin = s.Begin
	}
	if r.End.Before(s.End) {
		r.End = s.End
	}
	return r
}

func (r Range) String() string {
	if !r.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s-%d:%d", r.Begin, r.End.Line, r.End.Column)
}

// -----------------------------------------------------------------------------
// File

// A File has a name, size, and line offset table.
type File struct {
	name  string // file name as provided to NewFile
	size  int    // file size as provided to NewFile
	lines []int  // lines contains the offset of the first character for each line (the first entry is always 0)
}

// NewFile returns a new file with the given OS file name. The size provides the
// size of the whole file.
func NewFile(filename string, size int) *File {
	return &File{
		name:  filename,
		size:  size,
		lines: []int{0},
	}
}

// Name returns the file name of file f as registered with NewFile.
func (f *File) Name() string {
	return f.name
}

// Size returns the size of file f as passed to NewFile.
func (f *File) Size() int {
	return f.size
}

// LineCount returns the number of lines in file f.
func (f *File) LineCount() int {
	return len(f.lines)
}

// AddLine adds the line offset for a new line.
// The line offset must be larger than the offset for the previous line
// and not larger than the file size; otherwise the line offset is ignored.
func (f *File) AddLine(offset int) {
	if i := len(f.lines); (i == 0 || f.lines[i-1] < offset) && offset <= f.size {
		f.lines = append(f.lines, offset)
	}
}

// SetLinesForContent sets the line offsets for the given file content.
func (f *File) SetLinesForContent(content []byte) {
	lines := []int{0}
	for offset, b := range content {
		if b == '\n' {
			lines = append(lines, offset+1)
		}
	}
	f.lines = lines
}

// fixOffset fixes an out-of-bounds offset such that 0 <= offset <= f.size.
func (f *File) fixOffset(offset int) int {
	switch {
	case offset < 0:
		return 0
	case offset > f.size:
		return f.size
	default:
		return offset
	}
}

// Position returns the Position value for the given file offset.
// If offset is out of bounds, it is clamped to the file.
func (f *File) Position(offset int) (pos Position) {
	offset = f.fixOffset(offset)
	pos.Filename = f.name
	pos.Offset = offset
	if i := searchInts(f.lines, offset); i >= 0 {
		pos.Line, pos.Column = i+1, offset-f.lines[i]+1
	}
	return pos
}

// Offset returns the byte offset for the 1-based line and column. Lines and
// columns past the end of the file or a line are clamped.
func (f *File) Offset(line, column int) int {
	if line < 1 {
		return 0
	}
	if line > len(f.lines) {
		return f.size
	}
	start := f.lines[line-1]
	end := f.size
	if line < len(f.lines) {
		end = f.lines[line] - 1
	}
	offset := start + column - 1
	if offset < start {
		return start
	}
	if offset > end {
		return end
	}
	return offset
}

// LineStart returns the offset of the first byte of the given 1-based line.
func (f *File) LineStart(line int) int {
	if line < 1 || line > len(f.lines) {
		panic(fmt.Sprintf("invalid line number %d (should be >= 1 and <= %d)", line, len(f.lines)))
	}
	return f.lines[line-1]
}

// -----------------------------------------------------------------------------
// Helper functions

func searchInts(a []int, x int) int {
	return sort.Search(len(a), func(i int) bool { return a[i] > x }) - 1
}
