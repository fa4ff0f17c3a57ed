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
	"strings"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"gnls.dev/go/gn/token"
)

// A mapper converts between the byte columns of GN positions and the
// UTF-16 columns of the protocol. Lines are counted from one in GN and
// from zero in the protocol.
type mapper struct {
	content string
	lines   []int // offset of the start of each line
}

func newMapper(content string) *mapper {
	m := &mapper{content: content, lines: []int{0}}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			m.lines = append(m.lines, i+1)
		}
	}
	return m
}

// line returns the text of the zero-based line i, without its newline.
func (m *mapper) line(i int) (string, bool) {
	if i < 0 || i >= len(m.lines) {
		return "", false
	}
	end := len(m.content)
	if i+1 < len(m.lines) {
		end = m.lines[i+1]
	}
	return strings.TrimSuffix(m.content[m.lines[i]:end], "\n"), true
}

// lineCount returns the number of lines, counting a final line without a
// newline.
func (m *mapper) lineCount() int { return len(m.lines) }

// toGN returns the one-based line and byte column of p. Positions past the
// end of a line map to the column just after it.
func (m *mapper) toGN(p protocol.Position) (line, column int) {
	text, ok := m.line(int(p.Line))
	if !ok {
		return int(p.Line) + 1, int(p.Character) + 1
	}
	units := 0
	for i, r := range text {
		if units >= int(p.Character) {
			return int(p.Line) + 1, i + 1
		}
		units += utf16Len(r)
	}
	return int(p.Line) + 1, len(text) + 1
}

// position returns the protocol position of pos.
func (m *mapper) position(pos token.Position) protocol.Position {
	line := pos.Line - 1
	col := pos.Column - 1
	text, ok := m.line(line)
	if !ok || col > len(text) {
		return protocol.Position{Line: uint32(max(line, 0)), Character: uint32(max(col, 0))}
	}
	units := 0
	for _, r := range text[:col] {
		units += utf16Len(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(units)}
}

// rng returns the protocol range of r. A range without an end extends to
// the start of the following line.
func (m *mapper) rng(r token.Range) protocol.Range {
	start := m.position(r.Begin)
	if !r.End.IsValid() {
		return protocol.Range{Start: start, End: protocol.Position{Line: start.Line + 1}}
	}
	return protocol.Range{Start: start, End: m.position(r.End)}
}

func utf16Len(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}
