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

// Package format implements standard formatting of GN build files.
//
// The layout follows the style of "gn format": two-space indentation,
// spaces around binary operators, one list element per line for
// multi-element lists assigned to a variable, and at most one blank line
// between statements. Comments are kept in place.
package format // import "gnls.dev/go/gn/format"

import (
	"fmt"

	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/parser"
)

// An Option sets behavior of the formatter.
type Option func(c *config)

// Width sets the column limit past which single-line lists are broken
// over several lines. The default is 80.
func Width(n int) Option {
	return func(c *config) { c.width = n }
}

type config struct {
	width int
}

func newConfig(opts []Option) *config {
	cfg := &config{width: 80}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// Source formats src in canonical GN format and returns the result or an
// (I/O or syntax) error. src is expected to be a syntactically correct GN
// file.
func Source(src []byte, opts ...Option) ([]byte, error) {
	f, err := parser.ParseFile("", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	return Node(f, opts...)
}

// Node formats f in canonical GN format. Comments are taken from
// f.Comments, so f should be parsed with [parser.ParseComments] to keep
// them.
func Node(f *ast.File, opts ...Option) ([]byte, error) {
	if f == nil || f.Root == nil {
		return nil, fmt.Errorf("gn/format: no syntax tree to format")
	}
	p := &printer{cfg: newConfig(opts), comments: f.Comments}
	p.file(f)
	return p.buf.Bytes(), nil
}
