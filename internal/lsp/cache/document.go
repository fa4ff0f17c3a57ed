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

// Package cache holds the in-memory state of the GN files a client has
// open: their content, tokens, syntax trees and syntax errors. All
// queries are answered from the current tree of a [Document].
package cache

import (
	"github.com/rs/zerolog"

	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/errors"
	"gnls.dev/go/gn/parser"
	"gnls.dev/go/gn/scanner"
	"gnls.dev/go/gn/token"
)

// DefaultRootMarker is the file that marks the source root of a GN
// project.
const DefaultRootMarker = ".gn"

// Options configures the documents of a [Registry].
type Options struct {
	// RootMarker is the name of the file searched for when discovering
	// the project root. It defaults to [DefaultRootMarker].
	RootMarker string

	// Formatter reformats document content. It defaults to
	// [BuiltinFormatter].
	Formatter Formatter

	// Logger receives debug events. Nothing is logged if it is nil.
	Logger *zerolog.Logger
}

func (o *Options) rootMarker() string {
	if o == nil || o.RootMarker == "" {
		return DefaultRootMarker
	}
	return o.RootMarker
}

func (o *Options) logger() *zerolog.Logger {
	if o == nil || o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}

func (o *Options) formatter() Formatter {
	if o == nil || o.Formatter == nil {
		return BuiltinFormatter{}
	}
	return o.Formatter
}

// A Document is a single GN file and the result of parsing its most
// recent content. A Document is not safe for concurrent use.
type Document struct {
	path      string
	root      string
	formatter Formatter
	log       *zerolog.Logger

	content string
	file    *token.File
	tokens  []ast.Token
	tree    *ast.File
	err     *errors.SyntaxError
}

// NewDocument returns an empty document for the file at path. The
// project root is discovered once, here, by searching the parent
// directories of path.
func NewDocument(path string, opts *Options) *Document {
	return &Document{
		path:      path,
		root:      FindRoot(dirOf(path), opts.rootMarker()),
		formatter: opts.formatter(),
		log:       opts.logger(),
	}
}

// Update replaces the content of d and parses it. The parser only runs if
// tokenizing succeeds. On failure the error is recorded and d has no tree
// until the next successful update.
func (d *Document) Update(content string) {
	d.content = content
	src := []byte(content)
	file := token.NewFile(d.path, len(src))

	tokens, err := scanner.Tokenize(file, src)
	var tree *ast.File
	if err == nil {
		tree, err = parser.Parse(d.path, tokens, parser.ParseComments)
	}
	if err != nil {
		d.file, d.tokens, d.tree = nil, nil, nil
		d.err = asSyntaxError(err)
		d.log.Debug().Str("path", d.path).Err(err).Msg("document has errors")
		return
	}
	d.file, d.tokens, d.tree, d.err = file, tokens, tree, nil
}

func asSyntaxError(err error) *errors.SyntaxError {
	var serr *errors.SyntaxError
	if errors.As(err, &serr) {
		return serr
	}
	return errors.Newf(token.Position{}, "%v", err)
}

// Path returns the file path d was created for.
func (d *Document) Path() string { return d.path }

// Root returns the project root directory, or "" if none was found.
func (d *Document) Root() string { return d.root }

// Content returns the content of the last update.
func (d *Document) Content() string { return d.content }

// Tokens returns all tokens of the current content, including comments.
// It returns nil when the content has errors.
func (d *Document) Tokens() []ast.Token { return d.tokens }

// File returns the line table of the current content, or nil when the
// content has errors.
func (d *Document) File() *token.File { return d.file }

// Tree returns the current syntax tree, or nil if the last update failed.
func (d *Document) Tree() *ast.File { return d.tree }

// Err returns the error of the last update, or nil.
func (d *Document) Err() *errors.SyntaxError { return d.err }

// Analyze reports the context at the given 1-based line and byte column.
func (d *Document) Analyze(line, column int) Context {
	var c Context
	if d.tree != nil {
		c = Analyze(d.tree.Root, token.Position{Line: line, Column: column})
	}
	c.Root = d.root
	return c
}

// A Scope is the outline of a document together with its declarations.
type Scope struct {
	Symbols  []Symbol
	Declares []Declare
}

// Scope returns the outline and declarations of the current tree. It
// reports false if d has no tree.
func (d *Document) Scope() (*Scope, bool) {
	if d.tree == nil {
		return nil, false
	}
	return &Scope{
		Symbols:  Outline(d.tree.Root),
		Declares: Declares(d.tree.Root),
	}, true
}

// Format returns the content of d in canonical format, or "" if d has
// errors or the formatter fails.
func (d *Document) Format() string {
	if d.err != nil {
		return ""
	}
	out, err := d.formatter.Format(d.path, []byte(d.content))
	if err != nil {
		d.log.Debug().Str("path", d.path).Err(err).Msg("formatting failed")
		return ""
	}
	return string(out)
}
