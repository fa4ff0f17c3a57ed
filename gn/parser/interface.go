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

// This file contains the exported entry points for invoking the parser.

// Package parser implements a parser for GN build files. Input may be
// provided in a variety of forms (see the various Parse* functions); the
// output is a syntax tree representing the GN source.
package parser // import "gnls.dev/go/gn/parser"

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/errors"
	"gnls.dev/go/gn/scanner"
	"gnls.dev/go/gn/token"
)

// Option specifies a parse option.
type Option interface {
	apply(cfg *Config)
}

// Config represents the end result of applying a set of options.
type Config struct {
	// Mode holds a bitmask of boolean parser options.
	Mode Mode
}

// NewConfig returns the configuration containing all default values
// with the given options applied.
func NewConfig(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	return cfg
}

// A Mode value is a set of flags (or 0).
// It controls optional parser functionality.
//
// Mode implements [Option] by or-ing all its bits
// with [Config.Mode].
type Mode uint

const (
	// ParseComments causes comments to be recorded in [ast.File.Comments].
	ParseComments Mode = 1 << iota

	// Trace causes parsing to print a trace of parsed productions.
	Trace
)

// apply implements [Option].
func (m Mode) apply(c *Config) {
	c.Mode |= m
}

// Parse parses the tokens of a single GN file, as produced by
// [scanner.Tokenize], and returns the corresponding File node. COMMENT
// tokens are set aside.
//
// Parsing stops at the first syntax error. In that case the returned File
// is nil and the error is an *errors.SyntaxError.
func Parse(filename string, toks []ast.Token, opts ...Option) (f *ast.File, err error) {
	cfg := NewConfig(opts...)
	var p parser
	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(bailout); !ok {
				panic(e)
			}
			f, err = nil, p.err
		}
	}()
	p.init(filename, toks, cfg.Mode)
	return p.parseFile(), nil
}

// ParseFile parses the source code of a single GN source file and returns
// the corresponding File node. The source code may be provided via
// the filename of the source file, or via the src parameter.
//
// If src != nil, ParseFile parses the source from src and the filename is
// only used when recording position information. The type of the argument
// for the src parameter must be string, []byte, or io.Reader.
// If src == nil, ParseFile parses the file specified by filename.
//
// If the source couldn't be read, the returned AST is nil and the error
// indicates the specific failure. If the source was read but syntax
// errors were found, the result is nil and the error is an
// *errors.SyntaxError.
func ParseFile(filename string, src interface{}, opts ...Option) (*ast.File, error) {
	text, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}
	toks, err := scanner.Tokenize(token.NewFile(filename, len(text)), text)
	if err != nil {
		return nil, err
	}
	return Parse(filename, toks, opts...)
}

// ParseExpr is a convenience function for parsing a single expression.
func ParseExpr(filename string, src interface{}) (ast.Node, error) {
	text, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}
	toks, err := scanner.Tokenize(token.NewFile(filename, len(text)), text)
	if err != nil {
		return nil, err
	}
	var p parser
	var x ast.Node
	err = func() (err error) {
		defer func() {
			if e := recover(); e != nil {
				if _, ok := e.(bailout); !ok {
					panic(e)
				}
				err = p.err
			}
		}()
		p.init(filename, toks, 0)
		x = p.parseExpr()
		if p.tok.Kind != token.EOF {
			p.errf(p.tok, "", "Unexpected token '%s'.", p.tok.Value)
		}
		return nil
	}()
	if err != nil {
		return nil, err
	}
	return x, nil
}

// readSource converts src to a []byte if possible; otherwise it returns an
// error.
func readSource(filename string, src interface{}) ([]byte, error) {
	if src != nil {
		switch s := src.(type) {
		case string:
			return []byte(s), nil
		case []byte:
			return s, nil
		case *bytes.Buffer:
			// is io.Reader, but src is already available in []byte form
			if s != nil {
				return s.Bytes(), nil
			}
		case io.Reader:
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, s); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		}
		return nil, errors.New(fmt.Sprintf("invalid source type %T", src))
	}
	return os.ReadFile(filename)
}
