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

// Package errors defines shared types for handling GN errors.
//
// The pivotal error type in GN packages is the interface type Error.
// The information available in such errors can be most easily retrieved
// using the Errors and Print functions.
package errors // import "gnls.dev/go/gn/errors"

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"gnls.dev/go/gn/token"
)

// New is a convenience wrapper for [errors.New] in the core library.
// It does not return a GN error.
func New(msg string) error {
	return errors.New(msg)
}

// Unwrap returns the result of calling the Unwrap method on err, if err
// implements Unwrap. Otherwise, Unwrap returns nil.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so,
// sets target to that error value and returns true.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// A Handler is a generic error handler used throughout GN packages.
//
// The position points to the beginning of the offending value.
type Handler func(pos token.Position, msg string, args []interface{})

// Error is the common error message.
type Error interface {
	// Position returns the primary position of an error.
	Position() token.Position

	// Ranges returns the source spans highlighted by the error, if any.
	Ranges() []token.Range

	// Error reports the error message without position information.
	Error() string

	// Msg returns the unformatted error message and its arguments.
	Msg() (format string, args []interface{})
}

// A SyntaxError is reported when GN source cannot be tokenized or parsed.
type SyntaxError struct {
	Location token.Position
	Spans    []token.Range
	Message  string
	Help     string

	format string
	args   []interface{}
}

// Newf creates a SyntaxError with the given location and formatted message.
func Newf(pos token.Position, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Location: pos,
		Message:  fmt.Sprintf(format, args...),
		format:   format,
		args:     args,
	}
}

// WithRange adds a highlighted range to e and returns e.
func (e *SyntaxError) WithRange(r ...token.Range) *SyntaxError {
	for _, r := range r {
		if r.IsValid() {
			e.Spans = append(e.Spans, r)
		}
	}
	return e
}

// WithHelp sets the help text of e and returns e.
func (e *SyntaxError) WithHelp(help string) *SyntaxError {
	e.Help = help
	return e
}

func (e *SyntaxError) Position() token.Position { return e.Location }

func (e *SyntaxError) Ranges() []token.Range { return e.Spans }

func (e *SyntaxError) Error() string { return e.Message }

func (e *SyntaxError) Msg() (string, []interface{}) {
	if e.format == "" {
		return "%s", []interface{}{e.Message}
	}
	return e.format, e.args
}

// Range returns the first highlighted range, or an empty range at the
// error location if there is none.
func (e *SyntaxError) Range() token.Range {
	if len(e.Spans) > 0 {
		return e.Spans[0]
	}
	return token.NewRange(e.Location, e.Location)
}

// List is a list of Errors.
// The zero value for a List is an empty List ready to use.
type List []Error

func (p *List) add(err Error) {
	*p = append(*p, err)
}

// AddNewf adds an Error with given position and error message to a List.
func (p *List) AddNewf(pos token.Position, msg string, args ...interface{}) {
	p.add(Newf(pos, msg, args...))
}

// Add adds an Error to a List. Errors that do not implement Error are
// wrapped in one without position information.
func (p *List) Add(err error) {
	for _, e := range Errors(err) {
		p.add(e)
	}
}

// Reset resets a List to no errors.
func (p *List) Reset() { *p = (*p)[:0] }

// Sort sorts a List by file name, line and column.
func (p List) Sort() {
	slices.SortStableFunc(p, func(a, b Error) int {
		e, f := a.Position(), b.Position()
		if c := cmp.Compare(e.Filename, f.Filename); c != 0 {
			return c
		}
		if c := e.Compare(f); c != 0 {
			return c
		}
		return cmp.Compare(a.Error(), b.Error())
	})
}

// A List implements the error interface.
func (p List) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", p[0], len(p)-1)
}

// Err returns an error equivalent to this error list.
// If the list is empty, Err returns nil.
func (p List) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

type wrapped struct {
	err error
}

func (w *wrapped) Position() token.Position { return token.Position{} }
func (w *wrapped) Ranges() []token.Range    { return nil }
func (w *wrapped) Error() string            { return w.err.Error() }
func (w *wrapped) Unwrap() error            { return w.err }
func (w *wrapped) Msg() (string, []interface{}) {
	return "%s", []interface{}{w.err.Error()}
}

// Errors reports the individual errors associated with an error, which is
// the error itself if there is only one or, if the underlying type is List,
// its individual elements. If the given error is not an Error, it will be
// promoted to one.
func Errors(err error) []Error {
	if err == nil {
		return nil
	}
	var list List
	if errors.As(err, &list) {
		return slices.Clone(list)
	}
	var e Error
	if errors.As(err, &e) {
		return []Error{e}
	}
	return []Error{&wrapped{err}}
}

// Config defines the options for printing errors.
type Config struct {
	// Format formats the given string and arguments and writes it to w.
	// It is used for all printing.
	Format func(w io.Writer, format string, args ...interface{})

	// Cwd is the current working directory. Filename positions
	// are taken relative to this path.
	Cwd string

	// ToSlash sets whether to use Unix paths. Mostly used for testing.
	ToSlash bool
}

// Print is a utility function that prints a list of errors to w,
// one error per line, if the err parameter is a List. Otherwise
// it prints the err string.
func Print(w io.Writer, err error, cfg *Config) {
	if cfg == nil {
		cfg = &Config{}
	}
	for _, e := range Errors(err) {
		printError(w, e, cfg)
	}
}

// Details is a convenience wrapper for Print to return the error text as a
// string.
func Details(err error, cfg *Config) string {
	var b strings.Builder
	Print(&b, err, cfg)
	return b.String()
}

func printError(w io.Writer, err Error, cfg *Config) {
	fprintf := cfg.Format
	if fprintf == nil {
		fprintf = func(w io.Writer, format string, args ...interface{}) {
			fmt.Fprintf(w, format, args...)
		}
	}

	msg, args := err.Msg()
	fprintf(w, msg, args...)

	if pos := err.Position(); pos.IsValid() || pos.Filename != "" {
		pos.Filename = relPath(pos.Filename, cfg)
		fprintf(w, ":\n    %s", pos)
	}
	var help string
	if e, ok := err.(*SyntaxError); ok {
		help = e.Help
	}
	if help != "" {
		for _, line := range strings.Split(help, "\n") {
			fprintf(w, "\n    %s", line)
		}
	}
	fprintf(w, "\n")
}

func relPath(path string, cfg *Config) string {
	if path == "" {
		return path
	}
	if cfg.Cwd != "" {
		if p, err := filepath.Rel(cfg.Cwd, path); err == nil && !strings.HasPrefix(p, "..") {
			path = p
			// Some IDEs (e.g. VSCode) only recognize a path if it starts
			// with a dot. This also helps to distinguish between local
			// files and builtin packages.
			if !strings.HasPrefix(path, ".") {
				path = fmt.Sprintf(".%c%s", filepath.Separator, path)
			}
		}
	}
	if cfg.ToSlash {
		path = filepath.ToSlash(path)
	}
	return path
}
