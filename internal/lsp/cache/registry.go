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

package cache

import (
	"os"

	"gnls.dev/go/gn/errors"
	"gnls.dev/go/internal/help"
)

// A Registry owns the open documents, keyed by file path. It implements
// the operations a host invokes on behalf of an editor.
//
// A Registry is not safe for concurrent use. Hosts that serve requests
// concurrently must serialize all operations on a given path.
type Registry struct {
	opts *Options
	docs map[string]*Document
	help *help.Catalog
}

// NewRegistry returns an empty registry. opts may be nil.
func NewRegistry(opts *Options) *Registry {
	return &Registry{
		opts: opts,
		docs: make(map[string]*Document),
		help: &help.Catalog{},
	}
}

// SetHelpBaseURL changes the documentation site that help links point to.
func (r *Registry) SetHelpBaseURL(url string) { r.help.BaseURL = url }

// Update creates the document for path, if needed, and replaces its
// content.
func (r *Registry) Update(path, content string) {
	d, ok := r.docs[path]
	if !ok {
		d = NewDocument(path, r.opts)
		r.docs[path] = d
		d.log.Debug().Str("path", path).Str("root", d.Root()).Msg("opened document")
	}
	d.Update(content)
}

// Close releases the document for path. Closing an unknown path is a
// no-op.
func (r *Registry) Close(path string) {
	delete(r.docs, path)
}

// Get returns the document for path.
func (r *Registry) Get(path string) (*Document, bool) {
	d, ok := r.docs[path]
	return d, ok
}

// Len returns the number of open documents.
func (r *Registry) Len() int { return len(r.docs) }

// Validate returns the syntax error of the document for path. It
// returns nil if the document is valid or unknown.
func (r *Registry) Validate(path string) *errors.SyntaxError {
	if d, ok := r.docs[path]; ok {
		return d.Err()
	}
	return nil
}

// Analyze reports the context at the 1-based line and column of the
// document for path. It reports false if path is unknown.
func (r *Registry) Analyze(path string, line, column int) (Context, bool) {
	d, ok := r.docs[path]
	if !ok {
		return Context{}, false
	}
	return d.Analyze(line, column), true
}

// Parse returns the outline and declarations of the document for path.
// If path is unknown and content is given, an unregistered document is
// parsed instead. It reports false if there is no document or it has no
// syntax tree.
func (r *Registry) Parse(path string, content ...string) (*Scope, bool) {
	d, ok := r.document(path, content)
	if !ok {
		return nil, false
	}
	return d.Scope()
}

// Format returns the formatted content of the document for path, with
// the same fallback as [Registry.Parse]. It returns "" and false if there
// is no document; the result is "" when the document has errors or the
// formatter fails.
func (r *Registry) Format(path string, content ...string) (string, bool) {
	d, ok := r.document(path, content)
	if !ok {
		return "", false
	}
	return d.Format(), true
}

// Help looks up the documentation for a function or variable.
func (r *Registry) Help(kind help.Kind, name string) (help.Entry, bool) {
	return r.help.Lookup(kind, name)
}

// document returns the registered document for path or, failing that, an
// ephemeral one holding the first element of content.
func (r *Registry) document(path string, content []string) (*Document, bool) {
	if d, ok := r.docs[path]; ok {
		return d, true
	}
	if len(content) == 0 {
		return nil, false
	}
	d := NewDocument(path, r.opts)
	d.Update(content[0])
	return d, true
}

// ReadDeclares returns the declarations of the GN file at path. The
// content of an open document takes precedence over the file on disk.
func (r *Registry) ReadDeclares(path string) ([]Declare, error) {
	d, ok := r.docs[path]
	if !ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		d = NewDocument(path, r.opts)
		d.Update(string(data))
	}
	if d.Err() != nil {
		return nil, d.Err()
	}
	return Declares(d.Tree().Root), nil
}
