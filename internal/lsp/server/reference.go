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
	"path/filepath"
	"strings"
)

// A reference is the content of a string literal naming a file, a
// directory or a label: "//path/to/dir:name", "/abs/file", "rel/file".
type reference struct {
	base  string // directory the path is relative to
	path  string // path before the colon, without leading slashes
	name  string // label name after the colon
	colon bool
}

// parseReference interprets s, the unquoted content of a string literal
// in the file at filename. Source-absolute paths starting with "//" are
// relative to root.
func parseReference(s, root, filename string) reference {
	var r reference
	switch {
	case strings.HasPrefix(s, "//"):
		r.base = root
	case strings.HasPrefix(s, "/"):
		r.base = "/"
	default:
		r.base = filepath.Dir(filename)
	}
	r.path, r.name, r.colon = strings.Cut(strings.TrimLeft(s, "/"), ":")
	r.name, _, _ = strings.Cut(r.name, ":")
	return r
}

// abs returns the absolute path before the colon.
func (r reference) abs() string {
	return filepath.Join(r.base, r.path)
}

// partialDir returns the directory whose entries complete r. Without a
// colon the last path element is still being typed and is dropped.
func (r reference) partialDir() string {
	if r.colon {
		return r.abs()
	}
	i := strings.LastIndex(r.path, "/")
	return filepath.Join(r.base, r.path[:i+1])
}

// target returns the name of the target r refers to within its
// directory: the label name, or the last path element by default.
func (r reference) target() string {
	if r.colon {
		return r.name
	}
	return filepath.Base(r.abs())
}
