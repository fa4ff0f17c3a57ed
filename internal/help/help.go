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

// Package help is a static catalog of the functions and variables built
// into GN, with their reference documentation.
package help

import (
	"fmt"
	"slices"

	"github.com/mpvl/unique"
)

// DefaultBaseURL is the GN language reference.
const DefaultBaseURL = "https://gn.googlesource.com/gn/+/main/docs/reference.md"

// Kind selects which part of the catalog a lookup consults.
type Kind int

const (
	KindFunction Kind = iota + 1
	KindVariable
	KindAll
)

var kindNames = map[Kind]string{
	KindFunction: "function",
	KindVariable: "variable",
	KindAll:      "all",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind named by s: one of "function", "variable"
// or "all".
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown help kind %q", s)
}

// An Entry documents a single function or variable.
type Entry struct {
	Name  string
	Basic string // one-line summary, "name: summary"
	Full  string // complete help, starting with Basic
	Link  string // reference URL with a #func_ or #var_ anchor
}

// A Catalog looks up documentation entries. The zero value links to
// [DefaultBaseURL].
type Catalog struct {
	BaseURL string
}

var defaultCatalog Catalog

// Lookup is a shorthand for looking up name in the default catalog.
func Lookup(kind Kind, name string) (Entry, bool) {
	return defaultCatalog.Lookup(kind, name)
}

// Lookup returns the entry for name. With [KindAll] a variable takes
// precedence over a function of the same name, and builtin variables take
// precedence over target variables.
func (c *Catalog) Lookup(kind Kind, name string) (Entry, bool) {
	var e Entry
	found := false
	if kind == KindFunction || kind == KindAll {
		if d, ok := lookupFunction(name); ok {
			e, found = c.entry(name, d, "#func_"), true
		}
	}
	if kind == KindVariable || kind == KindAll {
		if d, ok := lookupVariable(name); ok {
			e, found = c.entry(name, d, "#var_"), true
		}
	}
	return e, found
}

func (c *Catalog) entry(name string, d doc, anchor string) Entry {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	basic := name + ": " + d.short
	full := basic
	if d.long != "" {
		full += "\n\n" + d.long
	}
	return Entry{
		Name:  name,
		Basic: basic,
		Full:  full,
		Link:  base + anchor + name,
	}
}

func lookupFunction(name string) (doc, bool) {
	if d, ok := builtinFunctions[name]; ok {
		return d, true
	}
	d, ok := targetFunctions[name]
	return d.doc, ok
}

func lookupVariable(name string) (doc, bool) {
	if d, ok := builtinVariables[name]; ok {
		return d, true
	}
	d, ok := targetVariables[name]
	return d.doc, ok
}

// FunctionDetail describes how a function is used.
type FunctionDetail struct {
	// IsTarget is set for functions that declare a target.
	IsTarget bool
}

// VariableDetail describes how a variable is used.
type VariableDetail struct {
	IsBuiltin bool
	// IsInput is set for variables whose values name files, directories or
	// labels.
	IsInput bool
	// IsLabel is set for variables whose values are labels.
	IsLabel bool
}

// FunctionDetails returns the details of the named function. The zero
// value is returned for unknown names.
func FunctionDetails(name string) FunctionDetail {
	_, ok := targetFunctions[name]
	return FunctionDetail{IsTarget: ok}
}

// VariableDetails returns the details of the named variable. The zero
// value is returned for unknown names.
func VariableDetails(name string) VariableDetail {
	if _, ok := builtinVariables[name]; ok {
		return VariableDetail{IsBuiltin: true}
	}
	v := targetVariables[name]
	return VariableDetail{IsInput: v.input, IsLabel: v.label}
}

// BuiltinFunctions returns the names of the builtin functions that do not
// declare targets, sorted.
func BuiltinFunctions() []string { return sortedKeys(builtinFunctions) }

// BuiltinVariables returns the names of the variables GN predefines,
// sorted.
func BuiltinVariables() []string { return sortedKeys(builtinVariables) }

// TargetFunctions returns the names of the functions that declare targets,
// sorted.
func TargetFunctions() []string { return sortedKeys(targetFunctions) }

// TargetVariables returns the sorted names of the variables a target of
// the given type may set. If target is empty, the variables of all target
// types are returned. The result is nil for unknown target types.
func TargetVariables(target string) []string {
	var groups []string
	if target == "" {
		groups = sortedKeys(groupVariables)
	} else {
		t, ok := targetFunctions[target]
		if !ok {
			return nil
		}
		groups = t.groups
	}
	var names []string
	for _, g := range groups {
		names = append(names, groupVariables[g]...)
	}
	unique.Strings(&names)
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
