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

// Package literal implements conversions to and from the string
// representations of GN literals.
package literal // import "gnls.dev/go/gn/literal"

import (
	"errors"
	"strings"
)

var (
	errSyntax   = errors.New("invalid syntax")
	errUnquoted = errors.New("missing quotes")
)

// Unquote interprets s as a double-quoted GN string literal, returning the
// string value that s quotes. Only \", \$ and \\ are escapes; any other
// backslash is kept as is. Variable expansions such as $var and ${expr}
// are returned verbatim.
func Unquote(s string) (string, error) {
	n := len(s)
	if n < 2 || s[0] != '"' || s[n-1] != '"' {
		return "", errUnquoted
	}
	s = s[1 : n-1]
	if !strings.ContainsRune(s, '\\') {
		if strings.ContainsRune(s, '"') {
			return "", errSyntax
		}
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && isEscaped(s[i+1]):
			i++
			b.WriteByte(s[i])
		case c == '"':
			return "", errSyntax
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func isEscaped(c byte) bool {
	return c == '"' || c == '$' || c == '\\'
}

// Trim removes one leading and one trailing double quote from s, if
// present. Unlike Unquote it accepts partial literals, such as the prefix
// of a string being typed.
func Trim(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// Quote returns a double-quoted GN string literal representing s.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
