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

// Package scanner implements a scanner for GN source text. It takes a []byte
// as source which can then be tokenized through repeated calls to the Scan
// method.
package scanner // import "gnls.dev/go/gn/scanner"

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/errors"
	"gnls.dev/go/gn/token"
)

// A Scanner holds the Scanner's internal state while processing
// a given text. It can be allocated as part of another data
// structure but must be initialized via Init before use.
type Scanner struct {
	// immutable state
	file *token.File    // source file handle
	src  []byte         // source
	err  errors.Handler // error reporting; or nil
	mode Mode           // scanning mode

	// scanning state
	ch       rune // current character
	offset   int  // character offset
	rdOffset int  // reading offset (position after current character)

	// public state - ok to modify
	ErrorCount int // number of errors encountered
}

const bom = 0xFEFF // byte order mark, only permitted as very first character

// Read the next Unicode char into s.ch.
// s.ch < 0 means end-of-file.
func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		if s.ch == '\n' {
			s.file.AddLine(s.offset)
		}
		r, w := rune(s.src[s.rdOffset]), 1
		switch {
		case r == 0:
			s.error(s.offset, "Invalid character NUL.")
		case r >= utf8.RuneSelf:
			// not ASCII
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
			if r == utf8.RuneError && w == 1 {
				s.error(s.offset, "Invalid UTF-8 encoding.")
			} else if r == bom && s.offset > 0 {
				s.error(s.offset, "Invalid byte order mark.")
			}
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.file.AddLine(s.offset)
		}
		s.ch = -1 // eof
	}
}

// peek returns the byte following the most recently read character without
// advancing the scanner. If the scanner is at EOF, peek returns 0.
func (s *Scanner) peek() byte {
	if s.rdOffset < len(s.src) {
		return s.src[s.rdOffset]
	}
	return 0
}

// A Mode value is a set of flags (or 0).
// They control scanner behavior.
type Mode uint

// These constants are options to the Init function.
const (
	ScanComments Mode = 1 << iota // return comments as COMMENT tokens
)

// Init prepares the scanner s to tokenize the text src by setting the
// scanner at the beginning of src. The scanner uses the file for position
// information and it adds line information for each line. Init causes a
// panic if the file size does not match the src size.
//
// Calls to Scan will invoke the error handler err if they encounter a
// syntax error and err is not nil. Also, for each error encountered,
// the Scanner field ErrorCount is incremented by one. The mode parameter
// determines how comments are handled.
func (s *Scanner) Init(file *token.File, src []byte, err errors.Handler, mode Mode) {
	// Explicitly initialize all fields since a scanner may be reused.
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	s.file = file
	s.src = src
	s.err = err
	s.mode = mode

	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.ErrorCount = 0

	s.next()
	if s.ch == bom {
		s.next() // ignore BOM at file beginning
	}
}

func (s *Scanner) errf(offs int, msg string, args ...interface{}) {
	if s.err != nil {
		s.err(s.file.Position(offs), msg, args)
	}
	s.ErrorCount++
}

func (s *Scanner) error(offs int, msg string) {
	s.errf(offs, "%s", msg)
}

func (s *Scanner) scanComment() string {
	// initial '#' already consumed
	offs := s.offset - 1
	for s.ch != '\n' && s.ch >= 0 {
		s.next()
	}
	lit := bytes.TrimRight(s.src[offs:s.offset], " \t\r")
	return string(lit)
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (s *Scanner) scanIdentifier() string {
	offs := s.offset
	for isLetter(s.ch) || isDigit(s.ch) {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) scanNumber() string {
	offs := s.offset
	for isDigit(s.ch) {
		s.next()
	}
	lit := string(s.src[offs:s.offset])
	if len(lit) > 1 && lit[0] == '0' {
		s.error(offs, "Leading zeros not allowed in integers.")
	}
	if isLetter(s.ch) {
		s.error(s.offset, "Invalid character in number.")
	}
	return lit
}

// scanString scans a double-quoted string. Escapes and $ expansions are
// retained verbatim; only \" needs to be recognized to find the end.
func (s *Scanner) scanString() string {
	// '"' opening already consumed
	offs := s.offset - 1

	for {
		ch := s.ch
		if ch == '\n' || ch < 0 {
			s.error(offs, "Unterminated string literal.")
			break
		}
		s.next()
		if ch == '"' {
			break
		}
		if ch == '\\' && (s.ch == '"' || s.ch == '\\' || s.ch == '$') {
			s.next()
		}
	}

	return string(s.src[offs:s.offset])
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.next()
	}
}

// Helper functions for scanning multi-byte tokens such as >= and +=.
// Different routines recognize different length tok_i based on matches
// of ch_i. If a token ends in '=', the result is tok1 or tok3
// respectively. Otherwise, the result is tok0 if there was no other
// matching character, or tok2 if the matching character was ch2.

func (s *Scanner) switch2(tok0, tok1 token.Token) token.Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	return tok0
}

// Scan scans the next token and returns the token position, the token,
// and its literal string if applicable. The source end is indicated by
// EOF.
//
// The literal is always the token text exactly as it appears in the
// source, so the end of the token is pos plus the length of the literal.
//
// If the returned token is ILLEGAL, the literal string is the
// offending character.
//
// Scan adds line information to the file added to the file
// set with Init. Token positions are relative to that file
// and thus relative to the file set.
func (s *Scanner) Scan() (pos token.Position, tok token.Token, lit string) {
scanAgain:
	s.skipWhitespace()

	// current token start
	offs := s.offset
	pos = s.file.Position(offs)

	// determine token value
	switch ch := s.ch; {
	case isLetter(ch):
		lit = s.scanIdentifier()
		tok = token.Lookup(lit)
		return
	case isDigit(ch):
		tok = token.INT
		lit = s.scanNumber()
		return
	default:
		s.next() // always make progress
		switch ch {
		case -1:
			tok = token.EOF
		case '"':
			tok = token.STRING
			lit = s.scanString()
			return
		case '#':
			lit = s.scanComment()
			if s.mode&ScanComments == 0 {
				// skip comment
				goto scanAgain
			}
			tok = token.COMMENT
			return
		case '(':
			tok = token.LPAREN
		case ')':
			tok = token.RPAREN
		case '[':
			tok = token.LBRACK
		case ']':
			tok = token.RBRACK
		case '{':
			tok = token.LBRACE
		case '}':
			tok = token.RBRACE
		case ',':
			tok = token.COMMA
		case '.':
			tok = token.PERIOD
		case '+':
			tok = s.switch2(token.ADD, token.ADD_ASSIGN)
		case '-':
			tok = s.switch2(token.SUB, token.SUB_ASSIGN)
		case '=':
			tok = s.switch2(token.ASSIGN, token.EQL)
		case '!':
			tok = s.switch2(token.NOT, token.NEQ)
		case '<':
			tok = s.switch2(token.LSS, token.LEQ)
		case '>':
			tok = s.switch2(token.GTR, token.GEQ)
		case '&':
			if s.ch == '&' {
				s.next()
				tok = token.LAND
			} else {
				s.errf(offs, "Invalid token %q.", "&")
				tok = token.ILLEGAL
			}
		case '|':
			if s.ch == '|' {
				s.next()
				tok = token.LOR
			} else {
				s.errf(offs, "Invalid token %q.", "|")
				tok = token.ILLEGAL
			}
		default:
			if ch != bom {
				s.errf(offs, "Invalid character %q.", ch)
			}
			tok = token.ILLEGAL
		}
	}
	lit = string(s.src[offs:s.offset])
	return
}

// Tokenize scans all of src and returns its tokens, including comments,
// terminated by an EOF token. The line table of file is populated as a
// side effect. It stops at the first error, which is returned as an
// *errors.SyntaxError.
func Tokenize(file *token.File, src []byte) ([]ast.Token, error) {
	var first *errors.SyntaxError
	eh := func(pos token.Position, msg string, args []interface{}) {
		if first == nil {
			first = errors.Newf(pos, msg, args...)
		}
	}
	var s Scanner
	s.Init(file, src, eh, ScanComments)

	var toks []ast.Token
	for {
		pos, tok, lit := s.Scan()
		if first != nil {
			first.WithRange(token.NewRange(first.Location, first.Location.Add(1)))
			return nil, first
		}
		end := file.Position(pos.Offset + len(lit))
		toks = append(toks, ast.Token{
			Kind:  tok,
			Value: lit,
			Range: token.NewRange(pos, end),
		})
		if tok == token.EOF {
			return toks, nil
		}
	}
}
