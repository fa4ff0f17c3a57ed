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
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"go.lsp.dev/protocol"

	"gnls.dev/go/gn/literal"
	"gnls.dev/go/internal/lsp/cache"
)

// wholeFile is the range jumped to when a reference names a file rather
// than a target in it.
var wholeFile = protocol.Range{End: protocol.Position{Line: 2}}

// definition resolves a string literal naming a file, a directory or a
// label. A directory stands for the target of the same name in its
// BUILD.gn file.
func (s *Server) definition(params *protocol.DefinitionParams) []protocol.LocationLink {
	c, ok := s.at(params.TextDocument.URI, params.Position)
	if !ok {
		return nil
	}
	tok := c.ctx.Token
	if tok == nil || tok.Type != cache.TypeLiteral || !strings.HasPrefix(tok.Value, `"`) {
		return nil
	}
	ref := parseReference(literal.Trim(tok.Value), c.ctx.Root, c.doc.Path())
	origin := c.m.rng(tok.Range)
	link := func(path string, r protocol.Range) []protocol.LocationLink {
		return []protocol.LocationLink{{
			OriginSelectionRange: &origin,
			TargetURI:            fileURI(path),
			TargetRange:          r,
			TargetSelectionRange: r,
		}}
	}

	abs := ref.abs()
	fi, err := os.Stat(abs)
	switch {
	case err != nil:
		log.Debug().Err(err).Msg("no definition")
		return nil
	case !fi.IsDir():
		return link(abs, wholeFile)
	}

	path := filepath.Join(abs, "BUILD.gn")
	decls, err := s.reg.ReadDeclares(path)
	if err != nil {
		log.Debug().Err(err).Msg("no definition")
		return nil
	}
	name := ref.target()
	for _, d := range decls {
		if _, label := d.Label(); label == name {
			return link(path, s.mapperFor(path).rng(d.Range))
		}
	}
	return link(path, wholeFile)
}

// mapperFor returns a mapper for the open or on-disk content of the file
// at path.
func (s *Server) mapperFor(path string) *mapper {
	if d, ok := s.reg.Get(path); ok {
		return newMapper(d.Content())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return newMapper("")
	}
	return newMapper(string(data))
}
