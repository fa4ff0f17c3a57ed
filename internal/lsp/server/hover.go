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
	"go.lsp.dev/protocol"

	"gnls.dev/go/internal/help"
	"gnls.dev/go/internal/lsp/cache"
)

func (s *Server) hover(params *protocol.HoverParams) *protocol.Hover {
	c, ok := s.at(params.TextDocument.URI, params.Position)
	if !ok {
		return nil
	}
	tok := c.ctx.Token
	if tok == nil || tok.Type != cache.TypeIdentifier {
		return nil
	}
	e, ok := s.reg.Help(help.KindAll, tok.Value)
	if !ok {
		return nil
	}
	r := c.m.rng(tok.Range)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: e.Full + "\n" + e.Link,
		},
		Range: &r,
	}
}
