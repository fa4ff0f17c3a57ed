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

	"gnls.dev/go/internal/lsp/cache"
)

func (s *Server) documentSymbol(params *protocol.DocumentSymbolParams) []protocol.DocumentSymbol {
	d, m, ok := s.document(params.TextDocument.URI)
	if !ok {
		return nil
	}
	scope, ok := d.Scope()
	if !ok {
		return nil
	}
	return documentSymbols(m, scope.Symbols)
}

var symbolKinds = map[cache.SymbolKind]protocol.SymbolKind{
	cache.SymbolFunction: protocol.SymbolKindFunction,
	cache.SymbolVariable: protocol.SymbolKindVariable,
	cache.SymbolBoolean:  protocol.SymbolKindBoolean,
	cache.SymbolOperator: protocol.SymbolKindOperator,
}

func documentSymbols(m *mapper, syms []cache.Symbol) []protocol.DocumentSymbol {
	if len(syms) == 0 {
		return nil
	}
	out := make([]protocol.DocumentSymbol, 0, len(syms))
	for _, sym := range syms {
		out = append(out, protocol.DocumentSymbol{
			Name:           sym.Name,
			Kind:           symbolKinds[sym.Kind],
			Range:          m.rng(sym.Range),
			SelectionRange: m.rng(sym.SelectionRange),
			Children:       documentSymbols(m, sym.Children),
		})
	}
	return out
}
