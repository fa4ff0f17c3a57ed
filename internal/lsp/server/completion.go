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

	"gnls.dev/go/internal/help"
	"gnls.dev/go/internal/lsp/cache"
)

func (s *Server) completion(params *protocol.CompletionParams) []protocol.CompletionItem {
	c, ok := s.at(params.TextDocument.URI, params.Position)
	if !ok {
		return nil
	}
	items := []protocol.CompletionItem{}
	tok := c.ctx.Token
	switch {
	case tok != nil && tok.Type == cache.TypeLiteral:
		if strings.HasPrefix(tok.Value, `"`) && help.VariableDetails(c.ctx.Variable).IsInput {
			items = s.pathCompletion(c, items)
		}
	default:
		items = s.nameCompletion(c, items)
	}
	return items
}

// nameCompletion adds the functions and variables that may be used at c.
func (s *Server) nameCompletion(c *cursor, items []protocol.CompletionItem) []protocol.CompletionItem {
	for _, name := range help.BuiltinFunctions() {
		items = append(items, s.functionItem(name))
	}
	for _, name := range help.BuiltinVariables() {
		items = append(items, s.variableItem(name))
	}
	switch fn := c.ctx.Function; {
	case fn == nil, fn.Name == "template":
		for _, name := range help.TargetFunctions() {
			items = append(items, s.functionItem(name))
		}
	default:
		for _, name := range help.TargetVariables(fn.Target()) {
			items = append(items, s.variableItem(name))
		}
	}
	return items
}

func (s *Server) functionItem(name string) protocol.CompletionItem {
	kind := protocol.CompletionItemKindFunction
	if help.FunctionDetails(name).IsTarget {
		kind = protocol.CompletionItemKindClass
	}
	e, _ := s.reg.Help(help.KindFunction, name)
	return completionItem(name, kind, e)
}

func (s *Server) variableItem(name string) protocol.CompletionItem {
	kind := protocol.CompletionItemKindField
	if help.VariableDetails(name).IsBuiltin {
		kind = protocol.CompletionItemKindVariable
	}
	e, _ := s.reg.Help(help.KindVariable, name)
	return completionItem(name, kind, e)
}

func completionItem(name string, kind protocol.CompletionItemKind, e help.Entry) protocol.CompletionItem {
	return protocol.CompletionItem{
		Label:  name,
		Kind:   kind,
		Detail: e.Basic,
		Documentation: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: e.Link,
		},
	}
}

// pathCompletion adds the directories, files or labels that complete the
// string literal under c up to the cursor. Labels are offered after a
// colon; files only for variables that do not take labels.
func (s *Server) pathCompletion(c *cursor, items []protocol.CompletionItem) []protocol.CompletionItem {
	tok := c.ctx.Token
	n := c.column - tok.Range.Begin.Column
	if n < 1 || n > len(tok.Value) {
		return items
	}
	ref := parseReference(tok.Value[1:n], c.ctx.Root, c.doc.Path())
	isLabel := help.VariableDetails(c.ctx.Variable).IsLabel

	if ref.colon {
		if !isLabel {
			return items
		}
		decls, err := s.reg.ReadDeclares(filepath.Join(ref.abs(), "BUILD.gn"))
		if err != nil {
			log.Debug().Err(err).Str("dir", ref.abs()).Msg("no labels to complete")
			return items
		}
		for _, d := range decls {
			kind, name := d.Label()
			if help.FunctionDetails(kind).IsTarget && name != "" {
				items = append(items, protocol.CompletionItem{Label: name, Kind: protocol.CompletionItemKindConstant})
			}
		}
		return items
	}

	entries, err := os.ReadDir(ref.partialDir())
	if err != nil {
		log.Debug().Err(err).Str("dir", ref.partialDir()).Msg("no paths to complete")
		return items
	}
	for _, e := range entries {
		switch {
		case e.IsDir():
			items = append(items, protocol.CompletionItem{Label: e.Name(), Kind: protocol.CompletionItemKindFolder})
		case !isLabel:
			items = append(items, protocol.CompletionItem{Label: e.Name(), Kind: protocol.CompletionItemKindFile})
		}
	}
	return items
}
