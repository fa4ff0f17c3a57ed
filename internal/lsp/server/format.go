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
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"go.lsp.dev/protocol"
)

// formatting returns the edits that bring the document into canonical
// format. Only the lines that change are replaced. The result is nil if
// the document cannot be formatted.
func (s *Server) formatting(params *protocol.DocumentFormattingParams) []protocol.TextEdit {
	d, _, ok := s.document(params.TextDocument.URI)
	if !ok {
		return nil
	}
	formatted := d.Format()
	if formatted == "" {
		return nil
	}
	return textEdits(d.Path(), d.Content(), formatted)
}

// textEdits converts the line edits between before and after into
// protocol edits.
func textEdits(path, before, after string) []protocol.TextEdit {
	edits := myers.ComputeEdits(span.URIFromPath(path), before, after)
	out := make([]protocol.TextEdit, 0, len(edits))
	for _, e := range edits {
		out = append(out, protocol.TextEdit{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(e.Span.Start().Line() - 1)},
				End:   protocol.Position{Line: uint32(e.Span.End().Line() - 1)},
			},
			NewText: e.NewText,
		})
	}
	return out
}
