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
	"context"
	"strings"

	"github.com/sourcegraph/jsonrpc2"
	"go.lsp.dev/protocol"

	"gnls.dev/go/gn/token"
)

func (s *Server) update(ctx context.Context, conn *jsonrpc2.Conn, u protocol.DocumentURI, content string) error {
	path, ok := filename(u)
	if !ok {
		return nil
	}
	s.reg.Update(path, content)
	return s.publishDiagnostics(ctx, conn, u, s.diagnostics(path, content))
}

func (s *Server) close(ctx context.Context, conn *jsonrpc2.Conn, u protocol.DocumentURI) error {
	path, ok := filename(u)
	if !ok {
		return nil
	}
	s.reg.Close(path)
	return s.publishDiagnostics(ctx, conn, u, []protocol.Diagnostic{})
}

// diagnostics reports the syntax error of the document at path, if any.
func (s *Server) diagnostics(path, content string) []protocol.Diagnostic {
	err := s.reg.Validate(path)
	if err == nil {
		return []protocol.Diagnostic{}
	}
	r := token.Range{Begin: err.Position()}
	if spans := err.Ranges(); len(spans) > 0 {
		r = spans[0]
	}
	return []protocol.Diagnostic{{
		Range:    newMapper(content).rng(r),
		Severity: protocol.DiagnosticSeverityError,
		Source:   "gnls",
		Message:  strings.TrimSpace(err.Message + "\n" + err.Help),
	}}
}

func (s *Server) publishDiagnostics(ctx context.Context, conn *jsonrpc2.Conn, u protocol.DocumentURI, diags []protocol.Diagnostic) error {
	return conn.Notify(ctx, "textDocument/publishDiagnostics", &protocol.PublishDiagnosticsParams{
		URI:         u,
		Diagnostics: diags,
	})
}
