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
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"go.lsp.dev/protocol"

	"gnls.dev/go/internal/config"
)

// Version returns the version of the main module, or "(devel)".
func Version() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

func (s *Server) initialize(params *protocol.InitializeParams) *protocol.InitializeResult {
	s.state = serverInitializing
	if root := workspaceRoot(params); root != "" && s.cfg.File == "" {
		// Pick up a configuration file of the workspace unless one was
		// given explicitly.
		if file := config.Find(root); file != "" {
			cfg, err := config.Load(file)
			if err == nil {
				err = s.configure(cfg)
			}
			if err != nil {
				log.Warn().Err(err).Str("file", file).Msg("ignoring workspace configuration")
			} else {
				log.Info().Str("file", file).Msg("loaded workspace configuration")
			}
		}
	}
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{`"`, "/", ":"},
			},
			HoverProvider:              true,
			DefinitionProvider:         true,
			DocumentSymbolProvider:     true,
			DocumentFormattingProvider: true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    "gnls",
			Version: Version(),
		},
	}
}

// workspaceRoot returns the directory of the first workspace folder, or
// of the root URI for clients without workspace folders.
func workspaceRoot(params *protocol.InitializeParams) string {
	for _, f := range params.WorkspaceFolders {
		if path, ok := filename(protocol.DocumentURI(f.URI)); ok {
			return path
		}
	}
	if path, ok := filename(params.RootURI); ok {
		return path
	}
	return ""
}
