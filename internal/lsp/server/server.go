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

// Package server implements the language server protocol for GN build
// files on top of the document registry in package cache.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"gnls.dev/go/internal/config"
	"gnls.dev/go/internal/lsp/cache"
)

// codeServerNotInitialized is returned for requests that arrive before
// the initialize request.
const codeServerNotInitialized int64 = -32002

// ErrExitWithoutShutdown is returned by [Server.Serve] when the client
// sends exit before shutdown.
var ErrExitWithoutShutdown = errors.New("exit notification received before shutdown")

type serverState int

const (
	serverCreated = serverState(iota)
	serverInitializing
	serverInitialized
	serverShutDown
)

func (s serverState) String() string {
	switch s {
	case serverCreated:
		return "created"
	case serverInitializing:
		return "initializing"
	case serverInitialized:
		return "initialized"
	case serverShutDown:
		return "shutDown"
	}
	return fmt.Sprintf("(unknown state: %d)", int(s))
}

// A Server answers the requests of a single client.
type Server struct {
	mu       sync.Mutex
	cfg      *config.Config
	reg      *cache.Registry
	state    serverState
	exited   bool
	shutdown bool
}

// New returns a server that uses cfg. A nil cfg means [config.Default].
func New(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{}
	if err := s.configure(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) configure(cfg *config.Config) error {
	opts, err := cfg.CacheOptions()
	if err != nil {
		return err
	}
	logger := log.With().Str("component", "cache").Logger()
	opts.Logger = &logger
	reg := cache.NewRegistry(opts)
	reg.SetHelpBaseURL(cfg.DocsURL)
	s.cfg, s.reg = cfg, reg
	return nil
}

// Serve reads requests from rwc until the client disconnects, exits or
// ctx is done.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	logger := log.With().Str("session", uuid.NewString()).Logger()
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	var opts []jsonrpc2.ConnOpt
	if s.cfg.Debug.LogRequests {
		rpcLogger := logger.With().Str("component", "jsonrpc2").Logger()
		opts = append(opts, jsonrpc2.LogMessages(&rpcLogger))
	}
	logger.Info().Str("version", Version()).Msg("serving")
	conn := jsonrpc2.NewConn(ctx, stream, jsonrpc2.HandlerWithError(s.handle), opts...)
	select {
	case <-ctx.Done():
		conn.Close()
		return ctx.Err()
	case <-conn.DisconnectNotify():
	}
	logger.Info().Msg("client disconnected")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exited && !s.shutdown {
		return ErrExitWithoutShutdown
	}
	return nil
}

func (s *Server) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.dispatch(ctx, conn, req)
	if err != nil {
		log.Debug().Err(err).Str("method", req.Method).Msg("request failed")
		if req.Notif {
			return nil, nil
		}
	}
	return result, err
}

func (s *Server) dispatch(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
	switch req.Method {
	case "initialize":
		if s.state != serverCreated {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidRequest, Message: "server already initialized"}
		}
		var params protocol.InitializeParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.initialize(&params), nil
	case "exit":
		s.exited = true
		return nil, conn.Close()
	}

	if s.state == serverCreated {
		return nil, &jsonrpc2.Error{Code: codeServerNotInitialized, Message: "server not initialized"}
	}
	if s.state == serverShutDown {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidRequest, Message: "server is shut down"}
	}

	switch req.Method {
	case "initialized":
		s.state = serverInitialized
		return nil, nil
	case "shutdown":
		s.state = serverShutDown
		s.shutdown = true
		return nil, nil
	case "textDocument/didOpen":
		var params protocol.DidOpenTextDocumentParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return nil, s.update(ctx, conn, params.TextDocument.URI, params.TextDocument.Text)
	case "textDocument/didChange":
		var params protocol.DidChangeTextDocumentParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		if n := len(params.ContentChanges); n > 0 {
			// Changes are full content, so only the last one matters.
			return nil, s.update(ctx, conn, params.TextDocument.URI, params.ContentChanges[n-1].Text)
		}
		return nil, nil
	case "textDocument/didSave":
		return nil, nil
	case "textDocument/didClose":
		var params protocol.DidCloseTextDocumentParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return nil, s.close(ctx, conn, params.TextDocument.URI)
	case "textDocument/completion":
		var params protocol.CompletionParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.completion(&params), nil
	case "textDocument/hover":
		var params protocol.HoverParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.hover(&params), nil
	case "textDocument/definition":
		var params protocol.DefinitionParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.definition(&params), nil
	case "textDocument/documentSymbol":
		var params protocol.DocumentSymbolParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.documentSymbol(&params), nil
	case "textDocument/formatting":
		var params protocol.DocumentFormattingParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.formatting(&params), nil
	}
	if req.Notif {
		return nil, nil
	}
	return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: fmt.Sprintf("method not supported: %s", req.Method)}
}

func decode(req *jsonrpc2.Request, v interface{}) error {
	if req.Params == nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "missing params"}
	}
	if err := json.Unmarshal(*req.Params, v); err != nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}
	return nil
}

// filename returns the path of a file URI. Documents with other schemes
// are not handled.
func filename(u protocol.DocumentURI) (string, bool) {
	if !strings.HasPrefix(string(u), uri.FileScheme+":") {
		return "", false
	}
	return uri.URI(u).Filename(), true
}

func fileURI(path string) protocol.DocumentURI {
	return protocol.DocumentURI(uri.File(path))
}

// document returns the open document for u together with its mapper.
func (s *Server) document(u protocol.DocumentURI) (*cache.Document, *mapper, bool) {
	path, ok := filename(u)
	if !ok {
		return nil, nil, false
	}
	d, ok := s.reg.Get(path)
	if !ok {
		return nil, nil, false
	}
	return d, newMapper(d.Content()), true
}

// A cursor is a position in an open document.
type cursor struct {
	doc          *cache.Document
	m            *mapper
	line, column int // one-based, in bytes
	ctx          cache.Context
}

// at analyzes the open document u at the protocol position p.
func (s *Server) at(u protocol.DocumentURI, p protocol.Position) (*cursor, bool) {
	d, m, ok := s.document(u)
	if !ok {
		return nil, false
	}
	c := &cursor{doc: d, m: m}
	c.line, c.column = m.toGN(p)
	c.ctx = d.Analyze(c.line, c.column)
	return c, true
}
