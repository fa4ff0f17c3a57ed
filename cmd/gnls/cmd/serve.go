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

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"gnls.dev/go/internal/lsp/server"
)

func newServeCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"lsp"},
		Short:   "run the language server on standard input and output",
		Long: `Serve speaks the language server protocol on standard input and
output until the client exits. Logs go to standard error, or to the file
named by --log-file.
`,
		Args: cobra.NoArgs,
		RunE: mkRunE(c, runServe),
	}
	addServeFlags(cmd.Flags())
	return cmd
}

func runServe(cmd *Command, args []string) error {
	cfg := loadConfig(cmd)
	if flagTrace.Bool(cmd) {
		cfg.Debug.LogRequests = true
	}
	srv, err := server.New(cfg)
	exitOnErr(cmd, err, true)

	rwc := &stdioReadWriteCloser{reader: cmd.InOrStdin(), writer: cmd.OutOrStdout()}
	return srv.Serve(cmd.Context(), rwc)
}

type stdioReadWriteCloser struct {
	reader io.Reader
	writer io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error)  { return s.reader.Read(p) }
func (s *stdioReadWriteCloser) Write(p []byte) (int, error) { return s.writer.Write(p) }
func (s *stdioReadWriteCloser) Close() error {
	if c, ok := s.reader.(io.Closer); ok {
		_ = c.Close()
	}
	if c, ok := s.writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
