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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newContextCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context [--json] file line:column",
		Short: "describe the syntax at a position in a GN file",
		Long: `Context prints what the language server sees at a position of a GN
file: the token under the cursor, the innermost call whose block encloses
it, and the variable being assigned. Lines and columns start at 1 and
columns count bytes.

The project root is the nearest enclosing directory with a .gn file and
is printed relative to the current directory.
`,
		Args: cobra.ExactArgs(2),
		RunE: mkRunE(c, runContext),
	}
	cmd.Flags().Bool(string(flagJSON), false, "print JSON instead of YAML")
	return cmd
}

type tokenOut struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
	Range string `json:"range" yaml:"range"`
}

type functionOut struct {
	Name      string   `json:"name" yaml:"name"`
	Arguments []string `json:"arguments" yaml:"arguments,flow"`
}

type contextOut struct {
	Root     string       `json:"root" yaml:"root"`
	Token    *tokenOut    `json:"token,omitempty" yaml:"token,omitempty"`
	Function *functionOut `json:"function,omitempty" yaml:"function,omitempty"`
	Variable string       `json:"variable,omitempty" yaml:"variable,omitempty"`
}

func runContext(cmd *Command, args []string) error {
	var line, column int
	if _, err := fmt.Sscanf(args[1], "%d:%d", &line, &column); err != nil || line < 1 || column < 1 {
		return fmt.Errorf("invalid position %q: want line:column", args[1])
	}
	reg, path := openDocument(cmd, args[0])
	ctx, _ := reg.Analyze(path, line, column)

	out := contextOut{Root: ctx.Root, Variable: ctx.Variable}
	if ctx.Root != "" {
		if cwd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(cwd, ctx.Root); err == nil {
				out.Root = filepath.ToSlash(rel)
			}
		}
	}
	if t := ctx.Token; t != nil {
		out.Token = &tokenOut{Type: t.Type, Value: t.Value, Range: rangeString(t.Range)}
	}
	if f := ctx.Function; f != nil {
		out.Function = &functionOut{Name: f.Name, Arguments: f.Arguments}
	}
	return encode(cmd, out)
}
