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
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gnls.dev/go/gn/token"
	"gnls.dev/go/internal/lsp/cache"
)

func newOutlineCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline [--json] file",
		Short: "print the symbols and target declarations of a GN file",
		Long: `Outline prints the document symbols of a GN file: its calls,
assignments and conditions, nested as in the source, followed by the
targets it declares. Ranges are written as line:column-line:column.

The output is YAML unless --json is given.
`,
		Args: cobra.ExactArgs(1),
		RunE: mkRunE(c, runOutline),
	}
	cmd.Flags().Bool(string(flagJSON), false, "print JSON instead of YAML")
	return cmd
}

type symbolOut struct {
	Kind      string      `json:"kind" yaml:"kind"`
	Name      string      `json:"name" yaml:"name"`
	Range     string      `json:"range" yaml:"range"`
	Selection string      `json:"selection" yaml:"selection"`
	Children  []symbolOut `json:"children,omitempty" yaml:"children,omitempty"`
}

type declareOut struct {
	Function  string   `json:"function" yaml:"function"`
	Arguments []string `json:"arguments" yaml:"arguments,flow"`
	Range     string   `json:"range" yaml:"range"`
}

type scopeOut struct {
	Symbols  []symbolOut  `json:"symbols" yaml:"symbols"`
	Declares []declareOut `json:"declares" yaml:"declares"`
}

func runOutline(cmd *Command, args []string) error {
	reg, path := openDocument(cmd, args[0])
	scope, _ := reg.Parse(path)

	out := scopeOut{
		Symbols:  symbolsOut(scope.Symbols),
		Declares: []declareOut{},
	}
	for _, d := range scope.Declares {
		out.Declares = append(out.Declares, declareOut{
			Function:  d.Function,
			Arguments: d.Arguments,
			Range:     rangeString(d.Range),
		})
	}
	return encode(cmd, out)
}

func symbolsOut(syms []cache.Symbol) []symbolOut {
	out := []symbolOut{}
	for _, s := range syms {
		o := symbolOut{
			Kind:      s.Kind.String(),
			Name:      s.Name,
			Range:     rangeString(s.Range),
			Selection: rangeString(s.SelectionRange),
		}
		if len(s.Children) > 0 {
			o.Children = symbolsOut(s.Children)
		}
		out = append(out, o)
	}
	return out
}

// openDocument registers the named file, or standard input for "-", and
// exits if it has a syntax error.
func openDocument(cmd *Command, name string) (*cache.Registry, string) {
	cfg := loadConfig(cmd)
	opts, err := cfg.CacheOptions()
	exitOnErr(cmd, err, true)

	src, err := readInput(cmd, name)
	exitOnErr(cmd, err, true)
	path := sourcePath(name)

	reg := cache.NewRegistry(opts)
	reg.SetHelpBaseURL(cfg.DocsURL)
	reg.Update(path, string(src))
	if err := reg.Validate(path); err != nil {
		exitOnErr(cmd, err, true)
	}
	return reg, path
}

func rangeString(r token.Range) string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Begin.Line, r.Begin.Column, r.End.Line, r.End.Column)
}

// encode writes v as YAML, or as JSON with --json.
func encode(cmd *Command, v interface{}) error {
	w := cmd.OutOrStdout()
	if flagJSON.Bool(cmd) {
		return encodeJSON(w, v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
