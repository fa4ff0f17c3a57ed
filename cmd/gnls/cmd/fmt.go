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
	"bytes"
	"fmt"
	"os"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/spf13/cobra"

	"gnls.dev/go/gn/parser"
)

func newFmtCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [--check | --diff] [files]",
		Short: "formats GN files",
		Long: `Fmt formats the given GN files in place. Without files, or with "-",
it formats standard input to standard output.

With --check, the names of files that are not formatted are printed and
the command fails if there are any. With --diff, the changes are printed
as a unified diff and no file is written.

The formatter is the built-in one unless the configuration names an
external command.
`,
		RunE: mkRunE(c, runFmt),
	}
	cmd.Flags().Bool(string(flagCheck), false, "list files whose formatting differs and fail if there are any")
	cmd.Flags().BoolP(string(flagDiff), "d", false, "display diffs instead of rewriting files")
	return cmd
}

func runFmt(cmd *Command, args []string) error {
	cfg := loadConfig(cmd)
	opts, err := cfg.CacheOptions()
	exitOnErr(cmd, err, true)

	if len(args) == 0 {
		args = []string{"-"}
	}
	check := flagCheck.Bool(cmd)
	diff := flagDiff.Bool(cmd)
	var unformatted []string

	for _, name := range args {
		src, err := readInput(cmd, name)
		if err != nil {
			exitOnErr(cmd, err, false)
			continue
		}
		if _, err := parser.ParseFile(sourcePath(name), src); err != nil {
			exitOnErr(cmd, err, false)
			continue
		}
		out, err := opts.Formatter.Format(name, src)
		if err != nil {
			exitOnErr(cmd, err, false)
			continue
		}

		switch {
		case check:
			if !bytes.Equal(src, out) {
				unformatted = append(unformatted, name)
			}
		case diff:
			if !bytes.Equal(src, out) {
				edits := myers.ComputeEdits(span.URIFromPath(name), string(src), string(out))
				fmt.Fprint(cmd.OutOrStdout(), gotextdiff.ToUnified(name+".orig", name, string(src), edits))
			}
		case name == "-":
			cmd.OutOrStdout().Write(out)
		case !bytes.Equal(src, out):
			if err := os.WriteFile(name, out, 0o666); err != nil {
				exitOnErr(cmd, err, false)
			}
		}
	}

	if len(unformatted) > 0 {
		for _, name := range unformatted {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return ErrPrintedError
	}
	return nil
}
