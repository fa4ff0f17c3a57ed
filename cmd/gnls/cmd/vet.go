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
	"github.com/spf13/cobra"

	"gnls.dev/go/gn/parser"
)

func newVetCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet [files]",
		Short: "report syntax errors in GN files",
		Long: `Vet parses the given GN files, or standard input, and reports the
first syntax error of each together with its help text, if any.
`,
		RunE: mkRunE(c, runVet),
	}
	return cmd
}

func runVet(cmd *Command, args []string) error {
	loadConfig(cmd)
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		src, err := readInput(cmd, name)
		if err == nil {
			_, err = parser.ParseFile(sourcePath(name), src)
		}
		exitOnErr(cmd, err, false)
	}
	return nil
}
