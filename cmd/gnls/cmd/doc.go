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

	"github.com/spf13/cobra"

	"gnls.dev/go/internal/help"
)

func newDocCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc [--kind function|variable|all] [names]",
		Short: "show the reference documentation of GN functions and variables",
		Long: `Doc prints the reference documentation of the named GN functions
and variables, followed by a link to the online reference. With --kind
all, a variable is preferred over a function of the same name.

Without names, the one-line summaries of all functions and variables are
listed.
`,
		RunE: mkRunE(c, runDoc),
	}
	cmd.Flags().String(string(flagKind), help.KindAll.String(), "which entries to consult: function, variable or all")
	return cmd
}

func runDoc(cmd *Command, args []string) error {
	cfg := loadConfig(cmd)
	kind, err := help.ParseKind(flagKind.String(cmd))
	if err != nil {
		return err
	}
	catalog := &help.Catalog{BaseURL: cfg.DocsURL}
	w := cmd.OutOrStdout()

	if len(args) == 0 {
		var names []string
		if kind != help.KindVariable {
			names = append(names, help.BuiltinFunctions()...)
			names = append(names, help.TargetFunctions()...)
		}
		for _, name := range names {
			e, _ := catalog.Lookup(help.KindFunction, name)
			fmt.Fprintln(w, e.Basic)
		}
		names = nil
		if kind != help.KindFunction {
			names = append(names, help.BuiltinVariables()...)
			names = append(names, help.TargetVariables("")...)
		}
		for _, name := range names {
			e, _ := catalog.Lookup(help.KindVariable, name)
			fmt.Fprintln(w, e.Basic)
		}
		return nil
	}

	for i, name := range args {
		e, ok := catalog.Lookup(kind, name)
		if !ok {
			fmt.Fprintf(cmd.Stderr(), "no documentation for %s %q\n", kind, name)
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n\n%s\n", e.Full, e.Link)
	}
	return nil
}
