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

	"github.com/spf13/pflag"
)

// Common flags
const (
	flagCheck    flagName = "check"
	flagConfig   flagName = "config"
	flagDiff     flagName = "diff"
	flagJSON     flagName = "json"
	flagKind     flagName = "kind"
	flagLogFile  flagName = "log-file"
	flagLogLevel flagName = "log-level"
	flagTrace    flagName = "trace"

	// Accepted for clients that always pass it.
	flagStdio flagName = "stdio"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.String(string(flagConfig), "",
		"configuration file (default: .gnls.yaml, .gnls.yml or .gnls.toml in the current directory)")
	f.String(string(flagLogLevel), "",
		"log level: trace, debug, info, warn or error")
	f.String(string(flagLogFile), "",
		"write logs to the named file instead of standard error")
}

func addServeFlags(f *pflag.FlagSet) {
	f.Bool(string(flagTrace), false, "log every protocol message")
	f.Bool(string(flagStdio), true, "communicate over standard input and output")
	f.MarkHidden(string(flagStdio))
}

type flagName string

// ensureAdded detects if a flag is being used without it first being
// added to the flagSet. Because flagNames are global, it is quite
// easy to accidentally use a flag in a command without adding it to
// the flagSet.
func (f flagName) ensureAdded(cmd *Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("Cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetString(string(f))
	return v
}
