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

package cache

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/shlex"

	"gnls.dev/go/gn/format"
)

// A Formatter rewrites the content of a GN file in canonical form.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// BuiltinFormatter formats with [format.Source].
type BuiltinFormatter struct {
	Options []format.Option
}

func (f BuiltinFormatter) Format(filename string, src []byte) ([]byte, error) {
	return format.Source(src, f.Options...)
}

// DefaultFormatTimeout bounds the run time of a [CommandFormatter].
const DefaultFormatTimeout = 10 * time.Second

// A CommandFormatter formats by running an external program, such as
// "gn format --stdin", that reads the source on standard input and writes
// the formatted result to standard output.
type CommandFormatter struct {
	Args    []string
	Timeout time.Duration // DefaultFormatTimeout if zero
}

// NewCommandFormatter returns a formatter for the shell-style command line
// cmdline.
func NewCommandFormatter(cmdline string) (*CommandFormatter, error) {
	args, err := shlex.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("invalid formatter command %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty formatter command")
	}
	return &CommandFormatter{Args: args}, nil
}

func (f *CommandFormatter) Format(filename string, src []byte) ([]byte, error) {
	timeout := f.Timeout
	if timeout == 0 {
		timeout = DefaultFormatTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.Args[0], f.Args[1:]...)
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", f.Args[0], err, msg)
		}
		return nil, fmt.Errorf("%s: %w", f.Args[0], err)
	}
	return stdout.Bytes(), nil
}
