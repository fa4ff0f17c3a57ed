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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gnls.dev/go/gn/errors"
	"gnls.dev/go/internal/config"
)

// inTest is set by the tests to print paths in a portable form.
var inTest = false

func getLang() language.Tag {
	loc := os.Getenv("LC_ALL")
	if loc == "" {
		loc = os.Getenv("LANG")
	}
	loc = strings.Split(loc, ".")[0]
	return language.Make(loc)
}

func exitOnErr(cmd *Command, err error, fatal bool) {
	if err == nil {
		return
	}

	// Link x/text as our localizer.
	p := message.NewPrinter(getLang())
	format := func(w io.Writer, format string, args ...interface{}) {
		p.Fprintf(w, format, args...)
	}

	cwd, _ := os.Getwd()

	w := &bytes.Buffer{}
	errors.Print(w, err, &errors.Config{
		Format:  format,
		Cwd:     cwd,
		ToSlash: inTest,
	})

	b := w.Bytes()
	_, _ = cmd.Stderr().Write(b)
	if fatal {
		exit()
	}
}

// loadConfig returns the configuration named by --config, or the one in
// the current directory, and sets up logging accordingly.
func loadConfig(cmd *Command) *config.Config {
	var cfg *config.Config
	var err error
	if file := flagConfig.String(cmd); file != "" {
		cfg, err = config.Load(file)
	} else {
		cfg, err = config.LoadDir(".")
	}
	exitOnErr(cmd, err, true)

	if lvl := flagLogLevel.String(cmd); lvl != "" {
		cfg.LogLevel = lvl
	}
	if file := flagLogFile.String(cmd); file != "" {
		cfg.LogFile = file
	}
	exitOnErr(cmd, setupLogging(cmd, cfg), true)
	return cfg
}

// setupLogging directs the global logger to the configured file, or to
// standard error.
func setupLogging(cmd *Command, cfg *config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	var w io.Writer = zerolog.ConsoleWriter{Out: cmd.OutOrStderr(), NoColor: true}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
		if err != nil {
			return err
		}
		w = f
	}
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return nil
}

// readInput returns the content of the named file, or of standard input
// for "-".
func readInput(cmd *Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}

// sourcePath returns the name under which positions in the named input
// are reported.
func sourcePath(name string) string {
	if name == "-" {
		return name
	}
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return name
}
