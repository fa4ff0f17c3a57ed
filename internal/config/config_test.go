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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/rs/zerolog"

	"gnls.dev/go/internal/lsp/cache"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte(content), 0o666)))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := load("", env(nil))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(cfg, Default()))
	l, err := cfg.Level()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(l, zerolog.InfoLevel))

	opts, err := cfg.CacheOptions()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(opts.RootMarker, ".gn"))
	_, ok := opts.Formatter.(cache.BuiltinFormatter)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestLoadYAML(t *testing.T) {
	path := write(t, ".gnls.yaml", `
root_marker: .gn_root
formatter: gn format --stdin
width: 100
log_level: debug
docs_url: https://example.com/reference.md
`)
	cfg, err := load(path, env(nil))
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(cfg.File, path))
	qt.Check(t, qt.Equals(cfg.RootMarker, ".gn_root"))
	qt.Check(t, qt.Equals(cfg.Formatter, "gn format --stdin"))
	qt.Check(t, qt.Equals(cfg.Width, 100))
	qt.Check(t, qt.Equals(cfg.LogLevel, "debug"))
	qt.Check(t, qt.Equals(cfg.DocsURL, "https://example.com/reference.md"))

	opts, err := cfg.CacheOptions()
	qt.Assert(t, qt.IsNil(err))
	f, ok := opts.Formatter.(*cache.CommandFormatter)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(f.Args, []string{"gn", "format", "--stdin"}))
}

func TestLoadTOML(t *testing.T) {
	path := write(t, ".gnls.toml", `
root_marker = ".gn"
log_level = "warn"
width = 60
`)
	cfg, err := load(path, env(nil))
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(cfg.LogLevel, "warn"))
	qt.Check(t, qt.Equals(cfg.Width, 60))
	qt.Check(t, qt.Equals(cfg.Formatter, BuiltinFormatter))
}

func TestEmptyYAML(t *testing.T) {
	path := write(t, ".gnls.yml", "")
	cfg, err := load(path, env(nil))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg.RootMarker, ".gn"))
}

func TestEnvironment(t *testing.T) {
	path := write(t, ".gnls.yaml", "log_level: debug\nformatter: builtin\n")
	cfg, err := load(path, env(map[string]string{
		"GNLS_LOG_LEVEL": "error",
		"GNLS_FORMATTER": "gn format --stdin",
		"GNLS_DEBUG":     "logrequests",
	}))
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(cfg.LogLevel, "error"))
	qt.Check(t, qt.Equals(cfg.Formatter, "gn format --stdin"))
	qt.Check(t, qt.IsTrue(cfg.Debug.LogRequests))
	qt.Check(t, qt.IsFalse(cfg.Debug.Strict))

	_, err = load("", env(map[string]string{"GNLS_DEBUG": "nosuchflag"}))
	qt.Assert(t, qt.ErrorMatches(err, `cannot parse GNLS_DEBUG \(known flags: logrequests, strict\): unknown flag "nosuchflag"`))
}

func TestStrict(t *testing.T) {
	yamlPath := write(t, ".gnls.yaml", "root_marker: .gn\ncolour: blue\n")
	_, err := load(yamlPath, env(nil))
	qt.Assert(t, qt.IsNil(err))
	_, err = load(yamlPath, env(map[string]string{"GNLS_DEBUG": "strict"}))
	qt.Assert(t, qt.ErrorMatches(err, `(?s)cannot parse .*: yaml: .*colour.*`))

	tomlPath := write(t, ".gnls.toml", "colour = \"blue\"\n")
	_, err = load(tomlPath, env(nil))
	qt.Assert(t, qt.IsNil(err))
	_, err = load(tomlPath, env(map[string]string{"GNLS_DEBUG": "strict"}))
	qt.Assert(t, qt.ErrorMatches(err, `.*: unknown field "colour"`))
}

func TestValidate(t *testing.T) {
	path := write(t, ".gnls.yaml", `
root_marker: sub/.gn
log_level: loud
width: -1
formatter: gn "format
`)
	_, err := load(path, env(nil))
	qt.Assert(t, qt.IsNotNil(err))
	qt.Check(t, qt.ErrorMatches(err, `(?s).*root_marker must be a file name, not "sub/.gn".*`))
	qt.Check(t, qt.ErrorMatches(err, `(?s).*invalid log_level "loud".*`))
	qt.Check(t, qt.ErrorMatches(err, `(?s).*width must not be negative.*`))
	qt.Check(t, qt.ErrorMatches(err, `(?s).*invalid formatter command.*`))
}

func TestLoadErrors(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), ".gnls.yaml"), env(nil))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))

	path := write(t, "gnls.json", "{}")
	_, err = load(path, env(nil))
	qt.Assert(t, qt.ErrorMatches(err, `.*: unsupported configuration format ".json"`))

	path = write(t, ".gnls.yaml", "width: [1\n")
	_, err = load(path, env(nil))
	qt.Assert(t, qt.ErrorMatches(err, `(?s)cannot parse .*`))
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	qt.Assert(t, qt.Equals(Find(dir), ""))
	qt.Assert(t, qt.IsNil(os.WriteFile(filepath.Join(dir, ".gnls.toml"), nil, 0o666)))
	qt.Assert(t, qt.Equals(Find(dir), filepath.Join(dir, ".gnls.toml")))
	qt.Assert(t, qt.IsNil(os.WriteFile(filepath.Join(dir, ".gnls.yaml"), nil, 0o666)))
	qt.Assert(t, qt.Equals(Find(dir), filepath.Join(dir, ".gnls.yaml")))
}
