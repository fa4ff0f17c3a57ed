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

// Package config loads the settings of gnls from a project configuration
// file and the environment.
//
// A project may hold a .gnls.yaml (or .gnls.yml) or a .gnls.toml file at
// its root. Values from the environment take precedence:
//
//	GNLS_LOG_LEVEL  log level: trace, debug, info, warn or error
//	GNLS_FORMATTER  "builtin" or a command line such as "gn format --stdin"
//	GNLS_DEBUG      comma-separated debug flags, see [Debug]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"gnls.dev/go/gn/format"
	"gnls.dev/go/internal/envflag"
	"gnls.dev/go/internal/help"
	"gnls.dev/go/internal/lsp/cache"
)

// FileNames lists the configuration file names searched for, in order.
var FileNames = []string{".gnls.yaml", ".gnls.yml", ".gnls.toml"}

// BuiltinFormatter selects the formatter of package gn/format.
const BuiltinFormatter = "builtin"

// Config holds the settings of gnls.
type Config struct {
	// RootMarker names the file that marks a project root.
	RootMarker string `yaml:"root_marker" toml:"root_marker"`

	// Formatter is BuiltinFormatter or a command line.
	Formatter string `yaml:"formatter" toml:"formatter"`

	// Width is the line width of the builtin formatter.
	Width int `yaml:"width" toml:"width"`

	LogLevel string `yaml:"log_level" toml:"log_level"`
	LogFile  string `yaml:"log_file" toml:"log_file"`

	// DocsURL is the GN reference that help links point to.
	DocsURL string `yaml:"docs_url" toml:"docs_url"`

	// Debug is set from GNLS_DEBUG only.
	Debug Debug `yaml:"-" toml:"-"`

	// File is the file the configuration was read from, if any.
	File string `yaml:"-" toml:"-"`
}

// Debug holds the flags of GNLS_DEBUG.
type Debug struct {
	// LogRequests logs the parameters of every request.
	LogRequests bool

	// Strict rejects unknown keys in configuration files.
	Strict bool
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RootMarker: cache.DefaultRootMarker,
		Formatter:  BuiltinFormatter,
		Width:      80,
		LogLevel:   "info",
		DocsURL:    help.DefaultBaseURL,
	}
}

// Find returns the first configuration file in dir, or "" if there is
// none.
func Find(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}

// Load returns the configuration in the file at path, on top of the
// defaults. The format is chosen by the file extension. If path is "",
// only the defaults and the environment are used.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

// LoadDir is like [Load] with the configuration file found in dir.
func LoadDir(dir string) (*Config, error) {
	return Load(Find(dir))
}

func load(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
		// The environment overrides the file.
		if err := cfg.applyEnv(lookup); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c.File = path
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(c.Debug.Strict)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("cannot parse %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return fmt.Errorf("cannot parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); c.Debug.Strict && len(undecoded) > 0 {
			return fmt.Errorf("%s: unknown field %q", path, undecoded[0].String())
		}
	default:
		return fmt.Errorf("%s: unsupported configuration format %q", path, ext)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("GNLS_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("GNLS_FORMATTER"); ok && v != "" {
		c.Formatter = v
	}
	v, _ := lookup("GNLS_DEBUG")
	if err := envflag.Parse(&c.Debug, v); err != nil {
		return fmt.Errorf("cannot parse GNLS_DEBUG (known flags: %s): %w",
			strings.Join(envflag.Names[Debug](), ", "), err)
	}
	return nil
}

// Validate reports all invalid settings of c.
func (c *Config) Validate() error {
	var errs []error
	if c.RootMarker == "" || strings.ContainsAny(c.RootMarker, `/\`) {
		errs = append(errs, fmt.Errorf("root_marker must be a file name, not %q", c.RootMarker))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("width must not be negative"))
	}
	if _, err := c.formatter(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return l, nil
}

func (c *Config) formatter() (cache.Formatter, error) {
	if c.Formatter == "" || c.Formatter == BuiltinFormatter {
		var opts []format.Option
		if c.Width > 0 {
			opts = append(opts, format.Width(c.Width))
		}
		return cache.BuiltinFormatter{Options: opts}, nil
	}
	return cache.NewCommandFormatter(c.Formatter)
}

// CacheOptions returns the document options that c describes.
func (c *Config) CacheOptions() (*cache.Options, error) {
	f, err := c.formatter()
	if err != nil {
		return nil, err
	}
	return &cache.Options{RootMarker: c.RootMarker, Formatter: f}, nil
}
