// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the decint.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// FileName is the name of the configuration file searched by Find.
const FileName = "decint.toml"

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Output formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config is the decoded content of a configuration file.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	Check  CheckConfig  `toml:"check"`

	// Path of the file the configuration was loaded from, empty for defaults.
	Path string `toml:"-"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type OutputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

type CheckConfig struct {
	// Jobs is the number of parallel workers; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Color: ColorAuto, Format: FormatPretty},
	}
}

// Find looks for FileName in startDir and its parents. It returns the path of
// the first match and whether one was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the file at path on top of the defaults and validates the
// result. Keys missing from the file keep their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Resolve loads the configuration at path if path is not empty. Otherwise it
// searches startDir and its parents for FileName and falls back to Default.
func Resolve(path, startDir string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks that all values are in range.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("[log].level: %w", err)
	}
	switch c.Output.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("[output].color: invalid value %q (want auto, on or off)", c.Output.Color)
	}
	switch c.Output.Format {
	case FormatPretty, FormatJSON:
	default:
		return fmt.Errorf("[output].format: invalid value %q (want pretty or json)", c.Output.Format)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("[check].jobs: must not be negative, got %d", c.Check.Jobs)
	}
	return nil
}
