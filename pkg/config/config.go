// Copyright 2025 walteh LLC
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
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultStateFile holds the open views of the terminal host
	DefaultStateFile = ".sidebar-views.json"
	// DefaultNewFileName is the leaf proposed by the new-file command
	DefaultNewFileName = "New file.txt"

	ClipboardSystem = "system"
	ClipboardStdout = "stdout"
)

// settingsPattern matches every settings file name the registered parsers understand
const settingsPattern = ".sidebar.{yaml,yml,hcl,json}"

// 📚 Config represents the complete configuration
type Config struct {
	Project     string   `json:"project,omitempty" yaml:"project,omitempty"`             // Sublime project file
	Folders     []string `json:"folders,omitempty" yaml:"folders,omitempty"`             // Project folders when there is no project file
	StateFile   string   `json:"state_file,omitempty" yaml:"state_file,omitempty"`       // Where open views are kept between runs
	NewFileName string   `json:"new_file_name,omitempty" yaml:"new_file_name,omitempty"` // Leaf proposed by the new-file command
	Clipboard   string   `json:"clipboard,omitempty" yaml:"clipboard,omitempty"`         // system or stdout
	Async       *bool    `json:"async,omitempty" yaml:"async,omitempty"`                 // Run file operations in background workers

	location string
}

// 🏗️ Default returns the built-in configuration, ignoring the environment
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Discover returns the settings file in dir, or "" when there is none
func Discover(dir string) (string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), settingsPattern)
	if err != nil {
		return "", errors.Errorf("globbing settings: %w", err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	return filepath.Join(dir, matches[0]), nil
}

// 🎯 LoadOrDefault loads path, or the settings file discovered in dir when path
// is empty, falling back to Default
func LoadOrDefault(ctx context.Context, path, dir string) (*Config, error) {
	if path == "" {
		found, err := Discover(dir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no settings file, using defaults")
			cfg := &Config{}
			if err := cfg.applyEnv(); err != nil {
				return nil, err
			}
			if err := cfg.Validate(); err != nil {
				return nil, errors.Errorf("validating config: %w", err)
			}
			return cfg, nil
		}
		path = found
	}
	return Load(ctx, path)
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	switch cfg.Clipboard {
	case "":
		cfg.Clipboard = ClipboardSystem
	case ClipboardSystem, ClipboardStdout:
	default:
		return errors.Errorf("clipboard must be %q or %q, got %q", ClipboardSystem, ClipboardStdout, cfg.Clipboard)
	}

	if cfg.StateFile == "" {
		cfg.StateFile = DefaultStateFile
	}
	if cfg.NewFileName == "" {
		cfg.NewFileName = DefaultNewFileName
	}
	if filepath.Base(cfg.NewFileName) != cfg.NewFileName {
		return errors.Errorf("new_file_name must be a single path element, got %q", cfg.NewFileName)
	}
	if cfg.Async == nil {
		async := true
		cfg.Async = &async
	}

	// relative paths are relative to the settings file
	cfg.Project = cfg.resolve(cfg.Project)
	cfg.StateFile = cfg.resolve(cfg.StateFile)
	for i, f := range cfg.Folders {
		if f == "" {
			return errors.Errorf("folders[%d] is empty", i)
		}
		cfg.Folders[i] = cfg.resolve(f)
	}

	return nil
}

func (cfg *Config) resolve(path string) string {
	if path == "" {
		return ""
	}
	if !filepath.IsAbs(path) && cfg.location != "" {
		path = filepath.Join(filepath.Dir(cfg.location), path)
	}
	return filepath.Clean(path)
}

// IsAsync reports whether operations run in background workers
func (cfg *Config) IsAsync() bool {
	return cfg.Async == nil || *cfg.Async
}

// Location returns the file the configuration was loaded from, or ""
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	source := cfg.location
	if source == "" {
		source = "defaults"
	}
	return fmt.Sprintf("%s (clipboard=%s async=%t state=%s)", source, cfg.Clipboard, cfg.IsAsync(), cfg.StateFile)
}
