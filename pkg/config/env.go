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
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gitlab.com/tozd/go/errors"
)

// EnvPrefix prefixes every environment override, e.g. SIDEBAR_CLIPBOARD=stdout
const EnvPrefix = "SIDEBAR"

// envOverrides are read from the environment. Unset variables leave the
// settings file untouched.
type envOverrides struct {
	Project     *string  `envconfig:"PROJECT"`
	Folders     []string `envconfig:"FOLDERS"`
	StateFile   *string  `envconfig:"STATE_FILE"`
	NewFileName *string  `envconfig:"NEW_FILE_NAME"`
	Clipboard   *string  `envconfig:"CLIPBOARD"`
	Async       *bool    `envconfig:"ASYNC"`
}

// applyEnv overlays environment overrides. Paths from the environment are
// relative to the working directory.
func (cfg *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return errors.Errorf("reading environment: %w", err)
	}

	if env.Project != nil {
		p, err := absOrEmpty(*env.Project)
		if err != nil {
			return err
		}
		cfg.Project = p
	}
	if env.Folders != nil {
		cfg.Folders = cfg.Folders[:0]
		for _, f := range env.Folders {
			p, err := absOrEmpty(f)
			if err != nil {
				return err
			}
			cfg.Folders = append(cfg.Folders, p)
		}
	}
	if env.StateFile != nil {
		p, err := absOrEmpty(*env.StateFile)
		if err != nil {
			return err
		}
		cfg.StateFile = p
	}
	if env.NewFileName != nil {
		cfg.NewFileName = *env.NewFileName
	}
	if env.Clipboard != nil {
		cfg.Clipboard = *env.Clipboard
	}
	if env.Async != nil {
		cfg.Async = env.Async
	}
	return nil
}

func absOrEmpty(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}
