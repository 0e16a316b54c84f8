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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, dir string, cfg *Config)
	}{
		{
			name:     "yaml_full",
			filename: ".sidebar.yaml",
			config: `
project: sidebar.sublime-project
folders:
  - src
  - /abs/docs
state_file: state/views.json
new_file_name: untitled.md
clipboard: stdout
async: false
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "sidebar.sublime-project"), cfg.Project, "project should be resolved")
				assert.Equal(t, []string{filepath.Join(dir, "src"), "/abs/docs"}, cfg.Folders, "folders should be resolved")
				assert.Equal(t, filepath.Join(dir, "state", "views.json"), cfg.StateFile, "state file should be resolved")
				assert.Equal(t, "untitled.md", cfg.NewFileName, "new file name should match")
				assert.Equal(t, ClipboardStdout, cfg.Clipboard, "clipboard should match")
				assert.False(t, cfg.IsAsync(), "async should be false")
			},
		},
		{
			name:     "yaml_minimal",
			filename: ".sidebar.yml",
			config:   "{}\n",
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Empty(t, cfg.Project, "project should be empty")
				assert.Equal(t, filepath.Join(dir, DefaultStateFile), cfg.StateFile, "state file should have default value")
				assert.Equal(t, DefaultNewFileName, cfg.NewFileName, "new file name should have default value")
				assert.Equal(t, ClipboardSystem, cfg.Clipboard, "clipboard should have default value")
				assert.True(t, cfg.IsAsync(), "async should default to true")
			},
		},
		{
			name:     "empty_file",
			filename: ".sidebar.yaml",
			config:   "",
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, DefaultNewFileName, cfg.NewFileName, "empty file should behave like defaults")
				assert.True(t, cfg.IsAsync())
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    ".sidebar.yaml",
			config:      "destination: /tmp\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:     "hcl_full",
			filename: ".sidebar.hcl",
			config: `
project       = "p.sublime-project"
folders       = ["a", "b"]
new_file_name = "NOTES.txt"
clipboard     = "stdout"
async         = false
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "p.sublime-project"), cfg.Project)
				assert.Equal(t, []string{filepath.Join(dir, "a"), filepath.Join(dir, "b")}, cfg.Folders)
				assert.Equal(t, "NOTES.txt", cfg.NewFileName)
				assert.Equal(t, ClipboardStdout, cfg.Clipboard)
				assert.False(t, cfg.IsAsync())
			},
		},
		{
			name:     "hcl_home_variable",
			filename: ".sidebar.hcl",
			config:   `state_file = "${home}/views.json"`,
			check: func(t *testing.T, dir string, cfg *Config) {
				home, err := os.UserHomeDir()
				require.NoError(t, err)
				assert.Equal(t, filepath.Join(home, "views.json"), cfg.StateFile)
			},
		},
		{
			name:        "hcl_unknown_attribute",
			filename:    ".sidebar.hcl",
			config:      `destination = "/tmp"`,
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:     "json_full",
			filename: ".sidebar.json",
			config:   `{"folders": ["."], "clipboard": "system", "async": true}`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, []string{dir}, cfg.Folders)
				assert.Equal(t, ClipboardSystem, cfg.Clipboard)
				assert.True(t, cfg.IsAsync())
			},
		},
		{
			name:        "json_unknown_field",
			filename:    ".sidebar.json",
			config:      `{"provider": {}}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "json_trailing_object",
			filename:    ".sidebar.json",
			config:      "{\"clipboard\": \"stdout\"}\n{\"async\": false}\n",
			wantErr:     true,
			errContains: "unexpected data after the settings object",
		},
		{
			name:        "invalid_clipboard",
			filename:    ".sidebar.yaml",
			config:      "clipboard: x11\n",
			wantErr:     true,
			errContains: "clipboard must be",
		},
		{
			name:        "nested_new_file_name",
			filename:    ".sidebar.yaml",
			config:      "new_file_name: a/b.txt\n",
			wantErr:     true,
			errContains: "single path element",
		},
		{
			name:        "empty_folder",
			filename:    ".sidebar.json",
			config:      `{"folders": [""]}`,
			wantErr:     true,
			errContains: "folders[0] is empty",
		},
		{
			name:        "unsupported_extension",
			filename:    ".sidebar.toml",
			config:      "clipboard = 'stdout'",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644), "writing config file")

			cfg, err := Load(testContext(t), path)
			if tt.wantErr {
				require.Error(t, err, "should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "should not return error")
			assert.Equal(t, path, cfg.Location(), "location should be recorded")
			tt.check(t, dir, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testContext(t), filepath.Join(t.TempDir(), ".sidebar.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultStateFile, cfg.StateFile)
	assert.Equal(t, DefaultNewFileName, cfg.NewFileName)
	assert.Equal(t, ClipboardSystem, cfg.Clipboard)
	assert.True(t, cfg.IsAsync())
	assert.Empty(t, cfg.Location())
	assert.Contains(t, cfg.String(), "defaults")
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Empty(t, found, "nothing to discover in an empty directory")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sidebar.yaml"), []byte("{}"), 0644))
	found, err = Discover(dir)
	require.NoError(t, err)
	assert.Empty(t, found, "settings files are dotfiles")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sidebar.hcl"), []byte(""), 0644))
	found, err = Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".sidebar.hcl"), found)
}

func TestLoadOrDefault(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	cfg, err := LoadOrDefault(ctx, "", dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.Location(), "defaults when nothing is found")

	path := filepath.Join(dir, ".sidebar.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"clipboard": "stdout"}`), 0644))

	cfg, err = LoadOrDefault(ctx, "", dir)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Location())
	assert.Equal(t, ClipboardStdout, cfg.Clipboard)

	other := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(other, []byte("async: false\n"), 0644))
	cfg, err = LoadOrDefault(ctx, other, dir)
	require.NoError(t, err)
	assert.False(t, cfg.IsAsync(), "explicit path wins over discovery")
}

func TestGetParser(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{".sidebar.yaml", &YAMLParser{}},
		{".sidebar.yml", &YAMLParser{}},
		{".sidebar.hcl", &HCLParser{}},
		{".sidebar.json", &JSONParser{}},
		{"/etc/SIDEBAR.JSON", &JSONParser{}},
		{".sidebar.toml", nil},
		{"yaml", nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}
