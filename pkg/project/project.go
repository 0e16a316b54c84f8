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

// Package project reads Sublime Text project files.
package project

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Pattern matches project files inside a single directory
const Pattern = "*.sublime-project"

// ErrNotFound is returned by Discover when no project file exists up to the filesystem root
var ErrNotFound = errors.Base("no project file found")

// 📁 Folder is one entry of the project's "folders" list
type Folder struct {
	Path string `json:"path"`
	Name string `json:"name,omitempty"`
}

// 📦 Project is a loaded project file
type Project struct {
	// File is the absolute path of the project file, or "" for a folder-only project
	File    string
	Folders []Folder
}

type projectFile struct {
	Folders  []Folder       `json:"folders"`
	Settings map[string]any `json:"settings,omitempty"`
	Build    []any          `json:"build_systems,omitempty"`
}

// 🎯 Load reads the project file at path. Relative folder paths are resolved
// against the project file's directory.
func Load(ctx context.Context, path string) (*Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving project path: %w", err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.Errorf("reading project file: %w", err)
	}

	var pf projectFile
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&pf); err != nil {
		return nil, errors.Errorf("parsing project file %s: %w", abs, err)
	}

	dir := filepath.Dir(abs)
	p := &Project{File: abs}
	for i, f := range pf.Folders {
		if f.Path == "" {
			return nil, errors.Errorf("folders[%d] has no path", i)
		}
		if !filepath.IsAbs(f.Path) {
			f.Path = filepath.Join(dir, f.Path)
		}
		f.Path = filepath.Clean(f.Path)
		p.Folders = append(p.Folders, f)
	}

	zerolog.Ctx(ctx).Debug().Str("file", abs).Int("folders", len(p.Folders)).Msg("loaded project")
	return p, nil
}

// 🔍 Discover walks upward from dir and returns the first project file found
func Discover(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Errorf("resolving directory: %w", err)
	}

	for {
		matches, err := doublestar.Glob(os.DirFS(current), Pattern, doublestar.WithFilesOnly())
		if err != nil {
			return "", errors.Errorf("globbing %s: %w", current, err)
		}
		if len(matches) > 0 {
			return filepath.Join(current, matches[0]), nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", errors.WithStack(ErrNotFound)
		}
		current = parent
	}
}

// 📂 FromFolders builds a project without a project file
func FromFolders(folders ...string) *Project {
	p := &Project{}
	for _, f := range folders {
		p.Folders = append(p.Folders, Folder{Path: filepath.Clean(f)})
	}
	return p
}

// 🌳 Root is the directory of the project file, else the first folder, else ""
func (p *Project) Root() string {
	if p == nil {
		return ""
	}
	if p.File != "" {
		return filepath.Dir(p.File)
	}
	if len(p.Folders) > 0 {
		return p.Folders[0].Path
	}
	return ""
}

// FolderPaths returns the folder paths in order
func (p *Project) FolderPaths() []string {
	if p == nil {
		return nil
	}
	paths := make([]string, 0, len(p.Folders))
	for _, f := range p.Folders {
		paths = append(paths, f.Path)
	}
	return paths
}
