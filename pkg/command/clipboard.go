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

package command

import (
	"context"
	"path/filepath"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sidebar/pkg/pathutil"
)

const (
	CopyNameName         = "side_bar_copy_name"
	CopyAbsolutePathName = "side_bar_copy_absolute_path"
	CopyRelativePathName = "side_bar_copy_relative_path"
)

func init() {
	Register(CopyNameName, func(b *Base) Command { return &copyNameCommand{b} })
	Register(CopyAbsolutePathName, func(b *Base) Command { return &copyAbsolutePathCommand{b} })
	Register(CopyRelativePathName, func(b *Base) Command { return &copyRelativePathCommand{b} })
}

// 📋 copyNameCommand copies the leaf name of every selected path
type copyNameCommand struct{ *Base }

func (c *copyNameCommand) Name() string                  { return CopyNameName }
func (c *copyNameCommand) Description() string           { return "Copy Filename" }
func (c *copyNameCommand) IsVisible(paths []string) bool { return c.IsVisibleMulti(paths) }

func (c *copyNameCommand) Run(ctx context.Context, paths []string) error {
	return c.copyEach(ctx, paths, filepath.Base)
}

// 📋 copyAbsolutePathCommand copies every selected path as given
type copyAbsolutePathCommand struct{ *Base }

func (c *copyAbsolutePathCommand) Name() string                  { return CopyAbsolutePathName }
func (c *copyAbsolutePathCommand) Description() string           { return "Copy Absolute Path" }
func (c *copyAbsolutePathCommand) IsVisible(paths []string) bool { return c.IsVisibleMulti(paths) }

func (c *copyAbsolutePathCommand) Run(ctx context.Context, paths []string) error {
	return c.copyEach(ctx, paths, func(p string) string { return p })
}

// 📋 copyRelativePathCommand copies every selected path relative to the project root
type copyRelativePathCommand struct{ *Base }

func (c *copyRelativePathCommand) Name() string                  { return CopyRelativePathName }
func (c *copyRelativePathCommand) Description() string           { return "Copy Relative Path" }
func (c *copyRelativePathCommand) IsVisible(paths []string) bool { return c.IsVisibleMulti(paths) }

func (c *copyRelativePathCommand) Run(ctx context.Context, paths []string) error {
	root := c.ProjectRoot()
	return c.copyEach(ctx, paths, func(p string) string {
		return pathutil.Relative(root, p)
	})
}

// 🌳 ProjectRoot is the directory of the project file, else the first project
// folder, else "".
func (b *Base) ProjectRoot() string {
	if file := b.Host.ProjectFileName(); file != "" {
		return filepath.Dir(file)
	}
	if folders := b.Host.ProjectFolders(); len(folders) > 0 {
		return folders[0]
	}
	return ""
}

func (b *Base) copyEach(ctx context.Context, paths []string, transform func(string) string) error {
	selected := b.GetPaths(paths)
	if len(selected) == 0 {
		return errors.WithStack(ErrNoPath)
	}
	entries := make([]string, 0, len(selected))
	for _, p := range selected {
		entries = append(entries, transform(p))
	}
	return b.CopyToClipboardAndInform(ctx, joinLines(entries))
}
