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
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sidebar/pkg/host"
	"github.com/walteh/sidebar/pkg/operation"
	"github.com/walteh/sidebar/pkg/pathutil"
)

const NewName = "side_bar_new"

func init() {
	Register(NewName, func(b *Base) Command { return &newCommand{b} })
}

// ✨ newCommand creates an empty file in the selected directory or next to the selected file
type newCommand struct{ *Base }

func (c *newCommand) Name() string                  { return NewName }
func (c *newCommand) Description() string           { return "New File…" }
func (c *newCommand) IsVisible(paths []string) bool { return c.Base.IsVisible(paths) }

func (c *newCommand) Run(ctx context.Context, paths []string) error {
	base := c.targetDir(c.GetPath(paths))
	if base == "" {
		return errors.WithStack(ErrNoPath)
	}

	filename, ok, err := c.ask(ctx, NewFileRequest(base, c.NewFileName))
	if err != nil || !ok {
		return err
	}

	c.Create(ctx, filename)
	return nil
}

// 🚀 Create dispatches the creation of filename
func (c *newCommand) Create(ctx context.Context, filename string) {
	if strings.HasSuffix(filename, string(filepath.Separator)) {
		c.Reporter.Info(ctx, c.Reporter.Format().TrailingSeparator())
		return
	}
	c.Runner.Dispatch(ctx, operation.NewCreateOperation(c.operationOptions(), filename))
}

// targetDir is source when it is a directory, otherwise its parent. With no
// source the first project folder is used.
func (c *newCommand) targetDir(source string) string {
	if source == "" {
		if folders := c.Host.ProjectFolders(); len(folders) > 0 {
			return folders[0]
		}
		return ""
	}
	if pathutil.IsDir(source) {
		return source
	}
	return filepath.Dir(source)
}

// 📝 NewFileRequest proposes name inside base with the whole name selected
func NewFileRequest(base, name string) host.InputRequest {
	initial := filepath.Join(base, name)
	return host.InputRequest{
		Caption:   "New file's path:",
		Initial:   initial,
		Selection: tailRegion(initial, name, 0),
	}
}
