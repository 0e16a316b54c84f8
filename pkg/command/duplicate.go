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

	"github.com/walteh/sidebar/pkg/host"
	"github.com/walteh/sidebar/pkg/operation"
	"github.com/walteh/sidebar/pkg/pathutil"
)

const DuplicateName = "side_bar_duplicate"

func init() {
	Register(DuplicateName, func(b *Base) Command { return &duplicateCommand{b} })
}

// 📑 duplicateCommand copies a file or directory next to itself under a new name
type duplicateCommand struct{ *Base }

func (c *duplicateCommand) Name() string                  { return DuplicateName }
func (c *duplicateCommand) Description() string           { return "Duplicate File…" }
func (c *duplicateCommand) IsVisible(paths []string) bool { return c.Base.IsVisible(paths) }

func (c *duplicateCommand) Run(ctx context.Context, paths []string) error {
	source := c.GetPath(paths)
	if source == "" {
		return errors.WithStack(ErrNoPath)
	}

	destination, ok, err := c.ask(ctx, DuplicateRequest(source))
	if err != nil || !ok {
		return err
	}

	c.Duplicate(ctx, source, destination)
	return nil
}

// 🚀 Duplicate dispatches the copy of source to destination
func (c *duplicateCommand) Duplicate(ctx context.Context, source, destination string) {
	if c.SamePaths(source, destination) {
		c.Reporter.Info(ctx, c.Reporter.Format().SelfCopy())
		return
	}
	c.Runner.Dispatch(ctx, operation.NewDuplicateOperation(c.operationOptions(), source, destination))
}

// 📝 DuplicateRequest proposes "<name> (Copy)<ext>" next to source with the
// name part up to the extension selected
func DuplicateRequest(source string) host.InputRequest {
	base, leaf := pathutil.Split(filepath.Clean(source))
	name, ext := pathutil.SplitMultiExt(leaf)
	tail := name + " (Copy)" + ext
	initial := filepath.Join(base, tail)

	return host.InputRequest{
		Caption:   "Duplicate As:",
		Initial:   initial,
		Selection: tailRegion(initial, tail, runeLen(ext)),
	}
}
