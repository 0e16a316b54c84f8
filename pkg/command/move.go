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

const MoveName = "side_bar_move"

func init() {
	Register(MoveName, func(b *Base) Command { return &moveCommand{b} })
}

// 🚚 moveCommand renames or relocates a file or directory and keeps open views pointed at it
type moveCommand struct{ *Base }

func (c *moveCommand) Name() string                  { return MoveName }
func (c *moveCommand) Description() string           { return "Move File…" }
func (c *moveCommand) IsVisible(paths []string) bool { return c.Base.IsVisible(paths) }

func (c *moveCommand) Run(ctx context.Context, paths []string) error {
	source := c.GetPath(paths)
	if source == "" {
		return errors.WithStack(ErrNoPath)
	}

	destination, ok, err := c.ask(ctx, MoveRequest(source))
	if err != nil || !ok {
		return err
	}

	c.Move(ctx, source, destination)
	return nil
}

// 🚀 Move dispatches the move of source to destination
func (c *moveCommand) Move(ctx context.Context, source, destination string) {
	if c.SamePaths(source, destination) {
		c.Reporter.Info(ctx, c.Reporter.Format().SelfMove())
		return
	}
	c.Runner.Dispatch(ctx, operation.NewMoveOperation(c.operationOptions(), source, destination))
}

// 📝 MoveRequest proposes source itself with the leaf name up to its last
// extension selected
func MoveRequest(source string) host.InputRequest {
	source = filepath.Clean(source)
	_, leaf := pathutil.Split(source)
	_, ext := pathutil.SplitExt(leaf)

	return host.InputRequest{
		Caption:   "Move to:",
		Initial:   source,
		Selection: tailRegion(source, leaf, runeLen(ext)),
	}
}
