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

package operation

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/walteh/sidebar/pkg/host"
	"github.com/walteh/sidebar/pkg/pathutil"
)

// 🚚 NewMoveOperation creates an operation moving source to destination
func NewMoveOperation(opts Options, source, destination string) Operation {
	return &moveOperation{
		BaseOperation: NewBaseOperation(opts),
		source:        source,
		destination:   destination,
	}
}

// 🚚 moveOperation moves a file or directory and retargets open views
type moveOperation struct {
	BaseOperation
	source      string
	destination string
}

func (op *moveOperation) String() string {
	return fmt.Sprintf("move %s -> %s", op.source, op.destination)
}

// 🏃 Execute runs the move. The folder list is refreshed whatever the outcome.
func (op *moveOperation) Execute(ctx context.Context) error {
	defer op.Window.RefreshFolderList()

	op.Reporter.Info(ctx, op.format().Moving(op.source, op.destination))

	_ = MakeDirsFor(ctx, op.destination)

	final, err := Move(ctx, op.source, op.destination)
	if err != nil {
		op.Reporter.Error(ctx, err, op.format().MoveError(err, op.source, op.destination))
		return err
	}

	n := RetargetViews(ctx, op.Window.Views(), op.source, final, pathutil.IsFile(final))
	zerolog.Ctx(ctx).Debug().Int("views", n).Str("dst", final).Msg("retargeted views")
	return nil
}

// 🎯 RetargetViews points every view affected by a move at its new location.
//
// For a file move only views of exactly source are retargeted. For a
// directory move every view under source is retargeted to the same relative
// path under destination. The number of retargeted views is returned.
func RetargetViews(ctx context.Context, views []host.View, source, destination string, isFileMove bool) int {
	source = strings.TrimSuffix(filepath.Clean(source), string(filepath.Separator))
	destination = filepath.Clean(destination)

	count := 0
	for _, view := range views {
		filename := view.FileName()
		if filename == "" {
			continue
		}

		var target string
		if isFileMove {
			if filename != source {
				continue
			}
			target = destination
		} else {
			prefix := pathutil.WithTrailingSep(source)
			if !strings.HasPrefix(filename, prefix) {
				continue
			}
			target = pathutil.WithTrailingSep(destination) + filename[len(prefix):]
		}

		if err := view.Retarget(target); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("from", filename).Str("to", target).Msg("retargeting view")
			continue
		}
		count++
	}
	return count
}
