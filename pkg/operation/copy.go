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

	"github.com/rs/zerolog"

	"github.com/walteh/sidebar/pkg/pathutil"
)

// 📦 NewDuplicateOperation creates an operation copying source to destination
func NewDuplicateOperation(opts Options, source, destination string) Operation {
	return &duplicateOperation{
		BaseOperation: NewBaseOperation(opts),
		source:        source,
		destination:   destination,
	}
}

// 📦 duplicateOperation copies a file or a whole directory
type duplicateOperation struct {
	BaseOperation
	source      string
	destination string
}

func (op *duplicateOperation) String() string {
	return fmt.Sprintf("duplicate %s -> %s", op.source, op.destination)
}

// 🏃 Execute runs the copy
func (op *duplicateOperation) Execute(ctx context.Context) error {
	op.Reporter.Info(ctx, op.format().Copying(op.source, op.destination))

	// a failure here resurfaces as a copy error below
	_ = MakeDirsFor(ctx, op.destination)

	if pathutil.IsDir(op.source) {
		if err := CopyTree(ctx, op.source, op.destination); err != nil {
			op.Reporter.Error(ctx, err, op.format().CopyError(err, op.source, op.destination))
			return err
		}
		return nil
	}

	final, err := CopyFile(ctx, op.source, op.destination)
	if err != nil {
		op.Reporter.Error(ctx, err, op.format().CopyError(err, op.source, op.destination))
		return err
	}

	if err := op.Window.OpenFile(final); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("path", final).Msg("opening duplicated file")
	}
	return nil
}
