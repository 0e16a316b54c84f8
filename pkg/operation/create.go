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

// ✨ NewCreateOperation creates an operation making an empty file at filename
func NewCreateOperation(opts Options, filename string) Operation {
	return &createOperation{
		BaseOperation: NewBaseOperation(opts),
		filename:      filename,
	}
}

// ✨ createOperation creates a new empty file and opens it
type createOperation struct {
	BaseOperation
	filename string
}

func (op *createOperation) String() string {
	return fmt.Sprintf("create %s", op.filename)
}

// 🏃 Execute creates the file unless something already exists there
func (op *createOperation) Execute(ctx context.Context) error {
	op.Reporter.Info(ctx, op.format().Creating(op.filename))

	if pathutil.Exists(op.filename) {
		op.Reporter.Info(ctx, op.format().Exists(op.filename))
		return nil
	}

	_ = MakeDirsFor(ctx, op.filename)

	if err := CreateEmpty(op.filename); err != nil {
		op.Reporter.Error(ctx, err, op.format().CreateError(err, op.filename))
		return err
	}

	if err := op.Window.OpenFile(op.filename); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("path", op.filename).Msg("opening created file")
	}
	return nil
}
