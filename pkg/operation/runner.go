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
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"

	"github.com/walteh/sidebar/pkg/status"
)

// 🏃 Runner executes operations, one independent worker each
type Runner struct {
	reporter *status.Reporter
	async    bool
	workers  *conc.WaitGroup
}

// 🏗️ NewRunner creates a new runner. With async false operations run inline,
// which is what tests and scripted callers usually want.
func NewRunner(reporter *status.Reporter, async bool) *Runner {
	return &Runner{
		reporter: reporter,
		async:    async,
		workers:  conc.NewWaitGroup(),
	}
}

// 🚀 Dispatch starts op and returns immediately in async mode.
// Failures never reach the caller; they end up on the status line.
func (r *Runner) Dispatch(ctx context.Context, op Operation) {
	id := uuid.NewString()
	ctx = zerolog.Ctx(ctx).With().
		Str("operation", op.String()).
		Str("operation_id", id).
		Logger().WithContext(ctx)

	if !r.async {
		r.execute(ctx, op)
		return
	}

	r.workers.Go(func() {
		r.execute(ctx, op)
	})
}

// ⏳ Wait blocks until every dispatched operation has returned
func (r *Runner) Wait() {
	r.workers.Wait()
}

func (r *Runner) execute(ctx context.Context, op Operation) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()
	logger.Debug().Msg("operation started")

	var err error
	if rec := panics.Try(func() { err = op.Execute(ctx) }); rec != nil {
		r.reporter.Error(ctx, rec.AsError(), r.reporter.Format().Panic(op.String(), rec.Value))
		return
	}

	if err != nil {
		logger.Debug().Err(err).Dur("took", time.Since(start)).Msg("operation failed")
		return
	}
	logger.Debug().Dur("took", time.Since(start)).Msg("operation finished")
}
