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

package status

import (
	"context"

	"github.com/rs/zerolog"
)

// 📢 Notifier is anything with a status line
type Notifier interface {
	StatusMessage(msg string)
}

// 📈 Reporter shows messages on the status line and mirrors them to zerolog
type Reporter struct {
	notifier  Notifier
	formatter Formatter
}

// 🏭 NewReporter creates a new reporter. A nil formatter uses DefaultFormatter.
func NewReporter(notifier Notifier, formatter Formatter) *Reporter {
	if formatter == nil {
		formatter = NewDefaultFormatter()
	}
	return &Reporter{
		notifier:  notifier,
		formatter: formatter,
	}
}

// Format returns the formatter used to build messages
func (r *Reporter) Format() Formatter {
	return r.formatter
}

// ℹ️ Info shows a progress or result message
func (r *Reporter) Info(ctx context.Context, msg string) {
	r.notifier.StatusMessage(msg)
	zerolog.Ctx(ctx).Info().Str("status", msg).Msg("status message")
}

// ❌ Error shows a failure message; err is only logged
func (r *Reporter) Error(ctx context.Context, err error, msg string) {
	r.notifier.StatusMessage(msg)
	zerolog.Ctx(ctx).Error().Err(err).Str("status", msg).Msg("status message")
}
