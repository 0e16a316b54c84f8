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

	"github.com/walteh/sidebar/pkg/host"
	"github.com/walteh/sidebar/pkg/status"
)

// 🎯 Operation is one background filesystem mutation.
//
// Execute reports its own progress and failures; the returned error is only
// used for logging.
type Operation interface {
	Execute(ctx context.Context) error
	String() string
}

// 🔧 Options contains what every operation needs
type Options struct {
	// Window is the host window that receives status messages and opened files
	Window host.Window
	// Reporter renders and shows status messages
	Reporter *status.Reporter
}

// 🧱 BaseOperation holds the shared dependencies of the concrete operations
type BaseOperation struct {
	Window   host.Window
	Reporter *status.Reporter
}

// 🏭 NewBaseOperation creates a BaseOperation, defaulting the reporter to the window's status line
func NewBaseOperation(opts Options) BaseOperation {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = status.NewReporter(opts.Window, nil)
	}
	return BaseOperation{
		Window:   opts.Window,
		Reporter: reporter,
	}
}

// format is a shortcut to the reporter's formatter
func (b BaseOperation) format() status.Formatter {
	return b.Reporter.Format()
}
