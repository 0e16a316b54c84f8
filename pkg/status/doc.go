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

/*
Package status turns the outcome of side-bar commands into status-line messages.

🎯 Purpose:
- Owns the exact wording shown to the user
- Pushes messages to the host status line
- Mirrors every message into the structured log

🔄 Flow:
1. A command or background operation reaches a milestone or fails
2. The Formatter renders the human-readable line
3. The Reporter shows it on the host and logs it with zerolog

📝 Design Philosophy:
Status messages are fire-and-forget. Nothing here retries, aggregates or
returns errors; a failure is just another line for the user to read.

🔍 Example:

	rep := status.NewReporter(window, status.NewDefaultFormatter())
	rep.Info(ctx, rep.Format().Copying(src, dst))
*/
package status
