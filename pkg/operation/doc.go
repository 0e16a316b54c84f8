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
Package operation runs the filesystem side of the side-bar commands in the
background.

🎯 Purpose:
- Performs the duplicate, move and create mutations off the interactive path
- Reports progress and failures on the host status line
- Retargets open views after a move

🔄 Flow:
1. A command collects source and destination from the user
2. It builds an Operation and hands it to the Runner
3. The Runner starts one independent worker per operation
4. The worker creates parent directories and mutates the filesystem
5. status.Reporter puts the outcome on the status line

⚡ Key Responsibilities:
- Recursive directory copies and mode-preserving file copies
- Rename-based moves with a copy fallback across devices
- Exclusive creation of empty files
- Converting every failure and panic into a status message

🤝 Interfaces:
- host.Window: status line, open views, opening files
- status.Reporter: message wording and structured logging

📝 Design Philosophy:
Operations are fire-and-forget. Two operations touching the same path are not
serialised, nothing is cancelled, and a failed call is reported once and never
retried.

🔍 Example:

	runner := operation.NewRunner(reporter, true)
	runner.Dispatch(ctx, operation.NewMoveOperation(opts, src, dst))
	runner.Wait()
*/
package operation
