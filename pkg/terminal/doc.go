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
Package terminal runs the side-bar commands outside an editor.

🎯 Purpose:
- Implements host.Host for a command-line session
- Keeps open views in a state file so moves can retarget them across runs
- Prints status lines and host events through pkg/log

🔄 Flow:
1. The CLI builds a Host from the loaded state, project and clipboard
2. A command asks for input through pterm, or takes the preset answer
3. Background operations report status and retarget views
4. The CLI saves the state once every worker is done

🔍 Example:

	h, err := terminal.New(terminal.Options{
		State:     st,
		Project:   proj,
		Logger:    logger,
		Clipboard: clipboard.System{},
	})
*/
package terminal
