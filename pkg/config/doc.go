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
Package config loads the sidebar settings file.

🎯 Purpose:
- Finds and parses .sidebar.yaml, .sidebar.yml, .sidebar.hcl or .sidebar.json
- Validates values and fills in defaults
- Resolves relative paths against the settings file
- Overlays SIDEBAR_* environment variables on top of the file

🔄 Flow:
1. Discover looks for a settings file in the working directory
2. GetParser picks the parser registered for its extension
3. Environment overrides such as SIDEBAR_CLIPBOARD replace file values
4. Validate applies defaults and cleans paths
5. The CLI hands the result to the terminal host and the commands

🤝 Interfaces:
- Parser: Format-specific parsing, registered from init

📝 Design Philosophy:
Every field is optional. A missing settings file is the same as an empty one,
so Default and Load of an empty file agree.

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, "", ".")
	if err != nil {
		return err
	}
	fmt.Println(cfg.NewFileName) // New file.txt

	# .sidebar.hcl
	project   = "sidebar.sublime-project"
	state_file = "${home}/.sidebar-views.json"
	clipboard = "stdout"
	async     = false
*/
package config
