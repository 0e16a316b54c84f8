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

package main

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sidebar/pkg/command"
)

// buildInfo describes the running binary
type buildInfo struct {
	Version   string   `json:"version"`
	Revision  string   `json:"revision,omitempty"`
	Dirty     bool     `json:"dirty"`
	BuiltAt   string   `json:"built_at,omitempty"`
	GoVersion string   `json:"go_version"`
	Platform  string   `json:"platform"`
	Commands  []string `json:"commands"`
}

// readBuildInfo fills buildInfo from the embedded module and vcs stamps
func readBuildInfo() buildInfo {
	info := buildInfo{
		Version:   "dev",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Commands:  command.Names(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.BuiltAt = s.Value
		case "vcs.modified":
			info.Dirty, _ = strconv.ParseBool(s.Value)
		}
	}
	return info
}

func (b buildInfo) rows() [][]string {
	revision := b.Revision
	if b.Dirty {
		revision += " (dirty)"
	}
	return [][]string{
		{"version", b.Version},
		{"revision", revision},
		{"built", b.BuiltAt},
		{"go", b.GoVersion},
		{"platform", b.Platform},
		{"commands", strings.Join(b.Commands, ", ")},
	}
}

// newVersionCmd prints build information. It runs without settings so it
// works in any directory.
func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			info := readBuildInfo()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(info); err != nil {
					return errors.Errorf("encoding version: %w", err)
				}
				return nil
			}

			pterm.Fprintln(cmd.OutOrStdout(), "🚀 sidebar version info")
			if err := pterm.DefaultTable.WithData(info.rows()).WithWriter(cmd.OutOrStdout()).Render(); err != nil {
				return errors.Errorf("rendering version: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
