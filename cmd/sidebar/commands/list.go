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

package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sidebar/cmd/sidebar/opts"
	"github.com/walteh/sidebar/pkg/command"
)

// NewListCmd prints every side-bar command and whether it applies to the selection
func NewListCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [path...]",
		Short: "List side-bar commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := absPaths(args)
			if err != nil {
				return err
			}

			data := [][]string{{"Command", "Description", "Visible"}}
			for _, name := range command.Names() {
				c, err := command.New(name, opts.Base)
				if err != nil {
					return errors.Errorf("creating command: %w", err)
				}
				data = append(data, []string{name, c.Description(), strconv.FormatBool(c.IsVisible(paths))})
			}

			if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(cmd.OutOrStdout()).Render(); err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			return nil
		},
	}

	return cmd
}
