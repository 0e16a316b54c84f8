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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sidebar/cmd/sidebar/opts"
	"github.com/walteh/sidebar/pkg/command"
	"github.com/walteh/sidebar/pkg/log"
)

// NewSideBarCmd exposes the side-bar command registered under name
func NewSideBarCmd(name string, opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [path...]",
		Short: command.Describe(name),
		Long: `Runs the side-bar command on the selected paths.
With no path the active document (--active) is used.
File operations run in the background; the command returns once they are done
and the open views are saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", name).Logger().WithContext(cmd.Context())

			paths, err := absPaths(args)
			if err != nil {
				return err
			}

			c, err := command.New(name, opts.Base)
			if err != nil {
				return errors.Errorf("creating command: %w", err)
			}
			if !c.IsVisible(paths) {
				return errors.Errorf("%s does not apply to %d selected path(s)", name, len(paths))
			}

			log.FromContext(ctx).Header(c.Description())

			runErr := c.Run(ctx, paths)
			opts.Runner.Wait()

			if err := opts.State.Save(ctx); err != nil {
				return errors.Errorf("saving state: %w", err)
			}
			if runErr != nil {
				return errors.Errorf("running %s: %w", name, runErr)
			}
			return nil
		},
	}

	return cmd
}

func absPaths(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, errors.Errorf("resolving %s: %w", arg, err)
		}
		paths = append(paths, abs)
	}
	return paths, nil
}
