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
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sidebar/cmd/sidebar/commands"
	"github.com/walteh/sidebar/cmd/sidebar/opts"
	"github.com/walteh/sidebar/pkg/clipboard"
	"github.com/walteh/sidebar/pkg/command"
	"github.com/walteh/sidebar/pkg/config"
	"github.com/walteh/sidebar/pkg/log"
	"github.com/walteh/sidebar/pkg/operation"
	"github.com/walteh/sidebar/pkg/project"
	"github.com/walteh/sidebar/pkg/state"
	"github.com/walteh/sidebar/pkg/status"
	"github.com/walteh/sidebar/pkg/terminal"
)

// rootFlags are the persistent flags shared by every sub-command
type rootFlags struct {
	configFile string
	debug      bool
	active     string
	answer     string
}

// newRootCmd builds the sidebar command tree
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	root := &cobra.Command{
		Use:          "sidebar",
		Short:        "Run editor side-bar file commands from a terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), flags.debug)

			built, err := newRootOpts(ctx, cmd, flags)
			if err != nil {
				return err
			}
			*rootOpts = *built
			cmd.SetContext(log.NewContext(ctx, built.Logger))
			return nil
		},
	}
	addRootFlags(root, flags)

	for _, name := range command.Names() {
		root.AddCommand(commands.NewSideBarCmd(name, rootOpts))
	}
	root.AddCommand(commands.NewListCmd(rootOpts))
	root.AddCommand(newVersionCmd())

	return root
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "settings file path (default: .sidebar.{yaml,yml,hcl,json} in the working directory)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.active, "active", "", "path of the active document")
	cmd.PersistentFlags().StringVar(&flags.answer, "answer", "", "answer every prompt with this value instead of asking; empty cancels")
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// newRootOpts loads settings, project and state and wires the terminal host
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*opts.RootOpts, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(ctx, flags.configFile, cwd)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration loaded")

	proj, err := loadProject(ctx, cfg, cwd)
	if err != nil {
		return nil, err
	}

	st, err := state.Load(ctx, cfg.StateFile)
	if err != nil {
		return nil, errors.Errorf("loading state: %w", err)
	}
	if flags.active != "" {
		active, err := filepath.Abs(flags.active)
		if err != nil {
			return nil, errors.Errorf("resolving active document: %w", err)
		}
		st.SetActive(active)
	}

	clip, err := clipboard.New(cfg.Clipboard, cmd.OutOrStdout())
	if err != nil {
		return nil, errors.Errorf("creating clipboard: %w", err)
	}

	level := zerolog.Disabled
	if flags.debug {
		level = zerolog.DebugLevel
	}
	logger := log.New(cmd.OutOrStdout(), level)

	hostOpts := terminal.Options{
		State:     st,
		Project:   proj,
		Logger:    logger,
		Clipboard: clip,
	}
	if cmd.Flags().Changed("answer") {
		answer := flags.answer
		hostOpts.Answer = &answer
	}
	h, err := terminal.New(hostOpts)
	if err != nil {
		return nil, errors.Errorf("creating terminal host: %w", err)
	}

	reporter := status.NewReporter(h, status.NewDefaultFormatter())
	runner := operation.NewRunner(reporter, cfg.IsAsync())
	base, err := command.NewBase(command.Options{
		Host:        h,
		Runner:      runner,
		Reporter:    reporter,
		NewFileName: cfg.NewFileName,
	})
	if err != nil {
		return nil, errors.Errorf("creating command base: %w", err)
	}

	return &opts.RootOpts{
		Config: cfg,
		State:  st,
		Logger: logger,
		Host:   h,
		Runner: runner,
		Base:   base,
	}, nil
}

// loadProject prefers the configured project file, then configured folders,
// then a project file discovered above cwd
func loadProject(ctx context.Context, cfg *config.Config, cwd string) (*project.Project, error) {
	if cfg.Project != "" {
		p, err := project.Load(ctx, cfg.Project)
		if err != nil {
			return nil, errors.Errorf("loading project: %w", err)
		}
		return p, nil
	}
	if len(cfg.Folders) > 0 {
		return project.FromFolders(cfg.Folders...), nil
	}

	found, err := project.Discover(cwd)
	if errors.Is(err, project.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Errorf("discovering project: %w", err)
	}
	p, err := project.Load(ctx, found)
	if err != nil {
		return nil, errors.Errorf("loading project: %w", err)
	}
	return p, nil
}
