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

package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sidebar/pkg/host"
	"github.com/walteh/sidebar/pkg/log"
	"github.com/walteh/sidebar/pkg/project"
	"github.com/walteh/sidebar/pkg/state"
)

// Prompter asks the user for a line of text
type Prompter func(ctx context.Context, req host.InputRequest) (string, error)

// 🔧 Options configures a Host
type Options struct {
	State     *state.State
	Project   *project.Project
	Logger    *log.Logger
	Clipboard host.Clipboard

	// Answer, when set, confirms every input panel without prompting.
	// An empty answer dismisses the panel.
	Answer *string

	// Prompter overrides the interactive pterm prompt
	Prompter Prompter
}

// 🪟 Host is a host.Host for a terminal session
type Host struct {
	state     *state.State
	project   *project.Project
	logger    *log.Logger
	clipboard host.Clipboard
	answer    *string
	prompt    Prompter
}

var _ host.Host = (*Host)(nil)

// 🏭 New creates a terminal host
func New(opts Options) (*Host, error) {
	if opts.State == nil {
		return nil, errors.Errorf("state is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if opts.Clipboard == nil {
		return nil, errors.Errorf("clipboard is required")
	}
	prompt := opts.Prompter
	if prompt == nil {
		prompt = ptermPrompt
	}
	return &Host{
		state:     opts.State,
		project:   opts.Project,
		logger:    opts.Logger,
		clipboard: opts.Clipboard,
		answer:    opts.Answer,
		prompt:    prompt,
	}, nil
}

func (h *Host) ActiveFileName() string {
	return h.state.Active()
}

func (h *Host) StatusMessage(msg string) {
	h.logger.Status(msg)
}

// ShowInputPanel prompts for a line of text. An empty interactive answer
// accepts the initial text.
func (h *Host) ShowInputPanel(ctx context.Context, req host.InputRequest) (string, error) {
	logger := zerolog.Ctx(ctx)

	if h.answer != nil {
		logger.Debug().Str("caption", req.Caption).Str("answer", *h.answer).Msg("using preset answer")
		if *h.answer == "" {
			return "", errors.WithStack(host.ErrInputCancelled)
		}
		return *h.answer, nil
	}

	answer, err := h.prompt(ctx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" {
		return req.Initial, nil
	}
	return answer, nil
}

func (h *Host) OpenFile(path string) error {
	h.state.SetActive(path)
	h.logger.LogEvent(context.Background(), log.Event{Kind: log.EventOpen, Path: path})
	return nil
}

func (h *Host) Views() []host.View {
	views := h.state.Views()
	wrapped := make([]host.View, 0, len(views))
	for _, v := range views {
		wrapped = append(wrapped, &loggedView{View: v, logger: h.logger})
	}
	return wrapped
}

func (h *Host) ProjectFileName() string {
	if h.project == nil {
		return ""
	}
	return h.project.File
}

func (h *Host) ProjectFolders() []string {
	return h.project.FolderPaths()
}

func (h *Host) RefreshFolderList() {
	h.logger.LogEvent(context.Background(), log.Event{Kind: log.EventRefresh})
}

func (h *Host) SetClipboard(text string) error {
	err := h.clipboard.SetClipboard(text)
	h.logger.LogEvent(context.Background(), log.Event{
		Kind:   log.EventClipboard,
		Path:   fmt.Sprintf("%d bytes", len(text)),
		Failed: err != nil,
	})
	return err
}

// loggedView reports retargets as host events
type loggedView struct {
	host.View
	logger *log.Logger
}

func (v *loggedView) Retarget(path string) error {
	old := v.View.FileName()
	err := v.View.Retarget(path)
	v.logger.LogEvent(context.Background(), log.Event{
		Kind:   log.EventRetarget,
		Path:   old,
		Target: path,
		Failed: err != nil,
	})
	return err
}

// ptermPrompt shows an interactive input prefilled with the initial text
func ptermPrompt(ctx context.Context, req host.InputRequest) (string, error) {
	interrupted := false
	input := pterm.DefaultInteractiveTextInput.
		WithDefaultText(req.Caption).
		WithDefaultValue(req.Initial).
		WithOnInterruptFunc(func() { interrupted = true })

	zerolog.Ctx(ctx).Debug().
		Int("selection_begin", req.Selection.Begin).
		Int("selection_end", req.Selection.End).
		Msg("showing input panel")

	answer, err := input.Show()
	if interrupted {
		return "", errors.WithStack(host.ErrInputCancelled)
	}
	if err != nil {
		return "", errors.Errorf("reading input: %w", err)
	}
	return answer, nil
}
