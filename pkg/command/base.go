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

// Package command implements the side-bar commands on top of a host.Host.
package command

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sidebar/pkg/host"
	"github.com/walteh/sidebar/pkg/operation"
	"github.com/walteh/sidebar/pkg/pathutil"
	"github.com/walteh/sidebar/pkg/status"
)

// DefaultNewFileName is the leaf proposed by the new-file command
const DefaultNewFileName = "New file.txt"

// ErrNoPath is returned when neither a selection nor an active document gives a path
var ErrNoPath = errors.Base("no path selected and no active document")

// 🎯 Command is a single side-bar command
type Command interface {
	// Name is the host-facing snake_case identifier
	Name() string
	// Description is the default menu caption
	Description() string
	// IsVisible reports whether the command applies to the selection
	IsVisible(paths []string) bool
	// Run executes the command for the selected paths
	Run(ctx context.Context, paths []string) error
}

// 🔧 Options configures a Base
type Options struct {
	Host     host.Host
	Runner   *operation.Runner
	Reporter *status.Reporter
	// NewFileName overrides DefaultNewFileName
	NewFileName string
}

// 🧱 Base groups the helpers every command shares
type Base struct {
	Host        host.Host
	Runner      *operation.Runner
	Reporter    *status.Reporter
	NewFileName string
}

// 🏭 NewBase creates a Base, filling in a reporter on the host status line and
// an async runner when none are given
func NewBase(opts Options) (*Base, error) {
	if opts.Host == nil {
		return nil, errors.Errorf("host is required")
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = status.NewReporter(opts.Host, nil)
	}
	runner := opts.Runner
	if runner == nil {
		runner = operation.NewRunner(reporter, true)
	}
	name := opts.NewFileName
	if name == "" {
		name = DefaultNewFileName
	}
	return &Base{
		Host:        opts.Host,
		Runner:      runner,
		Reporter:    reporter,
		NewFileName: name,
	}, nil
}

// 📋 CopyToClipboardAndInform writes data to the clipboard and summarises it on the status line
func (b *Base) CopyToClipboardAndInform(ctx context.Context, data string) error {
	if err := b.Host.SetClipboard(data); err != nil {
		b.Reporter.Error(ctx, err, b.Reporter.Format().ClipboardError(err))
		return errors.Errorf("setting clipboard: %w", err)
	}
	b.Reporter.Info(ctx, b.Reporter.Format().Copied(data))
	return nil
}

// 📍 GetPath returns the first selected path, falling back to the active
// document. Trailing separators are dropped.
func (b *Base) GetPath(paths []string) string {
	if len(paths) > 0 {
		return cleanPath(paths[0])
	}
	return cleanPath(b.Host.ActiveFileName())
}

// 📍 GetPaths returns the whole selection, falling back to the active document
func (b *Base) GetPaths(paths []string) []string {
	if len(paths) > 0 {
		cleaned := make([]string, len(paths))
		for i, p := range paths {
			cleaned[i] = cleanPath(p)
		}
		return cleaned
	}
	if p := b.GetPath(nil); p != "" {
		return []string{p}
	}
	return nil
}

// 👀 IsVisible is true for at most one selected path, or for an active document with a path
func (b *Base) IsVisible(paths []string) bool {
	if len(paths) > 0 {
		return len(paths) < 2
	}
	return b.Host.ActiveFileName() != ""
}

// 👀 IsVisibleMulti is true for any selection, or for an active document with a path
func (b *Base) IsVisibleMulti(paths []string) bool {
	return len(paths) > 0 || b.Host.ActiveFileName() != ""
}

// 📁 MakeDirsFor creates every missing parent directory of filename
func (b *Base) MakeDirsFor(ctx context.Context, filename string) error {
	return operation.MakeDirsFor(ctx, filename)
}

// 🔍 SamePaths reports whether two paths refer to the same location
func (b *Base) SamePaths(a, c string) bool {
	return pathutil.SamePaths(a, c)
}

// ask shows an input panel; ok is false when the user dismissed it
func (b *Base) ask(ctx context.Context, req host.InputRequest) (answer string, ok bool, err error) {
	answer, err = b.Host.ShowInputPanel(ctx, req)
	if errors.Is(err, host.ErrInputCancelled) {
		zerolog.Ctx(ctx).Debug().Str("caption", req.Caption).Msg("input cancelled")
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Errorf("showing input panel: %w", err)
	}
	return answer, true, nil
}

func (b *Base) operationOptions() operation.Options {
	return operation.Options{
		Window:   b.Host,
		Reporter: b.Reporter,
	}
}

// tailRegion selects the part of text that starts where tail starts and ends
// trim characters before the end of text. Offsets count characters, not bytes.
func tailRegion(text, tail string, trim int) host.Region {
	end := runeLen(text)
	begin := end - runeLen(tail)
	return host.Region{Begin: begin, End: end - trim}
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// joinLines joins entries one per line
func joinLines(entries []string) string {
	return strings.Join(entries, "\n")
}
