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

// Package clipboard provides host.Clipboard implementations for the terminal host.
package clipboard

import (
	"fmt"
	"io"
	"sync"

	"github.com/atotto/clipboard"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sidebar/pkg/host"
)

// ErrUnsupported is returned when no system clipboard utility is available
var ErrUnsupported = errors.Base("system clipboard is not supported on this machine")

// 📋 System writes to the OS clipboard
type System struct{}

var (
	_ host.Clipboard = System{}
	_ host.Clipboard = (*Writer)(nil)
)

// SetClipboard implements host.Clipboard
func (System) SetClipboard(text string) error {
	if clipboard.Unsupported {
		return errors.WithStack(ErrUnsupported)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// 🖨️ Writer prints clipboard contents instead, for pipes and headless machines
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a clipboard that writes each value to out on its own line
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// SetClipboard implements host.Clipboard
func (w *Writer) SetClipboard(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := fmt.Fprintln(w.out, text); err != nil {
		return errors.Errorf("writing clipboard text: %w", err)
	}
	return nil
}

// 🏭 New returns the clipboard named by kind ("system" or "stdout")
func New(kind string, out io.Writer) (host.Clipboard, error) {
	switch kind {
	case "", "system":
		return System{}, nil
	case "stdout":
		return NewWriter(out), nil
	default:
		return nil, errors.Errorf("unknown clipboard %q", kind)
	}
}
