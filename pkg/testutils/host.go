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

// Package testutils provides a recording host for exercising commands without an editor.
package testutils

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/walteh/sidebar/pkg/host"
)

// 🧪 Context returns a context carrying a logger that writes to the test log
func Context(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

// 📄 View is an in-memory host.View
type View struct {
	mu   sync.Mutex
	name string
}

// NewView creates a view backed by name
func NewView(name string) *View {
	return &View{name: name}
}

func (v *View) FileName() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.name
}

func (v *View) Retarget(path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.name = path
	return nil
}

// 🪟 Host is a recording host.Host. Status messages and retargets may arrive
// from worker goroutines, so every field is guarded.
type Host struct {
	mu sync.Mutex

	// inputs
	Active       string
	ProjectFile  string
	Folders      []string
	Answer       func(req host.InputRequest) (string, error)
	ClipboardErr error

	// recordings
	statuses  []string
	clipboard []string
	opened    []string
	requests  []host.InputRequest
	refreshes int
	views     []*View
}

var _ host.Host = (*Host)(nil)

// NewHost creates a host whose active document is active
func NewHost(active string) *Host {
	return &Host{Active: active}
}

// AnswerWith makes every input panel confirm with answer
func (h *Host) AnswerWith(answer string) *Host {
	h.Answer = func(host.InputRequest) (string, error) { return answer, nil }
	return h
}

// AddView opens a view without recording it as opened by a command
func (h *Host) AddView(name string) *View {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := NewView(name)
	h.views = append(h.views, v)
	return v
}

func (h *Host) ActiveFileName() string {
	return h.Active
}

func (h *Host) StatusMessage(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, msg)
}

func (h *Host) ShowInputPanel(ctx context.Context, req host.InputRequest) (string, error) {
	h.mu.Lock()
	h.requests = append(h.requests, req)
	answer := h.Answer
	h.mu.Unlock()

	if answer == nil {
		return "", host.ErrInputCancelled
	}
	return answer(req)
}

func (h *Host) OpenFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.opened = append(h.opened, path)
	h.views = append(h.views, NewView(path))
	return nil
}

func (h *Host) Views() []host.View {
	h.mu.Lock()
	defer h.mu.Unlock()
	views := make([]host.View, 0, len(h.views))
	for _, v := range h.views {
		views = append(views, v)
	}
	return views
}

func (h *Host) ProjectFileName() string {
	return h.ProjectFile
}

func (h *Host) ProjectFolders() []string {
	return h.Folders
}

func (h *Host) RefreshFolderList() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refreshes++
}

func (h *Host) SetClipboard(text string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ClipboardErr != nil {
		return h.ClipboardErr
	}
	h.clipboard = append(h.clipboard, text)
	return nil
}

// Statuses returns every status message so far
func (h *Host) Statuses() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.statuses...)
}

// Clipboard returns every clipboard write so far
func (h *Host) Clipboard() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.clipboard...)
}

// Opened returns every file opened through OpenFile
func (h *Host) Opened() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.opened...)
}

// Requests returns every input panel shown
func (h *Host) Requests() []host.InputRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]host.InputRequest(nil), h.requests...)
}

// Refreshes returns how many times the folder list was refreshed
func (h *Host) Refreshes() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.refreshes
}
