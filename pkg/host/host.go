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

// Package host describes what the side-bar commands need from the editor
// they run in. Everything here is provided by the embedding application.
package host

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// ErrInputCancelled is returned by ShowInputPanel when the user dismisses the panel
var ErrInputCancelled = errors.Base("input cancelled")

// 🔦 Region is a character selection inside an input panel, [Begin, End)
type Region struct {
	Begin int
	End   int
}

// 📝 InputRequest describes a single-line input panel
type InputRequest struct {
	Caption   string // Label shown next to the input
	Initial   string // Text the input starts with
	Selection Region // Part of Initial selected when the panel opens
}

// 📄 View is an open document
type View interface {
	// FileName returns the backing path, or "" for an unsaved buffer
	FileName() string
	// Retarget points the view at a new backing path without reopening it
	Retarget(path string) error
}

// 🪟 Window is the part of the editor a command talks to
type Window interface {
	// ActiveFileName returns the path of the focused document, or ""
	ActiveFileName() string
	// StatusMessage shows msg in the status line. Safe to call from any goroutine.
	StatusMessage(msg string)
	// ShowInputPanel asks the user for a line of text
	ShowInputPanel(ctx context.Context, req InputRequest) (string, error)
	// OpenFile opens path in a new view
	OpenFile(path string) error
	// Views lists every open view of every window
	Views() []View
	// ProjectFileName returns the path of the project file, or ""
	ProjectFileName() string
	// ProjectFolders returns the folders of the project, in order
	ProjectFolders() []string
	// RefreshFolderList asks the side bar to rescan the project folders
	RefreshFolderList()
}

// 📋 Clipboard writes to the system clipboard
type Clipboard interface {
	SetClipboard(text string) error
}

// 🧩 Host bundles everything the commands depend on
type Host interface {
	Window
	Clipboard
}
