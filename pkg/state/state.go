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

// Package state keeps the open views of the terminal host between runs.
package state

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sidebar/pkg/host"
)

// 📚 State is the set of open views and the active document.
// Views may be retargeted from worker goroutines while the state is read.
type State struct {
	mu          sync.RWMutex
	path        string
	lastUpdated time.Time
	active      string
	views       []*View
}

// stateFile is the on-disk form
type stateFile struct {
	LastUpdated time.Time `json:"last_updated"`
	Active      string    `json:"active,omitempty"`
	Views       []string  `json:"views"`
}

// 📄 View is an open document tracked by a State
type View struct {
	state *State
	name  string
}

var _ host.View = (*View)(nil)

// FileName returns the backing path
func (v *View) FileName() string {
	v.state.mu.RLock()
	defer v.state.mu.RUnlock()
	return v.name
}

// Retarget points the view at path. The active document follows its view.
func (v *View) Retarget(path string) error {
	if path == "" {
		return errors.Errorf("retargeting to an empty path")
	}
	v.state.mu.Lock()
	defer v.state.mu.Unlock()
	if v.state.active == v.name {
		v.state.active = path
	}
	v.name = path
	return nil
}

// 🏗️ New returns an empty state that saves to path
func New(path string) *State {
	return &State{path: path}
}

// 🎯 Load reads the state file at path. A missing file is an empty state.
func Load(ctx context.Context, path string) (*State, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading state")

	s := New(path)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Errorf("reading state file: %w", err)
	}

	var sf stateFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sf); err != nil {
		return nil, errors.Errorf("parsing state file %s: %w", path, err)
	}

	s.lastUpdated = sf.LastUpdated
	s.active = sf.Active
	for _, name := range sf.Views {
		s.openLocked(name)
	}
	return s, nil
}

// 💾 Save writes the state file, replacing it atomically
func (s *State) Save(ctx context.Context) error {
	s.mu.Lock()
	s.lastUpdated = time.Now().UTC()
	sf := stateFile{
		LastUpdated: s.lastUpdated,
		Active:      s.active,
		Views:       make([]string, 0, len(s.views)),
	}
	for _, v := range s.views {
		sf.Views = append(sf.Views, v.name)
	}
	s.mu.Unlock()

	zerolog.Ctx(ctx).Debug().Str("path", s.path).Int("views", len(sf.Views)).Msg("writing state")

	data, err := json.MarshalIndent(sf, "", "\t")
	if err != nil {
		return errors.Errorf("encoding state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Errorf("creating state directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".sidebar-state-*")
	if err != nil {
		return errors.Errorf("creating temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return errors.Errorf("writing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Errorf("replacing state file: %w", err)
	}
	return nil
}

// 📂 Open returns the view of path, creating it when it is not open yet
func (s *State) Open(path string) *View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openLocked(path)
}

func (s *State) openLocked(path string) *View {
	for _, v := range s.views {
		if v.name == path {
			return v
		}
	}
	v := &View{state: s, name: path}
	s.views = append(s.views, v)
	return v
}

// ❌ Close forgets the view of path
func (s *State) Close(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.views {
		if v.name == path {
			s.views = append(s.views[:i], s.views[i+1:]...)
			if s.active == path {
				s.active = ""
			}
			return true
		}
	}
	return false
}

// Views returns every open view
func (s *State) Views() []host.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	views := make([]host.View, 0, len(s.views))
	for _, v := range s.views {
		views = append(views, v)
	}
	return views
}

// Active returns the active document, or ""
func (s *State) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActive makes path the active document, opening it if needed
func (s *State) SetActive(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = path
	if path != "" {
		s.openLocked(path)
	}
}

// Path returns the state file location
func (s *State) Path() string {
	return s.path
}

// LastUpdated returns when the state was last saved
func (s *State) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}
