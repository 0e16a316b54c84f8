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

package command

import (
	"sort"
	"sync"

	"gitlab.com/tozd/go/errors"
)

// 🏭 Factory builds a command on top of a Base
type Factory func(base *Base) Command

var (
	registryMu sync.RWMutex
	// 🗺️ registry maps host command names to their factories
	registry = map[string]Factory{}
)

// 📝 Register makes a command available under name
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = f
}

// 🔍 Lookup returns the factory registered under name
func Lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// 📚 Names lists the registered command names in order
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// 🎯 New builds the command registered under name
func New(name string, base *Base) (Command, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, errors.Errorf("unknown command %q", name)
	}
	return f(base), nil
}

// 📝 Describe returns the description of the command registered under name
func Describe(name string) string {
	f, ok := Lookup(name)
	if !ok {
		return ""
	}
	return f(&Base{}).Description()
}
