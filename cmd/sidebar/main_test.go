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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workspace is a temp project with a settings file that keeps everything inside it
type workspace struct {
	dir    string
	config string
	state  string
}

func newWorkspace(t *testing.T, async bool) *workspace {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	dir := t.TempDir()
	ws := &workspace{
		dir:    dir,
		config: filepath.Join(dir, ".sidebar.yaml"),
		state:  filepath.Join(dir, "state", "views.json"),
	}
	content := "folders: [\".\"]\nstate_file: state/views.json\nclipboard: stdout\n"
	if !async {
		content += "async: false\n"
	}
	require.NoError(t, os.WriteFile(ws.config, []byte(content), 0644), "writing config file")
	return ws
}

func (ws *workspace) write(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(ws.dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (ws *workspace) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{"--config", ws.config}, args...))
	err := root.Execute()
	return out.String(), err
}

func (ws *workspace) savedState(t *testing.T) map[string]any {
	t.Helper()
	data, err := os.ReadFile(ws.state)
	require.NoError(t, err, "state should be saved")
	var st map[string]any
	require.NoError(t, json.Unmarshal(data, &st))
	return st
}

func TestCopyCommands(t *testing.T) {
	tests := []struct {
		name    string
		command string
		paths   []string
		want    string
	}{
		{"name", "side_bar_copy_name", []string{"src/a.go", "b.txt"}, "a.go\nb.txt"},
		{"relative", "side_bar_copy_relative_path", []string{"src/a.go"}, "src/a.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newWorkspace(t, true)
			var args []string
			for _, p := range tt.paths {
				args = append(args, ws.write(t, p, p))
			}

			out, err := ws.run(t, append([]string{tt.command}, args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want+"\n", "clipboard contents should be printed")
			assert.Contains(t, out, "to clipboard")
		})
	}
}

func TestCopyAbsolutePathUsesActive(t *testing.T) {
	ws := newWorkspace(t, true)
	active := ws.write(t, "notes.md", "")

	out, err := ws.run(t, "--active", active, "side_bar_copy_absolute_path")
	require.NoError(t, err)
	assert.Contains(t, out, active+"\n")
	assert.Contains(t, out, `Copied "`+active+`" to clipboard`)
}

func TestDuplicateCommand(t *testing.T) {
	for _, async := range []bool{true, false} {
		ws := newWorkspace(t, async)
		src := ws.write(t, "a.txt", "hello")
		dst := filepath.Join(ws.dir, "copies", "a (Copy).txt")

		out, err := ws.run(t, "--answer", dst, "side_bar_duplicate", src)
		require.NoError(t, err)

		content, err := os.ReadFile(dst)
		require.NoError(t, err, "duplicate should exist once the command returns")
		assert.Equal(t, "hello", string(content))
		assert.Contains(t, out, `Copying "`+src+`" to "`+dst+`"`)
		assert.Equal(t, dst, ws.savedState(t)["active"], "the duplicate is opened")
	}
}

func TestMoveCommandRetargetsSavedViews(t *testing.T) {
	ws := newWorkspace(t, true)
	src := ws.write(t, "pkg/a.go", "package pkg")
	dst := filepath.Join(ws.dir, "lib")

	_, err := ws.run(t, "--active", src, "side_bar_copy_name")
	require.NoError(t, err)

	out, err := ws.run(t, "--answer", dst, "side_bar_move", filepath.Join(ws.dir, "pkg"))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dst, "a.go"))
	assert.Contains(t, out, "refresh")
	st := ws.savedState(t)
	assert.Equal(t, filepath.Join(dst, "a.go"), st["active"])
	assert.Equal(t, []any{filepath.Join(dst, "a.go")}, st["views"])
}

func TestMoveIntoItself(t *testing.T) {
	ws := newWorkspace(t, true)
	src := ws.write(t, "a.txt", "a")

	out, err := ws.run(t, "--answer", src, "side_bar_move", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Can't move a file/directory into itself")
	assert.FileExists(t, src)
}

func TestNewCommand(t *testing.T) {
	ws := newWorkspace(t, false)
	target := filepath.Join(ws.dir, "docs", "README.md")

	out, err := ws.run(t, "--answer", target, "side_bar_new", ws.dir)
	require.NoError(t, err)
	assert.FileExists(t, target)
	assert.Contains(t, out, `Creating "`+target+`"`)

	out, err = ws.run(t, "--answer", target, "side_bar_new", ws.dir)
	require.NoError(t, err)
	assert.Contains(t, out, `"`+target+`" already exists`)
}

func TestCancelledPrompt(t *testing.T) {
	ws := newWorkspace(t, true)
	src := ws.write(t, "a.txt", "a")

	_, err := ws.run(t, "--answer", "", "side_bar_duplicate", src)
	require.NoError(t, err)

	entries, err := os.ReadDir(ws.dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{".sidebar.yaml", "a.txt", "state"}, names)
}

func TestCommandNotVisible(t *testing.T) {
	ws := newWorkspace(t, true)

	_, err := ws.run(t, "side_bar_duplicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not apply")

	_, err = ws.run(t, "side_bar_move", ws.write(t, "a", ""), ws.write(t, "b", ""))
	require.Error(t, err)
}

func TestListCommand(t *testing.T) {
	ws := newWorkspace(t, true)

	out, err := ws.run(t, "list", ws.write(t, "a", ""), ws.write(t, "b", ""))
	require.NoError(t, err)
	for _, name := range []string{"side_bar_copy_name", "side_bar_duplicate", "side_bar_new"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Duplicate File…")
	assert.Equal(t, 3, strings.Count(out, "true"), "only the multi-select commands apply to two paths")
}

func TestInvalidConfig(t *testing.T) {
	ws := newWorkspace(t, true)
	require.NoError(t, os.WriteFile(ws.config, []byte("clipboard: x11\n"), 0644))

	_, err := ws.run(t, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestVersionCommand(t *testing.T) {
	ws := newWorkspace(t, true)
	require.NoError(t, os.WriteFile(ws.config, []byte("not: [valid"), 0644))

	out, err := ws.run(t, "version")
	require.NoError(t, err, "version does not read settings")
	assert.Contains(t, out, "sidebar version info")
	assert.Contains(t, out, "side_bar_move")

	out, err = ws.run(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.NotEmpty(t, info["go_version"])
	assert.Len(t, info["commands"], 6)
}
