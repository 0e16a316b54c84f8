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

package command_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/sidebar/pkg/command"
	"github.com/walteh/sidebar/pkg/host"
	"github.com/walteh/sidebar/pkg/testutils"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDuplicateRequest(t *testing.T) {
	tests := []struct {
		source   string
		initial  string
		selected string
	}{
		{"/home/user/file.txt", "/home/user/file (Copy).txt", "file (Copy)"},
		{"/home/user/archive.tar.gz", "/home/user/archive (Copy).tar.gz", "archive (Copy)"},
		{"/home/user/Makefile", "/home/user/Makefile (Copy)", "Makefile (Copy)"},
		{"/home/user/.bashrc", "/home/user/.bashrc (Copy)", ".bashrc (Copy)"},
		{"/home/user/résumé.md", "/home/user/résumé (Copy).md", "résumé (Copy)"},
		{"/home/user/dir/", "/home/user/dir (Copy)", "dir (Copy)"},
		{"/home/user/src.d//", "/home/user/src (Copy).d", "src (Copy)"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			req := command.DuplicateRequest(tt.source)
			assert.Equal(t, "Duplicate As:", req.Caption)
			assert.Equal(t, tt.initial, req.Initial)

			runes := []rune(req.Initial)
			assert.Equal(t, len("/home/user/"), req.Selection.Begin)
			assert.Equal(t, tt.selected, string(runes[req.Selection.Begin:req.Selection.End]))
		})
	}
}

func TestDuplicate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	dst := filepath.Join(dir, "notes (Copy).txt")
	writeFile(t, src, "hello")

	h := testutils.NewHost("").AnswerWith(dst)
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.DuplicateName, base)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(ctx, []string{src}))

	require.Len(t, h.Requests(), 1)
	assert.Equal(t, dst, h.Requests()[0].Initial)
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
	assert.Equal(t, []string{dst}, h.Opened())
}

func TestDuplicateIntoItself(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	writeFile(t, src, "hello")

	h := testutils.NewHost("").AnswerWith(src)
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.DuplicateName, base)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(ctx, []string{src}))

	assert.Equal(t, []string{"Can't copy a file/directory into itself"}, h.Statuses())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "nothing should be written")
}

func TestDuplicateCancelled(t *testing.T) {
	h := testutils.NewHost("/some/file.txt")
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.DuplicateName, base)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(ctx, nil))
	assert.Len(t, h.Requests(), 1)
	assert.Empty(t, h.Statuses())
}

func TestDuplicateDirectorySelectedWithTrailingSeparator(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proj")
	writeFile(t, filepath.Join(src, "main.go"), "package main")

	h := testutils.NewHost("")
	h.Answer = func(req host.InputRequest) (string, error) { return req.Initial, nil }
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.DuplicateName, base)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(ctx, []string{src + string(filepath.Separator)}))

	want := filepath.Join(dir, "proj (Copy)")
	require.Len(t, h.Requests(), 1)
	assert.Equal(t, want, h.Requests()[0].Initial, "the copy is proposed next to the directory")
	assert.FileExists(t, filepath.Join(want, "main.go"))
	assert.NoDirExists(t, filepath.Join(src, "proj (Copy)"))
}

func TestMoveRequest(t *testing.T) {
	tests := []struct {
		source   string
		initial  string
		selected string
	}{
		{"/home/user/file.txt", "/home/user/file.txt", "file"},
		{"/home/user/archive.tar.gz", "/home/user/archive.tar.gz", "archive.tar"},
		{"/home/user/Makefile", "/home/user/Makefile", "Makefile"},
		{"/home/user/.bashrc", "/home/user/.bashrc", ".bashrc"},
		{"/home/user/dir/", "/home/user/dir", "dir"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			req := command.MoveRequest(tt.source)
			assert.Equal(t, "Move to:", req.Caption)
			assert.Equal(t, tt.initial, req.Initial)
			assert.Equal(t, len("/home/user/"), req.Selection.Begin)
			assert.Equal(t, tt.selected, req.Initial[req.Selection.Begin:req.Selection.End])
		})
	}
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "sub", "b.txt")
	writeFile(t, src, "a")

	h := testutils.NewHost(src).AnswerWith(dst)
	view := h.AddView(src)
	other := h.AddView(filepath.Join(dir, "a.txt.bak"))
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.MoveName, base)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(ctx, nil))

	assert.NoFileExists(t, src)
	assert.FileExists(t, dst)
	assert.Equal(t, dst, view.FileName())
	assert.Equal(t, filepath.Join(dir, "a.txt.bak"), other.FileName())
	assert.Equal(t, 1, h.Refreshes())
}

func TestMoveIntoItself(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	writeFile(t, src, "a")

	h := testutils.NewHost("").AnswerWith(src + string(filepath.Separator) + ".")
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.MoveName, base)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(ctx, []string{src}))

	assert.Equal(t, []string{"Can't move a file/directory into itself"}, h.Statuses())
	assert.FileExists(t, src)
	assert.Zero(t, h.Refreshes())
}

func TestMoveDirectoryRetargetsViews(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old")
	dst := filepath.Join(dir, "new")
	writeFile(t, filepath.Join(src, "x", "y.txt"), "y")

	h := testutils.NewHost("").AnswerWith(dst)
	nested := h.AddView(filepath.Join(src, "x", "y.txt"))
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.MoveName, base)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(ctx, []string{src}))

	assert.Equal(t, filepath.Join(dst, "x", "y.txt"), nested.FileName())
}

func TestNewFileRequest(t *testing.T) {
	req := command.NewFileRequest("/home/user", "New file.txt")
	assert.Equal(t, "New file's path:", req.Caption)
	assert.Equal(t, "/home/user/New file.txt", req.Initial)
	assert.Equal(t, host.Region{Begin: 11, End: 23}, req.Selection)
}

func TestNewFromFileAndDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "src", "main.go")
	writeFile(t, file, "package main")

	tests := []struct {
		name     string
		selected string
		base     string
	}{
		{"directory", filepath.Join(dir, "src"), filepath.Join(dir, "src")},
		{"file", file, filepath.Join(dir, "src")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testutils.NewHost("")
			ctx, base := newTestBase(t, h)
			cmd, err := command.New(command.NewName, base)
			require.NoError(t, err)

			require.NoError(t, cmd.Run(ctx, []string{tt.selected}))
			require.Len(t, h.Requests(), 1)
			assert.Equal(t, filepath.Join(tt.base, command.DefaultNewFileName), h.Requests()[0].Initial)
		})
	}
}

func TestNewCreatesFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "deep", "er", "todo.md")

	h := testutils.NewHost("").AnswerWith(target)
	h.Folders = []string{dir}
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.NewName, base)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(ctx, nil))

	require.Len(t, h.Requests(), 1)
	assert.Equal(t, filepath.Join(dir, command.DefaultNewFileName), h.Requests()[0].Initial, "first folder is the fallback")
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
	assert.Equal(t, []string{target}, h.Opened())
}

func TestNewRejectsTrailingSeparator(t *testing.T) {
	dir := t.TempDir()
	h := testutils.NewHost("").AnswerWith(filepath.Join(dir, "folder") + string(filepath.Separator))
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.NewName, base)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(ctx, []string{dir}))

	assert.Equal(t, []string{`Filenames that end with "` + string(filepath.Separator) + `" are not allowed`}, h.Statuses())
	assert.NoDirExists(t, filepath.Join(dir, "folder"))
}

func TestNewExistingFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "keep.txt")
	writeFile(t, target, "keep")

	h := testutils.NewHost("").AnswerWith(target)
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.NewName, base)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(ctx, []string{dir}))

	assert.Contains(t, h.Statuses(), `"`+target+`" already exists`)
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
	assert.Empty(t, h.Opened())
}

func TestNewCustomName(t *testing.T) {
	dir := t.TempDir()
	h := testutils.NewHost("")
	reporterBase, err := command.NewBase(command.Options{Host: h, NewFileName: "untitled.go"})
	require.NoError(t, err)
	cmd, err := command.New(command.NewName, reporterBase)
	require.NoError(t, err)

	require.NoError(t, cmd.Run(testutils.Context(t), []string{dir}))
	require.Len(t, h.Requests(), 1)
	assert.Equal(t, filepath.Join(dir, "untitled.go"), h.Requests()[0].Initial)
}

func TestNewWithoutAnyPath(t *testing.T) {
	h := testutils.NewHost("")
	ctx, base := newTestBase(t, h)
	cmd, err := command.New(command.NewName, base)
	require.NoError(t, err)

	require.ErrorIs(t, cmd.Run(ctx, nil), command.ErrNoPath)
	assert.Empty(t, h.Requests())
}
