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

// Package pathutil holds the small path helpers shared by the side-bar commands.
package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// 📁 WithTrailingSep returns path with exactly one trailing separator appended
// when it does not already end in one
func WithTrailingSep(path string) string {
	if strings.HasSuffix(path, string(os.PathSeparator)) {
		return path
	}
	return path + string(os.PathSeparator)
}

// 🔍 SamePaths reports whether a and b resolve to the same location.
//
// Only an exact match is detected: a destination nested inside a source
// directory is not considered the same path.
func SamePaths(a, b string) bool {
	return normalize(a) == normalize(b)
}

func normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return normCase(abs)
}

// normCase folds case on platforms whose filesystems are case-insensitive by default
func normCase(path string) string {
	if runtime.GOOS == "windows" {
		return strings.ToLower(strings.ReplaceAll(path, "/", `\`))
	}
	return path
}

// 📐 Relative strips the project root from path.
//
// Paths that do not live under root are returned unchanged, as is every path
// when root is empty.
func Relative(root, path string) string {
	if root == "" {
		return path
	}
	root = WithTrailingSep(root)
	if strings.HasPrefix(path, root) {
		return path[len(root):]
	}
	return path
}

// ✂️ Split returns the directory and leaf of path
func Split(path string) (dir, leaf string) {
	return filepath.Dir(path), filepath.Base(path)
}

// 🏷️ SplitExt splits a leaf into its name and last extension.
// Leading dots belong to the name, so ".bashrc" has no extension.
func SplitExt(leaf string) (name, ext string) {
	start := 0
	for start < len(leaf) && leaf[start] == '.' {
		start++
	}
	idx := strings.LastIndex(leaf[start:], ".")
	if idx < 0 {
		return leaf, ""
	}
	idx += start
	return leaf[:idx], leaf[idx:]
}

// 🏷️ SplitMultiExt is like SplitExt but folds every inner extension into ext
// when the leaf has one: "archive.tar.gz" splits into "archive" and ".tar.gz".
func SplitMultiExt(leaf string) (name, ext string) {
	name, ext = SplitExt(leaf)
	if ext == "" {
		return name, ext
	}
	for strings.Contains(name, ".") {
		var inner string
		name, inner = SplitExt(name)
		if inner == "" {
			break
		}
		ext = inner + ext
	}
	return name, ext
}

// 📂 IsDir reports whether path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// 📄 IsFile reports whether path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ❓ Exists reports whether anything exists at path
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
