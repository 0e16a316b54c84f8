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

package operation

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/sidebar/pkg/pathutil"
)

// ErrDestinationExists is returned when a copy or move would overwrite an existing entry
var ErrDestinationExists = errors.Base("destination already exists")

// maxParallelCopies bounds the concurrent file copies of a single CopyTree
var maxParallelCopies = runtime.GOMAXPROCS(0) * 2

// 📁 MakeDirsFor creates every missing parent directory of filename
func MakeDirsFor(ctx context.Context, filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("dir", dir).Msg("creating parent directories")
		return errors.Errorf("creating parent directories: %w", err)
	}
	return nil
}

// 📄 CopyFile copies a single file, keeping its mode and modification time.
// When dst is an existing directory the file is copied into it. The final
// destination path is returned.
func CopyFile(ctx context.Context, src, dst string) (string, error) {
	if pathutil.IsDir(dst) {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	info, err := os.Stat(src)
	if err != nil {
		return "", errors.Errorf("reading source: %w", err)
	}
	if info.IsDir() {
		return "", errors.Errorf("source %s is a directory", src)
	}

	if err := copyRegular(src, dst, info); err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Debug().Str("src", src).Str("dst", dst).Int64("size", info.Size()).Msg("copied file")
	return dst, nil
}

// 🌳 CopyTree copies the directory src to dst, which must not exist yet.
// Directories are created while walking; file contents are copied concurrently.
// A dst inside src is left out of the copy. On failure nothing is left at dst.
func CopyTree(ctx context.Context, src, dst string) (err error) {
	src, dst = filepath.Clean(src), filepath.Clean(dst)
	if pathutil.Exists(dst) {
		return errors.Errorf("%s: %w", dst, ErrDestinationExists)
	}

	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.RemoveAll(dst); rmErr != nil {
			zerolog.Ctx(ctx).Warn().Err(rmErr).Str("dst", dst).Msg("removing partial copy")
		}
	}()

	// the walk creates dst before listing src, so a dst nested in src would
	// otherwise be copied into itself
	nested := ""
	if rel, relErr := filepath.Rel(src, dst); relErr == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		nested = filepath.Join(src, rel)
	}

	type dirAttrs struct {
		path    string
		depth   int
		mode    fs.FileMode
		modTime time.Time
	}
	var (
		dirsMu sync.Mutex
		dirs   []dirAttrs
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelCopies)

	// the walk callback runs on several goroutines; a directory is always
	// visited before anything inside it
	walkErr := fastwalk.Walk(&fastwalk.Config{Follow: false}, src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if gctx.Err() != nil {
			return gctx.Err()
		}
		if path == nested {
			return fastwalk.SkipDir
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Errorf("getting relative path: %w", err)
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return errors.Errorf("reading %s: %w", path, err)
		}

		switch {
		case d.IsDir():
			if err := os.MkdirAll(target, info.Mode().Perm()|0o700); err != nil {
				return errors.Errorf("creating directory: %w", err)
			}
			dirsMu.Lock()
			dirs = append(dirs, dirAttrs{
				path:    target,
				depth:   fastwalk.DirEntryDepth(d),
				mode:    info.Mode().Perm(),
				modTime: info.ModTime(),
			})
			dirsMu.Unlock()
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return errors.Errorf("reading link: %w", err)
			}
			if err := os.Symlink(link, target); err != nil {
				return errors.Errorf("creating link: %w", err)
			}
		default:
			g.Go(func() error {
				return copyRegular(path, target, info)
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return errors.Errorf("copying files: %w", err)
	}
	if walkErr != nil {
		return errors.Errorf("walking %s: %w", src, walkErr)
	}

	// deepest first, so a parent's mtime is not bumped after it was restored
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].depth > dirs[j].depth })
	for _, dir := range dirs {
		if err := os.Chmod(dir.path, dir.mode); err != nil {
			return errors.Errorf("setting directory mode: %w", err)
		}
		if err := os.Chtimes(dir.path, dir.modTime, dir.modTime); err != nil {
			return errors.Errorf("setting directory times: %w", err)
		}
	}

	zerolog.Ctx(ctx).Debug().Str("src", src).Str("dst", dst).Int("dirs", len(dirs)).Msg("copied tree")
	return nil
}

// 🚚 Move moves src to dst. Moving onto an existing directory moves src inside
// it. A rename across devices falls back to copy and remove. The final
// destination path is returned.
func Move(ctx context.Context, src, dst string) (string, error) {
	if pathutil.IsDir(dst) {
		dst = filepath.Join(dst, filepath.Base(src))
		if pathutil.Exists(dst) {
			return "", errors.Errorf("%s: %w", dst, ErrDestinationExists)
		}
	}

	err := os.Rename(src, dst)
	if err == nil {
		zerolog.Ctx(ctx).Debug().Str("src", src).Str("dst", dst).Msg("renamed")
		return dst, nil
	}
	if !isCrossDeviceError(err) {
		return "", errors.Errorf("renaming: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("src", src).Str("dst", dst).Msg("rename crosses devices, copying instead")

	if pathutil.IsDir(src) {
		if err := CopyTree(ctx, src, dst); err != nil {
			return "", errors.Errorf("copying directory during move: %w", err)
		}
		if err := os.RemoveAll(src); err != nil {
			return "", errors.Errorf("removing source directory after copy: %w", err)
		}
		return dst, nil
	}

	if _, err := CopyFile(ctx, src, dst); err != nil {
		return "", errors.Errorf("copying file during move: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return "", errors.Errorf("removing source file after copy: %w", err)
	}
	return dst, nil
}

// ✨ CreateEmpty creates an empty file, failing if anything already exists at filename
func CreateEmpty(filename string) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errors.Errorf("%s: %w", filename, ErrDestinationExists)
		}
		return errors.Errorf("creating file: %w", err)
	}
	if err := f.Close(); err != nil {
		return errors.Errorf("closing file: %w", err)
	}
	return nil
}

// copyRegular copies the contents, mode and modification time of src to dst
func copyRegular(src, dst string, info fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Errorf("copying file content: %w", err)
	}
	if err := out.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Errorf("setting file mode: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return errors.Errorf("setting file times: %w", err)
	}
	return nil
}

func isCrossDeviceError(err error) bool {
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return false
	}
	return errors.Is(linkErr.Err, syscall.EXDEV)
}
