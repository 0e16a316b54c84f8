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

package status

import (
	"fmt"
	"os"
	"strings"
)

// 🎨 Formatter renders status-line messages
type Formatter interface {
	// Copied summarises data written to the clipboard
	Copied(data string) string
	// ClipboardError reports a failed clipboard write
	ClipboardError(err error) string

	Copying(src, dst string) string
	CopyError(err error, src, dst string) string
	SelfCopy() string

	Moving(src, dst string) string
	MoveError(err error, src, dst string) string
	SelfMove() string

	Creating(filename string) string
	Exists(filename string) string
	CreateError(err error, filename string) string
	TrailingSeparator() string

	// Panic reports a background operation that crashed
	Panic(op string, value any) string
}

// DefaultFormatter provides the stock wording
type DefaultFormatter struct{}

var _ Formatter = (*DefaultFormatter)(nil)

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// Copied quotes a single line, otherwise counts the lines
func (f *DefaultFormatter) Copied(data string) string {
	lines := strings.Count(data, "\n") + 1
	if lines > 1 {
		return fmt.Sprintf("Copied %d lines to clipboard", lines)
	}
	return fmt.Sprintf(`Copied "%s" to clipboard`, data)
}

func (f *DefaultFormatter) ClipboardError(err error) string {
	return fmt.Sprintf("Error copying to clipboard: %v", err)
}

func (f *DefaultFormatter) Copying(src, dst string) string {
	return fmt.Sprintf(`Copying "%s" to "%s"`, src, dst)
}

func (f *DefaultFormatter) CopyError(err error, src, dst string) string {
	return fmt.Sprintf(`Error copying: %v ("%s" to "%s")`, err, src, dst)
}

func (f *DefaultFormatter) SelfCopy() string {
	return "Can't copy a file/directory into itself"
}

func (f *DefaultFormatter) Moving(src, dst string) string {
	return fmt.Sprintf(`Moving "%s" to "%s"`, src, dst)
}

func (f *DefaultFormatter) MoveError(err error, src, dst string) string {
	return fmt.Sprintf(`Error moving: %v ("%s" to "%s")`, err, src, dst)
}

func (f *DefaultFormatter) SelfMove() string {
	return "Can't move a file/directory into itself"
}

func (f *DefaultFormatter) Creating(filename string) string {
	return fmt.Sprintf(`Creating "%s"`, filename)
}

func (f *DefaultFormatter) Exists(filename string) string {
	return fmt.Sprintf(`"%s" already exists`, filename)
}

func (f *DefaultFormatter) CreateError(err error, filename string) string {
	return fmt.Sprintf(`Error creating "%s": %v`, filename, err)
}

func (f *DefaultFormatter) TrailingSeparator() string {
	return fmt.Sprintf(`Filenames that end with "%s" are not allowed`, string(os.PathSeparator))
}

func (f *DefaultFormatter) Panic(op string, value any) string {
	return fmt.Sprintf("Error: %s stopped unexpectedly: %v", op, value)
}
