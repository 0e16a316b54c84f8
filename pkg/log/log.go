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

// Package log prints what the terminal host does in a human-friendly form,
// mirroring every line into zerolog.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	eventIndent = 4  // spaces to indent event entries
	kindWidth   = 10 // Width for the event kind
)

// EventKind names something the host did on behalf of a command
type EventKind string

const (
	EventOpen      EventKind = "open"
	EventRetarget  EventKind = "retarget"
	EventRefresh   EventKind = "refresh"
	EventClipboard EventKind = "clipboard"
)

// 🎯 Event is a single host action for logging
type Event struct {
	Kind   EventKind // What happened
	Path   string    // File the action applies to
	Target string    // New path for a retarget
	Failed bool      // Whether the action failed
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger. Console lines go to console; the zerolog
// mirror goes to stderr at level.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatEvent formats an event for display
func (l *Logger) formatEvent(ev Event) string {
	var symbol rune
	var symbolColor color.Attribute
	switch ev.Kind {
	case EventOpen:
		symbol = '+'
		symbolColor = color.FgGreen
	case EventRetarget:
		symbol = '→'
		symbolColor = color.FgBlue
	case EventRefresh:
		symbol = '⟳'
		symbolColor = color.FgCyan
	default:
		symbol = '•'
		symbolColor = color.FgMagenta
	}
	if ev.Failed {
		symbol = '✗'
		symbolColor = color.FgRed
	}

	line := fmt.Sprintf("%s%s %s",
		fmt.Sprintf("%*s", eventIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", kindWidth, ev.Kind)))

	switch {
	case ev.Target != "":
		line += fmt.Sprintf(" %s %s %s", ev.Path, color.New(color.Faint).Sprint("->"), ev.Target)
	case ev.Path != "":
		line += " " + ev.Path
	}
	return line
}

// 📝 LogEvent prints a host action and mirrors it into zerolog
func (l *Logger) LogEvent(ctx context.Context, ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatEvent(ev))

	e := l.zlog.Info()
	if ev.Failed {
		e = l.zlog.Warn()
	}
	e.Str("kind", string(ev.Kind)).
		Str("path", ev.Path).
		Str("target", ev.Target).
		Msg("host event")
}

// 📝 Status prints a status-line message
func (l *Logger) Status(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgMagenta).Sprint("▸"), msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Header prints the caption of the command about to run
func (l *Logger) Header(caption string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("sidebar")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+caption))
	l.zlog.Info().Str("caption", caption).Msg("running command")
}
