/*
Copyright 2026 The Unicore Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

var (
	logFormat string
	logLevel  string

	// structured is set once Init has installed a slog handler. Until then
	// every record goes to glog.
	structured atomic.Bool
)

// Init switches to structured logging if --log-fmt was given on the
// command line. It is a no-op otherwise.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	if f := fs.Lookup("log-fmt"); f == nil || !f.Changed {
		return nil
	}
	return InitStructured(os.Stderr, logFormat, logLevel)
}

// InitStructured installs a slog handler writing format ("json", "logfmt"
// or "tint") records at or above level to w.
func InitStructured(w io.Writer, format, level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	handler, err := newHandler(w, format, &slog.HandlerOptions{AddSource: true, Level: lvl})
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))
	structured.Store(true)
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn or error", level)
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "logfmt", "text":
		return slog.NewTextHandler(w, opts), nil
	case "tint":
		return tint.NewHandler(w, &tint.Options{
			AddSource:  opts.AddSource,
			Level:      opts.Level,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		}), nil
	}
	return nil, fmt.Errorf("invalid log-fmt %q: expected json, logfmt or tint", format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Enabled reports whether a record at level would be written. In glog mode
// debug records need -v=1 or higher.
func Enabled(level slog.Level) bool {
	if structured.Load() {
		return slog.Default().Enabled(context.Background(), level)
	}
	if level < slog.LevelInfo {
		return V(1)
	}
	return true
}

func emit(level slog.Level, depth int, msg string, args ...any) {
	if !structured.Load() {
		emitGlog(level, depth+1, msg, args...)
		return
	}

	logger := slog.Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}

	// Skip runtime.Callers, emit and the exported wrapper.
	var pcs [1]uintptr
	runtime.Callers(depth+3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}

func emitGlog(level slog.Level, depth int, msg string, args ...any) {
	// Skip emitGlog and the exported wrapper.
	depth += 2

	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i < len(args); i += 2 {
		sb.WriteByte(' ')
		if i+1 < len(args) {
			fmt.Fprintf(&sb, "%v=%v", args[i], args[i+1])
		} else {
			fmt.Fprintf(&sb, "%v", args[i])
		}
	}
	line := sb.String()

	switch {
	case level >= slog.LevelError:
		glog.ErrorDepth(depth, line)
	case level >= slog.LevelWarn:
		glog.WarningDepth(depth, line)
	case level >= slog.LevelInfo:
		glog.InfoDepth(depth, line)
	default:
		if V(1) {
			glog.InfoDepth(depth, line)
		}
	}
}

// DebugS logs at debug level.
func DebugS(msg string, args ...any) { emit(slog.LevelDebug, 0, msg, args...) }

// InfoS logs at info level.
func InfoS(msg string, args ...any) { emit(slog.LevelInfo, 0, msg, args...) }

// WarnS logs at warn level.
func WarnS(msg string, args ...any) { emit(slog.LevelWarn, 0, msg, args...) }

// ErrorS logs at error level.
func ErrorS(msg string, args ...any) { emit(slog.LevelError, 0, msg, args...) }

// InfoSDepth logs at info level, attributing the record to a caller depth
// frames above the immediate one.
func InfoSDepth(depth int, msg string, args ...any) { emit(slog.LevelInfo, depth, msg, args...) }

// WarnSDepth is WarnS with a caller depth.
func WarnSDepth(depth int, msg string, args ...any) { emit(slog.LevelWarn, depth, msg, args...) }

// SetLogger routes structured records to logger until the returned function
// is called. Used in tests.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}
	prevStructured := structured.Load()
	prevDefault := slog.Default()

	slog.SetDefault(logger)
	structured.Store(true)

	return func() {
		slog.SetDefault(prevDefault)
		structured.Store(prevStructured)
	}
}
