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

// Package log is the logging facade used throughout unicore.
//
// Records go to glog unless structured output is requested with --log-fmt,
// in which case they are emitted through log/slog as JSON, logfmt or
// coloured console text.
// Callers always use the structured helpers (InfoS, WarnS, ...) with
// key/value pairs; in glog mode the pairs are printed after the message.
package log

import (
	"strconv"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"unicore.io/unicore/go/utils"
)

// Flush writes any buffered glog output.
var Flush = glog.Flush

// V reports whether glog verbosity is at least level.
func V(level glog.Level) bool {
	return bool(glog.V(level))
}

// RegisterFlags adds the logging flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	maxSize := &rotateSize{val: strconv.FormatUint(atomic.LoadUint64(&glog.MaxSize), 10)}
	utils.SetFlagVar(fs, maxSize, "log-rotate-max-size", "size in bytes at which glog log files are rotated")

	utils.SetFlagStringVar(fs, &logFormat, "log-fmt", "json", "structured log format: json, logfmt or tint; glog is used unless this flag is set")
	utils.SetFlagStringVar(fs, &logLevel, "log-level", "info", "minimum structured log level: debug, info, warn or error")
}

// rotateSize is a pflag.Value guarding glog.MaxSize with atomic access.
type rotateSize struct {
	val string
}

func (r *rotateSize) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	atomic.StoreUint64(&glog.MaxSize, n)
	r.val = s
	return nil
}

func (r *rotateSize) String() string { return r.val }

func (r *rotateSize) Type() string { return "uint64" }
