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

// Package utils holds flag registration helpers shared by the commands.
package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names use dashes. Underscored spellings are accepted on the command
// line through NormalizeUnderscoresToDashes.

func warnUnderscore(name string) {
	if strings.Contains(name, "_") {
		fmt.Fprintf(os.Stderr, "[WARNING] flag %q should use dashes instead of underscores\n", name)
	}
}

func setFlagVar[T any](fs *pflag.FlagSet, p *T, name string, def T, usage string,
	setFunc func(fs *pflag.FlagSet, p *T, name string, def T, usage string)) {
	warnUnderscore(name)
	setFunc(fs, p, name, def, usage)
}

func SetFlagIntVar(fs *pflag.FlagSet, p *int, name string, def int, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).IntVar)
}

func SetFlagBoolVar(fs *pflag.FlagSet, p *bool, name string, def bool, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).BoolVar)
}

func SetFlagStringVar(fs *pflag.FlagSet, p *string, name string, def string, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).StringVar)
}

func SetFlagDurationVar(fs *pflag.FlagSet, p *time.Duration, name string, def time.Duration, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).DurationVar)
}

func SetFlagStringSliceVar(fs *pflag.FlagSet, p *[]string, name string, def []string, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).StringSliceVar)
}

// SetFlagVar registers a flag backed by a custom pflag.Value.
func SetFlagVar(fs *pflag.FlagSet, value pflag.Value, name, usage string) {
	warnUnderscore(name)
	fs.Var(value, name, usage)
}

var deprecationWarningsEmitted = make(map[string]bool)

// NormalizeUnderscoresToDashes is a pflag normalize func that maps
// log_dir-style names onto their dashed spelling, warning once per name.
// glog's own underscored flags are left alone.
func NormalizeUnderscoresToDashes(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "log_dir", "log_link", "log_backtrace_at":
		return pflag.NormalizedName(name)
	}
	if !strings.Contains(name, "_") || strings.Contains(name, "-") {
		return pflag.NormalizedName(name)
	}

	normalized := strings.ReplaceAll(name, "_", "-")
	if !deprecationWarningsEmitted[name] {
		deprecationWarningsEmitted[name] = true
		fmt.Fprintf(os.Stderr, "Flag --%s has been deprecated, use --%s instead\n", name, normalized)
	}
	return pflag.NormalizedName(normalized)
}
