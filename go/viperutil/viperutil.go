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

/*
Package viperutil wraps viper so that every configuration key is declared
once, with its default, flag, aliases and environment variables, and read
through a typed Value.

	var form = viperutil.Configure("normalize.form", viperutil.Options[string]{
		Default:  "nfc",
		FlagName: "form",
		EnvVars:  []string{"UNICORE_FORM"},
	})

	func registerFlags(fs *pflag.FlagSet) {
		fs.String("form", form.Default(), "normalization form")
		viperutil.BindFlags(fs, form)
	}

Precedence is the usual viper order: flag, environment, config file, default.
*/
package viperutil

import (
	"errors"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/viperutil/internal/registry"
	"unicore.io/unicore/go/viperutil/internal/value"
)

// Options configures a Value.
type Options[T any] struct {
	Aliases  []string
	FlagName string
	EnvVars  []string
	Default  T

	// GetFunc overrides the getter chosen from T.
	GetFunc func(v *viper.Viper) func(key string) T
}

// Value is a typed configuration key.
type Value[T any] interface {
	value.Registerable

	Get() T
	Set(v T)
	Default() T
}

// Configure declares key and returns its Value.
func Configure[T any](key string, opts Options[T]) Value[T] {
	getfunc := opts.GetFunc
	if getfunc == nil {
		getfunc = GetFuncForType[T]()
	}

	base := &value.Base[T]{
		KeyName:    key,
		DefaultVal: opts.Default,
		GetFunc:    getfunc,
		Aliases:    opts.Aliases,
		FlagName:   opts.FlagName,
		EnvVars:    opts.EnvVars,
	}
	return value.NewStatic(base)
}

// BindFlags binds each value to its flag in fs.
func BindFlags(fs *pflag.FlagSet, values ...value.Registerable) {
	value.BindFlags(fs, values...)
}

// LoadConfig reads a config file into the registry. An empty path is a
// no-op. The file type is taken from the extension.
func LoadConfig(path string) error {
	if path == "" {
		return nil
	}
	registry.Static.SetConfigFile(path)
	if err := registry.Static.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return uerrors.Wrapf(uerrors.WithCode(err, uerrors.NotFound), "config file %s", path)
		}
		return uerrors.Wrapf(uerrors.WithCode(err, uerrors.InvalidArgument), "reading config file %s", path)
	}
	return nil
}

// ConfigFileUsed returns the path passed to LoadConfig, if any.
func ConfigFileUsed() string {
	return registry.Static.ConfigFileUsed()
}

// GetFuncForType returns the viper getter for T. It panics for types viper
// has no getter for; such values must set Options.GetFunc.
func GetFuncForType[T any]() func(v *viper.Viper) func(key string) T {
	var (
		zero T
		f    any
	)
	switch any(zero).(type) {
	case bool:
		f = func(v *viper.Viper) func(string) bool { return v.GetBool }
	case int:
		f = func(v *viper.Viper) func(string) int { return v.GetInt }
	case int64:
		f = func(v *viper.Viper) func(string) int64 { return v.GetInt64 }
	case uint32:
		f = func(v *viper.Viper) func(string) uint32 { return v.GetUint32 }
	case float64:
		f = func(v *viper.Viper) func(string) float64 { return v.GetFloat64 }
	case string:
		f = func(v *viper.Viper) func(string) string { return v.GetString }
	case []string:
		f = func(v *viper.Viper) func(string) []string { return v.GetStringSlice }
	case time.Duration:
		f = func(v *viper.Viper) func(string) time.Duration { return v.GetDuration }
	default:
		panic(uerrors.Errorf(uerrors.Internal, "no viper getter for %T", zero))
	}
	return f.(func(v *viper.Viper) func(key string) T)
}
