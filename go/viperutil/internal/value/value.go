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

package value

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/viperutil/internal/registry"
)

// Registerable is the type-erased view of a value, so that BindFlags can
// accept values of different T.
type Registerable interface {
	Key() string
	Registry() registry.Bindable
	Flag(fs *pflag.FlagSet) (*pflag.Flag, error)
}

// Base carries the configuration of a single key.
type Base[T any] struct {
	KeyName    string
	DefaultVal T

	GetFunc      func(v *viper.Viper) func(key string) T
	BoundGetFunc func(key string) T

	Aliases  []string
	FlagName string
	EnvVars  []string
}

func (val *Base[T]) Key() string { return val.KeyName }
func (val *Base[T]) Default() T  { return val.DefaultVal }
func (val *Base[T]) Get() T      { return val.BoundGetFunc(val.Key()) }

// ErrNoFlagDefined is returned when a value names a flag that the flag set
// does not have.
var ErrNoFlagDefined = uerrors.New(uerrors.InvalidArgument, "flag not defined")

// Flag returns the flag bound to this value. It returns (nil, nil) when the
// value has no FlagName.
func (val *Base[T]) Flag(fs *pflag.FlagSet) (*pflag.Flag, error) {
	if val.FlagName == "" {
		return nil, nil
	}

	flag := fs.Lookup(val.FlagName)
	if flag == nil {
		return nil, uerrors.Wrapf(ErrNoFlagDefined, "--%s (for key %s)", val.FlagName, val.Key())
	}
	return flag, nil
}

func (val *Base[T]) bind(v registry.Bindable) {
	v.SetDefault(val.Key(), val.DefaultVal)

	for _, alias := range val.Aliases {
		v.RegisterAlias(alias, val.Key())
	}

	if len(val.EnvVars) > 0 {
		vars := append([]string{val.Key()}, val.EnvVars...)
		_ = v.BindEnv(vars...)
	}
}

// BindFlags binds every value to its flag in fs. It panics if a value names
// a flag that fs does not define, since that is a programming error.
func BindFlags(fs *pflag.FlagSet, values ...Registerable) {
	for _, val := range values {
		flag, err := val.Flag(fs)
		switch {
		case err != nil:
			panic(fmt.Errorf("failed to load flag for %s: %w", val.Key(), err))
		case flag == nil:
			continue
		}

		_ = val.Registry().BindPFlag(val.Key(), flag)
		if flag.Name != val.Key() {
			val.Registry().RegisterAlias(flag.Name, val.Key())
		}
	}
}

// Static is a value whose lookup is bound to the static registry.
type Static[T any] struct {
	*Base[T]
}

// NewStatic binds base to the static registry.
func NewStatic[T any](base *Base[T]) *Static[T] {
	base.bind(registry.Static)
	base.BoundGetFunc = base.GetFunc(registry.Static)

	return &Static[T]{Base: base}
}

func (val *Static[T]) Registry() registry.Bindable {
	return registry.Static
}

func (val *Static[T]) Set(v T) {
	registry.Static.Set(val.KeyName, v)
}
