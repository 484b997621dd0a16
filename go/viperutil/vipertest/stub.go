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

package vipertest

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"unicore.io/unicore/go/viperutil"
	"unicore.io/unicore/go/viperutil/internal/value"
)

// Stub points val at v for the duration of a test and returns a function
// that restores the original binding.
func Stub[T any](t *testing.T, v *viper.Viper, val viperutil.Value[T]) func() {
	t.Helper()

	if !assert.False(t, v.InConfig(val.Key()), "value for key %s already stubbed", val.Key()) {
		return func() {}
	}

	static, ok := val.(*value.Static[T])
	if !assert.True(t, ok, "value %+v does not support stubbing", val) {
		return func() {}
	}

	base := static.Base
	oldGet := base.BoundGetFunc
	base.BoundGetFunc = base.GetFunc(v)

	return func() {
		base.BoundGetFunc = oldGet
	}
}
