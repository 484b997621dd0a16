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

package umap

import (
	"iter"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/uset"
)

// MaskMap is a Map whose values are all below 32, so that a set of values
// can be written as a 32-bit mask with bit v standing for value v. General
// categories are the typical example.
type MaskMap[V Value] struct {
	*Map[V]
}

// NewMaskMap checks that every value of m, including the default, fits in
// a 32-bit mask.
func NewMaskMap[V Value](m *Map[V]) (*MaskMap[V], error) {
	if uint32(m.def) >= 32 {
		return nil, uerrors.Errorf(uerrors.InvalidArgument, "default value %d does not fit in a 32-bit mask", m.def)
	}
	for _, e := range m.entries {
		if uint32(e.Value) >= 32 {
			return nil, uerrors.Errorf(uerrors.InvalidArgument, "value %d at %v does not fit in a 32-bit mask", e.Value, e.Range)
		}
	}
	return &MaskMap[V]{Map: m}, nil
}

// RangesForGroup returns the maximal ranges whose value v satisfies
// mask&(1<<v) != 0.
func (m *MaskMap[V]) RangesForGroup(mask uint32) iter.Seq[uset.Range] {
	return m.rangesWhere(func(v V) bool { return mask&(uint32(1)<<uint32(v)) != 0 })
}

// SetForGroup returns the set of code points whose value is in mask.
func (m *MaskMap[V]) SetForGroup(mask uint32) *uset.Set {
	return collect(m.RangesForGroup(mask))
}
