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

// Package umap implements immutable maps from code points to small integer
// property values.
//
// A Map stores sorted, disjoint ranges that carry a value; every code point
// outside those ranges maps to the map's default value. Lookups are a binary
// search over the ranges.
package umap

import (
	"cmp"
	"iter"
	"slices"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/uset"
)

// Value is the set of types a Map can hold.
type Value interface {
	~uint8 | ~uint16 | ~uint32
}

// Entry assigns Value to every code point of Range.
type Entry[V Value] struct {
	uset.Range
	Value V
}

// Map is an immutable code point to value map. It is safe for concurrent use.
type Map[V Value] struct {
	entries []Entry[V]
	def     V
}

// Default returns the value of unmapped code points.
func (m *Map[V]) Default() V { return m.def }

// Get returns the value of c, or the default value if c is unmapped or
// outside U+0000..U+10FFFF.
func (m *Map[V]) Get(c rune) V {
	if c < uset.MinRune || c > uset.MaxRune {
		return m.def
	}
	i, found := slices.BinarySearchFunc(m.entries, c, func(e Entry[V], c rune) int {
		switch {
		case e.End < c:
			return -1
		case e.Start > c:
			return 1
		}
		return 0
	})
	if !found {
		return m.def
	}
	return m.entries[i].Value
}

// GetCodePoint is like Get but rejects values above U+10FFFF with an
// InvalidArgument error.
func (m *Map[V]) GetCodePoint(cp uint32) (V, error) {
	if cp > uint32(uset.MaxRune) {
		return m.def, uerrors.Errorf(uerrors.InvalidArgument, "code point 0x%X out of range", cp)
	}
	return m.Get(rune(cp)), nil
}

// Entries returns the explicitly mapped ranges, excluding those that carry
// the default value.
func (m *Map[V]) Entries() []Entry[V] {
	return slices.Clone(m.entries)
}

// Ranges covers U+0000..U+10FFFF with maximal ranges of equal value, in
// ascending order. Unmapped stretches are reported with the default value.
func (m *Map[V]) Ranges() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		next := uset.MinRune
		for _, e := range m.entries {
			if e.Start > next {
				if !yield(Entry[V]{Range: uset.Range{Start: next, End: e.Start - 1}, Value: m.def}) {
					return
				}
			}
			if !yield(e) {
				return
			}
			next = e.End + 1
		}
		if next <= uset.MaxRune {
			yield(Entry[V]{Range: uset.Range{Start: next, End: uset.MaxRune}, Value: m.def})
		}
	}
}

// RangesForValue returns the maximal ranges whose value is v. The sequence
// can be iterated any number of times.
func (m *Map[V]) RangesForValue(v V) iter.Seq[uset.Range] {
	return m.rangesWhere(func(x V) bool { return x == v })
}

// RangesForValueComplemented returns the maximal ranges whose value is not
// v.
func (m *Map[V]) RangesForValueComplemented(v V) iter.Seq[uset.Range] {
	return m.rangesWhere(func(x V) bool { return x != v })
}

// SetForValue returns the set of code points mapped to v. The set is a copy
// and does not share storage with the map.
func (m *Map[V]) SetForValue(v V) *uset.Set {
	return collect(m.RangesForValue(v))
}

func (m *Map[V]) rangesWhere(match func(V) bool) iter.Seq[uset.Range] {
	return func(yield func(uset.Range) bool) {
		var pending uset.Range
		have := false
		for e := range m.Ranges() {
			if !match(e.Value) {
				continue
			}
			if have && pending.End+1 == e.Start {
				pending.End = e.End
				continue
			}
			if have && !yield(pending) {
				return
			}
			pending, have = e.Range, true
		}
		if have {
			yield(pending)
		}
	}
}

func collect(ranges iter.Seq[uset.Range]) *uset.Set {
	b := uset.NewBuilder()
	for r := range ranges {
		// Ranges produced by a Map are always valid.
		_ = b.AddRange(r.Start, r.End)
	}
	return b.Build()
}

// Builder collects entries for a Map. Ranges may be added in any order but
// must not overlap with a different value.
type Builder[V Value] struct {
	def     V
	entries []Entry[V]
}

// NewBuilder returns a builder for a map with the given default value.
func NewBuilder[V Value](def V) *Builder[V] {
	return &Builder[V]{def: def}
}

// Set maps every code point of [start, end] to v.
func (b *Builder[V]) Set(start, end rune, v V) error {
	if start < uset.MinRune || end > uset.MaxRune || start > end {
		return uerrors.Errorf(uerrors.InvalidArgument, "invalid range U+%04X..U+%04X", start, end)
	}
	b.entries = append(b.entries, Entry[V]{Range: uset.Range{Start: start, End: end}, Value: v})
	return nil
}

// SetRune maps c to v.
func (b *Builder[V]) SetRune(c rune, v V) error {
	return b.Set(c, c, v)
}

// SetSet maps every code point of s to v.
func (b *Builder[V]) SetSet(s *uset.Set, v V) {
	for r := range s.Ranges() {
		b.entries = append(b.entries, Entry[V]{Range: r, Value: v})
	}
}

// Build sorts and coalesces the collected entries and returns the map. The
// builder is reset. Overlapping entries with different values are an
// InvalidArgument error.
func (b *Builder[V]) Build() (*Map[V], error) {
	entries := b.entries
	b.entries = nil

	slices.SortStableFunc(entries, func(x, y Entry[V]) int {
		return cmp.Compare(x.Start, y.Start)
	})

	out := entries[:0]
	for _, e := range entries {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if e.Start <= last.End {
				if e.Value != last.Value {
					return nil, uerrors.Errorf(uerrors.InvalidArgument,
						"range %v overlaps %v with a different value", e.Range, last.Range)
				}
				last.End = max(last.End, e.End)
				continue
			}
			if e.Start == last.End+1 && e.Value == last.Value {
				last.End = e.End
				continue
			}
		}
		out = append(out, e)
	}

	// Entries carrying the default value are indistinguishable from gaps.
	out = slices.DeleteFunc(out, func(e Entry[V]) bool { return e.Value == b.def })
	return &Map[V]{entries: slices.Clip(out), def: b.def}, nil
}

// FromEntries builds a map from entries and a default value.
func FromEntries[V Value](def V, entries []Entry[V]) (*Map[V], error) {
	b := NewBuilder(def)
	for _, e := range entries {
		if err := b.Set(e.Start, e.End, e.Value); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Convert maps every value of m through f, producing a map of another value
// type. f is called once per distinct stored value and for the default.
func Convert[V, W Value](m *Map[V], f func(V) (W, error)) (*Map[W], error) {
	cache := make(map[V]W)
	conv := func(v V) (W, error) {
		if w, ok := cache[v]; ok {
			return w, nil
		}
		w, err := f(v)
		if err != nil {
			return w, err
		}
		cache[v] = w
		return w, nil
	}

	def, err := conv(m.def)
	if err != nil {
		return nil, err
	}
	b := NewBuilder(def)
	for _, e := range m.entries {
		w, err := conv(e.Value)
		if err != nil {
			return nil, uerrors.Wrapf(err, "converting %v", e.Range)
		}
		b.entries = append(b.entries, Entry[W]{Range: e.Range, Value: w})
	}
	return b.Build()
}
