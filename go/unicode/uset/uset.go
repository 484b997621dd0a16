/*
© 2016 and later: Unicode, Inc. and others.
Copyright (C) 2004-2015, International Business Machines Corporation and others.
Copyright 2026 The Unicore Authors.

This file contains code derived from the Unicode Project's ICU library.
License & terms of use for the original code: http://www.unicode.org/copyright.html

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

// Package uset implements immutable sets of Unicode code points stored as
// inversion lists, and a Builder to construct them.
//
// An inversion list is a strictly ascending sequence of boundaries
// [s0, l0, s1, l1, ...] where each pair denotes the half-open interval
// [s, l). Internally the list is always terminated by limit (0x110000),
// which doubles as the exclusive end of a range reaching U+10FFFF.
package uset

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"unicore.io/unicore/go/uerrors"
)

const (
	// MinRune is the smallest code point a set can hold.
	MinRune rune = 0
	// MaxRune is the largest code point a set can hold.
	MaxRune rune = 0x10ffff

	// limit is greater than every valid code point.
	limit rune = MaxRune + 1
)

// Range is an inclusive range of code points.
type Range struct {
	Start, End rune
}

// Len returns the number of code points in r.
func (r Range) Len() int {
	return int(r.End) - int(r.Start) + 1
}

// Contains reports whether c lies in r.
func (r Range) Contains(c rune) bool {
	return r.Start <= c && c <= r.End
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("U+%04X", r.Start)
	}
	return fmt.Sprintf("U+%04X..U+%04X", r.Start, r.End)
}

// Set is an immutable set of code points. The zero value is not usable; use
// Empty, All, FromRanges, FromInversionList or a Builder.
//
// A Set is safe for concurrent use.
type Set struct {
	list []rune
	fast *lookup
}

func newSet(list []rune) *Set {
	return &Set{list: list, fast: newLookup(list)}
}

var (
	emptySet = newSet([]rune{limit})
	allSet   = newSet([]rune{MinRune, limit})
)

// Empty returns the set containing no code points.
func Empty() *Set { return emptySet }

// All returns the set containing every code point U+0000..U+10FFFF.
func All() *Set { return allSet }

// FromRanges returns the union of the given ranges. Ranges may overlap and
// come in any order.
func FromRanges(ranges ...Range) (*Set, error) {
	b := NewBuilder()
	for _, r := range ranges {
		if err := b.AddRange(r.Start, r.End); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// FromInversionList returns the set described by the inversion list. The
// list must be strictly ascending, hold values in [0, 0x110000] and have
// even length.
func FromInversionList(list []rune) (*Set, error) {
	if len(list)%2 != 0 {
		return nil, uerrors.Errorf(uerrors.InvalidArgument, "inversion list has odd length %d", len(list))
	}
	for i, c := range list {
		if c < MinRune || c > limit {
			return nil, uerrors.Errorf(uerrors.InvalidArgument, "inversion list entry %d (0x%X) out of range", i, c)
		}
		if i > 0 && list[i-1] >= c {
			return nil, uerrors.Errorf(uerrors.InvalidArgument, "inversion list not strictly ascending at index %d", i)
		}
	}
	owned := make([]rune, len(list), len(list)+1)
	copy(owned, list)
	if len(owned) == 0 || owned[len(owned)-1] != limit {
		owned = append(owned, limit)
	}
	return newSet(owned), nil
}

// InversionList returns a copy of the set's inversion list, without the
// internal terminator. The empty set yields an empty list and the full set
// yields [0, 0x110000].
func (s *Set) InversionList() []rune {
	n := len(s.list)
	if n%2 != 0 {
		n--
	}
	return slices.Clone(s.list[:n])
}

// Contains reports whether c is in the set. Values outside
// [MinRune, MaxRune] are never contained.
func (s *Set) Contains(c rune) bool {
	if c < MinRune || c > MaxRune {
		return false
	}
	return s.fast.contains(s.list, c)
}

// ContainsCodePoint is like Contains but rejects values above MaxRune with
// an InvalidArgument error instead of answering false.
func (s *Set) ContainsCodePoint(cp uint32) (bool, error) {
	if cp > uint32(MaxRune) {
		return false, uerrors.Errorf(uerrors.InvalidArgument, "code point 0x%X out of range", cp)
	}
	return s.Contains(rune(cp)), nil
}

// ContainsRange reports whether every code point in [start, end] is in the
// set.
func (s *Set) ContainsRange(start, end rune) bool {
	if start > end || start < MinRune || end > MaxRune {
		return false
	}
	i := findCodePoint(s.list, start, 0, len(s.list)-1)
	return i&1 != 0 && end < s.list[i]
}

// RangeCount returns the number of disjoint ranges in the set.
func (s *Set) RangeCount() int {
	return len(s.list) / 2
}

// Range returns the i'th range, 0 <= i < RangeCount().
func (s *Set) Range(i int) Range {
	return Range{Start: s.list[2*i], End: s.list[2*i+1] - 1}
}

// Ranges returns the ranges of the set in ascending order. The sequence can
// be iterated any number of times.
func (s *Set) Ranges() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for i := 0; i+1 < len(s.list); i += 2 {
			if !yield(Range{Start: s.list[i], End: s.list[i+1] - 1}) {
				return
			}
		}
	}
}

// ComplementRanges returns the ranges of U+0000..U+10FFFF that are not in
// the set, in ascending order. The set itself is not modified.
func (s *Set) ComplementRanges() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		next := MinRune
		for r := range s.Ranges() {
			if r.Start > next && !yield(Range{Start: next, End: r.Start - 1}) {
				return
			}
			next = r.End + 1
		}
		if next <= MaxRune {
			yield(Range{Start: next, End: MaxRune})
		}
	}
}

// Len returns the number of code points in the set.
func (s *Set) Len() (n int) {
	for r := range s.Ranges() {
		n += r.Len()
	}
	return
}

// IsEmpty reports whether the set contains no code points.
func (s *Set) IsEmpty() bool {
	return len(s.list) == 1
}

// Equal reports whether s and other contain the same code points.
func (s *Set) Equal(other *Set) bool {
	return slices.Equal(s.list, other.list)
}

// Complement returns a new set containing every code point not in s.
func (s *Set) Complement() *Set {
	b := &Builder{list: slices.Clone(s.list)}
	b.Complement()
	return b.Build()
}

// String renders the set as a bracketed pattern, e.g. [0-9A-Zé].
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := range s.Ranges() {
		writePatternRune(&sb, r.Start)
		if r.End == r.Start {
			continue
		}
		if r.End > r.Start+1 {
			sb.WriteByte('-')
		}
		writePatternRune(&sb, r.End)
	}
	sb.WriteByte(']')
	return sb.String()
}

func writePatternRune(sb *strings.Builder, c rune) {
	switch {
	case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		sb.WriteRune(c)
	case c <= 0xffff:
		fmt.Fprintf(sb, `\u%04X`, c)
	default:
		fmt.Fprintf(sb, `\U%08X`, c)
	}
}

// findCodePoint returns the smallest i in [lo, hi] such that c < list[i].
// An odd result means c is in the set. list[hi] must be limit or greater
// than c.
func findCodePoint(list []rune, c rune, lo, hi int) int {
	/*
	   set              list[]         c=0 1 3 4 7 8
	   ===              ==============   ===========
	   []               [110000]         0 0 0 0 0 0
	   [\u0000-\u0003]  [0, 4, 110000]   1 1 1 2 2 2
	   [\u0004-\u0007]  [4, 8, 110000]   0 0 0 1 1 2
	   [:Any:]          [0, 110000]      1 1 1 1 1 1
	*/
	if c < list[lo] {
		return lo
	}
	// c is often after the last range.
	if lo >= hi || c >= list[hi-1] {
		return hi
	}
	for {
		i := (lo + hi) >> 1
		if i == lo {
			break
		} else if c < list[i] {
			hi = i
		} else {
			lo = i
		}
	}
	return hi
}
