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

package uset

import (
	"math/rand/v2"
	"slices"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unicore.io/unicore/go/uerrors"
)

func mustSet(t *testing.T, ranges ...Range) *Set {
	t.Helper()
	s, err := FromRanges(ranges...)
	require.NoError(t, err)
	return s
}

func TestContains(t *testing.T) {
	s := mustSet(t, Range{'A', 'Z'}, Range{'a', 'z'}, Range{0x1F600, 0x1F64F})

	for _, c := range "AMZamz" {
		assert.True(t, s.Contains(c), "%q", c)
	}
	for _, c := range "@[`{0" {
		assert.False(t, s.Contains(c), "%q", c)
	}
	assert.True(t, s.Contains(0x1F600))
	assert.True(t, s.Contains(0x1F64F))
	assert.False(t, s.Contains(0x1F650))
	assert.False(t, s.Contains(-1))
	assert.False(t, s.Contains(0x110000))
}

func TestContainsCodePoint(t *testing.T) {
	s := All()
	ok, err := s.ContainsCodePoint(0x10FFFF)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.ContainsCodePoint(0x110000)
	require.Error(t, err)
	assert.Equal(t, uerrors.InvalidArgument, uerrors.Code(err))
}

func TestEmptyAndAll(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.Equal(t, 0, Empty().Len())
	assert.Empty(t, slices.Collect(Empty().Ranges()))
	assert.Equal(t, []Range{{0, MaxRune}}, slices.Collect(Empty().ComplementRanges()))

	assert.False(t, All().IsEmpty())
	assert.Equal(t, 0x110000, All().Len())
	assert.Equal(t, []Range{{0, MaxRune}}, slices.Collect(All().Ranges()))
	assert.Empty(t, slices.Collect(All().ComplementRanges()))
}

func TestRangesAreRestartable(t *testing.T) {
	s := mustSet(t, Range{10, 20}, Range{30, 40})
	seq := s.Ranges()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Equal(t, []Range{{10, 20}, {30, 40}}, first)

	var stopped []Range
	for r := range seq {
		stopped = append(stopped, r)
		break
	}
	assert.Equal(t, []Range{{10, 20}}, stopped)
}

func TestComplementRanges(t *testing.T) {
	tcases := []struct {
		name string
		in   []Range
		want []Range
	}{
		{"interior", []Range{{10, 20}}, []Range{{0, 9}, {21, MaxRune}}},
		{"starts at zero", []Range{{0, 5}, {8, 9}}, []Range{{6, 7}, {10, MaxRune}}},
		{"ends at max", []Range{{5, MaxRune}}, []Range{{0, 4}}},
		{"both ends", []Range{{0, 0}, {MaxRune, MaxRune}}, []Range{{1, MaxRune - 1}}},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustSet(t, tc.in...)
			got := slices.Collect(s.ComplementRanges())
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ComplementRanges() mismatch (-want +got):\n%s", diff)
			}
			// The set is unchanged.
			assert.Equal(t, tc.in, slices.Collect(s.Ranges()))
		})
	}
}

func TestBuilderMerging(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddRange('a', 'c'))
	require.NoError(t, b.AddRange('e', 'g'))
	require.NoError(t, b.AddRune('d'))
	require.NoError(t, b.AddRange('x', 'z'))
	require.NoError(t, b.AddRange('b', 'f'))
	s := b.Build()
	assert.Equal(t, []Range{{'a', 'g'}, {'x', 'z'}}, slices.Collect(s.Ranges()))
	assert.Equal(t, []rune{'a', 'h', 'x', '{'}, s.InversionList())
}

func TestBuilderOverlappingUnsorted(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddRange(100, 200))
	require.NoError(t, b.AddRange(50, 120))
	require.NoError(t, b.AddRange(300, 400))
	require.NoError(t, b.AddRange(201, 299))
	assert.Equal(t, []Range{{50, 400}}, slices.Collect(b.Build().Ranges()))
}

func TestBuilderRemoveRetain(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddRange(0, 100))
	require.NoError(t, b.RemoveRange(10, 19))
	require.NoError(t, b.RemoveRune(50))
	assert.Equal(t, []Range{{0, 9}, {20, 49}, {51, 100}}, slices.Collect(b.Build().Ranges()))

	require.NoError(t, b.AddRange(0, 100))
	require.NoError(t, b.RetainRange(40, 200))
	assert.Equal(t, []Range{{40, 100}}, slices.Collect(b.Build().Ranges()))

	require.NoError(t, b.AddRange(0, 100))
	require.NoError(t, b.RetainRune(7))
	assert.Equal(t, []Range{{7, 7}}, slices.Collect(b.Build().Ranges()))

	other := mustSet(t, Range{5, 15}, Range{90, 200})
	require.NoError(t, b.AddRange(0, 100))
	b.RemoveSet(other)
	assert.Equal(t, []Range{{0, 4}, {16, 89}}, slices.Collect(b.Build().Ranges()))

	require.NoError(t, b.AddRange(0, 100))
	b.RetainSet(other)
	assert.Equal(t, []Range{{5, 15}, {90, 100}}, slices.Collect(b.Build().Ranges()))
}

func TestBuilderMaxRune(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddRune(MaxRune))
	require.NoError(t, b.AddRune(MaxRune-1))
	assert.Equal(t, []Range{{MaxRune - 1, MaxRune}}, slices.Collect(b.Build().Ranges()))

	require.NoError(t, b.AddRange(0x10000, MaxRune))
	require.NoError(t, b.RemoveRange(0x20000, MaxRune))
	assert.Equal(t, []Range{{0x10000, 0x1FFFF}}, slices.Collect(b.Build().Ranges()))
}

func TestBuilderComplement(t *testing.T) {
	b := NewBuilder()
	b.Complement()
	assert.Equal(t, All().InversionList(), b.Build().InversionList())

	require.NoError(t, b.AddRange(0, 9))
	b.Complement()
	assert.Equal(t, []Range{{10, MaxRune}}, slices.Collect(b.Build().Ranges()))

	require.NoError(t, b.AddRange(10, 20))
	require.NoError(t, b.ComplementRange(15, 25))
	assert.Equal(t, []Range{{10, 14}, {21, 25}}, slices.Collect(b.Build().Ranges()))

	require.NoError(t, b.AddRange(10, 20))
	require.NoError(t, b.ComplementRune(10))
	require.NoError(t, b.ComplementRune(30))
	assert.Equal(t, []Range{{11, 20}, {30, 30}}, slices.Collect(b.Build().Ranges()))

	require.NoError(t, b.AddRange(0, 50))
	b.ComplementSet(mustSet(t, Range{40, 60}))
	assert.Equal(t, []Range{{0, 39}, {51, 60}}, slices.Collect(b.Build().Ranges()))
}

func TestBuildResets(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddRange('0', '9'))
	assert.False(t, b.IsEmpty())

	first := b.Build()
	assert.True(t, b.IsEmpty())
	second := b.Build()

	assert.Equal(t, 10, first.Len())
	assert.True(t, second.IsEmpty())

	// Mutating the builder after Build does not leak into the built set.
	require.NoError(t, b.AddRange('a', 'z'))
	assert.Equal(t, 10, first.Len())
}

func TestBuilderValidation(t *testing.T) {
	b := NewBuilder()
	tcases := []struct {
		name string
		err  error
	}{
		{"inverted add", b.AddRange(10, 5)},
		{"inverted remove", b.RemoveRange(10, 5)},
		{"inverted retain", b.RetainRange(10, 5)},
		{"inverted complement", b.ComplementRange(10, 5)},
		{"negative", b.AddRune(-1)},
		{"too large", b.AddRune(0x110000)},
		{"range too large", b.AddRange(0, 0x110000)},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err)
			assert.ErrorIs(t, tc.err, uerrors.ErrInvalidArgument)
		})
	}
	assert.True(t, b.IsEmpty())
}

func TestFromInversionList(t *testing.T) {
	s, err := FromInversionList([]rune{'a', 'd', 'x', 0x110000})
	require.NoError(t, err)
	assert.Equal(t, []Range{{'a', 'c'}, {'x', MaxRune}}, slices.Collect(s.Ranges()))
	assert.Equal(t, []rune{'a', 'd', 'x', 0x110000}, s.InversionList())

	_, err = FromInversionList([]rune{5})
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
	_, err = FromInversionList([]rune{5, 5})
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
	_, err = FromInversionList([]rune{5, 0x110001})
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
}

func TestContainsRange(t *testing.T) {
	s := mustSet(t, Range{10, 20}, Range{30, MaxRune})
	assert.True(t, s.ContainsRange(10, 20))
	assert.True(t, s.ContainsRange(12, 12))
	assert.False(t, s.ContainsRange(15, 25))
	assert.True(t, s.ContainsRange(30, MaxRune))
	assert.False(t, s.ContainsRange(20, 10))
}

func TestString(t *testing.T) {
	s := mustSet(t, Range{'0', '9'}, Range{'A', 'B'}, Range{0xE9, 0xE9}, Range{0x1F600, 0x1F64F})
	assert.Equal(t, `[0-9AB\u00E9\U0001F600-\U0001F64F]`, s.String())
	assert.Equal(t, "[]", Empty().String())
	assert.Equal(t, "U+0041..U+005A", Range{'A', 'Z'}.String())
	assert.Equal(t, "U+1F600", Range{0x1F600, 0x1F600}.String())
}

func TestComplementSet(t *testing.T) {
	s := mustSet(t, Range{0, 5}, Range{100, 200})
	c := s.Complement()
	assert.Equal(t, slices.Collect(s.ComplementRanges()), slices.Collect(c.Ranges()))
	assert.True(t, c.Complement().Equal(s))
}

// TestLookupMatchesSearch compares the BMP bit tables against a plain
// binary search for random sets.
func TestLookupMatchesSearch(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 20; round++ {
		b := NewBuilder()
		for i := 0; i < 40; i++ {
			start := rune(rng.IntN(0x11000))
			if rng.IntN(4) == 0 {
				start = rune(rng.IntN(0x800))
			}
			end := start + rune(rng.IntN(300))
			require.NoError(t, b.AddRange(start, min(end, MaxRune)))
		}
		s := b.Build()
		for c := rune(0); c <= 0x11000; c++ {
			want := findCodePoint(s.list, c, 0, len(s.list)-1)&1 != 0
			if got := s.Contains(c); got != want {
				t.Fatalf("round %d: Contains(U+%04X) = %v, want %v", round, c, got, want)
			}
		}
	}
}

func TestRangesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	b := NewBuilder()
	member := make(map[rune]bool)
	for i := 0; i < 500; i++ {
		c := rune(rng.IntN(2000))
		if rng.IntN(3) == 0 {
			require.NoError(t, b.RemoveRune(c))
			delete(member, c)
			continue
		}
		require.NoError(t, b.AddRune(c))
		member[c] = true
	}
	s := b.Build()
	assert.Equal(t, len(member), s.Len())
	for c := rune(0); c < 2000; c++ {
		assert.Equal(t, member[c], s.Contains(c), "U+%04X", c)
	}

	var prev *Range
	for r := range s.Ranges() {
		require.LessOrEqual(t, r.Start, r.End)
		if prev != nil {
			// Disjoint and non-adjacent.
			require.Greater(t, r.Start, prev.End+1)
		}
		prev = &r
	}
}

func TestRangeTable(t *testing.T) {
	greek := FromRangeTable(unicode.Greek)
	for _, c := range []rune{'α', 'Ω', 0x1F00, 0x10140} {
		assert.True(t, greek.Contains(c), "U+%04X", c)
	}
	assert.False(t, greek.Contains('a'))

	// Strided ranges are expanded.
	upper := FromRangeTable(&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x100, Hi: 0x106, Stride: 2}}})
	assert.Equal(t, []rune{0x100, 0x101, 0x102, 0x103, 0x104, 0x105, 0x106, 0x107}, upper.InversionList())

	s, err := FromRanges(Range{Start: 'A', End: 'Z'}, Range{Start: 0xFFF0, End: 0x10010}, Range{Start: 0x1F600, End: 0x1F64F})
	require.NoError(t, err)
	rt := s.RangeTable()
	assert.Equal(t, 1, rt.LatinOffset)
	assert.Equal(t, []unicode.Range16{{Lo: 'A', Hi: 'Z', Stride: 1}, {Lo: 0xFFF0, Hi: 0xFFFF, Stride: 1}}, rt.R16)
	assert.Equal(t, []unicode.Range32{{Lo: 0x10000, Hi: 0x10010, Stride: 1}, {Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}}, rt.R32)
	for _, c := range []rune{'Q', 0xFFFF, 0x10000, 0x1F610} {
		assert.True(t, unicode.Is(rt, c), "U+%04X", c)
	}
	assert.True(t, s.Equal(FromRangeTable(rt)))
}
