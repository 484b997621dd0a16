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

package norm

import (
	"maps"
	"slices"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// For Hangul we compose and decompose algorithmically, instead of using
// tables. See https://unicode.org/reports/tr15/#Hangul.
const (
	hangulBase = 0xAC00
	jamoLBase  = 0x1100
	jamoVBase  = 0x1161
	jamoTBase  = 0x11A7

	jamoLCount  = 19
	jamoVCount  = 21
	jamoTCount  = 28
	jamoNCount  = jamoVCount * jamoTCount
	hangulCount = jamoLCount * jamoNCount
	hangulEnd   = hangulBase + hangulCount
)

func isHangul(r rune) bool {
	return r >= hangulBase && r < hangulEnd
}

// decomposeHangul writes the full decomposition of the syllable r into buf.
func decomposeHangul(r rune, buf *[3]rune) []rune {
	s := r - hangulBase
	buf[0] = jamoLBase + s/jamoNCount
	buf[1] = jamoVBase + (s%jamoNCount)/jamoTCount
	if t := s % jamoTCount; t != 0 {
		buf[2] = jamoTBase + t
		return buf[:3]
	}
	return buf[:2]
}

func composeHangul(a, b rune) (rune, bool) {
	switch {
	case a >= jamoLBase && a < jamoLBase+jamoLCount && b >= jamoVBase && b < jamoVBase+jamoVCount:
		return hangulBase + ((a-jamoLBase)*jamoVCount+(b-jamoVBase))*jamoTCount, true
	case isHangul(a) && (a-hangulBase)%jamoTCount == 0 && b > jamoTBase && b < jamoTBase+jamoTCount:
		return a + (b - jamoTBase), true
	}
	return 0, false
}

func pairKey(a, b rune) uint64 {
	return uint64(a)<<21 | uint64(b)
}

// Tables is the immutable data a Normalizer runs on. It is built once from
// a provider's NormalizationData and can be shared by any number of
// normalizers of any form.
type Tables struct {
	version string

	ccc *umap.Map[uint8]
	// minNonStarter is the smallest code point with a non-zero combining
	// class.
	minNonStarter rune

	canonical     map[rune][]rune
	compatibility map[rune][]rune

	// Full decompositions. compatFull only holds the code points whose
	// compatibility decomposition differs from the canonical one.
	canonFull  map[rune][]rune
	compatFull map[rune][]rune
	// minDecomposed is the smallest code point with any decomposition.
	minDecomposed rune

	exclusions *uset.Set
	pairs      map[uint64]rune
	// combinesBackward holds the code points that can be the second half
	// of a primary composite, Hangul vowels and trailing consonants
	// included.
	combinesBackward *uset.Set

	no    [formCount]*uset.Set
	maybe [formCount]*uset.Set
	// unsafe holds the starters that do not begin a new segment. Text can
	// be split before any other starter and the halves normalized
	// independently.
	unsafe [formCount]*uset.Set
	// minUnsafe is the smallest code point in unsafe.
	minUnsafe [formCount]rune
	// Below minPassThrough every code point is a boundary, does not
	// decompose and has combining class zero.
	minPassThrough [formCount]rune
}

// NewTables derives composition pairs and quick-check data from d. Missing
// or inconsistent data is a DataError.
func NewTables(d *provider.NormalizationData) (*Tables, error) {
	if d == nil {
		return nil, uerrors.New(uerrors.DataError, "norm: no normalization data")
	}
	if err := d.Validate(); err != nil {
		return nil, uerrors.Wrap(err, "norm")
	}

	t := &Tables{
		version:       d.UnicodeVersion,
		ccc:           d.CombiningClass,
		minNonStarter: uset.MaxRune + 1,
		canonical:     d.Canonical,
		compatibility: d.Compatibility,
		canonFull:     make(map[rune][]rune, len(d.Canonical)),
		compatFull:    make(map[rune][]rune, len(d.Compatibility)),
		minDecomposed: uset.MaxRune + 1,
		exclusions:    d.CompositionExclusions,
		pairs:         make(map[uint64]rune),
	}
	for e := range t.ccc.Ranges() {
		if e.Value != 0 {
			t.minNonStarter = e.Start
			break
		}
	}

	for c := range d.Canonical {
		t.canonFull[c] = t.expand(nil, c, false)
	}
	for _, c := range slices.Concat(slices.Collect(maps.Keys(d.Canonical)), slices.Collect(maps.Keys(d.Compatibility))) {
		full := t.expand(nil, c, true)
		if canon, ok := t.canonFull[c]; !ok || !slices.Equal(canon, full) {
			t.compatFull[c] = full
		}
	}
	for c := range t.compatFull {
		t.minDecomposed = min(t.minDecomposed, c)
	}
	for c := range t.canonFull {
		t.minDecomposed = min(t.minDecomposed, c)
	}
	t.minDecomposed = min(t.minDecomposed, hangulBase)

	backward := uset.NewBuilder()
	// Hangul vowels and trailing consonants; the ranges are constant.
	_ = backward.AddRange(jamoVBase, jamoVBase+jamoVCount-1)
	_ = backward.AddRange(jamoTBase+1, jamoTBase+jamoTCount-1)
	for c, m := range d.Canonical {
		if len(m) != 2 || t.exclusions.Contains(c) {
			continue
		}
		key := pairKey(m[0], m[1])
		if prev, dup := t.pairs[key]; dup && prev != c {
			return nil, uerrors.Errorf(uerrors.DataError,
				"norm: U+%04X and U+%04X both compose from <U+%04X, U+%04X>", min(prev, c), max(prev, c), m[0], m[1])
		}
		t.pairs[key] = c
		_ = backward.AddRune(m[1])
	}
	t.combinesBackward = backward.Build()

	t.buildQuickCheck()
	return t, nil
}

// expand appends the full decomposition of c to dst. Compatibility
// mappings are followed if compat is set. The depth is bounded because
// the data passed Validate.
func (t *Tables) expand(dst []rune, c rune, compat bool) []rune {
	if isHangul(c) {
		var buf [3]rune
		return append(dst, decomposeHangul(c, &buf)...)
	}
	m, ok := t.compatibility[c]
	if !ok || !compat {
		m, ok = t.canonical[c]
	}
	if !ok {
		return append(dst, c)
	}
	for _, r := range m {
		dst = t.expand(dst, r, compat)
	}
	return dst
}

func (t *Tables) buildQuickCheck() {
	nfd, nfkd := uset.NewBuilder(), uset.NewBuilder()
	_ = nfd.AddRange(hangulBase, hangulEnd-1)
	for c := range t.canonFull {
		_ = nfd.AddRune(c)
	}
	nfdNo := nfd.Build()
	nfkd.AddSet(nfdNo)
	for c := range t.compatFull {
		_ = nfkd.AddRune(c)
	}
	nfkdNo := nfkd.Build()

	nfkc := uset.NewBuilder()
	nfkc.AddSet(t.exclusions)
	for c := range t.compatFull {
		_ = nfkc.AddRune(c)
	}
	nfkcNo := nfkc.Build()

	t.no = [formCount]*uset.Set{NFC: t.exclusions, NFD: nfdNo, NFKC: nfkcNo, NFKD: nfkdNo}
	for _, f := range Forms() {
		if f.composing() {
			maybe := uset.NewBuilder()
			maybe.AddSet(t.combinesBackward)
			maybe.RemoveSet(t.no[f])
			t.maybe[f] = maybe.Build()
		} else {
			t.maybe[f] = uset.Empty()
		}

		// A starter is only a boundary if its decomposition starts with
		// one. Under the composing forms a character that combines with
		// its predecessor is not a boundary either.
		startsSegment := func(r rune) bool {
			return t.CombiningClass(r) == 0 && !(f.composing() && t.combinesBackward.Contains(r))
		}
		unsafe := uset.NewBuilder()
		if f.composing() {
			unsafe.AddSet(t.combinesBackward)
		}
		for c, full := range t.decompositions(f) {
			if !startsSegment(full[0]) {
				_ = unsafe.AddRune(c)
			}
		}
		t.unsafe[f] = unsafe.Build()

		t.minUnsafe[f] = uset.MaxRune + 1
		if t.unsafe[f].RangeCount() > 0 {
			t.minUnsafe[f] = t.unsafe[f].Range(0).Start
		}
		t.minPassThrough[f] = min(t.minUnsafe[f], t.minNonStarter, t.minDecomposed)
	}
}

// decompositions returns the full decompositions used by f, keyed by code
// point. Hangul syllables are not included.
func (t *Tables) decompositions(f Form) map[rune][]rune {
	if !f.compat() {
		return t.canonFull
	}
	all := maps.Clone(t.canonFull)
	maps.Copy(all, t.compatFull)
	return all
}

// UnicodeVersion is the version of the data the tables were built from.
func (t *Tables) UnicodeVersion() string { return t.version }

// CombiningClass returns the Canonical_Combining_Class of r.
func (t *Tables) CombiningClass(r rune) uint8 {
	if r < t.minNonStarter {
		return 0
	}
	return t.ccc.Get(r)
}

// decomposition returns the full decomposition of r, or nil if r does not
// decompose. buf is scratch space for Hangul.
func (t *Tables) decomposition(r rune, compat bool, buf *[3]rune) []rune {
	if r < t.minDecomposed {
		return nil
	}
	if isHangul(r) {
		return decomposeHangul(r, buf)
	}
	if compat {
		if d, ok := t.compatFull[r]; ok {
			return d
		}
	}
	return t.canonFull[r]
}

// Mapping returns the single-step decomposition of r as supplied by the
// data, and whether it is a compatibility mapping. Hangul syllables map to
// <L, V> or <LV, T>. ok is false if r does not decompose.
func (t *Tables) Mapping(r rune) (m []rune, compat bool, ok bool) {
	if isHangul(r) {
		s := r - hangulBase
		if tc := s % jamoTCount; tc != 0 {
			return []rune{r - tc, jamoTBase + tc}, false, true
		}
		return []rune{jamoLBase + s/jamoNCount, jamoVBase + (s%jamoNCount)/jamoTCount}, false, true
	}
	if m, ok := t.compatibility[r]; ok {
		return slices.Clone(m), true, true
	}
	if m, ok := t.canonical[r]; ok {
		return slices.Clone(m), false, true
	}
	return nil, false, false
}

// compose returns the primary composite of a and b.
func (t *Tables) compose(a, b rune) (rune, bool) {
	if c, ok := composeHangul(a, b); ok {
		return c, true
	}
	c, ok := t.pairs[pairKey(a, b)]
	return c, ok
}

// quickCheck answers NF*_Quick_Check for r.
func (t *Tables) quickCheck(f Form, r rune) uprops.QuickCheck {
	switch {
	case r < t.minPassThrough[f]:
		return uprops.Yes
	case t.no[f].Contains(r):
		return uprops.No
	case t.maybe[f].Contains(r):
		return uprops.Maybe
	}
	return uprops.Yes
}

// boundary reports whether a segment can start before r.
func (t *Tables) boundary(f Form, r rune) bool {
	if r < t.minPassThrough[f] {
		return true
	}
	return t.CombiningClass(r) == 0 && !t.unsafe[f].Contains(r)
}
