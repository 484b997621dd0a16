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

package uset

// lookup holds bit tables that answer membership for the BMP without a
// binary search over the whole inversion list. It is computed once when a
// Set is created.
type lookup struct {
	// One entry per Latin-1 code point.
	latin1 [0x100]bool

	// One bit per code point U+0000..U+07FF, organized vertically:
	// for c = lead<<6 | trail, contains(c) == table7FF[trail] bit lead.
	table7FF [64]uint32

	// Two bits per 64-code-point block of the BMP above U+07FF. For a block
	// c{15..12}=lead, c{11..6}=t1, bit (lead+16) of blockBits[t1] marks a
	// mixed block, and bit lead is the membership of an unmixed block.
	blockBits [64]uint32

	// Inversion list indexes bounding binary searches for each 4k block of
	// the BMP from U+0800, and for the supplementary planes (last pair).
	starts4k [18]int
}

func newLookup(list []rune) *lookup {
	t := &lookup{}
	last := len(list) - 1

	t.starts4k[0] = findCodePoint(list, 0x800, 0, last)
	for i := 1; i <= 0x10; i++ {
		t.starts4k[i] = findCodePoint(list, rune(i)<<12, t.starts4k[i-1], last)
	}
	t.starts4k[0x11] = last

	t.fillLatin1(list)
	t.fill7FF(list)
	t.fillBlocks(list)
	return t
}

func (t *lookup) contains(list []rune, c rune) bool {
	switch {
	case c <= 0xff:
		return t.latin1[c]
	case c <= 0x7ff:
		return t.table7FF[c&0x3f]&(uint32(1)<<(c>>6)) != 0
	case c < 0xd800 || (c >= 0xe000 && c <= 0xffff):
		lead := c >> 12
		bits := (t.blockBits[(c>>6)&0x3f] >> lead) & 0x10001
		if bits <= 1 {
			// All 64 code points of the block agree.
			return bits != 0
		}
		return findCodePoint(list, c, t.starts4k[lead], t.starts4k[lead+1])&1 != 0
	default:
		// Surrogates and supplementary code points.
		return findCodePoint(list, c, t.starts4k[0xd], t.starts4k[0x11])&1 != 0
	}
}

// pairAt returns the range [start, lim) starting at list[idx], treating the
// terminator as an empty range at limit.
func pairAt(list []rune, idx int) (start, lim rune, next int) {
	start = list[idx]
	idx++
	if idx < len(list) {
		return start, list[idx], idx + 1
	}
	return start, limit, idx
}

func (t *lookup) fillLatin1(list []rune) {
	for idx := 0; idx < len(list); {
		var start, lim rune
		start, lim, idx = pairAt(list, idx)
		if start >= 0x100 {
			return
		}
		for c := start; c < lim && c < 0x100; c++ {
			t.latin1[c] = true
		}
		if lim > 0x100 {
			return
		}
	}
}

func (t *lookup) fill7FF(list []rune) {
	for idx := 0; idx < len(list); {
		var start, lim rune
		start, lim, idx = pairAt(list, idx)
		if start >= 0x800 {
			return
		}
		if lim <= 0x80 {
			continue
		}
		start = max(start, 0x80)
		set32x64Bits(&t.table7FF, start, min(lim, 0x800))
		if lim >= 0x800 {
			return
		}
	}
}

// set32x64Bits sets the bits for [start, lim) in a vertically organized
// 64x32 bit table. lim <= 0x800.
func set32x64Bits(table *[64]uint32, start, lim rune) {
	lead := start >> 6
	trail := start & 0x3f

	bits := uint32(1) << lead
	if start+1 == lim {
		table[trail] |= bits
		return
	}

	limLead := lim >> 6
	limTrail := lim & 0x3f

	if lead == limLead {
		for ; trail < limTrail; trail++ {
			table[trail] |= bits
		}
		return
	}

	// Partial column, then a rectangle of full columns, then another
	// partial column.
	if trail > 0 {
		for ; trail < 64; trail++ {
			table[trail] |= bits
		}
		lead++
	}
	if lead < limLead {
		bits = ^((uint32(1) << lead) - 1)
		if limLead < 0x20 {
			bits &= (uint32(1) << limLead) - 1
		}
		for trail = 0; trail < 64; trail++ {
			table[trail] |= bits
		}
	}
	// With lim == 0x800, limLead is 32 and limTrail is 0, so the loop below
	// does not run and the shift amount does not matter.
	if limLead < 0x20 {
		bits = uint32(1) << limLead
		for trail = 0; trail < limTrail; trail++ {
			table[trail] |= bits
		}
	}
}

func (t *lookup) fillBlocks(list []rune) {
	minStart := rune(0x800)
	for idx := 0; idx < len(list); {
		var start, lim rune
		start, lim, idx = pairAt(list, idx)
		if start >= 0x10000 {
			return
		}
		if lim <= 0x800 {
			continue
		}
		lim = min(lim, 0x10000)
		start = max(start, minStart)

		if start < lim {
			if start&0x3f != 0 {
				// Range begins inside a block: mark it mixed.
				blk := start >> 6
				t.blockBits[blk&0x3f] |= 0x10001 << (blk >> 6)
				start = (blk + 1) << 6
				minStart = start
			}
			if start < lim {
				if start < lim&^0x3f {
					set32x64Bits(&t.blockBits, start>>6, lim>>6)
				}
				if lim&0x3f != 0 {
					// Range ends inside a block: mark it mixed.
					blk := lim >> 6
					t.blockBits[blk&0x3f] |= 0x10001 << (blk >> 6)
					minStart = (blk + 1) << 6
				}
			}
		}
		if lim == 0x10000 {
			return
		}
	}
}
