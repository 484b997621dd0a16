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

import "unicode/utf8"

// input is the UTF-8 text the normalizer accepts.
type input interface {
	~string | ~[]byte
}

const (
	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
	mask4 = 0b00000111

	// The default lowest and highest continuation byte.
	locb = 0b10000000
	hicb = 0b10111111

	// The first nibble is an index into acceptRanges or F for special
	// one-byte cases. The second nibble is the sequence length or the
	// status for the special one-byte case.
	xx = 0xF1 // invalid: size 1
	as = 0xF0 // ASCII: size 1
	s1 = 0x02 // accept 0, size 2
	s2 = 0x13 // accept 1, size 3
	s3 = 0x03 // accept 0, size 3
	s4 = 0x23 // accept 2, size 3
	s5 = 0x34 // accept 3, size 4
	s6 = 0x04 // accept 0, size 4
	s7 = 0x44 // accept 4, size 4
)

// first is information about the first byte in a UTF-8 sequence.
var first = [256]uint8{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80-0x8F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90-0x9F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0-0xAF
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0-0xBF
	xx, xx, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xC0-0xCF
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xD0-0xDF
	s2, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s4, s3, s3, // 0xE0-0xEF
	s5, s6, s6, s6, s7, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

// acceptRange gives the range of valid values for the second byte in a
// UTF-8 sequence.
type acceptRange struct {
	lo uint8 // lowest value for second byte.
	hi uint8 // highest value for second byte.
}

// acceptRanges has size 16 to avoid bounds checks in the code that uses it.
var acceptRanges = [16]acceptRange{
	0: {locb, hicb},
	1: {0xA0, hicb},
	2: {locb, 0x9F},
	3: {0x90, hicb},
	4: {locb, 0x8F},
}

// decodeRune decodes the first code point of p. An ill-formed sequence
// decodes to U+FFFD with ok unset, consuming its maximal subpart as the
// WHATWG Encoding Standard prescribes: the longest prefix that could start a
// well-formed sequence, or a single byte if there is none. An empty p
// returns size 0.
func decodeRune[T input](p T) (r rune, size int, ok bool) {
	n := len(p)
	if n < 1 {
		return utf8.RuneError, 0, false
	}
	p0 := p[0]
	x := first[p0]
	if x >= as {
		if x == as {
			return rune(p0), 1, true
		}
		return utf8.RuneError, 1, false
	}
	sz := int(x & 7)
	accept := acceptRanges[x>>4]
	if n < 2 || p[1] < accept.lo || accept.hi < p[1] {
		return utf8.RuneError, 1, false
	}
	if sz == 2 {
		return rune(p0&mask2)<<6 | rune(p[1]&maskx), 2, true
	}
	if n < 3 || p[2] < locb || hicb < p[2] {
		return utf8.RuneError, 2, false
	}
	if sz == 3 {
		return rune(p0&mask3)<<12 | rune(p[1]&maskx)<<6 | rune(p[2]&maskx), 3, true
	}
	if n < 4 || p[3] < locb || hicb < p[3] {
		return utf8.RuneError, 3, false
	}
	return rune(p0&mask4)<<18 | rune(p[1]&maskx)<<12 | rune(p[2]&maskx)<<6 | rune(p[3]&maskx), 4, true
}

// fullRune reports whether p begins with a complete sequence, well-formed
// or not. A proper prefix of a well-formed sequence is incomplete.
func fullRune[T input](p T) bool {
	_, size, ok := decodeRune(p)
	switch {
	case size == 0:
		return false
	case ok || size < len(p):
		return true
	}
	// The input ran out; it was a prefix if it starts with a lead byte.
	return first[p[0]] >= as
}
