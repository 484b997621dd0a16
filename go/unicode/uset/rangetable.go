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
	"unicode"
)

// FromRangeTable returns the union of the given tables.
func FromRangeTable(tables ...*unicode.RangeTable) *Set {
	b := NewBuilder()
	for _, rt := range tables {
		b.AddRangeTable(rt)
	}
	return b.Build()
}

// AddRangeTable adds every code point of rt. Strided ranges are added one
// code point at a time.
func (b *Builder) AddRangeTable(rt *unicode.RangeTable) {
	if rt == nil {
		return
	}
	for _, r := range rt.R16 {
		b.addStrided(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range rt.R32 {
		b.addStrided(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
}

func (b *Builder) addStrided(lo, hi, stride rune) {
	if stride <= 1 {
		b.addRange(lo, hi)
		return
	}
	for c := lo; c <= hi; c += stride {
		b.addRune(c)
	}
}

// RangeTable converts s to a unicode.RangeTable with stride 1 ranges, for
// use with the unicode package (unicode.Is, unicode.In).
func (s *Set) RangeTable() *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	for r := range s.Ranges() {
		if r.Start <= 0xFFFF {
			hi := min(r.End, 0xFFFF)
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(r.Start), Hi: uint16(hi), Stride: 1})
			if hi <= unicode.MaxLatin1 {
				rt.LatinOffset++
			}
			if r.End <= 0xFFFF {
				continue
			}
			r.Start = 0x10000
		}
		rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(r.Start), Hi: uint32(r.End), Stride: 1})
	}
	return rt
}
