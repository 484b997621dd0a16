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

package blob

import (
	"encoding/binary"
	"maps"
	"math"
	"slices"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// The payload is a sequence of uvarints:
//
//	normalization: ccc map, canonical mappings, compat mappings, exclusions
//	count, then per enumerated property: id, map
//	count, then per binary property: id, inversion list
//	script extensions: 0 if absent, else 1 + list count, the lists as a
//	count and script values each, then the index map
//
// A map is its default, an entry count and start, end, value per entry. A
// mapping table is an entry count and code point, length, code points per
// entry, sorted by code point so that equal tables encode identically.

// maxCount bounds every length read from a payload.
const maxCount = 1 << 21

func appendUvarint(data []byte, v uint64) []byte {
	return binary.AppendUvarint(data, v)
}

func appendMap[V umap.Value](data []byte, m *umap.Map[V]) []byte {
	entries := m.Entries()
	data = appendUvarint(data, uint64(m.Default()))
	data = appendUvarint(data, uint64(len(entries)))
	for _, e := range entries {
		data = appendUvarint(data, uint64(e.Start))
		data = appendUvarint(data, uint64(e.End))
		data = appendUvarint(data, uint64(e.Value))
	}
	return data
}

func appendMappings(data []byte, m map[rune][]rune) []byte {
	data = appendUvarint(data, uint64(len(m)))
	for _, c := range slices.Sorted(maps.Keys(m)) {
		d := m[c]
		data = appendUvarint(data, uint64(c))
		data = appendUvarint(data, uint64(len(d)))
		for _, r := range d {
			data = appendUvarint(data, uint64(r))
		}
	}
	return data
}

func appendSet(data []byte, s *uset.Set) []byte {
	list := s.InversionList()
	data = appendUvarint(data, uint64(len(list)))
	for _, c := range list {
		data = appendUvarint(data, uint64(c))
	}
	return data
}

func encodeTables(t *Tables) []byte {
	var data []byte
	n := t.Normalization
	data = appendMap(data, n.CombiningClass)
	data = appendMappings(data, n.Canonical)
	data = appendMappings(data, n.Compatibility)
	data = appendSet(data, n.CompositionExclusions)

	enums := slices.Sorted(maps.Keys(t.Enumerated))
	data = appendUvarint(data, uint64(len(enums)))
	for _, prop := range enums {
		data = appendUvarint(data, uint64(prop))
		data = appendMap(data, t.Enumerated[prop])
	}

	bins := slices.Sorted(maps.Keys(t.Binary))
	data = appendUvarint(data, uint64(len(bins)))
	for _, prop := range bins {
		data = appendUvarint(data, uint64(prop))
		data = appendSet(data, t.Binary[prop])
	}

	scx := t.ScriptExtensions
	if scx == nil {
		return appendUvarint(data, 0)
	}
	data = appendUvarint(data, uint64(len(scx.Lists))+1)
	for _, l := range scx.Lists {
		data = appendUvarint(data, uint64(len(l)))
		for _, sc := range l {
			data = appendUvarint(data, uint64(sc))
		}
	}
	return appendMap(data, scx.Index)
}

// decoder reads a payload. The first error sticks and every later read
// returns zero.
type decoder struct {
	data []byte
	pos  int
	err  error
}

func (d *decoder) fail(format string, args ...any) {
	if d.err == nil {
		d.err = uerrors.Errorf(uerrors.DataError, "blob: offset %d: "+format, append([]any{d.pos}, args...)...)
	}
}

func (d *decoder) uvarint() uint64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Uvarint(d.data[d.pos:])
	if n <= 0 {
		d.fail("truncated or overlong varint")
		return 0
	}
	d.pos += n
	return v
}

func (d *decoder) count() int {
	v := d.uvarint()
	if v > maxCount {
		d.fail("count %d too large", v)
		return 0
	}
	return int(v)
}

func (d *decoder) codePoint() rune {
	v := d.uvarint()
	if v > uint64(uset.MaxRune)+1 {
		d.fail("code point 0x%X out of range", v)
		return 0
	}
	return rune(v)
}

func decodeMap[V umap.Value](d *decoder, limit uint64) *umap.Map[V] {
	value := func() V {
		v := d.uvarint()
		if v > limit {
			d.fail("value %d out of range", v)
			return 0
		}
		return V(v)
	}
	def := value()
	entries := make([]umap.Entry[V], d.count())
	for i := range entries {
		entries[i].Start = d.codePoint()
		entries[i].End = d.codePoint()
		entries[i].Value = value()
	}
	if d.err != nil {
		return nil
	}
	m, err := umap.FromEntries(def, entries)
	if err != nil {
		d.err = uerrors.WithCode(err, uerrors.DataError)
		return nil
	}
	return m
}

func decodeMappings(d *decoder) map[rune][]rune {
	n := d.count()
	m := make(map[rune][]rune, n)
	for range n {
		c := d.codePoint()
		mapping := make([]rune, d.count())
		for i := range mapping {
			mapping[i] = d.codePoint()
		}
		if d.err != nil {
			return nil
		}
		if _, dup := m[c]; dup {
			d.fail("duplicate mapping for U+%04X", c)
			return nil
		}
		m[c] = mapping
	}
	return m
}

func decodeSet(d *decoder) *uset.Set {
	list := make([]rune, d.count())
	for i := range list {
		list[i] = d.codePoint()
	}
	if d.err != nil {
		return nil
	}
	s, err := uset.FromInversionList(list)
	if err != nil {
		d.err = uerrors.WithCode(err, uerrors.DataError)
		return nil
	}
	return s
}

func decodeTables(data []byte, unicodeVersion string) (*Tables, error) {
	d := &decoder{data: data}
	t := &Tables{
		Normalization: &provider.NormalizationData{UnicodeVersion: unicodeVersion},
		Enumerated:    make(map[uprops.EnumeratedProperty]*umap.Map[uint32]),
		Binary:        make(map[uprops.BinaryProperty]*uset.Set),
	}
	n := t.Normalization
	n.CombiningClass = decodeMap[uint8](d, math.MaxUint8)
	n.Canonical = decodeMappings(d)
	n.Compatibility = decodeMappings(d)
	n.CompositionExclusions = decodeSet(d)

	for range d.count() {
		prop := uprops.EnumeratedProperty(d.uvarint())
		if d.err == nil && !slices.Contains(uprops.EnumeratedProperties(), prop) {
			d.fail("unknown enumerated property %d", prop)
		}
		if m := decodeMap[uint32](d, 1<<32-1); m != nil {
			t.Enumerated[prop] = m
		}
	}
	for range d.count() {
		prop := uprops.BinaryProperty(d.uvarint())
		if d.err == nil && !slices.Contains(uprops.BinaryProperties(), prop) {
			d.fail("unknown binary property %d", prop)
		}
		if s := decodeSet(d); s != nil {
			t.Binary[prop] = s
		}
	}
	t.ScriptExtensions = decodeScriptExtensions(d)
	if d.err == nil && d.pos != len(d.data) {
		d.fail("%d trailing bytes", len(d.data)-d.pos)
	}
	if d.err != nil {
		return nil, d.err
	}
	if err := n.Validate(); err != nil {
		return nil, uerrors.Wrap(err, "blob")
	}
	if t.ScriptExtensions != nil {
		if err := t.ScriptExtensions.Validate(); err != nil {
			return nil, uerrors.Wrap(err, "blob")
		}
	}
	return t, nil
}

func decodeScriptExtensions(d *decoder) *provider.ScriptExtensionsData {
	n := d.count()
	if n == 0 {
		return nil
	}
	scx := &provider.ScriptExtensionsData{Lists: make([][]uprops.Script, n-1)}
	for i := range scx.Lists {
		l := make([]uprops.Script, d.count())
		for j := range l {
			v := d.uvarint()
			if d.err != nil {
				return nil
			}
			if v > math.MaxUint32 {
				d.fail("script value %d out of range", v)
				return nil
			}
			sc, err := uprops.ScriptFromValue(uint32(v))
			if err != nil {
				d.fail("%v", err)
				return nil
			}
			l[j] = sc
		}
		scx.Lists[i] = l
	}
	scx.Index = decodeMap[uint32](d, uint64(n-1))
	if d.err != nil {
		return nil
	}
	return scx
}
