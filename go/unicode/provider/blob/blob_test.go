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
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/provider/compiled"
	"unicore.io/unicore/go/unicode/provider/source"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

func smallTables(t *testing.T) *Tables {
	t.Helper()
	ccc := umap.NewBuilder[uint8](0)
	require.NoError(t, ccc.SetRune(0x0301, 230))
	require.NoError(t, ccc.SetRune(0x0323, 220))
	require.NoError(t, ccc.SetRune(0xE000, 255))
	classes, err := ccc.Build()
	require.NoError(t, err)

	gc := umap.NewBuilder(uint32(uprops.Unassigned))
	require.NoError(t, gc.Set('A', 'Z', uint32(uprops.UppercaseLetter)))
	require.NoError(t, gc.Set('a', 'z', uint32(uprops.LowercaseLetter)))
	gcMap, err := gc.Build()
	require.NoError(t, err)

	index := umap.NewBuilder[uint32](0)
	require.NoError(t, index.SetRune(0x0640, 1))
	require.NoError(t, index.Set(0x0951, 0x0952, 2))
	scxIndex, err := index.Build()
	require.NoError(t, err)

	white, err := uset.FromRanges(uset.Range{Start: 0x09, End: 0x0D}, uset.Range{Start: ' ', End: ' '})
	require.NoError(t, err)

	return &Tables{
		Normalization: &provider.NormalizationData{
			UnicodeVersion: "15.1.0",
			CombiningClass: classes,
			Canonical: map[rune][]rune{
				0x00E1: {'a', 0x0301},
				0x1EA1: {'a', 0x0323},
				0x212B: {0x00C5},
				0x00C5: {'A', 0x030A},
			},
			Compatibility:         map[rune][]rune{0xFB01: {'f', 'i'}},
			CompositionExclusions: uset.Empty(),
		},
		Enumerated: map[uprops.EnumeratedProperty]*umap.Map[uint32]{
			uprops.PropGeneralCategory: gcMap,
		},
		Binary: map[uprops.BinaryProperty]*uset.Set{
			uprops.WhiteSpace: white,
		},
		ScriptExtensions: &provider.ScriptExtensionsData{
			Lists: [][]uprops.Script{
				{uprops.ScriptArabic, uprops.ScriptSyriac},
				{uprops.ScriptBengali, uprops.ScriptDevanagari, uprops.ScriptLatin},
			},
			Index: scxIndex,
		},
	}
}

func encode(t *testing.T, tables *Tables, opts ...Option) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tables, opts...))
	return buf.Bytes()
}

func assertSameTables(t *testing.T, want, got *Tables) {
	t.Helper()
	wn, gn := want.Normalization, got.Normalization
	assert.Equal(t, wn.UnicodeVersion, gn.UnicodeVersion)
	assert.Equal(t, wn.CombiningClass.Entries(), gn.CombiningClass.Entries())
	if diff := cmp.Diff(wn.Canonical, gn.Canonical); diff != "" {
		t.Errorf("canonical mappings differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wn.Compatibility, gn.Compatibility); diff != "" {
		t.Errorf("compatibility mappings differ (-want +got):\n%s", diff)
	}
	assert.True(t, wn.CompositionExclusions.Equal(gn.CompositionExclusions))

	require.Len(t, got.Binary, len(want.Binary))
	for prop, s := range want.Binary {
		assert.True(t, s.Equal(got.Binary[prop]), "binary property %v", prop)
	}
	require.Len(t, got.Enumerated, len(want.Enumerated))
	for prop, m := range want.Enumerated {
		assert.Equal(t, m.Default(), got.Enumerated[prop].Default(), "enumerated property %v", prop)
		assert.Equal(t, m.Entries(), got.Enumerated[prop].Entries(), "enumerated property %v", prop)
	}
	if want.ScriptExtensions == nil {
		assert.Nil(t, got.ScriptExtensions)
		return
	}
	require.NotNil(t, got.ScriptExtensions)
	assert.Equal(t, want.ScriptExtensions.Lists, got.ScriptExtensions.Lists)
	assert.Equal(t, want.ScriptExtensions.Index.Entries(), got.ScriptExtensions.Index.Entries())
}

func TestRoundTripCodecs(t *testing.T) {
	want := smallTables(t)
	for _, codec := range Codecs() {
		t.Run(codec.String(), func(t *testing.T) {
			data := encode(t, want, WithCodec(codec))
			assert.Equal(t, byte(codec), data[6])

			got, err := Read(bytes.NewReader(data))
			require.NoError(t, err)
			assertSameTables(t, want, got)
		})
	}
}

func TestRoundTripCompiled(t *testing.T) {
	ctx := context.Background()
	want, err := Snapshot(ctx, compiled.Default())
	require.NoError(t, err)
	assert.Len(t, want.Enumerated, len(uprops.EnumeratedProperties()))
	// The compiled tables carry neither emoji properties nor
	// Script_Extensions, so the snapshot leaves them out.
	for _, prop := range uprops.BinaryProperties() {
		_, ok := want.Binary[prop]
		assert.Equal(t, !prop.IsEmoji(), ok, "binary property %v", prop)
	}
	assert.Nil(t, want.ScriptExtensions)

	data := encode(t, want)
	got, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	assertSameTables(t, want, got)

	// Encoding does not depend on map iteration order.
	assert.Equal(t, encodeTables(want), encodeTables(got))
}

func TestCodecNames(t *testing.T) {
	for _, codec := range Codecs() {
		parsed, err := ParseCodec(codec.String())
		require.NoError(t, err)
		assert.Equal(t, codec, parsed)
	}
	c, err := ParseCodec(" ZSTD ")
	require.NoError(t, err)
	assert.Equal(t, CodecZstd, c)

	_, err = ParseCodec("brotli")
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
	assert.Equal(t, "Codec(42)", Codec(42).String())

	var buf bytes.Buffer
	err = Write(&buf, smallTables(t), WithCodec(Codec(42)))
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
}

func TestWriteRejectsInvalidTables(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, nil), uerrors.ErrInvalidArgument)

	tables := smallTables(t)
	tables.Normalization.Canonical['x'] = []rune{'x'}
	assert.ErrorIs(t, Write(&buf, tables), uerrors.ErrData)
}

func TestReadCorrupt(t *testing.T) {
	good := encode(t, smallTables(t), WithCodec(CodecSnappy))
	versionLen := int(good[7])
	payloadStart := 8 + versionLen + 16

	tests := []struct {
		name    string
		corrupt func([]byte) []byte
		want    string
	}{
		{"empty", func([]byte) []byte { return nil }, "reading header"},
		{"bad magic", func(b []byte) []byte { b[0] = 'X'; return b }, "bad magic"},
		{"future format", func(b []byte) []byte { b[5] = 9; return b }, "unsupported format version"},
		{"unknown codec", func(b []byte) []byte { b[6] = 0; return b }, "unknown codec"},
		{"truncated header", func(b []byte) []byte { return b[:10] }, "reading header"},
		{"checksum", func(b []byte) []byte { b[8+versionLen] ^= 0xFF; return b }, "checksum mismatch"},
		{"size", func(b []byte) []byte { b[payloadStart-1]++; return b }, "header says"},
		{"huge size", func(b []byte) []byte { b[payloadStart-4] = 0x7F; return b }, "exceeds"},
		{"truncated payload", func(b []byte) []byte { return b[:payloadStart+4] }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.corrupt(bytes.Clone(good))
			_, err := Read(bytes.NewReader(data))
			require.Error(t, err)
			assert.ErrorIs(t, err, uerrors.ErrData)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestDecodeRejectsBadPayload(t *testing.T) {
	payload := encodeTables(smallTables(t))

	_, err := decodeTables(payload[:len(payload)-1], "15.1.0")
	assert.ErrorIs(t, err, uerrors.ErrData)

	_, err = decodeTables(append(bytes.Clone(payload), 0), "15.1.0")
	require.ErrorIs(t, err, uerrors.ErrData)
	assert.Contains(t, err.Error(), "trailing bytes")

	// Script extensions pointing past the last list.
	tables := smallTables(t)
	tables.ScriptExtensions.Lists = tables.ScriptExtensions.Lists[:1]
	_, err = decodeTables(encodeTables(tables), "15.1.0")
	require.ErrorIs(t, err, uerrors.ErrData)
	assert.Contains(t, err.Error(), "out of range")

	// A script value nothing is assigned to.
	tables = smallTables(t)
	tables.ScriptExtensions.Lists[0] = []uprops.Script{0xFFFF}
	_, err = decodeTables(encodeTables(tables), "15.1.0")
	require.ErrorIs(t, err, uerrors.ErrData)
	assert.Contains(t, err.Error(), "unknown Script value")

	// A combining class that does not fit in a byte.
	bad := appendUvarint(nil, 256)
	_, err = decodeTables(bad, "15.1.0")
	assert.ErrorIs(t, err, uerrors.ErrData)
}

func TestMinUnicodeVersion(t *testing.T) {
	data := encode(t, smallTables(t))

	_, err := Read(bytes.NewReader(data), WithMinUnicodeVersion("15.0"))
	assert.NoError(t, err)
	_, err = Read(bytes.NewReader(data), WithMinUnicodeVersion("15.1.0"))
	assert.NoError(t, err)

	_, err = Read(bytes.NewReader(data), WithMinUnicodeVersion("16.0.0"))
	require.ErrorIs(t, err, uerrors.ErrData)
	assert.Contains(t, err.Error(), "older than")

	_, err = Read(bytes.NewReader(data), WithMinUnicodeVersion("not a version"))
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)

	tables := smallTables(t)
	tables.Normalization.UnicodeVersion = "unreleased"
	_, err = Read(bytes.NewReader(encode(t, tables)), WithMinUnicodeVersion("1.0"))
	assert.ErrorIs(t, err, uerrors.ErrData)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/"+DefaultName, encode(t, smallTables(t), WithCodec(CodecGzip)), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/garbage.blob", []byte("UCB1 but not really"), 0o644))
	src := source.NewFile(fs, "/data")

	p, err := Open(ctx, src, "")
	require.NoError(t, err)
	assert.Equal(t, Name, p.Name())

	n, err := p.Normalization(ctx)
	require.NoError(t, err)
	assert.Equal(t, "15.1.0", n.UnicodeVersion)
	assert.Equal(t, uint8(220), n.CombiningClass.Get(0x0323))

	gc, err := p.EnumeratedProperty(ctx, uprops.PropGeneralCategory)
	require.NoError(t, err)
	assert.Equal(t, uint32(uprops.LowercaseLetter), gc.Get('q'))

	ws, err := p.BinaryProperty(ctx, uprops.WhiteSpace)
	require.NoError(t, err)
	assert.True(t, ws.Contains('\t'))

	scx, err := p.ScriptExtensions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uprops.Script{uprops.ScriptArabic, uprops.ScriptSyriac}, scx.Get(0x0640))
	assert.Nil(t, scx.Get('a'))

	_, err = p.EnumeratedProperty(ctx, uprops.PropScript)
	assert.ErrorIs(t, err, uerrors.ErrData)
	assert.ErrorIs(t, err, provider.ErrNoTable)
	_, err = p.BinaryProperty(ctx, uprops.Dash)
	assert.ErrorIs(t, err, provider.ErrNoTable)

	_, err = New(&Tables{}).ScriptExtensions(ctx)
	assert.ErrorIs(t, err, provider.ErrNoTable)

	_, err = Open(ctx, src, "missing.blob")
	assert.ErrorIs(t, err, uerrors.ErrData)

	_, err = Open(ctx, src, "garbage.blob")
	require.ErrorIs(t, err, uerrors.ErrData)
	assert.Contains(t, err.Error(), "garbage.blob")
}
