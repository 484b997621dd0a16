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
	"context"
	"strings"
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xnorm "golang.org/x/text/unicode/norm"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

var (
	nfc  = New(NFC)
	nfd  = New(NFD)
	nfkc = New(NFKC)
	nfkd = New(NFKD)
)

func normalizers() []*Normalizer {
	return []*Normalizer{nfc, nfd, nfkc, nfkd}
}

func xtextForm(f Form) xnorm.Form {
	return [formCount]xnorm.Form{NFC: xnorm.NFC, NFD: xnorm.NFD, NFKC: xnorm.NFKC, NFKD: xnorm.NFKD}[f]
}

func TestParseForm(t *testing.T) {
	for _, f := range Forms() {
		got, err := ParseForm(strings.ToLower(f.String()))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseForm("NFX")
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
	assert.Equal(t, "Form(9)", Form(9).String())
}

func TestCanonicalEquivalence(t *testing.T) {
	assert.Equal(t, "\u00E9", nfc.String("e\u0301"))
	assert.Equal(t, "e\u0301", nfd.String("\u00E9"))
	assert.Equal(t, "\u00E9", nfc.String("\u00E9"))
	assert.Equal(t, "e\u0301", nfd.String("e\u0301"))

	// Singletons never recompose.
	assert.Equal(t, "\u00C5", nfc.String("\u212B"))
	assert.Equal(t, "A\u030A", nfd.String("\u212B"))
	assert.Equal(t, "\u03A9", nfc.String("\u2126"))
}

func TestReordering(t *testing.T) {
	// Dot below (220) sorts before acute (230).
	assert.Equal(t, "a\u0323\u0301", nfd.String("a\u0301\u0323"))
	assert.Equal(t, "\u1EA1\u0301", nfc.String("a\u0301\u0323"))

	// Marks of equal class keep their order.
	assert.Equal(t, "a\u0301\u0300", nfd.String("a\u0301\u0300"))
	assert.Equal(t, "a\u0300\u0301", nfd.String("a\u0300\u0301"))
	assert.Equal(t, "\u00E1\u0300", nfc.String("a\u0301\u0300"))
	assert.Equal(t, "\u00E0\u0301", nfc.String("a\u0300\u0301"))

	// Reordering reaches into a decomposition.
	assert.Equal(t, "e\u0323\u0302", nfd.String("\u1EC7"))
	assert.Equal(t, "e\u0323\u0302", nfd.String("\u00EA\u0323"))
	assert.Equal(t, "\u1EC7", nfc.String("\u00EA\u0323"))
}

func TestBlocking(t *testing.T) {
	// The ogonek composes; the acute after it has no composite with U+0105.
	assert.Equal(t, "\u0105\u0301", nfc.String("a\u0328\u0301"))
	// A mark of the same class blocks.
	assert.Equal(t, "a\u0305\u0301", nfc.String("a\u0305\u0301"))
	// A lower class does not.
	assert.Equal(t, "\u1E09", nfc.String("c\u0327\u0301"))
	// A starter in between blocks.
	assert.Equal(t, "ab\u0301", nfd.String("ab\u0301"))
	assert.Equal(t, "a\u1E03", nfc.String("ab\u0307"))
}

func TestCompositionExclusion(t *testing.T) {
	// U+0958 DEVANAGARI LETTER QA is excluded from composition.
	assert.Equal(t, "\u0915\u093C", nfd.String("\u0958"))
	assert.Equal(t, "\u0915\u093C", nfc.String("\u0958"))
	assert.Equal(t, "\u0915\u093C", nfc.String("\u0915\u093C"))
	_, ok := nfc.Compose(0x0915, 0x093C)
	assert.False(t, ok)
	assert.Equal(t, uprops.No, nfc.QuickCheck(0x0958))

	// Non-starter decompositions.
	assert.Equal(t, "\u0308\u0301", nfc.String("\u0344"))
}

func TestHangul(t *testing.T) {
	assert.Equal(t, "\u1100\u1161", nfd.String("\uAC00"))
	assert.Equal(t, "\u1100\u1161\u11A8", nfd.String("\uAC01"))
	assert.Equal(t, "\uAC01", nfc.String("\u1100\u1161\u11A8"))
	assert.Equal(t, "\uAC01", nfc.String("\uAC00\u11A8"))
	assert.Equal(t, "\uD7A3", nfc.String(nfd.String("\uD7A3")))
	// An LVT syllable takes no further trailing consonant.
	assert.Equal(t, "\uAC01\u11A8", nfc.String("\uAC01\u11A8"))

	c, ok := nfc.Compose(0x1100, 0x1161)
	require.True(t, ok)
	assert.Equal(t, rune(0xAC00), c)
	assert.Equal(t, []rune{0x1100, 0x1161, 0x11A8}, nfd.Decompose(0xAC01))
	assert.Equal(t, uprops.Maybe, nfc.QuickCheck(0x11A8))
	assert.Equal(t, uprops.No, nfd.QuickCheck(0xAC00))
	assert.Equal(t, uprops.Yes, nfc.QuickCheck(0xAC00))
}

func TestCompatibility(t *testing.T) {
	assert.Equal(t, "fi", nfkc.String("\uFB01"))
	assert.Equal(t, "\uFB01", nfc.String("\uFB01"))
	assert.Equal(t, "1", nfkd.String("\u2460"))

	// The long s with dot above and dot below from UAX #15.
	assert.Equal(t, "\u1E9B\u0323", nfc.String("\u1E9B\u0323"))
	assert.Equal(t, "\u017F\u0323\u0307", nfd.String("\u1E9B\u0323"))
	assert.Equal(t, "\u1E69", nfkc.String("\u1E9B\u0323"))
	assert.Equal(t, "s\u0323\u0307", nfkd.String("\u1E9B\u0323"))

	assert.Equal(t, "(\u1100)", nfkd.String("\u3200"))
	assert.Equal(t, "(\u1100)", nfkc.String("\u3200"))

	assert.Equal(t, []rune{'f', 'i'}, nfkd.Decompose(0xFB01))
	assert.Equal(t, []rune{0xFB01}, nfd.Decompose(0xFB01))
	assert.Equal(t, uprops.No, nfkc.QuickCheck(0xFB01))
	assert.Equal(t, uprops.Yes, nfc.QuickCheck(0xFB01))
}

func TestIllFormedInput(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a\xff", "a\uFFFD"},
		{"a\xE2\x82", "a\uFFFD"},
		{"\xE2\x82A", "\uFFFDA"},
		{"\xF0\x80\x80", "\uFFFD\uFFFD\uFFFD"},
		{"\xED\xA0\x80", "\uFFFD\uFFFD\uFFFD"},
		{"\xF4\x90\x80\x80", "\uFFFD\uFFFD\uFFFD\uFFFD"},
		{"\xF0\x9F\x98", "\uFFFD"},
		{"\xC0\xAF", "\uFFFD\uFFFD"},
		{"e\x80\u0301", "e\uFFFD\u0301"},
	}
	for _, tt := range tests {
		for _, n := range normalizers() {
			assert.Equal(t, tt.want, n.String(tt.in), "%v(%q)", n.Form(), tt.in)
			assert.Equal(t, []byte(tt.want), n.Bytes([]byte(tt.in)), "%v(%q)", n.Form(), tt.in)
			assert.False(t, n.IsNormalized(tt.in), "%v(%q)", n.Form(), tt.in)
		}
	}

	u := []uint16{'a', 0xD800, 'b', 0xDC00, 0xD83D, 0xDE00}
	assert.Equal(t, []uint16{'a', 0xFFFD, 'b', 0xFFFD, 0xD83D, 0xDE00}, nfc.UTF16(u))
	assert.False(t, nfc.IsNormalizedUTF16(u))
}

func TestUTF16(t *testing.T) {
	in := utf16.Encode([]rune("e\u0301 \U0001D15E"))
	assert.Equal(t, utf16.Encode([]rune("\u00E9 \U0001D157\U0001D165")), nfc.UTF16(in))
	assert.True(t, nfc.IsNormalizedUTF16(nfc.UTF16(in)))
	assert.False(t, nfc.IsNormalizedUTF16(in))

	clean := utf16.Encode([]rune("plain"))
	assert.Equal(t, clean, nfd.UTF16(clean))
}

func TestAppend(t *testing.T) {
	dst := []byte("prefix:")
	assert.Equal(t, "prefix:\u00E9", string(nfc.Append(dst, []byte("e\u0301")...)))
	assert.Equal(t, "prefix:e\u0301", string(nfd.AppendString(dst, "\u00E9")))
	assert.Equal(t, "prefix:", string(nfd.AppendString(dst, "")))
}

func TestIsNormalizedUpTo(t *testing.T) {
	tests := []struct {
		n    *Normalizer
		in   string
		want int
	}{
		{nfc, "", 0},
		{nfc, "abc", 3},
		{nfc, "abe\u0301", 2},
		{nfc, "ab\u00E9", 4},
		{nfd, "ab\u00E9", 2},
		{nfd, "abe\u0301\u0323", 2},
		{nfd, "abe\u0323\u0301", 7},
		{nfc, "abc\xff", 3},
		{nfc, "\u0958x", 0},
		{nfkc, "x\uFB01y", 1},
		{nfc, "\u1100\u1161", 0},
		{nfc, "ok \u1100\u1161", 3},
	}
	for _, tt := range tests {
		got := tt.n.IsNormalizedUpTo(tt.in)
		assert.Equal(t, tt.want, got, "%v(%q)", tt.n.Form(), tt.in)
		assert.Equal(t, tt.n.String(tt.in), tt.in[:got]+tt.n.String(tt.in[got:]), "%v(%q)", tt.n.Form(), tt.in)
	}
}

var corpus = []string{
	"",
	"ASCII only, nothing to do.",
	"Ame\u0301lie \u00E0 la plage",
	"\u1E9B\u0323\u0307\u0301 mixed \uFB01 and \u2460",
	"\uD55C\uAD6D\uC5B4 \u1112\u1161\u11AB\u1100\u116E\u11A8",
	"\u0958\u0915\u093C\u0929\u0928\u093C",
	"\u0F71\u0F72\u0F73\u0F80\u0F74 \u0344\u0340\u0341",
	"a\u0323\u0316\u0317\u0301\u0302\u0300",
	"\u212B\u00C5\u2126\u03A9",
	"\u0CCB \u0DDD \u0CC6\u0CC2\u0CD5",
	"\u3200\u326E\u321D \u3131\u314F",
	"\U0001D15E\U0001D160 \U0002F800",
	"\uFF76\uFF9E \u30AB\u3099",
	"e\xE2\x82\u0301\xff",
}

func TestIdempotenceAndAgreement(t *testing.T) {
	for _, s := range corpus {
		for _, n := range normalizers() {
			once := n.String(s)
			assert.Equal(t, once, n.String(once), "%v(%q) is not idempotent", n.Form(), s)
			assert.True(t, n.IsNormalized(once), "%v(%q)", n.Form(), once)
			assert.Equal(t, once == s, n.IsNormalized(s), "%v(%q)", n.Form(), s)

			k := n.IsNormalizedUpTo(s)
			assert.Equal(t, once, s[:k]+n.String(s[k:]), "%v(%q) prefix %d", n.Form(), s, k)
		}
	}
}

func TestMatchesXText(t *testing.T) {
	for _, s := range corpus {
		if !utf8.ValidString(s) {
			continue
		}
		for _, n := range normalizers() {
			assert.Equal(t, xtextForm(n.Form()).String(s), n.String(s), "%v(%q)", n.Form(), s)
		}
	}
}

// TestEveryCodePoint walks the code space alone and followed by a mark.
// Decompositions are compared with x/text. Composed results are checked for
// idempotence and canonical equivalence instead: x/text packs composition
// pairs into 32 bits, so it composes starters above U+FFFF as if they were
// their low 16 bits (U+10041 U+0301 becomes U+00C1). Composition itself is
// covered by the conformance tests.
func TestEveryCodePoint(t *testing.T) {
	if testing.Short() {
		t.Skip("walks every code point")
	}
	failures := 0
	fail := func(format string, args ...any) {
		t.Helper()
		t.Errorf(format, args...)
		if failures++; failures >= maxConformanceFailures {
			t.FailNow()
		}
	}

	var buf [2 * utf8.UTFMax]byte
	for r := rune(0); r <= uset.MaxRune; r++ {
		if utf16.IsSurrogate(r) {
			continue
		}
		for _, s := range []string{string(r), string(utf8.AppendRune(utf8.AppendRune(buf[:0], r), 0x0301))} {
			for _, n := range normalizers() {
				got := n.String(s)
				if again := n.String(got); again != got {
					fail("%v(%+q) = %+q is not stable, renormalizes to %+q", n.Form(), s, got, again)
				}
				if n.IsNormalized(s) != (got == s) {
					fail("%v.IsNormalized(%+q) = %v", n.Form(), s, got != s)
				}
			}
			for _, n := range []*Normalizer{nfd, nfkd} {
				if got, want := n.String(s), xtextForm(n.Form()).String(s); got != want {
					fail("%v(%+q) = %+q, want %+q", n.Form(), s, got, want)
				}
			}
			if got, want := nfd.String(nfc.String(s)), nfd.String(s); got != want {
				fail("NFD(NFC(%+q)) = %+q, want %+q", s, got, want)
			}
			if got, want := nfkd.String(nfkc.String(s)), nfkd.String(s); got != want {
				fail("NFKD(NFKC(%+q)) = %+q, want %+q", s, got, want)
			}
		}
	}
}

func TestLongMarkRun(t *testing.T) {
	in := "a" + strings.Repeat("\u0301\u0323", 100)
	assert.Equal(t, "a"+strings.Repeat("\u0323", 100)+strings.Repeat("\u0301", 100), nfd.String(in))
	assert.Equal(t, "\u1EA1"+strings.Repeat("\u0323", 99)+strings.Repeat("\u0301", 100), nfc.String(in))
}

func testData(t *testing.T) *provider.NormalizationData {
	t.Helper()
	ccc := umap.NewBuilder[uint8](0)
	require.NoError(t, ccc.SetRune(0x0301, 230))
	require.NoError(t, ccc.SetRune(0x0323, 220))
	classes, err := ccc.Build()
	require.NoError(t, err)
	return &provider.NormalizationData{
		UnicodeVersion: "test",
		CombiningClass: classes,
		Canonical: map[rune][]rune{
			0x00E1: {'a', 0x0301},
			0x1EA1: {'a', 0x0323},
		},
		Compatibility:         map[rune][]rune{},
		CompositionExclusions: uset.Empty(),
	}
}

type staticProvider struct {
	d   *provider.NormalizationData
	err error
}

func (p staticProvider) Name() string { return "static" }

func (p staticProvider) Normalization(context.Context) (*provider.NormalizationData, error) {
	return p.d, p.err
}

func (p staticProvider) EnumeratedProperty(context.Context, uprops.EnumeratedProperty) (*umap.Map[uint32], error) {
	return nil, uerrors.New(uerrors.DataError, "none")
}

func (p staticProvider) BinaryProperty(context.Context, uprops.BinaryProperty) (*uset.Set, error) {
	return nil, uerrors.New(uerrors.DataError, "none")
}

func (p staticProvider) ScriptExtensions(context.Context) (*provider.ScriptExtensionsData, error) {
	return nil, provider.NoTable(p.Name(), "Script_Extensions")
}

func TestNewWithProvider(t *testing.T) {
	ctx := context.Background()
	n, err := NewWithProvider(ctx, staticProvider{d: testData(t)}, NFC)
	require.NoError(t, err)
	assert.Equal(t, "test", n.Tables().UnicodeVersion())
	assert.Equal(t, "\u00E1", n.String("a\u0301"))
	assert.Equal(t, "\u1EA1\u0301", n.String("a\u0301\u0323"))
	// Characters the data does not know are left alone.
	assert.Equal(t, "e\u0301", n.String("e\u0301"))

	_, err = NewWithProvider(ctx, staticProvider{err: uerrors.New(uerrors.DataError, "gone")}, NFC)
	assert.ErrorIs(t, err, uerrors.ErrData)

	_, err = NewWithProvider(ctx, staticProvider{}, NFD)
	assert.ErrorIs(t, err, uerrors.ErrData)

	d := testData(t)
	d.CompositionExclusions = nil
	_, err = NewWithProvider(ctx, staticProvider{d: d}, NFD)
	assert.ErrorIs(t, err, uerrors.ErrData)

	d = testData(t)
	d.Canonical[0x00E0] = []rune{'a', 0x0301}
	_, err = NewTables(d)
	require.ErrorIs(t, err, uerrors.ErrData)
	assert.Contains(t, err.Error(), "both compose")

	d = testData(t)
	d.Canonical['q'] = []rune{'q'}
	_, err = NewTables(d)
	assert.ErrorIs(t, err, uerrors.ErrData)
}

func TestMapping(t *testing.T) {
	tables := nfc.Tables()
	m, compat, ok := tables.Mapping(0x1EC7)
	require.True(t, ok)
	assert.False(t, compat)
	assert.Equal(t, []rune{0x1EB9, 0x0302}, m)

	m, compat, ok = tables.Mapping(0xFB01)
	require.True(t, ok)
	assert.True(t, compat)
	assert.Equal(t, []rune{'f', 'i'}, m)

	// A canonical mapping wins over the compatibility expansion.
	m, compat, ok = tables.Mapping(0x1E9B)
	require.True(t, ok)
	assert.False(t, compat)
	assert.Equal(t, []rune{0x017F, 0x0307}, m)

	m, compat, ok = tables.Mapping(0x01C4)
	require.True(t, ok)
	assert.True(t, compat)
	assert.Equal(t, []rune{'D', 0x017D}, m)
	assert.Equal(t, "DZ\u030C", nfkd.String("\u01C4"))

	m, _, ok = tables.Mapping(0xAC01)
	require.True(t, ok)
	assert.Equal(t, []rune{0xAC00, 0x11A8}, m)

	_, _, ok = tables.Mapping('a')
	assert.False(t, ok)
	assert.Equal(t, uint8(230), tables.CombiningClass(0x0301))
	assert.Equal(t, xnorm.Version, tables.UnicodeVersion())
}
