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

// Package norm implements the Unicode normalization forms NFC, NFD, NFKC
// and NFKD (UAX #15) over data supplied by a provider.
//
// A Normalizer is immutable and safe for concurrent use. Normalization
// never fails: ill-formed UTF-8 is read as if every maximal ill-formed
// subsequence were U+FFFD, and unpaired UTF-16 surrogates likewise. Data
// problems are reported once, when the normalizer is built.
package norm

import (
	"context"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"unicore.io/unicore/go/hack"
	"unicore.io/unicore/go/log"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/provider/compiled"
	"unicore.io/unicore/go/unicode/uprops"
)

// Normalizer converts text to one normalization form.
type Normalizer struct {
	t    *Tables
	form Form
}

var bundled = sync.OnceValues(func() (*Tables, error) {
	d, err := compiled.Default().Normalization(context.Background())
	if err != nil {
		return nil, err
	}
	return NewTables(d)
})

// New returns a normalizer for form backed by the bundled data.
func New(form Form) *Normalizer {
	t, err := bundled()
	if err != nil {
		panic(err)
	}
	return NewWithTables(t, form)
}

// NewWithProvider loads the normalization data of p and returns a
// normalizer for form. Missing or corrupt data is a DataError.
func NewWithProvider(ctx context.Context, p provider.Provider, form Form) (*Normalizer, error) {
	d, err := p.Normalization(ctx)
	if err != nil {
		return nil, err
	}
	t, err := NewTables(d)
	if err != nil {
		return nil, err
	}
	log.DebugS("normalization tables built", "provider", p.Name(), "unicode_version", t.UnicodeVersion(),
		"canonical", len(t.canonFull), "compatibility", len(t.compatFull), "pairs", len(t.pairs))
	return NewWithTables(t, form), nil
}

// NewWithTables returns a normalizer for form sharing t.
func NewWithTables(t *Tables, form Form) *Normalizer {
	if form >= formCount {
		panic("norm: invalid form " + form.String())
	}
	return &Normalizer{t: t, form: form}
}

// Form returns the form n produces.
func (n *Normalizer) Form() Form { return n.form }

// Tables returns the data n runs on.
func (n *Normalizer) Tables() *Tables { return n.t }

// appendNormalized normalizes all of src and appends the UTF-8 result to
// dst.
func appendNormalized[T input](t *Tables, f Form, dst []byte, src T) []byte {
	rb := newReorderBuffer(t, f, func(r rune) { dst = utf8.AppendRune(dst, r) })
	pass := min(t.minPassThrough[f], utf8.RuneSelf)
	for i := 0; i < len(src); {
		if c := rune(src[i]); c < pass && i+1 < len(src) && rune(src[i+1]) < pass {
			// c is a segment of its own.
			rb.finish()
			dst = append(dst, byte(c))
			i++
			continue
		}
		r, size, _ := decodeRune(src[i:])
		rb.insert(r)
		i += size
	}
	rb.finish()
	return dst
}

// appendQuick appends the normalized form of src to dst, copying the
// prefix that is already normalized.
func appendQuick[T input](t *Tables, f Form, dst []byte, src T) []byte {
	k := isNormalizedUpTo(t, f, src)
	dst = append(dst, src[:k]...)
	if k == len(src) {
		return dst
	}
	return appendNormalized(t, f, dst, src[k:])
}

// String returns the normalized form of s. If s is already normalized it
// is returned as is.
func (n *Normalizer) String(s string) string {
	k := isNormalizedUpTo(n.t, n.form, s)
	if k == len(s) {
		return s
	}
	buf := make([]byte, 0, len(s)+len(s)/4)
	buf = append(buf, s[:k]...)
	return hack.String(appendNormalized(n.t, n.form, buf, s[k:]))
}

// Bytes returns the normalized form of b in a new slice.
func (n *Normalizer) Bytes(b []byte) []byte {
	return appendQuick(n.t, n.form, make([]byte, 0, len(b)+len(b)/4), b)
}

// Append appends the normalized form of src to dst.
func (n *Normalizer) Append(dst []byte, src ...byte) []byte {
	return appendQuick(n.t, n.form, dst, src)
}

// AppendString appends the normalized form of src to dst.
func (n *Normalizer) AppendString(dst []byte, src string) []byte {
	return appendQuick(n.t, n.form, dst, src)
}

// UTF16 returns the normalized form of the UTF-16 text u. If u is already
// normalized it is returned as is.
func (n *Normalizer) UTF16(u []uint16) []uint16 {
	if n.IsNormalizedUTF16(u) {
		return u
	}
	out := make([]uint16, 0, len(u)+len(u)/4)
	rb := newReorderBuffer(n.t, n.form, func(r rune) { out = utf16.AppendRune(out, r) })
	for i := 0; i < len(u); {
		r, size, _ := decodeUTF16(u[i:])
		rb.insert(r)
		i += size
	}
	rb.finish()
	return out
}

// decodeUTF16 decodes the first code point of u. An unpaired surrogate
// decodes to U+FFFD with ok unset.
func decodeUTF16(u []uint16) (r rune, size int, ok bool) {
	c := rune(u[0])
	switch {
	case !utf16.IsSurrogate(c):
		return c, 1, true
	case c < 0xDC00 && len(u) > 1:
		if r := utf16.DecodeRune(c, rune(u[1])); r != utf8.RuneError {
			return r, 2, true
		}
	}
	return utf8.RuneError, 1, false
}

// IsNormalized reports whether s is in n's form.
func (n *Normalizer) IsNormalized(s string) bool {
	return isNormalizedUpTo(n.t, n.form, s) == len(s)
}

// IsNormalizedBytes reports whether b is in n's form.
func (n *Normalizer) IsNormalizedBytes(b []byte) bool {
	return isNormalizedUpTo(n.t, n.form, b) == len(b)
}

// IsNormalizedUTF16 reports whether u is in n's form. Text with unpaired
// surrogates never is.
func (n *Normalizer) IsNormalizedUTF16(u []uint16) bool {
	var buf []byte
	for i := 0; i < len(u); {
		r, size, ok := decodeUTF16(u[i:])
		if !ok {
			return false
		}
		buf = utf8.AppendRune(buf, r)
		i += size
	}
	return isNormalizedUpTo(n.t, n.form, buf) == len(buf)
}

// IsNormalizedUpTo returns the length of the longest prefix of s that is
// normalized and ends on a segment boundary. It holds that
// n.String(s) == s[:k] + n.String(s[k:]) and that k == len(s) exactly when
// s is normalized.
func (n *Normalizer) IsNormalizedUpTo(s string) int {
	return isNormalizedUpTo(n.t, n.form, s)
}

// QuickCheck returns the quick-check value of r for n's form: No if r
// never occurs in the form, Maybe if that depends on the preceding text.
func (n *Normalizer) QuickCheck(r rune) uprops.QuickCheck {
	return n.t.quickCheck(n.form, r)
}

// Decompose returns the full decomposition of r used by n's form, or r
// itself if it does not decompose.
func (n *Normalizer) Decompose(r rune) []rune {
	var buf [3]rune
	d := n.t.decomposition(r, n.form.compat(), &buf)
	if d == nil {
		return []rune{r}
	}
	return append([]rune(nil), d...)
}

// Compose returns the primary composite of a and b, if there is one.
// Composition exclusions never compose.
func (n *Normalizer) Compose(a, b rune) (rune, bool) {
	return n.t.compose(a, b)
}

// isNormalizedUpTo scans s segment by segment. Segments made only of
// quick-check Yes characters in combining class order are normalized; any
// other segment is normalized and compared.
func isNormalizedUpTo[T input](t *Tables, f Form, s T) int {
	var (
		start   int // start of the current segment; s[:start] is verified
		lastCCC uint8
		scratch []byte
	)
	pass := min(t.minPassThrough[f], utf8.RuneSelf)
	for i := 0; i < len(s); {
		if rune(s[i]) < pass {
			start, lastCCC = i, 0
			i++
			continue
		}
		// Ill-formed input decodes to U+FFFD, which is a boundary.
		r, size, ok := decodeRune(s[i:])
		if t.boundary(f, r) {
			start = i
		}
		cc := t.CombiningClass(r)
		if ok && t.quickCheck(f, r) == uprops.Yes && (cc == 0 || cc >= lastCCC) {
			lastCCC = cc
			i += size
			continue
		}

		// Find the end of the segment and compare it with its normal form.
		end := i + size
		for end < len(s) {
			r, size, _ := decodeRune(s[end:])
			if t.boundary(f, r) {
				break
			}
			end += size
		}
		scratch = appendNormalized(t, f, scratch[:0], s[start:end])
		if string(scratch) != string(s[start:end]) {
			return start
		}
		start, lastCCC = end, 0
		i = end
	}
	return len(s)
}
