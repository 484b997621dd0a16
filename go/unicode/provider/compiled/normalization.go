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

package compiled

import (
	"slices"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"unicore.io/unicore/go/log"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uset"
)

const (
	hangulSBase = 0xAC00
	hangulSLast = 0xD7A3
)

// deriveNormalization rebuilds UnicodeData-style tables from x/text.
//
// x/text only exposes full decompositions, so the single-step canonical
// mapping of each primary composite is recovered by splitting off one
// trailing character such that the remainder composes to a single code
// point. Excluded characters keep their full decomposition; they never
// take part in composition, so the depth of their mapping does not matter.
// Compatibility mappings are only recorded for code points without a
// canonical one, as in UnicodeData.txt.
func deriveNormalization() *provider.NormalizationData {
	var (
		ccc        = umap.NewBuilder[uint8](0)
		canonical  = make(map[rune][]rune)
		compat     = make(map[rune][]rune)
		exclusions = uset.NewBuilder()

		runStart rune = -1
		runClass uint8
		buf      [utf8.UTFMax]byte
	)

	flush := func(end rune) {
		if runStart >= 0 && runClass != 0 {
			_ = ccc.Set(runStart, end, runClass)
		}
	}

	for c := rune(0); c <= uset.MaxRune; c++ {
		if utf16.IsSurrogate(c) {
			continue
		}
		s := buf[:utf8.EncodeRune(buf[:], c)]
		nfd := norm.NFD.Properties(s)

		if class := nfd.CCC(); class != runClass || runStart < 0 {
			flush(c - 1)
			runStart, runClass = c, class
		}

		if c >= hangulSBase && c <= hangulSLast {
			// Algorithmic.
			continue
		}

		var canon []rune
		if d := nfd.Decomposition(); d != nil {
			canon = []rune(string(d))
		}
		if canon == nil {
			if d := norm.NFKD.Properties(s).Decomposition(); d != nil {
				compat[c] = compatStep(c, []rune(string(d)))
			}
			continue
		}

		if !norm.NFC.IsNormal(s) {
			_ = exclusions.AddRune(c)
			canonical[c] = canon
			continue
		}
		if pair, ok := singleStep(c, canon); ok {
			canonical[c] = pair
		} else {
			log.WarnS("no single-step decomposition found, composite will not recompose",
				"codepoint", uset.Range{Start: c, End: c}.String())
			canonical[c] = canon
		}
	}
	flush(uset.MaxRune)

	classes, err := ccc.Build()
	if err != nil {
		panic(err)
	}
	return &provider.NormalizationData{
		UnicodeVersion:        norm.Version,
		CombiningClass:        classes,
		Canonical:             canonical,
		Compatibility:         compat,
		CompositionExclusions: exclusions.Build(),
	}
}

// singleStep finds the pair <p, m> that c composes from, given its full
// canonical decomposition d.
func singleStep(c rune, d []rune) ([]rune, bool) {
	for k := len(d) - 1; k >= 1; k-- {
		rest := slices.Delete(slices.Clone(d), k, k+1)
		composed := []rune(norm.NFC.String(string(rest)))
		if len(composed) != 1 {
			continue
		}
		p := composed[0]
		if !slices.Equal([]rune(norm.NFD.String(string(p))), rest) {
			continue
		}
		if norm.NFC.String(string([]rune{p, d[k]})) != string(c) {
			continue
		}
		return []rune{p, d[k]}, true
	}
	return nil, false
}

// compatStep recovers a single-step compatibility mapping of c from its
// full NFKD expansion by canonically recomposing it. For U+01C4 this gives
// <0044 017D> rather than <0044 005A 030C>. The result is canonically
// equivalent to the UnicodeData.txt mapping, which it matches except where
// that mapping names a compatibility character or a composition exclusion.
func compatStep(c rune, full []rune) []rune {
	step := []rune(norm.NFC.String(string(full)))
	if len(step) == 0 || slices.Equal(step, []rune{c}) {
		return full
	}
	return step
}
