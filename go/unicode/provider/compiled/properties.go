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
	"unicode"

	"unicore.io/unicore/go/log"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
)

// deriveGeneralCategory maps the two-letter tables of unicode.Categories.
// Code points in none of them are Unassigned.
func deriveGeneralCategory() *umap.Map[uint32] {
	b := umap.NewBuilder(uint32(uprops.Unassigned))
	for name, rt := range unicode.Categories {
		if len(name) != 2 {
			// One-letter keys are the major classes, unions of the others.
			continue
		}
		gc, err := uprops.ParseGeneralCategory(name)
		if err != nil {
			log.WarnS("skipping unknown general category", "name", name)
			continue
		}
		addTable(b, rt, uint32(gc))
	}
	return mustBuild(b, "General_Category")
}

func deriveScript() *umap.Map[uint32] {
	b := umap.NewBuilder(uint32(uprops.ScriptUnknown))
	for name, rt := range unicode.Scripts {
		sc, err := uprops.ParseScript(name)
		if err != nil {
			log.WarnS("skipping unknown script", "name", name)
			continue
		}
		addTable(b, rt, uint32(sc))
	}
	return mustBuild(b, "Script")
}

func addTable(b *umap.Builder[uint32], rt *unicode.RangeTable, v uint32) {
	for _, r := range rt.R16 {
		addStrided(b, rune(r.Lo), rune(r.Hi), rune(r.Stride), v)
	}
	for _, r := range rt.R32 {
		addStrided(b, rune(r.Lo), rune(r.Hi), rune(r.Stride), v)
	}
}

func addStrided(b *umap.Builder[uint32], lo, hi, stride rune, v uint32) {
	if stride <= 1 {
		_ = b.Set(lo, hi, v)
		return
	}
	for c := lo; c <= hi; c += stride {
		_ = b.SetRune(c, v)
	}
}

// mustBuild panics if the standard library tables overlap, which would
// mean they are inconsistent with themselves.
func mustBuild[V umap.Value](b *umap.Builder[V], what string) *umap.Map[V] {
	m, err := b.Build()
	if err != nil {
		panic(err.Error() + " building " + what)
	}
	return m
}
