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

package ucd

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"unicore.io/unicore/go/log"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// File names within a UCD directory.
const (
	FileUnicodeData           = "UnicodeData.txt"
	FileCompositionExclusions = "CompositionExclusions.txt"
	FileScripts               = "Scripts.txt"
	FilePropList              = "PropList.txt"
	FileDerivedCoreProperties = "DerivedCoreProperties.txt"
	FileScriptExtensions      = "ScriptExtensions.txt"
	FileEmojiData             = "emoji/emoji-data.txt"
)

type unicodeData struct {
	generalCategory *umap.Map[uint32]
	combiningClass  *umap.Map[uint8]
	canonical       map[rune][]rune
	compatibility   map[rune][]rune
}

// parseUnicodeData reads UnicodeData.txt. Only the general category (field
// 2), the combining class (field 3) and the decomposition (field 5) are
// used.
func parseUnicodeData(r io.Reader) (*unicodeData, error) {
	var (
		gc              = umap.NewBuilder(uint32(uprops.Unassigned))
		ccc             = umap.NewBuilder[uint8](0)
		canonical       = make(map[rune][]rune)
		compat          = make(map[rune][]rune)
		rangeStart rune = -1
	)

	p := newParser(FileUnicodeData, r)
	for p.parse() {
		if p.fields == nil {
			continue
		}
		if err := p.want(6); err != nil {
			return nil, err
		}
		c, err := p.codePoint(p.fields[0])
		if err != nil {
			return nil, err
		}
		cat, err := uprops.ParseGeneralCategory(p.fields[2])
		if err != nil {
			return nil, p.errorf("unknown general category %q", p.fields[2])
		}
		class, err := strconv.ParseUint(p.fields[3], 10, 8)
		if err != nil {
			return nil, p.errorf("invalid combining class %q", p.fields[3])
		}

		// Large blocks are written as a <..., First> and <..., Last> pair.
		start, name := c, p.fields[1]
		switch {
		case strings.HasSuffix(name, ", First>"):
			rangeStart = c
			continue
		case strings.HasSuffix(name, ", Last>"):
			if rangeStart < 0 || rangeStart > c {
				return nil, p.errorf("range end %s without start", p.fields[0])
			}
			start, rangeStart = rangeStart, -1
		}

		if err := gc.Set(start, c, uint32(cat)); err != nil {
			return nil, p.errorf("%v", err)
		}
		if class != 0 {
			if err := ccc.Set(start, c, uint8(class)); err != nil {
				return nil, p.errorf("%v", err)
			}
		}

		decomp := p.fields[5]
		if decomp == "" {
			continue
		}
		target := canonical
		if strings.HasPrefix(decomp, "<") {
			_, rest, ok := strings.Cut(decomp, ">")
			if !ok {
				return nil, p.errorf("unterminated decomposition tag %q", decomp)
			}
			decomp, target = rest, compat
		}
		to, err := p.codePoints(decomp)
		if err != nil {
			return nil, err
		}
		if len(to) == 0 {
			return nil, p.errorf("empty decomposition for %s", p.fields[0])
		}
		target[c] = to
	}
	if p.err != nil {
		return nil, p.err
	}
	if rangeStart >= 0 {
		return nil, p.errorf("range starting at U+%04X is never closed", rangeStart)
	}

	gcMap, err := gc.Build()
	if err != nil {
		return nil, p.errorf("%v", err)
	}
	cccMap, err := ccc.Build()
	if err != nil {
		return nil, p.errorf("%v", err)
	}
	return &unicodeData{
		generalCategory: gcMap,
		combiningClass:  cccMap,
		canonical:       canonical,
		compatibility:   compat,
	}, nil
}

// parseCodePointList reads a file whose records start with a code point or
// range, such as CompositionExclusions.txt. It also returns the version
// from the file header.
func parseCodePointList(file string, r io.Reader) (*uset.Set, string, error) {
	b := uset.NewBuilder()
	p := newParser(file, r)
	for p.parse() {
		if p.fields == nil {
			continue
		}
		rng, err := p.codePointRange(p.fields[0])
		if err != nil {
			return nil, "", err
		}
		_ = b.AddRange(rng.Start, rng.End)
	}
	if p.err != nil {
		return nil, "", p.err
	}
	return b.Build(), p.version, nil
}

// parseScripts reads Scripts.txt. Script names this package does not know
// are logged and skipped, leaving their code points Unknown.
func parseScripts(r io.Reader) (*umap.Map[uint32], error) {
	b := umap.NewBuilder(uint32(uprops.ScriptUnknown))
	unknown := make(map[string]bool)

	p := newParser(FileScripts, r)
	for p.parse() {
		if p.fields == nil {
			continue
		}
		if err := p.want(2); err != nil {
			return nil, err
		}
		rng, err := p.codePointRange(p.fields[0])
		if err != nil {
			return nil, err
		}
		sc, err := uprops.ParseScript(p.fields[1])
		if err != nil {
			if !unknown[p.fields[1]] {
				unknown[p.fields[1]] = true
				log.WarnS("skipping unknown script", "file", FileScripts, "line", p.line, "script", p.fields[1])
			}
			continue
		}
		if err := b.Set(rng.Start, rng.End, uint32(sc)); err != nil {
			return nil, p.errorf("%v", err)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	m, err := b.Build()
	if err != nil {
		return nil, p.errorf("%v", err)
	}
	return m, nil
}

// parseScriptExtensions reads ScriptExtensions.txt. Unknown script codes
// are logged and dropped from their list; a record left with no known
// script is skipped.
func parseScriptExtensions(r io.Reader) (*provider.ScriptExtensionsData, error) {
	var (
		d       = &provider.ScriptExtensionsData{}
		index   = umap.NewBuilder[uint32](0)
		lists   = make(map[string]uint32)
		unknown = make(map[string]bool)
	)

	p := newParser(FileScriptExtensions, r)
	for p.parse() {
		if p.fields == nil {
			continue
		}
		if err := p.want(2); err != nil {
			return nil, err
		}
		rng, err := p.codePointRange(p.fields[0])
		if err != nil {
			return nil, err
		}
		var scripts []uprops.Script
		for _, name := range strings.Fields(p.fields[1]) {
			sc, err := uprops.ParseScript(name)
			if err != nil {
				if !unknown[name] {
					unknown[name] = true
					log.WarnS("skipping unknown script", "file", FileScriptExtensions, "line", p.line, "script", name)
				}
				continue
			}
			scripts = append(scripts, sc)
		}
		if len(scripts) == 0 {
			continue
		}
		slices.Sort(scripts)
		scripts = slices.Compact(scripts)

		key := fmt.Sprint(scripts)
		i, ok := lists[key]
		if !ok {
			d.Lists = append(d.Lists, scripts)
			i = uint32(len(d.Lists))
			lists[key] = i
		}
		if err := index.Set(rng.Start, rng.End, i); err != nil {
			return nil, p.errorf("%v", err)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	m, err := index.Build()
	if err != nil {
		return nil, p.errorf("%v", err)
	}
	d.Index = m
	return d, nil
}

// parseBinaryProperties reads a PropList.txt style file, such as
// emoji-data.txt, into builders, one per supported property. Other
// properties are ignored.
func parseBinaryProperties(file string, r io.Reader, into map[uprops.BinaryProperty]*uset.Builder) error {
	p := newParser(file, r)
	for p.parse() {
		if p.fields == nil {
			continue
		}
		if err := p.want(2); err != nil {
			return err
		}
		if len(p.fields) > 2 {
			// Enumerated properties such as InCB share the file.
			continue
		}
		prop, err := uprops.ParseBinaryProperty(p.fields[1])
		if err != nil {
			continue
		}
		rng, err := p.codePointRange(p.fields[0])
		if err != nil {
			return err
		}
		b, ok := into[prop]
		if !ok {
			b = uset.NewBuilder()
			into[prop] = b
		}
		_ = b.AddRange(rng.Start, rng.End)
	}
	return p.err
}
