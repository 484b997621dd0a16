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
	"context"
	"io"
	"strconv"
	"strings"

	"unicore.io/unicore/go/unicode/provider/source"
	"unicore.io/unicore/go/unicode/uset"
)

// FileNormalizationTest is the normalization conformance file. Providers do
// not need it; ReadNormalizationTest reads it to verify an engine.
const FileNormalizationTest = "NormalizationTest.txt"

// NormalizationCase is one line of NormalizationTest.txt: a source string
// and its NFC, NFD, NFKC and NFKD forms.
type NormalizationCase struct {
	Part int
	Line int

	Source, NFC, NFD, NFKC, NFKD string
}

// NormalizationTest is a parsed NormalizationTest.txt.
type NormalizationTest struct {
	Version string
	Cases   []NormalizationCase
	// Listed holds the code points that are the whole source of a part 1
	// case. Every other code point is left unchanged by all four forms.
	Listed *uset.Set
}

// ReadNormalizationTest reads and parses NormalizationTest.txt from src.
func ReadNormalizationTest(ctx context.Context, src source.Source) (*NormalizationTest, error) {
	var nt *NormalizationTest
	err := readFile(ctx, src, FileNormalizationTest, func(r io.Reader) (err error) {
		nt, err = parseNormalizationTest(r)
		return err
	})
	return nt, err
}

func parseNormalizationTest(r io.Reader) (*NormalizationTest, error) {
	var (
		nt     = &NormalizationTest{}
		listed = uset.NewBuilder()
		part   = -1
	)
	p := newParser(FileNormalizationTest, r)
	for p.parse() {
		if p.fields == nil {
			continue
		}
		if n, ok := strings.CutPrefix(p.fields[0], "@Part"); ok {
			v, err := strconv.Atoi(n)
			if err != nil {
				return nil, p.errorf("invalid part header %q", p.fields[0])
			}
			part = v
			continue
		}
		if err := p.want(5); err != nil {
			return nil, err
		}
		var cols [5]string
		for i := range cols {
			cps, err := p.codePoints(p.fields[i])
			if err != nil {
				return nil, err
			}
			if len(cps) == 0 {
				return nil, p.errorf("empty column %d", i+1)
			}
			cols[i] = string(cps)
		}
		if part == 1 {
			if cps := []rune(cols[0]); len(cps) == 1 {
				_ = listed.AddRune(cps[0])
			}
		}
		nt.Cases = append(nt.Cases, NormalizationCase{
			Part:   part,
			Line:   p.line,
			Source: cols[0],
			NFC:    cols[1],
			NFD:    cols[2],
			NFKC:   cols[3],
			NFKD:   cols[4],
		})
	}
	if p.err != nil {
		return nil, p.err
	}
	nt.Version = p.version
	nt.Listed = listed.Build()
	return nt, nil
}
