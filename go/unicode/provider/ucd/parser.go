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
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/uset"
)

const missingPrefix = "@missing:"

var versionHeader = regexp.MustCompile(`^#\s*[A-Za-z]+-(\d+\.\d+\.\d+)\.txt`)

// fields is one semicolon separated record.
type fields []string

// parser splits a UCD data file into records, following the format
// conventions of UAX #44: fields are separated by ';', '#' starts a
// comment, and "# @missing:" comments carry default values.
type parser struct {
	file    string
	scanner *bufio.Scanner
	line    int

	// fields of the current record, or nil if the line was an @missing
	// comment.
	fields fields
	// missing holds the fields of an @missing comment.
	missing fields
	// version is taken from a "# Name-X.Y.Z.txt" header if present.
	version string
	err     error
}

func newParser(file string, r io.Reader) *parser {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &parser{file: file, scanner: s}
}

func (p *parser) parse() bool {
	for p.scanner.Scan() {
		p.line++
		text := p.scanner.Text()
		if p.line == 1 {
			if m := versionHeader.FindStringSubmatch(text); m != nil {
				p.version = m[1]
			}
		}

		data, comment, _ := strings.Cut(text, "#")
		p.fields, p.missing = nil, nil
		if data = strings.TrimSpace(data); data != "" {
			p.fields = splitFields(data)
		}
		if rest, ok := strings.CutPrefix(strings.TrimSpace(comment), missingPrefix); ok {
			p.missing = splitFields(rest)
		}
		if p.fields != nil || p.missing != nil {
			return true
		}
	}
	if err := p.scanner.Err(); err != nil {
		p.err = uerrors.Wrapf(uerrors.WithCode(err, uerrors.DataError), "reading %s", p.file)
	}
	return false
}

func splitFields(src string) fields {
	parts := strings.Split(src, ";")
	for i, f := range parts {
		parts[i] = strings.TrimSpace(f)
	}
	return parts
}

// errorf reports a malformed record at the current line.
func (p *parser) errorf(format string, args ...any) error {
	return uerrors.Errorf(uerrors.DataError, "%s:%d: "+format, append([]any{p.file, p.line}, args...)...)
}

// want fails unless the current record has at least n fields.
func (p *parser) want(n int) error {
	if len(p.fields) < n {
		return p.errorf("expected at least %d fields, got %d", n, len(p.fields))
	}
	return nil
}

// codePointRange parses "0041" or "0041..005A".
func (p *parser) codePointRange(src string) (uset.Range, error) {
	lo, hi, isRange := strings.Cut(src, "..")
	from, err := p.codePoint(lo)
	if err != nil {
		return uset.Range{}, err
	}
	to := from
	if isRange {
		if to, err = p.codePoint(hi); err != nil {
			return uset.Range{}, err
		}
	}
	if from > to {
		return uset.Range{}, p.errorf("inverted range %s", src)
	}
	return uset.Range{Start: from, End: to}, nil
}

func (p *parser) codePoint(src string) (rune, error) {
	v, err := strconv.ParseUint(src, 16, 32)
	if err != nil || v > uint64(uset.MaxRune) {
		return 0, p.errorf("invalid code point %q", src)
	}
	return rune(v), nil
}

// codePoints parses a space separated code point sequence.
func (p *parser) codePoints(src string) ([]rune, error) {
	words := strings.Fields(src)
	out := make([]rune, 0, len(words))
	for _, w := range words {
		c, err := p.codePoint(w)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
