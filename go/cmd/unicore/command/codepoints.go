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

package command

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/uset"
)

// parseCodePoints turns command arguments into code points. An argument of
// the form U+XXXX or 0xXXXX names one code point; anything else stands for
// the characters it contains.
func parseCodePoints(args []string) ([]rune, error) {
	var out []rune
	for _, arg := range args {
		hex, ok := strings.CutPrefix(strings.ToUpper(arg), "U+")
		if !ok {
			hex, ok = strings.CutPrefix(strings.ToLower(arg), "0x")
		}
		if !ok || hex == "" {
			if !utf8.ValidString(arg) {
				return nil, uerrors.Errorf(uerrors.InvalidArgument, "argument %q is not valid UTF-8", arg)
			}
			out = append(out, []rune(arg)...)
			continue
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || v > uint64(uset.MaxRune) {
			return nil, uerrors.Errorf(uerrors.InvalidArgument, "invalid code point %q", arg)
		}
		out = append(out, rune(v))
	}
	if len(out) == 0 {
		return nil, uerrors.New(uerrors.InvalidArgument, "no code points given")
	}
	return out, nil
}

// codePointLabel renders r as "U+XXXX" followed by the character when it
// is printable on its own.
func codePointLabel(r rune) string {
	if r < 0x20 || (r >= 0x7F && r < 0xA0) || (r >= 0xD800 && r <= 0xDFFF) {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("U+%04X %c", r, r)
}
