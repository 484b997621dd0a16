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

package uprops

import (
	"strconv"
	"strings"

	"unicore.io/unicore/go/uerrors"
)

// CanonicalCombiningClass is the Canonical_Combining_Class of a code point.
// Every value 0..255 is valid; the named constants cover the values that
// have aliases in the UCD.
type CanonicalCombiningClass uint8

const (
	NotReordered       CanonicalCombiningClass = 0
	Overlay            CanonicalCombiningClass = 1
	HanReading         CanonicalCombiningClass = 6
	Nukta              CanonicalCombiningClass = 7
	KanaVoicing        CanonicalCombiningClass = 8
	Virama             CanonicalCombiningClass = 9
	CCC10              CanonicalCombiningClass = 10
	CCC11              CanonicalCombiningClass = 11
	CCC12              CanonicalCombiningClass = 12
	CCC13              CanonicalCombiningClass = 13
	CCC14              CanonicalCombiningClass = 14
	CCC15              CanonicalCombiningClass = 15
	CCC16              CanonicalCombiningClass = 16
	CCC17              CanonicalCombiningClass = 17
	CCC18              CanonicalCombiningClass = 18
	CCC19              CanonicalCombiningClass = 19
	CCC20              CanonicalCombiningClass = 20
	CCC21              CanonicalCombiningClass = 21
	CCC22              CanonicalCombiningClass = 22
	CCC23              CanonicalCombiningClass = 23
	CCC24              CanonicalCombiningClass = 24
	CCC25              CanonicalCombiningClass = 25
	CCC26              CanonicalCombiningClass = 26
	CCC27              CanonicalCombiningClass = 27
	CCC28              CanonicalCombiningClass = 28
	CCC29              CanonicalCombiningClass = 29
	CCC30              CanonicalCombiningClass = 30
	CCC31              CanonicalCombiningClass = 31
	CCC32              CanonicalCombiningClass = 32
	CCC33              CanonicalCombiningClass = 33
	CCC34              CanonicalCombiningClass = 34
	CCC35              CanonicalCombiningClass = 35
	CCC36              CanonicalCombiningClass = 36
	CCC84              CanonicalCombiningClass = 84
	CCC91              CanonicalCombiningClass = 91
	CCC103             CanonicalCombiningClass = 103
	CCC107             CanonicalCombiningClass = 107
	CCC118             CanonicalCombiningClass = 118
	CCC122             CanonicalCombiningClass = 122
	CCC129             CanonicalCombiningClass = 129
	CCC130             CanonicalCombiningClass = 130
	CCC132             CanonicalCombiningClass = 132
	CCC133             CanonicalCombiningClass = 133
	AttachedBelowLeft  CanonicalCombiningClass = 200
	AttachedBelow      CanonicalCombiningClass = 202
	AttachedAbove      CanonicalCombiningClass = 214
	AttachedAboveRight CanonicalCombiningClass = 216
	BelowLeft          CanonicalCombiningClass = 218
	Below              CanonicalCombiningClass = 220
	BelowRight         CanonicalCombiningClass = 222
	Left               CanonicalCombiningClass = 224
	Right              CanonicalCombiningClass = 226
	AboveLeft          CanonicalCombiningClass = 228
	Above              CanonicalCombiningClass = 230
	AboveRight         CanonicalCombiningClass = 232
	DoubleBelow        CanonicalCombiningClass = 233
	DoubleAbove        CanonicalCombiningClass = 234
	IotaSubscript      CanonicalCombiningClass = 240
)

const maxCombiningClassVal = 255

var cccNames = map[CanonicalCombiningClass]struct{ short, long string }{
	NotReordered:       {"NR", "Not_Reordered"},
	Overlay:            {"OV", "Overlay"},
	HanReading:         {"HANR", "Han_Reading"},
	Nukta:              {"NK", "Nukta"},
	KanaVoicing:        {"KV", "Kana_Voicing"},
	Virama:             {"VR", "Virama"},
	AttachedBelowLeft:  {"ATBL", "Attached_Below_Left"},
	AttachedBelow:      {"ATB", "Attached_Below"},
	AttachedAbove:      {"ATA", "Attached_Above"},
	AttachedAboveRight: {"ATAR", "Attached_Above_Right"},
	BelowLeft:          {"BL", "Below_Left"},
	Below:              {"B", "Below"},
	BelowRight:         {"BR", "Below_Right"},
	Left:               {"L", "Left"},
	Right:              {"R", "Right"},
	AboveLeft:          {"AL", "Above_Left"},
	Above:              {"A", "Above"},
	AboveRight:         {"AR", "Above_Right"},
	DoubleBelow:        {"DB", "Double_Below"},
	DoubleAbove:        {"DA", "Double_Above"},
	IotaSubscript:      {"IS", "Iota_Subscript"},
}

// CanonicalCombiningClassFromValue converts a raw discriminant. Values above
// 255 are rejected.
func CanonicalCombiningClassFromValue(v uint32) (CanonicalCombiningClass, error) {
	if v > maxCombiningClassVal {
		return 0, uerrors.Errorf(uerrors.InvalidArgument, "Canonical_Combining_Class value %d out of range", v)
	}
	return CanonicalCombiningClass(v), nil
}

// ParseCanonicalCombiningClass accepts a number (230), a short alias (A) or a
// long alias (Above). Numeric classes without alias (10..36 and so on) are
// spelled as numbers or CCC<n>.
func ParseCanonicalCombiningClass(name string) (CanonicalCombiningClass, error) {
	if n, err := strconv.ParseUint(name, 10, 8); err == nil {
		return CanonicalCombiningClassFromValue(uint32(n))
	}
	key := looseName(name)
	if rest, ok := strings.CutPrefix(key, "ccc"); ok {
		if n, err := strconv.ParseUint(rest, 10, 8); err == nil {
			return CanonicalCombiningClassFromValue(uint32(n))
		}
	}
	for ccc, n := range cccNames {
		if looseName(n.short) == key || looseName(n.long) == key {
			return ccc, nil
		}
	}
	return 0, uerrors.Errorf(uerrors.InvalidArgument, "unknown Canonical_Combining_Class %q", name)
}

// IsStarter reports whether the class is zero.
func (c CanonicalCombiningClass) IsStarter() bool { return c == NotReordered }

// ShortName returns the UCD short alias, or the number for classes that
// have none.
func (c CanonicalCombiningClass) ShortName() string {
	if n, ok := cccNames[c]; ok {
		return n.short
	}
	return strconv.Itoa(int(c))
}

func (c CanonicalCombiningClass) String() string {
	if n, ok := cccNames[c]; ok {
		return n.long
	}
	return "CCC" + strconv.Itoa(int(c))
}
