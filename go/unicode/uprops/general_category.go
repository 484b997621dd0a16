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
	"fmt"
	"strings"

	"unicore.io/unicore/go/uerrors"
)

// GeneralCategory is the General_Category of a code point. The numeric values
// are stable and used in serialized data; they do not follow the order of
// the UCD.
type GeneralCategory uint8

const (
	Unassigned           GeneralCategory = 0
	UppercaseLetter      GeneralCategory = 1
	LowercaseLetter      GeneralCategory = 2
	TitlecaseLetter      GeneralCategory = 3
	ModifierLetter       GeneralCategory = 4
	OtherLetter          GeneralCategory = 5
	NonspacingMark       GeneralCategory = 6
	EnclosingMark        GeneralCategory = 7
	SpacingMark          GeneralCategory = 8
	DecimalNumber        GeneralCategory = 9
	LetterNumber         GeneralCategory = 10
	OtherNumber          GeneralCategory = 11
	SpaceSeparator       GeneralCategory = 12
	LineSeparator        GeneralCategory = 13
	ParagraphSeparator   GeneralCategory = 14
	Control              GeneralCategory = 15
	Format               GeneralCategory = 16
	PrivateUse           GeneralCategory = 17
	Surrogate            GeneralCategory = 18
	DashPunctuation      GeneralCategory = 19
	OpenPunctuation      GeneralCategory = 20
	ClosePunctuation     GeneralCategory = 21
	ConnectorPunctuation GeneralCategory = 22
	OtherPunctuation     GeneralCategory = 23
	MathSymbol           GeneralCategory = 24
	CurrencySymbol       GeneralCategory = 25
	ModifierSymbol       GeneralCategory = 26
	OtherSymbol          GeneralCategory = 27
	InitialPunctuation   GeneralCategory = 28
	FinalPunctuation     GeneralCategory = 29

	generalCategoryCount = 30
)

var generalCategoryNames = [generalCategoryCount]struct{ short, long string }{
	Unassigned:           {"Cn", "Unassigned"},
	UppercaseLetter:      {"Lu", "Uppercase_Letter"},
	LowercaseLetter:      {"Ll", "Lowercase_Letter"},
	TitlecaseLetter:      {"Lt", "Titlecase_Letter"},
	ModifierLetter:       {"Lm", "Modifier_Letter"},
	OtherLetter:          {"Lo", "Other_Letter"},
	NonspacingMark:       {"Mn", "Nonspacing_Mark"},
	EnclosingMark:        {"Me", "Enclosing_Mark"},
	SpacingMark:          {"Mc", "Spacing_Mark"},
	DecimalNumber:        {"Nd", "Decimal_Number"},
	LetterNumber:         {"Nl", "Letter_Number"},
	OtherNumber:          {"No", "Other_Number"},
	SpaceSeparator:       {"Zs", "Space_Separator"},
	LineSeparator:        {"Zl", "Line_Separator"},
	ParagraphSeparator:   {"Zp", "Paragraph_Separator"},
	Control:              {"Cc", "Control"},
	Format:               {"Cf", "Format"},
	PrivateUse:           {"Co", "Private_Use"},
	Surrogate:            {"Cs", "Surrogate"},
	DashPunctuation:      {"Pd", "Dash_Punctuation"},
	OpenPunctuation:      {"Ps", "Open_Punctuation"},
	ClosePunctuation:     {"Pe", "Close_Punctuation"},
	ConnectorPunctuation: {"Pc", "Connector_Punctuation"},
	OtherPunctuation:     {"Po", "Other_Punctuation"},
	MathSymbol:           {"Sm", "Math_Symbol"},
	CurrencySymbol:       {"Sc", "Currency_Symbol"},
	ModifierSymbol:       {"Sk", "Modifier_Symbol"},
	OtherSymbol:          {"So", "Other_Symbol"},
	InitialPunctuation:   {"Pi", "Initial_Punctuation"},
	FinalPunctuation:     {"Pf", "Final_Punctuation"},
}

// GeneralCategoryFromValue converts a raw discriminant, as stored in a
// CodePointMap, to a GeneralCategory.
func GeneralCategoryFromValue(v uint32) (GeneralCategory, error) {
	if v >= generalCategoryCount {
		return 0, uerrors.Errorf(uerrors.InvalidArgument, "unknown General_Category value %d", v)
	}
	return GeneralCategory(v), nil
}

// ParseGeneralCategory accepts a short (Lu) or long (Uppercase_Letter) value
// alias. Matching ignores case, spaces, hyphens and underscores.
func ParseGeneralCategory(name string) (GeneralCategory, error) {
	key := looseName(name)
	for gc, names := range generalCategoryNames {
		if looseName(names.short) == key || looseName(names.long) == key {
			return GeneralCategory(gc), nil
		}
	}
	return 0, uerrors.Errorf(uerrors.InvalidArgument, "unknown General_Category %q", name)
}

// ShortName returns the two-letter alias, e.g. "Lu".
func (gc GeneralCategory) ShortName() string {
	if int(gc) < len(generalCategoryNames) {
		return generalCategoryNames[gc].short
	}
	return fmt.Sprintf("gc%d", uint8(gc))
}

func (gc GeneralCategory) String() string {
	if int(gc) < len(generalCategoryNames) {
		return generalCategoryNames[gc].long
	}
	return fmt.Sprintf("GeneralCategory(%d)", uint8(gc))
}

// GeneralCategoryGroup is a set of general categories, one bit per
// GeneralCategory value.
type GeneralCategoryGroup uint32

const (
	GroupCasedLetter = GeneralCategoryGroup(1<<UppercaseLetter | 1<<LowercaseLetter | 1<<TitlecaseLetter)
	GroupLetter      = GroupCasedLetter | GeneralCategoryGroup(1<<ModifierLetter|1<<OtherLetter)
	GroupMark        = GeneralCategoryGroup(1<<NonspacingMark | 1<<EnclosingMark | 1<<SpacingMark)
	GroupNumber      = GeneralCategoryGroup(1<<DecimalNumber | 1<<LetterNumber | 1<<OtherNumber)
	GroupSeparator   = GeneralCategoryGroup(1<<SpaceSeparator | 1<<LineSeparator | 1<<ParagraphSeparator)
	GroupOther       = GeneralCategoryGroup(1<<Control | 1<<Format | 1<<PrivateUse | 1<<Surrogate | 1<<Unassigned)
	GroupPunctuation = GeneralCategoryGroup(1<<DashPunctuation | 1<<OpenPunctuation | 1<<ClosePunctuation |
		1<<ConnectorPunctuation | 1<<OtherPunctuation | 1<<InitialPunctuation | 1<<FinalPunctuation)
	GroupSymbol = GeneralCategoryGroup(1<<MathSymbol | 1<<CurrencySymbol | 1<<ModifierSymbol | 1<<OtherSymbol)
	GroupAll    = GeneralCategoryGroup(1<<generalCategoryCount - 1)
)

var groupNames = []struct {
	short, long string
	group       GeneralCategoryGroup
}{
	{"LC", "Cased_Letter", GroupCasedLetter},
	{"L", "Letter", GroupLetter},
	{"M", "Mark", GroupMark},
	{"N", "Number", GroupNumber},
	{"Z", "Separator", GroupSeparator},
	{"C", "Other", GroupOther},
	{"P", "Punctuation", GroupPunctuation},
	{"S", "Symbol", GroupSymbol},
}

// Group returns the single-category group for gc.
func (gc GeneralCategory) Group() GeneralCategoryGroup {
	return GeneralCategoryGroup(1) << gc
}

// Contains reports whether gc belongs to the group.
func (g GeneralCategoryGroup) Contains(gc GeneralCategory) bool {
	return gc < generalCategoryCount && g&gc.Group() != 0
}

// Union returns the group holding the categories of both g and other.
func (g GeneralCategoryGroup) Union(other GeneralCategoryGroup) GeneralCategoryGroup {
	return g | other
}

// Categories lists the members of the group in value order.
func (g GeneralCategoryGroup) Categories() []GeneralCategory {
	var out []GeneralCategory
	for gc := GeneralCategory(0); gc < generalCategoryCount; gc++ {
		if g.Contains(gc) {
			out = append(out, gc)
		}
	}
	return out
}

func (g GeneralCategoryGroup) String() string {
	for _, n := range groupNames {
		if n.group == g {
			return n.long
		}
	}
	members := g.Categories()
	if len(members) == 1 {
		return members[0].String()
	}
	names := make([]string, len(members))
	for i, gc := range members {
		names[i] = gc.ShortName()
	}
	return strings.Join(names, "|")
}

// ParseGeneralCategoryGroup accepts a group alias (L, Letter, LC, ...) or any
// single General_Category alias.
func ParseGeneralCategoryGroup(name string) (GeneralCategoryGroup, error) {
	key := looseName(name)
	for _, n := range groupNames {
		if looseName(n.short) == key || looseName(n.long) == key {
			return n.group, nil
		}
	}
	gc, err := ParseGeneralCategory(name)
	if err != nil {
		return 0, uerrors.Errorf(uerrors.InvalidArgument, "unknown General_Category group %q", name)
	}
	return gc.Group(), nil
}

// looseName applies UAX44-LM3 loose matching.
func looseName(s string) string {
	var sb strings.Builder
	for _, c := range s {
		switch c {
		case ' ', '-', '_':
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		sb.WriteRune(c)
	}
	return strings.TrimPrefix(sb.String(), "is")
}
