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

// Package uprops defines the Unicode property identifiers and property
// value enumerations used by unicore: General_Category and its groups,
// Script, Canonical_Combining_Class and normalization quick-check results.
//
// Conversions from raw discriminants (the values stored in a
// CodePointMap) are total: unknown values produce an InvalidArgument error
// rather than an out-of-range enum.
package uprops

import (
	"fmt"

	"unicore.io/unicore/go/uerrors"
)

// QuickCheck is the answer of a normalization quick check.
type QuickCheck uint8

const (
	// No means the text is definitely not in the form.
	No QuickCheck = iota
	// Yes means the text is definitely in the form.
	Yes
	// Maybe means the answer depends on the surrounding text. Only
	// composing forms produce it.
	Maybe
)

func (q QuickCheck) String() string {
	switch q {
	case No:
		return "No"
	case Yes:
		return "Yes"
	case Maybe:
		return "Maybe"
	}
	return fmt.Sprintf("QuickCheck(%d)", uint8(q))
}

// EnumeratedProperty identifies a property whose values are an enumeration.
type EnumeratedProperty uint16

const (
	PropCanonicalCombiningClass EnumeratedProperty = 0x1002
	PropGeneralCategory         EnumeratedProperty = 0x1005
	PropScript                  EnumeratedProperty = 0x100A
)

var enumeratedNames = map[EnumeratedProperty]struct{ short, long string }{
	PropCanonicalCombiningClass: {"ccc", "Canonical_Combining_Class"},
	PropGeneralCategory:         {"gc", "General_Category"},
	PropScript:                  {"sc", "Script"},
}

// EnumeratedProperties lists the supported enumerated properties.
func EnumeratedProperties() []EnumeratedProperty {
	return []EnumeratedProperty{PropCanonicalCombiningClass, PropGeneralCategory, PropScript}
}

// ParseEnumeratedProperty accepts a short (gc) or long (General_Category)
// property alias.
func ParseEnumeratedProperty(name string) (EnumeratedProperty, error) {
	key := looseName(name)
	for p, n := range enumeratedNames {
		if looseName(n.short) == key || looseName(n.long) == key {
			return p, nil
		}
	}
	return 0, uerrors.Errorf(uerrors.InvalidArgument, "unknown enumerated property %q", name)
}

func (p EnumeratedProperty) String() string {
	if n, ok := enumeratedNames[p]; ok {
		return n.long
	}
	return fmt.Sprintf("EnumeratedProperty(0x%X)", uint16(p))
}

// ShortName returns the short property alias, e.g. "gc".
func (p EnumeratedProperty) ShortName() string {
	if n, ok := enumeratedNames[p]; ok {
		return n.short
	}
	return p.String()
}

// BinaryProperty identifies a property whose value is true or false.
type BinaryProperty uint16

const (
	Alphabetic BinaryProperty = iota
	ASCIIHexDigit
	BidiControl
	Dash
	Deprecated
	Diacritic
	Extender
	FullCompositionExclusion
	HexDigit
	Hyphen
	IDSBinaryOperator
	IDSTrinaryOperator
	Ideographic
	JoinControl
	LogicalOrderException
	Lowercase
	NoncharacterCodePoint
	PatternSyntax
	PatternWhiteSpace
	QuotationMark
	Radical
	RegionalIndicator
	SentenceTerminal
	SoftDotted
	TerminalPunctuation
	UnifiedIdeograph
	Uppercase
	VariationSelector
	WhiteSpace

	// Emoji properties, from emoji-data.txt. They are numbered after the
	// PropList properties so that stored identifiers stay stable.
	Emoji
	EmojiPresentation
	EmojiModifier
	EmojiModifierBase
	EmojiComponent
	ExtendedPictographic

	binaryPropertyCount
)

var binaryNames = [binaryPropertyCount]struct{ short, long string }{
	Alphabetic:               {"Alpha", "Alphabetic"},
	ASCIIHexDigit:            {"AHex", "ASCII_Hex_Digit"},
	BidiControl:              {"Bidi_C", "Bidi_Control"},
	Dash:                     {"Dash", "Dash"},
	Deprecated:               {"Dep", "Deprecated"},
	Diacritic:                {"Dia", "Diacritic"},
	Extender:                 {"Ext", "Extender"},
	FullCompositionExclusion: {"Comp_Ex", "Full_Composition_Exclusion"},
	HexDigit:                 {"Hex", "Hex_Digit"},
	Hyphen:                   {"Hyphen", "Hyphen"},
	IDSBinaryOperator:        {"IDSB", "IDS_Binary_Operator"},
	IDSTrinaryOperator:       {"IDST", "IDS_Trinary_Operator"},
	Ideographic:              {"Ideo", "Ideographic"},
	JoinControl:              {"Join_C", "Join_Control"},
	LogicalOrderException:    {"LOE", "Logical_Order_Exception"},
	Lowercase:                {"Lower", "Lowercase"},
	NoncharacterCodePoint:    {"NChar", "Noncharacter_Code_Point"},
	PatternSyntax:            {"Pat_Syn", "Pattern_Syntax"},
	PatternWhiteSpace:        {"Pat_WS", "Pattern_White_Space"},
	QuotationMark:            {"QMark", "Quotation_Mark"},
	Radical:                  {"Radical", "Radical"},
	RegionalIndicator:        {"RI", "Regional_Indicator"},
	SentenceTerminal:         {"STerm", "Sentence_Terminal"},
	SoftDotted:               {"SD", "Soft_Dotted"},
	TerminalPunctuation:      {"Term", "Terminal_Punctuation"},
	UnifiedIdeograph:         {"UIdeo", "Unified_Ideograph"},
	Uppercase:                {"Upper", "Uppercase"},
	VariationSelector:        {"VS", "Variation_Selector"},
	WhiteSpace:               {"WSpace", "White_Space"},
	Emoji:                    {"Emoji", "Emoji"},
	EmojiPresentation:        {"EPres", "Emoji_Presentation"},
	EmojiModifier:            {"EMod", "Emoji_Modifier"},
	EmojiModifierBase:        {"EBase", "Emoji_Modifier_Base"},
	EmojiComponent:           {"EComp", "Emoji_Component"},
	ExtendedPictographic:     {"ExtPict", "Extended_Pictographic"},
}

// IsEmoji reports whether p is one of the emoji-data.txt properties.
func (p BinaryProperty) IsEmoji() bool {
	return p >= Emoji && p < binaryPropertyCount
}

// BinaryProperties lists the supported binary properties.
func BinaryProperties() []BinaryProperty {
	out := make([]BinaryProperty, binaryPropertyCount)
	for i := range out {
		out[i] = BinaryProperty(i)
	}
	return out
}

// ParseBinaryProperty accepts a short (WSpace) or long (White_Space) alias.
func ParseBinaryProperty(name string) (BinaryProperty, error) {
	key := looseName(name)
	for p, n := range binaryNames {
		if looseName(n.short) == key || looseName(n.long) == key {
			return BinaryProperty(p), nil
		}
	}
	return 0, uerrors.Errorf(uerrors.InvalidArgument, "unknown binary property %q", name)
}

func (p BinaryProperty) String() string {
	if p < binaryPropertyCount {
		return binaryNames[p].long
	}
	return fmt.Sprintf("BinaryProperty(%d)", uint16(p))
}

// ShortName returns the short property alias, e.g. "WSpace".
func (p BinaryProperty) ShortName() string {
	if p < binaryPropertyCount {
		return binaryNames[p].short
	}
	return p.String()
}
