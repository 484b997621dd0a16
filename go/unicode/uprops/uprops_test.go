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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unicore.io/unicore/go/uerrors"
)

func TestGeneralCategoryFromValue(t *testing.T) {
	gc, err := GeneralCategoryFromValue(8)
	require.NoError(t, err)
	assert.Equal(t, SpacingMark, gc)

	gc, err = GeneralCategoryFromValue(29)
	require.NoError(t, err)
	assert.Equal(t, FinalPunctuation, gc)

	_, err = GeneralCategoryFromValue(30)
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
}

func TestParseGeneralCategory(t *testing.T) {
	tcases := map[string]GeneralCategory{
		"Lu":               UppercaseLetter,
		"uppercase letter": UppercaseLetter,
		"Uppercase_Letter": UppercaseLetter,
		"Cn":               Unassigned,
		"Pi":               InitialPunctuation,
		"mc":               SpacingMark,
	}
	for name, want := range tcases {
		got, err := ParseGeneralCategory(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseGeneralCategory("Lx")
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
}

func TestGeneralCategoryGroups(t *testing.T) {
	for _, gc := range []GeneralCategory{UppercaseLetter, LowercaseLetter, TitlecaseLetter, ModifierLetter, OtherLetter} {
		assert.True(t, GroupLetter.Contains(gc), gc.String())
	}
	assert.False(t, GroupCasedLetter.Contains(ModifierLetter))
	assert.True(t, GroupPunctuation.Contains(InitialPunctuation))
	assert.True(t, GroupPunctuation.Contains(FinalPunctuation))
	assert.False(t, GroupPunctuation.Contains(MathSymbol))
	assert.True(t, GroupOther.Contains(Unassigned))
	assert.False(t, GroupMark.Contains(GeneralCategory(31)))

	all := GroupLetter | GroupMark | GroupNumber | GroupSeparator | GroupOther | GroupPunctuation | GroupSymbol
	assert.Equal(t, GroupAll, all)
	assert.Len(t, GroupAll.Categories(), 30)

	assert.Equal(t, "Letter", GroupLetter.String())
	assert.Equal(t, "Uppercase_Letter", UppercaseLetter.Group().String())
	assert.Equal(t, "Lu|Nd", (UppercaseLetter.Group() | DecimalNumber.Group()).String())

	g, err := ParseGeneralCategoryGroup("LC")
	require.NoError(t, err)
	assert.Equal(t, GroupCasedLetter, g)
	g, err = ParseGeneralCategoryGroup("Nd")
	require.NoError(t, err)
	assert.Equal(t, DecimalNumber.Group(), g)
	_, err = ParseGeneralCategoryGroup("Q")
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
}

func TestScript(t *testing.T) {
	assert.Equal(t, Script(25), ScriptLatin)
	assert.Equal(t, "Latin", ScriptLatin.String())
	assert.Equal(t, "Latn", ScriptLatin.ShortName())

	for _, name := range []string{"Latn", "latin", "LATIN"} {
		sc, err := ParseScript(name)
		require.NoError(t, err)
		assert.Equal(t, ScriptLatin, sc)
	}
	sc, err := ParseScript("Old_Italic")
	require.NoError(t, err)
	assert.Equal(t, ScriptOldItalic, sc)
	sc, err = ParseScript("Qaai")
	require.NoError(t, err)
	assert.Equal(t, ScriptInherited, sc)

	sc, err = ScriptFromValue(103)
	require.NoError(t, err)
	assert.Equal(t, ScriptUnknown, sc)
	_, err = ScriptFromValue(102)
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
	_, err = ScriptFromValue(1 << 20)
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)

	assert.Equal(t, "Script(102)", Script(102).String())
	assert.Len(t, Scripts(), len(scriptNames))
}

func TestCanonicalCombiningClass(t *testing.T) {
	ccc, err := CanonicalCombiningClassFromValue(230)
	require.NoError(t, err)
	assert.Equal(t, Above, ccc)
	assert.Equal(t, "Above", ccc.String())
	assert.Equal(t, "A", ccc.ShortName())
	assert.True(t, NotReordered.IsStarter())
	assert.False(t, Above.IsStarter())

	ccc, err = CanonicalCombiningClassFromValue(255)
	require.NoError(t, err)
	assert.Equal(t, CanonicalCombiningClass(255), ccc)
	_, err = CanonicalCombiningClassFromValue(256)
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)

	for name, want := range map[string]CanonicalCombiningClass{
		"230":            Above,
		"A":              Above,
		"Iota_Subscript": IotaSubscript,
		"ccc84":          CCC84,
		"0":              NotReordered,
	} {
		got, err := ParseCanonicalCombiningClass(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	assert.Equal(t, "CCC84", CCC84.String())
	assert.Equal(t, "84", CCC84.ShortName())
}

func TestProperties(t *testing.T) {
	p, err := ParseEnumeratedProperty("gc")
	require.NoError(t, err)
	assert.Equal(t, PropGeneralCategory, p)
	assert.Equal(t, EnumeratedProperty(0x1005), p)
	assert.Equal(t, "General_Category", p.String())

	b, err := ParseBinaryProperty("WSpace")
	require.NoError(t, err)
	assert.Equal(t, WhiteSpace, b)
	b, err = ParseBinaryProperty("full composition exclusion")
	require.NoError(t, err)
	assert.Equal(t, FullCompositionExclusion, b)
	assert.Equal(t, "Comp_Ex", b.ShortName())

	b, err = ParseBinaryProperty("ExtPict")
	require.NoError(t, err)
	assert.Equal(t, ExtendedPictographic, b)
	assert.Equal(t, "Extended_Pictographic", b.String())
	assert.True(t, b.IsEmoji())
	assert.True(t, Emoji.IsEmoji())
	assert.False(t, WhiteSpace.IsEmoji())

	_, err = ParseBinaryProperty("Emoji_Zwj")
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
	assert.Len(t, BinaryProperties(), int(binaryPropertyCount))

	assert.Equal(t, "Maybe", Maybe.String())
}
