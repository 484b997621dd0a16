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

	"unicore.io/unicore/go/uerrors"
)

// Script is the Script property of a code point, numbered like ICU's
// UScriptCode.
type Script uint16

const (
	ScriptAdlam                 Script = 167
	ScriptAhom                  Script = 161
	ScriptAnatolianHieroglyphs  Script = 156
	ScriptArabic                Script = 2
	ScriptArmenian              Script = 3
	ScriptAvestan               Script = 117
	ScriptBalinese              Script = 62
	ScriptBamum                 Script = 130
	ScriptBassaVah              Script = 134
	ScriptBatak                 Script = 63
	ScriptBengali               Script = 4
	ScriptBhaiksuki             Script = 168
	ScriptBopomofo              Script = 5
	ScriptBrahmi                Script = 65
	ScriptBraille               Script = 46
	ScriptBuginese              Script = 55
	ScriptBuhid                 Script = 44
	ScriptCanadianAboriginal    Script = 40
	ScriptCarian                Script = 104
	ScriptCaucasianAlbanian     Script = 159
	ScriptChakma                Script = 118
	ScriptCham                  Script = 66
	ScriptCherokee              Script = 6
	ScriptChorasmian            Script = 189
	ScriptCommon                Script = 0
	ScriptCoptic                Script = 7
	ScriptCuneiform             Script = 101
	ScriptCypriot               Script = 47
	ScriptCyproMinoan           Script = 193
	ScriptCyrillic              Script = 8
	ScriptDeseret               Script = 9
	ScriptDevanagari            Script = 10
	ScriptDivesAkuru            Script = 190
	ScriptDogra                 Script = 178
	ScriptDuployan              Script = 135
	ScriptEgyptianHieroglyphs   Script = 71
	ScriptElbasan               Script = 136
	ScriptElymaic               Script = 185
	ScriptEthiopic              Script = 11
	ScriptGeorgian              Script = 12
	ScriptGlagolitic            Script = 56
	ScriptGothic                Script = 13
	ScriptGrantha               Script = 137
	ScriptGreek                 Script = 14
	ScriptGujarati              Script = 15
	ScriptGunjalaGondi          Script = 179
	ScriptGurmukhi              Script = 16
	ScriptHan                   Script = 17
	ScriptHangul                Script = 18
	ScriptHanifiRohingya        Script = 182
	ScriptHanunoo               Script = 43
	ScriptHatran                Script = 162
	ScriptHebrew                Script = 19
	ScriptHiragana              Script = 20
	ScriptImperialAramaic       Script = 116
	ScriptInherited             Script = 1
	ScriptInscriptionalPahlavi  Script = 122
	ScriptInscriptionalParthian Script = 125
	ScriptJavanese              Script = 78
	ScriptKaithi                Script = 120
	ScriptKannada               Script = 21
	ScriptKatakana              Script = 22
	ScriptKawi                  Script = 198
	ScriptKayahLi               Script = 79
	ScriptKharoshthi            Script = 57
	ScriptKhitanSmallScript     Script = 191
	ScriptKhmer                 Script = 23
	ScriptKhojki                Script = 157
	ScriptKhudawadi             Script = 145
	ScriptLao                   Script = 24
	ScriptLatin                 Script = 25
	ScriptLepcha                Script = 82
	ScriptLimbu                 Script = 48
	ScriptLinearA               Script = 83
	ScriptLinearB               Script = 49
	ScriptLisu                  Script = 131
	ScriptLycian                Script = 107
	ScriptLydian                Script = 108
	ScriptMahajani              Script = 160
	ScriptMakasar               Script = 180
	ScriptMalayalam             Script = 26
	ScriptMandaic               Script = 84
	ScriptManichaean            Script = 121
	ScriptMarchen               Script = 169
	ScriptMasaramGondi          Script = 175
	ScriptMedefaidrin           Script = 181
	ScriptMeeteiMayek           Script = 115
	ScriptMendeKikakui          Script = 140
	ScriptMeroiticCursive       Script = 141
	ScriptMeroiticHieroglyphs   Script = 86
	ScriptMiao                  Script = 92
	ScriptModi                  Script = 163
	ScriptMongolian             Script = 27
	ScriptMro                   Script = 149
	ScriptMultani               Script = 164
	ScriptMyanmar               Script = 28
	ScriptNabataean             Script = 143
	ScriptNagMundari            Script = 199
	ScriptNandinagari           Script = 187
	ScriptNewTaiLue             Script = 59
	ScriptNewa                  Script = 170
	ScriptNko                   Script = 87
	ScriptNushu                 Script = 150
	ScriptNyiakengPuachueHmong  Script = 186
	ScriptOgham                 Script = 29
	ScriptOlChiki               Script = 109
	ScriptOldHungarian          Script = 76
	ScriptOldItalic             Script = 30
	ScriptOldNorthArabian       Script = 142
	ScriptOldPermic             Script = 89
	ScriptOldPersian            Script = 61
	ScriptOldSogdian            Script = 184
	ScriptOldSouthArabian       Script = 133
	ScriptOldTurkic             Script = 88
	ScriptOldUyghur             Script = 194
	ScriptOriya                 Script = 31
	ScriptOsage                 Script = 171
	ScriptOsmanya               Script = 50
	ScriptPahawhHmong           Script = 75
	ScriptPalmyrene             Script = 144
	ScriptPauCinHau             Script = 165
	ScriptPhagsPa               Script = 90
	ScriptPhoenician            Script = 91
	ScriptPsalterPahlavi        Script = 123
	ScriptRejang                Script = 110
	ScriptRunic                 Script = 32
	ScriptSamaritan             Script = 126
	ScriptSaurashtra            Script = 111
	ScriptSharada               Script = 151
	ScriptShavian               Script = 51
	ScriptSiddham               Script = 166
	ScriptSignWriting           Script = 112
	ScriptSinhala               Script = 33
	ScriptSogdian               Script = 183
	ScriptSoraSompeng           Script = 152
	ScriptSoyombo               Script = 176
	ScriptSundanese             Script = 113
	ScriptSylotiNagri           Script = 58
	ScriptSyriac                Script = 34
	ScriptTagalog               Script = 42
	ScriptTagbanwa              Script = 45
	ScriptTaiLe                 Script = 52
	ScriptTaiTham               Script = 106
	ScriptTaiViet               Script = 127
	ScriptTakri                 Script = 153
	ScriptTamil                 Script = 35
	ScriptTangsa                Script = 195
	ScriptTangut                Script = 154
	ScriptTelugu                Script = 36
	ScriptThaana                Script = 37
	ScriptThai                  Script = 38
	ScriptTibetan               Script = 39
	ScriptTifinagh              Script = 60
	ScriptTirhuta               Script = 158
	ScriptToto                  Script = 196
	ScriptUgaritic              Script = 53
	ScriptUnknown               Script = 103
	ScriptVai                   Script = 99
	ScriptVithkuqi              Script = 197
	ScriptWancho                Script = 188
	ScriptWarangCiti            Script = 146
	ScriptYezidi                Script = 192
	ScriptYi                    Script = 41
	ScriptZanabazarSquare       Script = 177
)

type scriptName struct {
	script      Script
	short, long string
}

var scriptNames = []scriptName{
	{ScriptAdlam, "Adlm", "Adlam"},
	{ScriptAhom, "Ahom", "Ahom"},
	{ScriptAnatolianHieroglyphs, "Hluw", "Anatolian_Hieroglyphs"},
	{ScriptArabic, "Arab", "Arabic"},
	{ScriptArmenian, "Armn", "Armenian"},
	{ScriptAvestan, "Avst", "Avestan"},
	{ScriptBalinese, "Bali", "Balinese"},
	{ScriptBamum, "Bamu", "Bamum"},
	{ScriptBassaVah, "Bass", "Bassa_Vah"},
	{ScriptBatak, "Batk", "Batak"},
	{ScriptBengali, "Beng", "Bengali"},
	{ScriptBhaiksuki, "Bhks", "Bhaiksuki"},
	{ScriptBopomofo, "Bopo", "Bopomofo"},
	{ScriptBrahmi, "Brah", "Brahmi"},
	{ScriptBraille, "Brai", "Braille"},
	{ScriptBuginese, "Bugi", "Buginese"},
	{ScriptBuhid, "Buhd", "Buhid"},
	{ScriptCanadianAboriginal, "Cans", "Canadian_Aboriginal"},
	{ScriptCarian, "Cari", "Carian"},
	{ScriptCaucasianAlbanian, "Aghb", "Caucasian_Albanian"},
	{ScriptChakma, "Cakm", "Chakma"},
	{ScriptCham, "Cham", "Cham"},
	{ScriptCherokee, "Cher", "Cherokee"},
	{ScriptChorasmian, "Chrs", "Chorasmian"},
	{ScriptCommon, "Zyyy", "Common"},
	{ScriptCoptic, "Copt", "Coptic"},
	{ScriptCuneiform, "Xsux", "Cuneiform"},
	{ScriptCypriot, "Cprt", "Cypriot"},
	{ScriptCyproMinoan, "Cpmn", "Cypro_Minoan"},
	{ScriptCyrillic, "Cyrl", "Cyrillic"},
	{ScriptDeseret, "Dsrt", "Deseret"},
	{ScriptDevanagari, "Deva", "Devanagari"},
	{ScriptDivesAkuru, "Diak", "Dives_Akuru"},
	{ScriptDogra, "Dogr", "Dogra"},
	{ScriptDuployan, "Dupl", "Duployan"},
	{ScriptEgyptianHieroglyphs, "Egyp", "Egyptian_Hieroglyphs"},
	{ScriptElbasan, "Elba", "Elbasan"},
	{ScriptElymaic, "Elym", "Elymaic"},
	{ScriptEthiopic, "Ethi", "Ethiopic"},
	{ScriptGeorgian, "Geor", "Georgian"},
	{ScriptGlagolitic, "Glag", "Glagolitic"},
	{ScriptGothic, "Goth", "Gothic"},
	{ScriptGrantha, "Gran", "Grantha"},
	{ScriptGreek, "Grek", "Greek"},
	{ScriptGujarati, "Gujr", "Gujarati"},
	{ScriptGunjalaGondi, "Gong", "Gunjala_Gondi"},
	{ScriptGurmukhi, "Guru", "Gurmukhi"},
	{ScriptHan, "Hani", "Han"},
	{ScriptHangul, "Hang", "Hangul"},
	{ScriptHanifiRohingya, "Rohg", "Hanifi_Rohingya"},
	{ScriptHanunoo, "Hano", "Hanunoo"},
	{ScriptHatran, "Hatr", "Hatran"},
	{ScriptHebrew, "Hebr", "Hebrew"},
	{ScriptHiragana, "Hira", "Hiragana"},
	{ScriptImperialAramaic, "Armi", "Imperial_Aramaic"},
	{ScriptInherited, "Zinh", "Inherited"},
	{ScriptInscriptionalPahlavi, "Phli", "Inscriptional_Pahlavi"},
	{ScriptInscriptionalParthian, "Prti", "Inscriptional_Parthian"},
	{ScriptJavanese, "Java", "Javanese"},
	{ScriptKaithi, "Kthi", "Kaithi"},
	{ScriptKannada, "Knda", "Kannada"},
	{ScriptKatakana, "Kana", "Katakana"},
	{ScriptKawi, "Kawi", "Kawi"},
	{ScriptKayahLi, "Kali", "Kayah_Li"},
	{ScriptKharoshthi, "Khar", "Kharoshthi"},
	{ScriptKhitanSmallScript, "Kits", "Khitan_Small_Script"},
	{ScriptKhmer, "Khmr", "Khmer"},
	{ScriptKhojki, "Khoj", "Khojki"},
	{ScriptKhudawadi, "Sind", "Khudawadi"},
	{ScriptLao, "Laoo", "Lao"},
	{ScriptLatin, "Latn", "Latin"},
	{ScriptLepcha, "Lepc", "Lepcha"},
	{ScriptLimbu, "Limb", "Limbu"},
	{ScriptLinearA, "Lina", "Linear_A"},
	{ScriptLinearB, "Linb", "Linear_B"},
	{ScriptLisu, "Lisu", "Lisu"},
	{ScriptLycian, "Lyci", "Lycian"},
	{ScriptLydian, "Lydi", "Lydian"},
	{ScriptMahajani, "Mahj", "Mahajani"},
	{ScriptMakasar, "Maka", "Makasar"},
	{ScriptMalayalam, "Mlym", "Malayalam"},
	{ScriptMandaic, "Mand", "Mandaic"},
	{ScriptManichaean, "Mani", "Manichaean"},
	{ScriptMarchen, "Marc", "Marchen"},
	{ScriptMasaramGondi, "Gonm", "Masaram_Gondi"},
	{ScriptMedefaidrin, "Medf", "Medefaidrin"},
	{ScriptMeeteiMayek, "Mtei", "Meetei_Mayek"},
	{ScriptMendeKikakui, "Mend", "Mende_Kikakui"},
	{ScriptMeroiticCursive, "Merc", "Meroitic_Cursive"},
	{ScriptMeroiticHieroglyphs, "Mero", "Meroitic_Hieroglyphs"},
	{ScriptMiao, "Plrd", "Miao"},
	{ScriptModi, "Modi", "Modi"},
	{ScriptMongolian, "Mong", "Mongolian"},
	{ScriptMro, "Mroo", "Mro"},
	{ScriptMultani, "Mult", "Multani"},
	{ScriptMyanmar, "Mymr", "Myanmar"},
	{ScriptNabataean, "Nbat", "Nabataean"},
	{ScriptNagMundari, "Nagm", "Nag_Mundari"},
	{ScriptNandinagari, "Nand", "Nandinagari"},
	{ScriptNewTaiLue, "Talu", "New_Tai_Lue"},
	{ScriptNewa, "Newa", "Newa"},
	{ScriptNko, "Nkoo", "Nko"},
	{ScriptNushu, "Nshu", "Nushu"},
	{ScriptNyiakengPuachueHmong, "Hmnp", "Nyiakeng_Puachue_Hmong"},
	{ScriptOgham, "Ogam", "Ogham"},
	{ScriptOlChiki, "Olck", "Ol_Chiki"},
	{ScriptOldHungarian, "Hung", "Old_Hungarian"},
	{ScriptOldItalic, "Ital", "Old_Italic"},
	{ScriptOldNorthArabian, "Narb", "Old_North_Arabian"},
	{ScriptOldPermic, "Perm", "Old_Permic"},
	{ScriptOldPersian, "Xpeo", "Old_Persian"},
	{ScriptOldSogdian, "Sogo", "Old_Sogdian"},
	{ScriptOldSouthArabian, "Sarb", "Old_South_Arabian"},
	{ScriptOldTurkic, "Orkh", "Old_Turkic"},
	{ScriptOldUyghur, "Ougr", "Old_Uyghur"},
	{ScriptOriya, "Orya", "Oriya"},
	{ScriptOsage, "Osge", "Osage"},
	{ScriptOsmanya, "Osma", "Osmanya"},
	{ScriptPahawhHmong, "Hmng", "Pahawh_Hmong"},
	{ScriptPalmyrene, "Palm", "Palmyrene"},
	{ScriptPauCinHau, "Pauc", "Pau_Cin_Hau"},
	{ScriptPhagsPa, "Phag", "Phags_Pa"},
	{ScriptPhoenician, "Phnx", "Phoenician"},
	{ScriptPsalterPahlavi, "Phlp", "Psalter_Pahlavi"},
	{ScriptRejang, "Rjng", "Rejang"},
	{ScriptRunic, "Runr", "Runic"},
	{ScriptSamaritan, "Samr", "Samaritan"},
	{ScriptSaurashtra, "Saur", "Saurashtra"},
	{ScriptSharada, "Shrd", "Sharada"},
	{ScriptShavian, "Shaw", "Shavian"},
	{ScriptSiddham, "Sidd", "Siddham"},
	{ScriptSignWriting, "Sgnw", "SignWriting"},
	{ScriptSinhala, "Sinh", "Sinhala"},
	{ScriptSogdian, "Sogd", "Sogdian"},
	{ScriptSoraSompeng, "Sora", "Sora_Sompeng"},
	{ScriptSoyombo, "Soyo", "Soyombo"},
	{ScriptSundanese, "Sund", "Sundanese"},
	{ScriptSylotiNagri, "Sylo", "Syloti_Nagri"},
	{ScriptSyriac, "Syrc", "Syriac"},
	{ScriptTagalog, "Tglg", "Tagalog"},
	{ScriptTagbanwa, "Tagb", "Tagbanwa"},
	{ScriptTaiLe, "Tale", "Tai_Le"},
	{ScriptTaiTham, "Lana", "Tai_Tham"},
	{ScriptTaiViet, "Tavt", "Tai_Viet"},
	{ScriptTakri, "Takr", "Takri"},
	{ScriptTamil, "Taml", "Tamil"},
	{ScriptTangsa, "Tnsa", "Tangsa"},
	{ScriptTangut, "Tang", "Tangut"},
	{ScriptTelugu, "Telu", "Telugu"},
	{ScriptThaana, "Thaa", "Thaana"},
	{ScriptThai, "Thai", "Thai"},
	{ScriptTibetan, "Tibt", "Tibetan"},
	{ScriptTifinagh, "Tfng", "Tifinagh"},
	{ScriptTirhuta, "Tirh", "Tirhuta"},
	{ScriptToto, "Toto", "Toto"},
	{ScriptUgaritic, "Ugar", "Ugaritic"},
	{ScriptUnknown, "Zzzz", "Unknown"},
	{ScriptVai, "Vaii", "Vai"},
	{ScriptVithkuqi, "Vith", "Vithkuqi"},
	{ScriptWancho, "Wcho", "Wancho"},
	{ScriptWarangCiti, "Wara", "Warang_Citi"},
	{ScriptYezidi, "Yezi", "Yezidi"},
	{ScriptYi, "Yiii", "Yi"},
	{ScriptZanabazarSquare, "Zanb", "Zanabazar_Square"},
}

var (
	scriptByValue = make(map[Script]scriptName, len(scriptNames))
	scriptByName  = make(map[string]Script, 2*len(scriptNames))
)

func init() {
	for _, n := range scriptNames {
		scriptByValue[n.script] = n
		scriptByName[looseName(n.short)] = n.script
		scriptByName[looseName(n.long)] = n.script
	}
	// Aliases from PropertyValueAliases.txt.
	scriptByName[looseName("Qaac")] = ScriptCoptic
	scriptByName[looseName("Qaai")] = ScriptInherited
}

// ScriptFromValue converts a raw discriminant to a known Script.
func ScriptFromValue(v uint32) (Script, error) {
	if v <= 0xffff {
		if _, ok := scriptByValue[Script(v)]; ok {
			return Script(v), nil
		}
	}
	return 0, uerrors.Errorf(uerrors.InvalidArgument, "unknown Script value %d", v)
}

// ParseScript accepts an ISO 15924 code (Latn) or a long alias (Latin).
func ParseScript(name string) (Script, error) {
	if s, ok := scriptByName[looseName(name)]; ok {
		return s, nil
	}
	return 0, uerrors.Errorf(uerrors.InvalidArgument, "unknown Script %q", name)
}

// Scripts returns every known script, in alphabetical order of long name.
func Scripts() []Script {
	out := make([]Script, len(scriptNames))
	for i, n := range scriptNames {
		out[i] = n.script
	}
	return out
}

// ShortName returns the ISO 15924 code, e.g. "Latn".
func (s Script) ShortName() string {
	if n, ok := scriptByValue[s]; ok {
		return n.short
	}
	return fmt.Sprintf("sc%d", uint16(s))
}

func (s Script) String() string {
	if n, ok := scriptByValue[s]; ok {
		return n.long
	}
	return fmt.Sprintf("Script(%d)", uint16(s))
}
