// seehuhn.de/go/c64ttf - convert Commodore 64 character sets to TrueType fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package charset

// The tables in this file assign glyph names and Unicode code points
// to the character positions of the two standard C64 character sets.
// Position 0..127 holds the regular characters; positions 128..255
// are the reverse-video copies, of which only the ones representing
// otherwise missing block graphics are mapped.

var Uppercase = []Mapping{
	{0, "at", []rune{0x0040}},
	{1, "A", []rune{0x0041}},
	{2, "B", []rune{0x0042}},
	{3, "C", []rune{0x0043}},
	{4, "D", []rune{0x0044}},
	{5, "E", []rune{0x0045}},
	{6, "F", []rune{0x0046}},
	{7, "G", []rune{0x0047}},
	{8, "H", []rune{0x0048}},
	{9, "I", []rune{0x0049}},
	{10, "J", []rune{0x004A}},
	{11, "K", []rune{0x004B}},
	{12, "L", []rune{0x004C}},
	{13, "M", []rune{0x004D}},
	{14, "N", []rune{0x004E}},
	{15, "O", []rune{0x004F}},
	{16, "P", []rune{0x0050}},
	{17, "Q", []rune{0x0051}},
	{18, "R", []rune{0x0052}},
	{19, "S", []rune{0x0053}},
	{20, "T", []rune{0x0054}},
	{21, "U", []rune{0x0055}},
	{22, "V", []rune{0x0056}},
	{23, "W", []rune{0x0057}},
	{24, "X", []rune{0x0058}},
	{25, "Y", []rune{0x0059}},
	{26, "Z", []rune{0x005A}},
	{27, "bracketleft", []rune{0x005B}},
	{28, "sterling", []rune{0x00A3}},
	{29, "bracketright", []rune{0x005D}},
	{30, "arrowup", []rune{0x2191}},
	{31, "arrowleft", []rune{0x2190}},
	{32, "space", []rune{0x0020, 0x00A0}},
	{33, "exclam", []rune{0x0021}},
	{34, "quotedblright", []rune{0x0022, 0x201C, 0x201D}},
	{35, "numbersign", []rune{0x0023}},
	{36, "dollar", []rune{0x0024}},
	{37, "percent", []rune{0x0025}},
	{38, "ampersand", []rune{0x0026}},
	{39, "quoteright", []rune{0x0027, 0x0092, 0x2019}},
	{40, "parenleft", []rune{0x0028}},
	{41, "parenright", []rune{0x0029}},
	{42, "asterisk", []rune{0x002A}},
	{43, "plus", []rune{0x002B}},
	{44, "comma", []rune{0x002C}},
	{45, "hyphen", []rune{0x002D}},
	{46, "period", []rune{0x002E}},
	{47, "slash", []rune{0x002F}},
	{48, "zero", []rune{0x0030}},
	{49, "one", []rune{0x0031}},
	{50, "two", []rune{0x0032}},
	{51, "three", []rune{0x0033}},
	{52, "four", []rune{0x0034}},
	{53, "five", []rune{0x0035}},
	{54, "six", []rune{0x0036}},
	{55, "seven", []rune{0x0037}},
	{56, "eight", []rune{0x0038}},
	{57, "nine", []rune{0x0039}},
	{58, "colon", []rune{0x003A}},
	{59, "semicolon", []rune{0x003B}},
	{60, "less", []rune{0x003C}},
	{61, "equal", []rune{0x003D}},
	{62, "greater", []rune{0x003E}},
	{63, "question", []rune{0x003F}},
	{64, "SF100000", []rune{0x2500, 0x2501}},
	{65, "spade", []rune{0x2660}},
	{66, "SF110000", []rune{0x2502, 0x2503}},
	{73, "uni256e", []rune{0x256E}},
	{74, "uni2570", []rune{0x2570}},
	{75, "uni256F", []rune{0x256F}},
	{77, "uni2572", []rune{0x2572}},
	{78, "uni2571", []rune{0x2571}},
	{81, "periodcentered", []rune{0x00B7, 0x2022, 0x2219, 0x25CF}},
	{83, "heart", []rune{0x2665}},
	{85, "uni256D", []rune{0x256D}},
	{86, "uni2573", []rune{0x2573}},
	{87, "circle", []rune{0x25CB}},
	{88, "club", []rune{0x2663}},
	{90, "diamond", []rune{0x25C6, 0x2666}},
	{91, "SF050000", []rune{0x253C, 0x254B}},
	{94, "pi", []rune{0x03C0}},
	{95, "uni25e5", []rune{0x25E5}},
	{97, "lfblock", []rune{0x258C}},
	{98, "dnblock", []rune{0x2584}},
	{99, "uni2594", []rune{0x2594}},
	{100, "uni2581", []rune{0x2581}},
	{101, "uni258E", []rune{0x258E}},
	{102, "shade", []rune{0x2592}},
	{105, "uni25E4", []rune{0x25E4}},
	{107, "SF080000", []rune{0x251C, 0x2523}},
	{108, "uni2597", []rune{0x2597}},
	{109, "SF020000", []rune{0x2514, 0x2517}},
	{110, "SF030000", []rune{0x2510, 0x2513}},
	{111, "uni2582", []rune{0x2582}},
	{112, "SF010000", []rune{0x250C, 0x250F}},
	{113, "SF070000", []rune{0x2534, 0x253B}},
	{114, "SF060000", []rune{0x252C, 0x2533}},
	{115, "SF090000", []rune{0x2524, 0x252B}},
	{117, "uni258D", []rune{0x258D}},
	{121, "uni2583", []rune{0x2583}},
	{123, "uni2596", []rune{0x2596}},
	{124, "uni259D", []rune{0x259D}},
	{125, "SF040000", []rune{0x2518, 0x251B}},
	{126, "uni2598", []rune{0x2598}},
	{127, "uni259A", []rune{0x259A}},
	{160, "uni2588", []rune{0x2588}},
	{223, "uni25E3", []rune{0x25E3}},
	{225, "uni2590", []rune{0x2590}},
	{226, "uni2580", []rune{0x2580}},
	{227, "uni2587", []rune{0x2587}},
	{231, "uni258A", []rune{0x258A}},
	{233, "uni25E2", []rune{0x25E2}},
	{236, "uni259B", []rune{0x259B}},
	{246, "uni258B", []rune{0x258B}},
	{247, "uni2586", []rune{0x2586}},
	{248, "uni2585", []rune{0x2585}},
	{251, "uni259C", []rune{0x259C}},
	{252, "uni2599", []rune{0x2599}},
	{254, "uni259F", []rune{0x259F}},
	{255, "uni259E", []rune{0x259E}},
}

var Lowercase = []Mapping{
	{0, "at", []rune{0x0040}},
	{1, "a", []rune{0x0061}},
	{2, "b", []rune{0x0062}},
	{3, "c", []rune{0x0063}},
	{4, "d", []rune{0x0064}},
	{5, "e", []rune{0x0065}},
	{6, "f", []rune{0x0066}},
	{7, "g", []rune{0x0067}},
	{8, "h", []rune{0x0068}},
	{9, "i", []rune{0x0069}},
	{10, "j", []rune{0x006A}},
	{11, "k", []rune{0x006B}},
	{12, "l", []rune{0x006C}},
	{13, "m", []rune{0x006D}},
	{14, "n", []rune{0x006E}},
	{15, "o", []rune{0x006F}},
	{16, "p", []rune{0x0070}},
	{17, "q", []rune{0x0071}},
	{18, "r", []rune{0x0072}},
	{19, "s", []rune{0x0073}},
	{20, "t", []rune{0x0074}},
	{21, "u", []rune{0x0075}},
	{22, "v", []rune{0x0076}},
	{23, "w", []rune{0x0077}},
	{24, "x", []rune{0x0078}},
	{25, "y", []rune{0x0079}},
	{26, "z", []rune{0x007A}},
	{27, "bracketleft", []rune{0x005B}},
	{28, "sterling", []rune{0x00A3}},
	{29, "bracketright", []rune{0x005D}},
	{30, "arrowup", []rune{0x2191}},
	{31, "arrowleft", []rune{0x2190}},
	{32, "space", []rune{0x0020, 0x00A0}},
	{33, "exclam", []rune{0x0021}},
	{34, "quotedblright", []rune{0x0022, 0x201C, 0x201D}},
	{35, "numbersign", []rune{0x0023}},
	{36, "dollar", []rune{0x0024}},
	{37, "percent", []rune{0x0025}},
	{38, "ampersand", []rune{0x0026}},
	{39, "quoteright", []rune{0x0027, 0x0092, 0x2019}},
	{40, "parenleft", []rune{0x0028}},
	{41, "parenright", []rune{0x0029}},
	{42, "asterisk", []rune{0x002A}},
	{43, "plus", []rune{0x002B}},
	{44, "comma", []rune{0x002C}},
	{45, "hyphen", []rune{0x002D}},
	{46, "period", []rune{0x002E}},
	{47, "slash", []rune{0x002F}},
	{48, "zero", []rune{0x0030}},
	{49, "one", []rune{0x0031}},
	{50, "two", []rune{0x0032}},
	{51, "three", []rune{0x0033}},
	{52, "four", []rune{0x0034}},
	{53, "five", []rune{0x0035}},
	{54, "six", []rune{0x0036}},
	{55, "seven", []rune{0x0037}},
	{56, "eight", []rune{0x0038}},
	{57, "nine", []rune{0x0039}},
	{58, "colon", []rune{0x003A}},
	{59, "semicolon", []rune{0x003B}},
	{60, "less", []rune{0x003C}},
	{61, "equal", []rune{0x003D}},
	{62, "greater", []rune{0x003E}},
	{63, "question", []rune{0x003F}},
	{64, "SF100000", []rune{0x2500, 0x2501}},
	{65, "A", []rune{0x0041}},
	{66, "B", []rune{0x0042}},
	{67, "C", []rune{0x0043}},
	{68, "D", []rune{0x0044}},
	{69, "E", []rune{0x0045}},
	{70, "F", []rune{0x0046}},
	{71, "G", []rune{0x0047}},
	{72, "H", []rune{0x0048}},
	{73, "I", []rune{0x0049}},
	{74, "J", []rune{0x004A}},
	{75, "K", []rune{0x004B}},
	{76, "L", []rune{0x004C}},
	{77, "M", []rune{0x004D}},
	{78, "N", []rune{0x004E}},
	{79, "O", []rune{0x004F}},
	{80, "P", []rune{0x0050}},
	{81, "Q", []rune{0x0051}},
	{82, "R", []rune{0x0052}},
	{83, "S", []rune{0x0053}},
	{84, "T", []rune{0x0054}},
	{85, "U", []rune{0x0055}},
	{86, "V", []rune{0x0056}},
	{87, "W", []rune{0x0057}},
	{88, "X", []rune{0x0058}},
	{89, "Y", []rune{0x0059}},
	{90, "Z", []rune{0x005A}},
	{91, "SF050000", []rune{0x253C, 0x254B}},
	{93, "SF110000", []rune{0x2502, 0x2503}},
	{97, "lfblock", []rune{0x258C}},
	{98, "dnblock", []rune{0x2584}},
	{99, "uni2594", []rune{0x2594}},
	{100, "uni2581", []rune{0x2581}},
	{101, "uni258E", []rune{0x258E}},
	{102, "shade", []rune{0x2592}},
	{107, "SF080000", []rune{0x251C, 0x2523}},
	{108, "uni2597", []rune{0x2597}},
	{109, "SF020000", []rune{0x2514, 0x2517}},
	{110, "SF030000", []rune{0x2510, 0x2513}},
	{111, "uni2582", []rune{0x2582}},
	{112, "SF010000", []rune{0x250C, 0x250F}},
	{113, "SF070000", []rune{0x2534, 0x253B}},
	{114, "SF060000", []rune{0x252C, 0x2533}},
	{115, "SF090000", []rune{0x2524, 0x252B}},
	{117, "uni258D", []rune{0x258D}},
	{121, "uni2583", []rune{0x2583}},
	{122, "uni2713", []rune{0x2713}},
	{123, "uni2596", []rune{0x2596}},
	{124, "uni259D", []rune{0x259D}},
	{125, "SF040000", []rune{0x2518, 0x251B}},
	{126, "uni2598", []rune{0x2598}},
	{127, "uni259A", []rune{0x259A}},
	{160, "uni2588", []rune{0x2588}},
	{225, "uni2590", []rune{0x2590}},
	{226, "uni2580", []rune{0x2580}},
	{227, "uni2587", []rune{0x2587}},
	{231, "uni258A", []rune{0x258A}},
	{236, "uni259B", []rune{0x259B}},
	{246, "uni258B", []rune{0x258B}},
	{247, "uni2586", []rune{0x2586}},
	{248, "uni2585", []rune{0x2585}},
	{251, "uni259C", []rune{0x259C}},
	{252, "uni2599", []rune{0x2599}},
	{254, "uni259F", []rune{0x259F}},
	{255, "uni259E", []rune{0x259E}},
}

var MacRoman = map[byte]string{
	0x00: ".null",
	0x08: ".null",
	0x09: "nonmarkingreturn",
	0x0D: "nonmarkingreturn",
	0x1D: ".null",
	0x20: "space",
	0x21: "exclam",
	0x23: "numbersign",
	0x24: "dollar",
	0x25: "percent",
	0x26: "ampersand",
	0x28: "parenleft",
	0x29: "parenright",
	0x2A: "asterisk",
	0x2B: "plus",
	0x2C: "comma",
	0x2D: "hyphen",
	0x2E: "period",
	0x2F: "slash",
	0x30: "zero",
	0x31: "one",
	0x32: "two",
	0x33: "three",
	0x34: "four",
	0x35: "five",
	0x36: "six",
	0x37: "seven",
	0x38: "eight",
	0x39: "nine",
	0x3A: "colon",
	0x3B: "semicolon",
	0x3C: "less",
	0x3D: "equal",
	0x3E: "greater",
	0x3F: "question",
	0x40: "at",
	0x41: "A",
	0x42: "B",
	0x43: "C",
	0x44: "D",
	0x45: "E",
	0x46: "F",
	0x47: "G",
	0x48: "H",
	0x49: "I",
	0x4A: "J",
	0x4B: "K",
	0x4C: "L",
	0x4D: "M",
	0x4E: "N",
	0x4F: "O",
	0x50: "P",
	0x51: "Q",
	0x52: "R",
	0x53: "S",
	0x54: "T",
	0x55: "U",
	0x56: "V",
	0x57: "W",
	0x58: "X",
	0x59: "Y",
	0x5A: "Z",
	0x5B: "bracketleft",
	0x5C: "backslash",
	0x5D: "bracketright",
	0x5E: "asciicircum",
	0x5F: "underscore",
	0x60: "grave",
	0x61: "a",
	0x62: "b",
	0x63: "c",
	0x64: "d",
	0x65: "e",
	0x66: "f",
	0x67: "g",
	0x68: "h",
	0x69: "i",
	0x6A: "j",
	0x6B: "k",
	0x6C: "l",
	0x6D: "m",
	0x6E: "n",
	0x6F: "o",
	0x70: "p",
	0x71: "q",
	0x72: "r",
	0x73: "s",
	0x74: "t",
	0x75: "u",
	0x76: "v",
	0x77: "w",
	0x78: "x",
	0x79: "y",
	0x7A: "z",
	0x7B: "braceleft",
	0x7C: "bar",
	0x7D: "braceright",
	0x7E: "asciitilde",
	0x81: "Aring",
	0x8C: "aring",
	0xA3: "sterling",
	0xAE: "AE",
	0xAF: "Oslash",
	0xB9: "pi",
	0xBE: "ae",
	0xBF: "oslash",
	0xCA: "space",
	0xD3: "quotedblright",
	0xD5: "quoteright",
}
