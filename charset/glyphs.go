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

// Builtin returns the glyphs every generated font contains,
// independent of the character set images: the .notdef box and the
// two conventional blank glyphs.
func Builtin() map[string]Glyph {
	return map[string]Glyph{
		".notdef": {Bitmap: []byte{
			0b00000000,
			0b01111110,
			0b01000010,
			0b01000010,
			0b01000010,
			0b01000010,
			0b01111110,
			0b00000000,
		}},
		".null":            {},
		"nonmarkingreturn": {},
	}
}

// MissingASCII returns hand-drawn glyphs for the eight printable
// ASCII characters which have no equivalent in PETSCII.
func MissingASCII() map[string]Glyph {
	return map[string]Glyph{
		"grave": {Bitmap: []byte{
			0b00100000,
			0b00010000,
			0b00001000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		}, Runes: []rune{0x60}},
		"braceleft": {Bitmap: []byte{
			0b00001100,
			0b00011000,
			0b00011000,
			0b00110000,
			0b00011000,
			0b00011000,
			0b00001100,
			0b00000000,
		}, Runes: []rune{0x7B}},
		"braceright": {Bitmap: []byte{
			0b00110000,
			0b00011000,
			0b00011000,
			0b00001100,
			0b00011000,
			0b00011000,
			0b00110000,
			0b00000000,
		}, Runes: []rune{0x7D}},
		"bar": {Bitmap: []byte{
			0b00011000,
			0b00011000,
			0b00011000,
			0b00011000,
			0b00011000,
			0b00011000,
			0b00011000,
			0b00011000,
		}, Runes: []rune{0x7C}},
		"asciitilde": {Bitmap: []byte{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00111001,
			0b01001110,
			0b00000000,
			0b00000000,
			0b00000000,
		}, Runes: []rune{0x7E}},
		"asciicircum": {Bitmap: []byte{
			0b00001000,
			0b00011100,
			0b00110110,
			0b01100011,
			0b01000001,
			0b00000000,
			0b00000000,
			0b00000000,
		}, Runes: []rune{0x5E}},
		"backslash": {Bitmap: []byte{
			0b00000000,
			0b01100000,
			0b00110000,
			0b00011000,
			0b00001100,
			0b00000110,
			0b00000011,
			0b00000000,
		}, Runes: []rune{0x5C}},
		"underscore": {Bitmap: []byte{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
		}, Runes: []rune{0x5F}},
	}
}

// Danish returns hand-drawn glyphs for the Danish letters missing
// from PETSCII.
func Danish() map[string]Glyph {
	return map[string]Glyph{
		"ae": {Bitmap: []byte{
			0b00000000,
			0b00000000,
			0b01110110,
			0b00011011,
			0b01111111,
			0b11011000,
			0b01111110,
			0b00000000,
		}, Runes: []rune{0xE6}},
		"oslash": {Bitmap: []byte{
			0b00000000,
			0b00000000,
			0b00111011,
			0b01101110,
			0b01111110,
			0b01110110,
			0b11011100,
			0b00000000,
		}, Runes: []rune{0xF8}},
		"aring": {Bitmap: []byte{
			0b00011000,
			0b00000000,
			0b00111100,
			0b00000110,
			0b00111110,
			0b01100110,
			0b00111110,
			0b00000000,
		}, Runes: []rune{0xE5}},
		"AE": {Bitmap: []byte{
			0b00011111,
			0b00111100,
			0b01101100,
			0b01111111,
			0b01101100,
			0b01101100,
			0b01101111,
			0b00000000,
		}, Runes: []rune{0xC6}},
		"Oslash": {Bitmap: []byte{
			0b00111011,
			0b01101110,
			0b01101110,
			0b01111110,
			0b01110110,
			0b01110110,
			0b11011100,
			0b00000000,
		}, Runes: []rune{0xD8}},
		"Aring": {Bitmap: []byte{
			0b00011000,
			0b00000000,
			0b00111100,
			0b01100110,
			0b01111110,
			0b01100110,
			0b01100110,
			0b00000000,
		}, Runes: []rune{0xC5}},
	}
}
