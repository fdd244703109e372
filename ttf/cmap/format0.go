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

package cmap

import (
	"seehuhn.de/go/c64ttf/ttf/glyph"
)

// Format0 represents a format 0 cmap subtable, mapping single byte
// character codes to glyph IDs.  Glyph IDs beyond 255 cannot be
// reached from this subtable format.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-0-byte-encoding-table
type Format0 struct {
	GlyphIDArray [256]uint8
}

// Lookup implements the [Subtable] interface.
func (cmap *Format0) Lookup(code uint32) glyph.ID {
	if code > 255 {
		return 0
	}
	return glyph.ID(cmap.GlyphIDArray[code])
}

// CodeRange implements the [Subtable] interface.
func (cmap *Format0) CodeRange() (low, high uint32) {
	first := true
	for i, c := range cmap.GlyphIDArray {
		if c == 0 {
			continue
		}
		if first {
			low = uint32(i)
			first = false
		}
		high = uint32(i)
	}
	return
}

// Encode implements the [Subtable] interface.
func (cmap *Format0) Encode(language uint16) []byte {
	return append([]byte{0, 0, 1, 6, byte(language >> 8), byte(language)},
		cmap.GlyphIDArray[:]...)
}
