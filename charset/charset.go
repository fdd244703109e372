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

// Package charset loads C64 character generator images and assigns
// glyph names and Unicode code points to the characters.
package charset

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Glyph is one character image together with the Unicode code
// points mapped to it.  The bitmap holds one byte per row, top row
// first, with the most significant bit describing the leftmost
// pixel.  Blank glyphs may have an empty bitmap.
type Glyph struct {
	Bitmap []byte
	Runes  []rune
}

// A Mapping assigns a glyph name and Unicode code points to one
// character position in a character set image.
type Mapping struct {
	Index int
	Name  string
	Runes []rune
}

// Map selects named glyphs from a character set image, using one of
// the tables [Uppercase] and [Lowercase].  Table entries referring to
// positions beyond the end of bitmaps are skipped.
func Map(bitmaps [][]byte, table []Mapping) map[string]Glyph {
	glyphs := make(map[string]Glyph)
	for _, m := range table {
		if m.Index >= len(bitmaps) {
			continue
		}
		glyphs[m.Name] = Glyph{
			Bitmap: bitmaps[m.Index],
			Runes:  slices.Clone(m.Runes),
		}
	}
	return glyphs
}

// MapAll assigns private use area code points to all characters of a
// character set image, starting at offset.  Where a character's
// bitmap is byte-identical to the bitmap of a glyph already present
// in existing, the new code point is added to that glyph instead of
// introducing a duplicate outline.  The returned map contains only
// the new and the updated glyphs; existing is not modified.
func MapAll(existing map[string]Glyph, bitmaps [][]byte, offset rune) map[string]Glyph {
	names := maps.Keys(existing)
	slices.Sort(names)

	updates := make(map[string]Glyph)
	for i, bitmap := range bitmaps {
		code := offset + rune(i)

		var found string
		for _, old := range names {
			if len(existing[old].Bitmap) > 0 && bytes.Equal(existing[old].Bitmap, bitmap) {
				found = old
				break
			}
		}
		if found == "" {
			name := fmt.Sprintf("uni%04X", code)
			updates[name] = Glyph{Bitmap: bitmap, Runes: []rune{code}}
			continue
		}

		g, ok := updates[found]
		if !ok {
			g = existing[found]
			g.Runes = slices.Clone(g.Runes)
		}
		if !slices.Contains(g.Runes, code) {
			g.Runes = append(g.Runes, code)
		}
		updates[found] = g
	}
	return updates
}
