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

package main

import (
	"testing"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/c64ttf/charset"
)

func TestCollectGlyphs(t *testing.T) {
	// Character 67 has no name in the uppercase mapping table, but
	// its bitmap here is the same as the "grave" glyph added for
	// ASCII compatibility.  Mapping the complete character set must
	// merge the private use code point into "grave" instead of
	// adding a second outline.
	grave := charset.MissingASCII()["grave"]
	bitmaps := make([][]byte, 68)
	for i := range bitmaps {
		bitmaps[i] = []byte{byte(i), 1, 2, 3, 4, 5, 6, 7}
	}
	bitmaps[67] = grave.Bitmap

	glyphs := collectGlyphs(bitmaps, nil, true, false, true)

	if _, ok := glyphs["uniEE43"]; ok {
		t.Error("duplicate outline for the grave character")
	}
	g, ok := glyphs["grave"]
	if !ok {
		t.Fatal("glyph grave missing")
	}
	if !slices.Contains(g.Runes, 0x60) || !slices.Contains(g.Runes, 0xEE43) {
		t.Errorf("wrong code points for grave: %v", g.Runes)
	}

	// named characters keep their names
	if _, ok := glyphs["A"]; !ok {
		t.Error("glyph A missing")
	}
}
