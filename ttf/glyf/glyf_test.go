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

package glyf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript/funit"
)

var square = Glyph{
	{{0, 0}, {0, 256}, {256, 256}, {256, 0}},
}

func TestEncodeSquare(t *testing.T) {
	expected := []byte{
		0x00, 0x01, // numberOfContours
		0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, // bounding box
		0x00, 0x03, // endPtsOfContours
		0x00, 0x00, // instructionLength
		0x31, 0x11, 0x21, 0x11, // flags
		0x01, 0x00, // x-deltas
		0x01, 0x00, 0xFF, 0x00, // y-deltas
	}
	if d := cmp.Diff(expected, square.append(nil)); d != "" {
		t.Error(d)
	}
	if l := square.encodeLen(); l != len(expected) {
		t.Errorf("encodeLen = %d, expected %d", l, len(expected))
	}
}

func TestEncodeTable(t *testing.T) {
	gg := Glyphs{nil, square}
	enc := gg.Encode()
	if enc.LocaFormat != 0 {
		t.Errorf("loca format %d, expected 0", enc.LocaFormat)
	}
	expectedLoca := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x0C}
	if d := cmp.Diff(expectedLoca, enc.LocaData); d != "" {
		t.Error(d)
	}
	if len(enc.GlyfData) != 24 {
		t.Errorf("glyf length %d, expected 24", len(enc.GlyfData))
	}
}

func TestEncodeLenPadding(t *testing.T) {
	glyphs := []Glyph{
		square,
		{{{0, 0}, {0, 8}, {8, 8}, {8, 0}}},
		{{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, {{2, 2}, {2, 3}, {3, 3}, {3, 2}}},
		{{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0}, {40, 40}}},
	}
	for _, g := range glyphs {
		data := g.append(nil)
		if len(data)%2 != 0 {
			t.Errorf("odd glyph length %d", len(data))
		}
		if g.encodeLen() != len(data) {
			t.Errorf("encodeLen = %d, append length = %d",
				g.encodeLen(), len(data))
		}
	}
}

func TestFlagCompression(t *testing.T) {
	// equally spaced points along a line share the same flag byte
	g := Glyph{
		{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0}, {40, 40}},
	}
	flags, xData, yData := g.body()
	expectedFlags := []byte{0x31, 0x3B, 0x03, 0x35}
	if d := cmp.Diff(expectedFlags, flags); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]byte{10, 10, 10, 10}, xData); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]byte{40}, yData); d != "" {
		t.Error(d)
	}
}

func TestExtent(t *testing.T) {
	g := Glyph{
		{{-3, 5}, {100, -20}, {7, 7}},
	}
	expected := funit.Rect16{LLx: -3, LLy: -20, URx: 100, URy: 7}
	if g.Extent() != expected {
		t.Errorf("Extent = %v, expected %v", g.Extent(), expected)
	}

	if ext := (Glyph{}).Extent(); !ext.IsZero() {
		t.Errorf("empty glyph has extent %v", ext)
	}
}
