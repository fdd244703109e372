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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/c64ttf/ttf/glyph"
)

// readFormat4 decodes a format 4 subtable back into a map, so that
// tests can verify the encoder output.
func readFormat4(t *testing.T, data []byte) Format4 {
	t.Helper()
	if len(data) < 16 || len(data)%2 != 0 {
		t.Fatalf("bad subtable length %d", len(data))
	}
	words := make([]uint16, len(data)/2)
	for i := range words {
		words[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	if words[0] != 4 {
		t.Fatalf("format %d, expected 4", words[0])
	}
	if int(words[1]) != len(data) {
		t.Fatalf("length field %d, expected %d", words[1], len(data))
	}
	segCount := int(words[3]) / 2

	endCode := words[7 : 7+segCount]
	startCode := words[8+segCount : 8+2*segCount]
	idDelta := words[8+2*segCount : 8+3*segCount]
	idRangeOffset := words[8+3*segCount : 8+4*segCount]

	if endCode[segCount-1] != 0xFFFF {
		t.Fatal("missing final segment")
	}

	cmap := Format4{}
	for k := 0; k < segCount; k++ {
		for c := uint32(startCode[k]); c <= uint32(endCode[k]); c++ {
			var gid uint16
			if idRangeOffset[k] == 0 {
				gid = uint16(c) + idDelta[k]
			} else {
				idx := 8 + 3*segCount + k + int(idRangeOffset[k])/2 + int(c-uint32(startCode[k]))
				gid = words[idx]
			}
			if gid != 0 {
				cmap[uint16(c)] = glyph.ID(gid)
			}
		}
	}
	return cmap
}

func makeTestMapping() Format4 {
	cmap := Format4{}
	for c := uint16('A'); c <= 'Z'; c++ {
		cmap[c] = glyph.ID(c - 'A' + 1)
	}
	// an irregular block, too ragged for delta segments
	for i, c := range []uint16{0x2500, 0x2502, 0x250C, 0x2510, 0x2514, 0x2518} {
		cmap[c] = glyph.ID(100 + 7*i)
	}
	cmap[0xEE00] = 200
	return cmap
}

func TestFormat4RoundTrip(t *testing.T) {
	cmap := makeTestMapping()
	data := cmap.Encode(0)
	decoded := readFormat4(t, data)
	if d := cmp.Diff(cmap, decoded); d != "" {
		t.Error(d)
	}
}

func TestFormat4Deterministic(t *testing.T) {
	cmap := makeTestMapping()
	first := cmap.Encode(0)
	second := makeTestMapping().Encode(0)
	if d := cmp.Diff(first, second); d != "" {
		t.Error(d)
	}
}

func TestSegmenterAppend(t *testing.T) {
	sg := segmenter(makeTestMapping())

	// AppendEdges must append to the given slice and leave earlier
	// entries in place
	sentinel := &segment{first: 1, last: 2}
	ee := sg.AppendEdges([]*segment{sentinel}, 'A')
	if len(ee) < 2 {
		t.Fatal("no edges appended")
	}
	if ee[0] != sentinel {
		t.Error("existing edges not preserved")
	}
	for _, e := range ee[1:] {
		if e.first != 'A' {
			t.Errorf("edge starts at %#x, expected 'A'", e.first)
		}
		if to := sg.To('A', e); to != uint32(e.last)+1 {
			t.Errorf("edge to %#x ends at %#x", to, e.last)
		}
	}

	// past the last vertex there are no more edges
	if ee := sg.AppendEdges(nil, 0x10000); len(ee) != 0 {
		t.Errorf("%d edges after the final vertex", len(ee))
	}
}

func TestFormat4CodeRange(t *testing.T) {
	cmap := makeTestMapping()
	low, high := cmap.CodeRange()
	if low != 'A' || high != 0xEE00 {
		t.Errorf("CodeRange = %#x, %#x", low, high)
	}
}

func TestFormat0(t *testing.T) {
	cmap := &Format0{}
	cmap.GlyphIDArray[0x41] = 7
	cmap.GlyphIDArray[0xD5] = 9

	data := cmap.Encode(0)
	if len(data) != 262 {
		t.Fatalf("length %d, expected 262", len(data))
	}
	expectedHeader := []byte{0, 0, 1, 6, 0, 0}
	if d := cmp.Diff(expectedHeader, data[:6]); d != "" {
		t.Error(d)
	}
	if data[6+0x41] != 7 || data[6+0xD5] != 9 {
		t.Error("glyph ID array not copied")
	}

	low, high := cmap.CodeRange()
	if low != 0x41 || high != 0xD5 {
		t.Errorf("CodeRange = %#x, %#x", low, high)
	}
}

func TestTableDedup(t *testing.T) {
	uni := makeTestMapping()
	mac := &Format0{}
	mac.GlyphIDArray[0x41] = 1

	table := Table{
		{PlatformID: 0, EncodingID: 3}: uni,
		{PlatformID: 1, EncodingID: 0}: mac,
		{PlatformID: 3, EncodingID: 1}: uni,
	}
	data := table.Encode()

	numTables := int(data[2])<<8 | int(data[3])
	if numTables != 3 {
		t.Fatalf("numTables = %d", numTables)
	}

	var offsets []uint32
	for i := 0; i < numTables; i++ {
		rec := data[4+8*i:]
		offsets = append(offsets, uint32(rec[4])<<24|uint32(rec[5])<<16|
			uint32(rec[6])<<8|uint32(rec[7]))
	}
	// platform order is 0, 1, 3; the two format 4 subtables are
	// identical and must share their storage
	if offsets[0] != offsets[2] {
		t.Error("identical subtables not shared")
	}
	if offsets[0] == offsets[1] {
		t.Error("distinct subtables share an offset")
	}

	expectedLen := 4 + 8*3 + len(uni.Encode(0)) + len(mac.Encode(0))
	if len(data) != expectedLen {
		t.Errorf("table length %d, expected %d", len(data), expectedLen)
	}
}
