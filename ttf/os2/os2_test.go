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

package os2

import (
	"bytes"
	"encoding/binary"
	"testing"

	"seehuhn.de/go/c64ttf/ttf/cmap"
)

func TestEncode(t *testing.T) {
	cc := cmap.Format4{
		0x0020: 1,
		0x0041: 2,
		0xEE05: 3,
	}
	info := &Info{
		WeightClass:    400,
		WidthClass:     5,
		IsRegular:      true,
		Ascent:         56,
		Descent:        -8,
		CapHeight:      56,
		XHeight:        40,
		AvgGlyphWidth:  64,
		FamilyClass:    0x080A,
		Panose:         [10]byte{2, 1, 6, 9, 6, 2, 2, 8, 1, 1},
		Vendor:         "C=64",
		UnicodeRange:   [4]uint32{0x80000083, 0x1000F860, 0, 0},
		CodePageRange1: 1 << 0,
		CodePageRange2: 1<<30 | 1<<31,
		BreakChar:      0x20,
	}
	data := info.Encode(cc)

	if len(data) != 96 {
		t.Fatalf("wrong length %d", len(data))
	}
	if v := binary.BigEndian.Uint16(data[0:2]); v != 4 {
		t.Errorf("wrong version %d", v)
	}
	if v := int16(binary.BigEndian.Uint16(data[2:4])); v != 64 {
		t.Errorf("wrong avgCharWidth %d", v)
	}
	if v := binary.BigEndian.Uint16(data[4:6]); v != 400 {
		t.Errorf("wrong weightClass %d", v)
	}
	if v := binary.BigEndian.Uint16(data[8:10]); v != 0 {
		t.Errorf("fsType not zero: %d", v)
	}
	if !bytes.Equal(data[32:42], []byte{2, 1, 6, 9, 6, 2, 2, 8, 1, 1}) {
		t.Errorf("wrong panose %v", data[32:42])
	}
	if v := binary.BigEndian.Uint32(data[42:46]); v != 0x80000083 {
		t.Errorf("wrong ulUnicodeRange1 %08x", v)
	}
	if string(data[58:62]) != "C=64" {
		t.Errorf("wrong vendor %q", data[58:62])
	}
	if v := binary.BigEndian.Uint16(data[62:64]); v != 0x0040 {
		t.Errorf("wrong fsSelection %04x", v)
	}
	if v := binary.BigEndian.Uint16(data[64:66]); v != 0x0020 {
		t.Errorf("wrong usFirstCharIndex %04x", v)
	}
	if v := binary.BigEndian.Uint16(data[66:68]); v != 0xEE05 {
		t.Errorf("wrong usLastCharIndex %04x", v)
	}
	if v := int16(binary.BigEndian.Uint16(data[68:70])); v != 56 {
		t.Errorf("wrong sTypoAscender %d", v)
	}
	if v := int16(binary.BigEndian.Uint16(data[70:72])); v != -8 {
		t.Errorf("wrong sTypoDescender %d", v)
	}
	if v := int16(binary.BigEndian.Uint16(data[76:78])); v != 8 {
		t.Errorf("wrong usWinDescent %d", v)
	}
	if v := binary.BigEndian.Uint32(data[78:82]); v != 1 {
		t.Errorf("wrong ulCodePageRange1 %08x", v)
	}
	if v := binary.BigEndian.Uint32(data[82:86]); v != 0xC0000000 {
		t.Errorf("wrong ulCodePageRange2 %08x", v)
	}
	if v := binary.BigEndian.Uint16(data[90:92]); v != 0 {
		t.Errorf("wrong usDefaultChar %d", v)
	}
	if v := binary.BigEndian.Uint16(data[92:94]); v != 0x20 {
		t.Errorf("wrong usBreakChar %d", v)
	}
}

func TestEncodeNoCmap(t *testing.T) {
	info := &Info{}
	data := info.Encode(nil)
	if len(data) != 96 {
		t.Fatalf("wrong length %d", len(data))
	}
	if v := binary.BigEndian.Uint16(data[64:66]); v != 0 {
		t.Errorf("wrong usFirstCharIndex %d", v)
	}
	if string(data[58:62]) != "    " {
		t.Errorf("wrong vendor %q", data[58:62])
	}
}
