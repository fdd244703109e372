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

package head

import (
	"encoding/binary"
	"testing"
	"time"

	"seehuhn.de/go/postscript/funit"
)

func TestEncode(t *testing.T) {
	info := &Info{
		FontRevision:  0x00018000, // version 1.5
		UnitsPerEm:    2048,
		Created:       time.Date(2022, time.March, 4, 5, 6, 7, 0, time.UTC),
		Modified:      time.Date(2022, time.March, 4, 5, 6, 8, 0, time.UTC),
		FontBBox:      funit.Rect16{LLx: -10, LLy: -256, URx: 2000, URy: 2048},
		LowestRecPPEM: 7,
	}
	data := info.Encode()

	if len(data) != headLength {
		t.Fatalf("wrong length %d", len(data))
	}
	if v := binary.BigEndian.Uint32(data[0:4]); v != 0x00010000 {
		t.Errorf("wrong version %08x", v)
	}
	if v := binary.BigEndian.Uint32(data[4:8]); v != 0x00018000 {
		t.Errorf("wrong fontRevision %08x", v)
	}
	if v := binary.BigEndian.Uint32(data[8:12]); v != 0 {
		t.Errorf("checkSumAdjustment not zero: %08x", v)
	}
	if v := binary.BigEndian.Uint32(data[12:16]); v != 0x5F0F3CF5 {
		t.Errorf("wrong magic %08x", v)
	}
	if v := binary.BigEndian.Uint16(data[18:20]); v != 2048 {
		t.Errorf("wrong unitsPerEm %d", v)
	}
	if v := int16(binary.BigEndian.Uint16(data[38:40])); v != -256 {
		t.Errorf("wrong yMin %d", v)
	}
	if v := int16(binary.BigEndian.Uint16(data[50:52])); v != 0 {
		t.Errorf("wrong indexToLocFormat %d", v)
	}

	info.HasLongOffsets = true
	data = info.Encode()
	if v := int16(binary.BigEndian.Uint16(data[50:52])); v != 1 {
		t.Errorf("wrong indexToLocFormat %d", v)
	}
}

func TestEncodeTime(t *testing.T) {
	epoch := time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
	if v := encodeTime(epoch); v != 0 {
		t.Errorf("wrong epoch encoding %d", v)
	}
	if v := encodeTime(epoch.Add(time.Hour)); v != 3600 {
		t.Errorf("wrong time encoding %d", v)
	}
	if v := encodeTime(time.Time{}); v != 0 {
		t.Errorf("zero time encoded as %d", v)
	}
}

func TestPatchChecksum(t *testing.T) {
	info := &Info{UnitsPerEm: 64}
	data := info.Encode()
	PatchChecksum(data, 0xB1B0AFBA)
	if v := binary.BigEndian.Uint32(data[8:12]); v != 0 {
		t.Errorf("wrong checkSumAdjustment %08x", v)
	}
	PatchChecksum(data, 1)
	if v := binary.BigEndian.Uint32(data[8:12]); v != 0xB1B0AFB9 {
		t.Errorf("wrong checkSumAdjustment %08x", v)
	}
}

func TestVersionString(t *testing.T) {
	cases := []struct {
		v    Version
		want string
	}{
		{0x00010000, "1.000"},
		{0x00018000, "1.500"},
		{0x00000000, "0.000"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("%08x: got %q, want %q", uint32(c.v), got, c.want)
		}
	}
}
