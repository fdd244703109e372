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

package ttf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"seehuhn.de/go/c64ttf/ttf/head"
)

func TestChecksum(t *testing.T) {
	cases := []struct {
		data []byte
		want uint32
	}{
		{nil, 0},
		{[]byte{0, 0, 0, 1}, 1},
		{[]byte{0, 0, 0, 1, 0, 0, 0, 2}, 3},
		{[]byte{1}, 0x01000000},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 1}, 0},
	}
	for i, c := range cases {
		if got := checksum(c.data); got != c.want {
			t.Errorf("%d: got %08x, want %08x", i, got, c.want)
		}
	}
}

func TestWrite(t *testing.T) {
	headInfo := &head.Info{UnitsPerEm: 64, LowestRecPPEM: 8}

	font := NewFont()
	font.Set("head", headInfo.Encode())
	font.Set("maxp", (&MaxpInfo{NumGlyphs: 2}).Encode())
	font.Set("cvt ", []byte{1, 2, 3}) // odd length, needs padding

	buf := &bytes.Buffer{}
	n, err := font.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if int64(len(data)) != n {
		t.Errorf("reported %d bytes, wrote %d", n, len(data))
	}
	if len(data)%4 != 0 {
		t.Errorf("font length %d not a multiple of 4", len(data))
	}

	if v := binary.BigEndian.Uint32(data[0:4]); v != 0x00010000 {
		t.Errorf("wrong scaler type %08x", v)
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	if numTables != 3 {
		t.Fatalf("wrong numTables %d", numTables)
	}
	if v := binary.BigEndian.Uint16(data[6:8]); v != 32 {
		t.Errorf("wrong searchRange %d", v)
	}
	if v := binary.BigEndian.Uint16(data[8:10]); v != 1 {
		t.Errorf("wrong entrySelector %d", v)
	}
	if v := binary.BigEndian.Uint16(data[10:12]); v != 16 {
		t.Errorf("wrong rangeShift %d", v)
	}

	// directory entries are sorted by tag
	var prevTag string
	for i := 0; i < numTables; i++ {
		base := 12 + 16*i
		tag := string(data[base : base+4])
		if tag < prevTag {
			t.Errorf("tags out of order: %q after %q", tag, prevTag)
		}
		prevTag = tag

		offset := binary.BigEndian.Uint32(data[base+8 : base+12])
		length := binary.BigEndian.Uint32(data[base+12 : base+16])
		if offset%4 != 0 {
			t.Errorf("table %q not aligned: offset %d", tag, offset)
		}
		if int(offset+length) > len(data) {
			t.Errorf("table %q out of bounds", tag)
		}

		body := data[offset : offset+length]
		// the "head" checksum is computed before checkSumAdjustment
		// is patched in
		if tag != "head" && checksum(body) != binary.BigEndian.Uint32(data[base+4:base+8]) {
			t.Errorf("wrong checksum for table %q", tag)
		}
		if tag == "cvt " && !bytes.Equal(body, []byte{1, 2, 3}) {
			t.Errorf("wrong body for table %q", tag)
		}
	}

	// with checkSumAdjustment in place the whole file sums to the
	// magic value
	if got := checksum(data); got != 0xB1B0AFBA {
		t.Errorf("wrong font checksum %08x", got)
	}
}

func TestWriteTwice(t *testing.T) {
	headInfo := &head.Info{UnitsPerEm: 64, LowestRecPPEM: 8}

	font := NewFont()
	font.Set("head", headInfo.Encode())
	font.Set("maxp", (&MaxpInfo{NumGlyphs: 2}).Encode())

	buf1 := &bytes.Buffer{}
	if _, err := font.Write(buf1); err != nil {
		t.Fatal(err)
	}
	buf2 := &bytes.Buffer{}
	if _, err := font.Write(buf2); err != nil {
		t.Fatal(err)
	}

	// the checkSumAdjustment patched in by the first call must not
	// leak into the checksums of the second
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("second write differs from the first")
	}
	if got := checksum(buf2.Bytes()); got != 0xB1B0AFBA {
		t.Errorf("wrong font checksum %08x", got)
	}
}

func TestMaxp(t *testing.T) {
	info := &MaxpInfo{NumGlyphs: 107, MaxPoints: 60, MaxContours: 12}
	data := info.Encode()
	if len(data) != 32 {
		t.Fatalf("wrong length %d", len(data))
	}
	if v := binary.BigEndian.Uint32(data[0:4]); v != 0x00010000 {
		t.Errorf("wrong version %08x", v)
	}
	if v := binary.BigEndian.Uint16(data[4:6]); v != 107 {
		t.Errorf("wrong numGlyphs %d", v)
	}
	if v := binary.BigEndian.Uint16(data[6:8]); v != 60 {
		t.Errorf("wrong maxPoints %d", v)
	}
	if v := binary.BigEndian.Uint16(data[14:16]); v != 2 {
		t.Errorf("wrong maxZones %d", v)
	}
}
