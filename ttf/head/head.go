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

// Package head implements writing the "head" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
package head

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"seehuhn.de/go/postscript/funit"
)

const headLength = 54

// Info contains the information needed to construct the 'head' table
// of a font.
type Info struct {
	FontRevision  Version // set by the font manufacturer
	UnitsPerEm    uint16  // font design units per em square
	Created       time.Time
	Modified      time.Time
	FontBBox      funit.Rect16
	LowestRecPPEM uint16 // smallest readable size in pixels

	HasLongOffsets bool // the "loca" table uses 32 bit offsets
}

// Encode returns the binary representation of the head table.  The
// checkSumAdjustment field is left as zero; it is patched in via
// [PatchChecksum] once the whole font is assembled.
func (info *Info) Encode() []byte {
	// Baselines and left sidebearings are at the coordinate origin
	// for all generated glyphs (bits 0 and 1), and scaled point sizes
	// are forced to integer values (bit 3).
	flags := uint16(1<<0 | 1<<1 | 1<<3)

	enc := &binaryHead{
		Version:           0x00010000,
		FontRevision:      uint32(info.FontRevision),
		MagicNumber:       0x5F0F3CF5,
		Flags:             flags,
		UnitsPerEm:        info.UnitsPerEm,
		Created:           encodeTime(info.Created),
		Modified:          encodeTime(info.Modified),
		XMin:              int16(info.FontBBox.LLx),
		YMin:              int16(info.FontBBox.LLy),
		XMax:              int16(info.FontBBox.URx),
		YMax:              int16(info.FontBBox.URy),
		LowestRecPPEM:     info.LowestRecPPEM,
		FontDirectionHint: 2,
	}
	if info.HasLongOffsets {
		enc.IndexToLocFormat = 1
	}

	buf := bytes.NewBuffer(make([]byte, 0, headLength))
	_ = binary.Write(buf, binary.BigEndian, enc)
	return buf.Bytes()
}

// PatchChecksum updates the checkSumAdjustment field of an encoded
// head table.  The argument is the checksum of the entire font
// computed with checkSumAdjustment still zero.
func PatchChecksum(head []byte, checksum uint32) {
	binary.BigEndian.PutUint32(head[8:12], 0xB1B0AFBA-checksum)
}

type binaryHead struct {
	Version            uint32
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64

	XMin int16
	YMin int16
	XMax int16
	YMax int16

	MacStyle uint16

	LowestRecPPEM     uint16
	FontDirectionHint int16

	IndexToLocFormat int16
	GlyphDataFormat  int16
}

// Version represents the font revision in 16.16 fixed point format.
type Version uint32

func (v Version) String() string {
	return fmt.Sprintf("%.03f", float32(v)/65536)
}

func encodeTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix() - zeroTime
}

var zeroTime int64 = -2082844800 // start of January 1904 in GMT/UTC time zone
