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

// Package hmtx implements writing the "hhea" and "hmtx" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
package hmtx

import (
	"bytes"
	"encoding/binary"

	"seehuhn.de/go/postscript/funit"
)

const hheaLength = 36

// Info contains the information needed to construct the "hhea" and
// "hmtx" tables of a font.  Widths and GlyphExtents are indexed by
// glyph ID and must have the same length; the left side bearing of
// each glyph is the left edge of its bounding box.
type Info struct {
	Widths       []uint16
	GlyphExtents []funit.Rect16

	Ascent  funit.Int16
	Descent funit.Int16 // negative
	LineGap funit.Int16

	CaretSlopeRise int16
	CaretSlopeRun  int16
	CaretOffset    int16
}

// Encode returns the binary representation of the "hhea" and "hmtx"
// tables.  A run of equal advance widths at the end of the glyph
// list is stored only once.
func (info *Info) Encode() (hheaData, hmtxData []byte) {
	numGlyphs := len(info.Widths)
	if len(info.GlyphExtents) != numGlyphs {
		panic("hmtx: glyph extents length mismatch")
	}

	numLong := numGlyphs
	for numLong > 1 && info.Widths[numLong-1] == info.Widths[numLong-2] {
		numLong--
	}

	hhea := &binaryHhea{
		Version: 0x00010000,
		Ascent:  int16(info.Ascent),
		Descent: int16(info.Descent),
		LineGap: int16(info.LineGap),

		CaretSlopeRise: info.CaretSlopeRise,
		CaretSlopeRun:  info.CaretSlopeRun,
		CaretOffset:    info.CaretOffset,

		NumOfLongHorMetrics: uint16(numLong),
	}

	for _, w := range info.Widths {
		if w > hhea.AdvanceWidthMax {
			hhea.AdvanceWidthMax = w
		}
	}

	first := true
	for i, bbox := range info.GlyphExtents {
		if bbox.IsZero() {
			continue
		}

		lsb := int16(bbox.LLx)
		rsb := int16(info.Widths[i]) - int16(bbox.URx)
		if first || lsb < hhea.MinLeftSideBearing {
			hhea.MinLeftSideBearing = lsb
		}
		if first || rsb < hhea.MinRightSideBearing {
			hhea.MinRightSideBearing = rsb
		}
		if first || int16(bbox.URx) > hhea.XMaxExtent {
			hhea.XMaxExtent = int16(bbox.URx)
		}
		first = false
	}

	buf := bytes.NewBuffer(make([]byte, 0, hheaLength))
	_ = binary.Write(buf, binary.BigEndian, hhea)
	hheaData = buf.Bytes()

	hmtxData = make([]byte, 0, 4*numLong+2*(numGlyphs-numLong))
	for i := 0; i < numGlyphs; i++ {
		if i < numLong {
			w := info.Widths[i]
			hmtxData = append(hmtxData, byte(w>>8), byte(w))
		}
		lsb := int16(info.GlyphExtents[i].LLx)
		hmtxData = append(hmtxData, byte(uint16(lsb)>>8), byte(lsb))
	}

	return hheaData, hmtxData
}

type binaryHhea struct {
	Version             uint32
	Ascent              int16
	Descent             int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	_                   int16
	_                   int16
	_                   int16
	_                   int16
	MetricDataFormat    int16
	NumOfLongHorMetrics uint16
}
