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

// Package post implements writing the "post" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
package post

import (
	"bytes"
	"encoding/binary"
)

// Info contains the information needed to construct the "post" table
// of a font.
type Info struct {
	ItalicAngle        int32 // in 1/65536 degrees
	UnderlinePosition  int16 // negative
	UnderlineThickness int16
	IsFixedPitch       bool

	// Names contains the PostScript name of each glyph, in glyph ID
	// order.
	Names []string
}

// Encode encodes the "post" table, using format 2.0.
func (info *Info) Encode() []byte {
	var isFixedPitch uint32
	if info.IsFixedPitch {
		isFixedPitch = 1
	}

	header := &postEnc{
		Version:            0x00020000,
		ItalicAngle:        info.ItalicAngle,
		UnderlinePosition:  info.UnderlinePosition,
		UnderlineThickness: info.UnderlineThickness,
		IsFixedPitch:       isFixedPitch,
	}

	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, header)

	numGlyphs := len(info.Names)
	buf.WriteByte(byte(numGlyphs >> 8))
	buf.WriteByte(byte(numGlyphs))

	var extra []string
	for _, name := range info.Names {
		idx, ok := macGlyphIndex[name]
		if !ok {
			idx = numMacGlyphs + len(extra)
			extra = append(extra, name)
		}
		buf.WriteByte(byte(idx >> 8))
		buf.WriteByte(byte(idx))
	}
	for _, name := range extra {
		// names longer than 255 bytes cannot be represented
		if len(name) > 255 {
			name = name[:255]
		}
		buf.WriteByte(byte(len(name)))
		buf.WriteString(name)
	}

	return buf.Bytes()
}

type postEnc struct {
	Version            uint32
	ItalicAngle        int32
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32
}
