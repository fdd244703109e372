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
)

// MaxpInfo contains the information needed to construct the "maxp"
// table of a TrueType font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
type MaxpInfo struct {
	NumGlyphs   int
	MaxPoints   int
	MaxContours int
}

// Encode encodes the "maxp" table, using version 1.0.
func (info *MaxpInfo) Encode() []byte {
	maxp := &binaryMaxp{
		Version:     0x00010000,
		NumGlyphs:   uint16(info.NumGlyphs),
		MaxPoints:   uint16(info.MaxPoints),
		MaxContours: uint16(info.MaxContours),
		MaxZones:    2,
	}
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, maxp)
	return buf.Bytes()
}

type binaryMaxp struct {
	Version               uint32
	NumGlyphs             uint16
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}
