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

// point flags in simple glyph descriptions
const (
	flagOnCurve byte = 0x01
	flagXShort  byte = 0x02 // x-coordinate is a single byte
	flagYShort  byte = 0x04 // y-coordinate is a single byte
	flagRepeat  byte = 0x08 // a repeat count byte follows
	flagXSame   byte = 0x10 // x unchanged, or short x-coordinate positive
	flagYSame   byte = 0x20 // y unchanged, or short y-coordinate positive
)

const glyfAlign = 2

// encodeLen returns the length of the glyph description in the "glyf"
// table, including padding.
func (g Glyph) encodeLen() int {
	if len(g) == 0 {
		return 0
	}
	flags, xData, yData := g.body()
	total := 10 + 2*len(g) + 2 + len(flags) + len(xData) + len(yData)
	for total%glyfAlign != 0 {
		total++
	}
	return total
}

// append appends the glyph description to buf.  Glyphs without
// contours have a zero-length description.
func (g Glyph) append(buf []byte) []byte {
	if len(g) == 0 {
		return buf
	}

	bbox := g.Extent()
	buf = appendU16(buf, uint16(int16(len(g))))
	buf = appendU16(buf, uint16(bbox.LLx))
	buf = appendU16(buf, uint16(bbox.LLy))
	buf = appendU16(buf, uint16(bbox.URx))
	buf = appendU16(buf, uint16(bbox.URy))

	end := -1
	for _, cc := range g {
		end += len(cc)
		buf = appendU16(buf, uint16(end))
	}

	buf = appendU16(buf, 0) // no instructions

	flags, xData, yData := g.body()
	buf = append(buf, flags...)
	buf = append(buf, xData...)
	buf = append(buf, yData...)

	for len(buf)%glyfAlign != 0 {
		buf = append(buf, 0)
	}
	return buf
}

// body computes the flag array (with repeat compression) and the
// delta-encoded coordinate arrays of the glyph description.
func (g Glyph) body() (flags, xData, yData []byte) {
	raw := make([]byte, 0, g.NumPoints())
	var prev Point
	for _, cc := range g {
		for _, p := range cc {
			flag := flagOnCurve

			dx := int(p.X) - int(prev.X)
			switch {
			case dx == 0:
				flag |= flagXSame
			case dx >= -255 && dx <= 255:
				flag |= flagXShort
				if dx > 0 {
					flag |= flagXSame
				} else {
					dx = -dx
				}
				xData = append(xData, byte(dx))
			default:
				xData = append(xData, byte(dx>>8), byte(dx))
			}

			dy := int(p.Y) - int(prev.Y)
			switch {
			case dy == 0:
				flag |= flagYSame
			case dy >= -255 && dy <= 255:
				flag |= flagYShort
				if dy > 0 {
					flag |= flagYSame
				} else {
					dy = -dy
				}
				yData = append(yData, byte(dy))
			default:
				yData = append(yData, byte(dy>>8), byte(dy))
			}

			raw = append(raw, flag)
			prev = p
		}
	}

	for i := 0; i < len(raw); {
		j := i + 1
		for j < len(raw) && raw[j] == raw[i] && j-i < 256 {
			j++
		}
		if j-i > 2 {
			flags = append(flags, raw[i]|flagRepeat, byte(j-i-1))
		} else {
			flags = append(flags, raw[i:j]...)
		}
		i = j
	}
	return flags, xData, yData
}

func appendU16(buf []byte, x uint16) []byte {
	return append(buf, byte(x>>8), byte(x))
}
