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

// Package glyf implements writing the "glyf" and "loca" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
package glyf

import (
	"seehuhn.de/go/postscript/funit"
)

// A Point is a point in a glyph outline.  All points produced by this
// package are on-curve, so contours are polygons.
type Point struct {
	X, Y funit.Int16
}

// A Contour is one closed loop of a glyph outline.  The closing
// segment from the last point back to the first is implied.
type Contour []Point

// A Glyph is the outline of a simple glyph.  A glyph without contours
// leaves no marks on the page.
type Glyph []Contour

// Extent returns the bounding box of the glyph outline.
func (g Glyph) Extent() funit.Rect16 {
	var bbox funit.Rect16
	first := true
	for _, cc := range g {
		for _, p := range cc {
			if first || p.X < bbox.LLx {
				bbox.LLx = p.X
			}
			if first || p.X > bbox.URx {
				bbox.URx = p.X
			}
			if first || p.Y < bbox.LLy {
				bbox.LLy = p.Y
			}
			if first || p.Y > bbox.URy {
				bbox.URy = p.Y
			}
			first = false
		}
	}
	return bbox
}

// NumPoints returns the total number of points of the glyph outline.
func (g Glyph) NumPoints() int {
	n := 0
	for _, cc := range g {
		n += len(cc)
	}
	return n
}

// Glyphs is the contents of a "glyf" table, indexed by glyph ID.
type Glyphs []Glyph

// Encoded contains the binary representation of the "glyf" and "loca"
// tables.  LocaFormat is the value for the indexToLocFormat entry of
// the "head" table.
type Encoded struct {
	GlyfData   []byte
	LocaData   []byte
	LocaFormat int16
}

// Encode encodes the Glyphs into a "glyf" and "loca" table.
func (gg Glyphs) Encode() *Encoded {
	n := len(gg)

	offs := make([]int, n+1)
	for i, g := range gg {
		offs[i+1] = offs[i] + g.encodeLen()
	}
	locaData, locaFormat := encodeLoca(offs)

	glyfData := make([]byte, 0, offs[n])
	for _, g := range gg {
		glyfData = g.append(glyfData)
	}

	return &Encoded{
		GlyfData:   glyfData,
		LocaData:   locaData,
		LocaFormat: locaFormat,
	}
}

func encodeLoca(offs []int) ([]byte, int16) {
	if offs[len(offs)-1] <= 0xFFFF {
		locaData := make([]byte, 2*len(offs))
		for i, off := range offs {
			x := off / 2
			locaData[2*i] = byte(x >> 8)
			locaData[2*i+1] = byte(x)
		}
		return locaData, 0
	}

	locaData := make([]byte, 4*len(offs))
	for i, off := range offs {
		locaData[4*i] = byte(off >> 24)
		locaData[4*i+1] = byte(off >> 16)
		locaData[4*i+2] = byte(off >> 8)
		locaData[4*i+3] = byte(off)
	}
	return locaData, 1
}
