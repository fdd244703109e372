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

// Package outline converts monochrome bitmaps into closed polygonal
// outlines.  Pixels become unit squares on an integer grid, sides
// shared between filled pixels cancel, and the remaining boundary
// edges are stitched into closed contours with collinear runs merged.
package outline

// A Point is a position on the integer pixel grid.  The origin is at
// the bottom-left corner of the bitmap, with y increasing upwards.
type Point struct {
	X, Y int
}

// An Edge is a directed line segment between two grid points.  Edges
// produced by [Bitmap.Edges] are axis-aligned, one grid unit long, and
// oriented so that the filled area is on their right-hand side.
type Edge struct {
	Start, End Point
}

// Scaled maps the edge from grid units to font units.  The y
// coordinates are shifted down by descent grid units, and both
// coordinates are then multiplied by scale.
func (e Edge) Scaled(scale, descent int) Edge {
	return Edge{
		Start: Point{e.Start.X * scale, (e.Start.Y - descent) * scale},
		End:   Point{e.End.X * scale, (e.End.Y - descent) * scale},
	}
}

// A Contour is a closed polygon, stored as the ordered list of its
// vertices.  The closing segment from the last vertex back to the
// first is implied and not stored.
type Contour []Point

// A Bitmap is a monochrome pixel grid.  Row 0 is the bottom row of the
// image, and within each row index 0 is the leftmost pixel.  All rows
// must have the same width.
type Bitmap [][]bool

// Unpack expands packed row bytes into a Bitmap.  The first byte
// describes the top row of the image, and within each byte the most
// significant bit is the leftmost pixel.  An empty or nil slice yields
// an empty bitmap.
func Unpack(rows []byte) Bitmap {
	height := len(rows)
	b := make(Bitmap, height)
	for i, row := range rows {
		cells := make([]bool, 8)
		for j := range cells {
			cells[j] = row&(0x80>>j) != 0
		}
		b[height-1-i] = cells
	}
	return b
}

// Edges returns the directed boundary edges of the filled region.
// Each filled pixel contributes one edge for every side where the
// neighbouring pixel is unfilled or outside the bitmap.  Edge order
// follows the row-major traversal of the bitmap; use [Stitch] to
// assemble the edges into contours.
func (b Bitmap) Edges() ([]Edge, error) {
	var width int
	for y, row := range b {
		if y == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, &RaggedBitmapError{Row: y, Got: len(row), Want: width}
		}
	}

	var edges []Edge
	for y, row := range b {
		for x, filled := range row {
			if !filled {
				continue
			}
			if x == 0 || !row[x-1] {
				edges = append(edges, Edge{Point{x, y}, Point{x, y + 1}})
			}
			if y == len(b)-1 || !b[y+1][x] {
				edges = append(edges, Edge{Point{x, y + 1}, Point{x + 1, y + 1}})
			}
			if x == width-1 || !row[x+1] {
				edges = append(edges, Edge{Point{x + 1, y + 1}, Point{x + 1, y}})
			}
			if y == 0 || !b[y-1][x] {
				edges = append(edges, Edge{Point{x + 1, y}, Point{x, y}})
			}
		}
	}
	return edges, nil
}

// Trace converts packed bitmap rows into closed contours in font
// units, running the complete pipeline: [Unpack], [Bitmap.Edges],
// [Edge.Scaled] with the given scale and descent, and [Stitch].
// Empty input yields a nil contour list and no error.
func Trace(rows []byte, scale, descent int) ([]Contour, error) {
	edges, err := Unpack(rows).Edges()
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		edges[i] = e.Scaled(scale, descent)
	}
	return Stitch(edges)
}
