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

package cmap

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"seehuhn.de/go/dijkstra"

	"seehuhn.de/go/c64ttf/ttf/glyph"
)

// Format4 represents a format 4 cmap subtable, mapping 16-bit
// character codes to glyph IDs.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-4-segment-mapping-to-delta-values
type Format4 map[uint16]glyph.ID

// Lookup implements the [Subtable] interface.
func (cmap Format4) Lookup(code uint32) glyph.ID {
	if code > 0xFFFF {
		return 0
	}
	return cmap[uint16(code)]
}

// CodeRange implements the [Subtable] interface.
func (cmap Format4) CodeRange() (low, high uint32) {
	first := true
	for code := range cmap {
		if first || uint32(code) < low {
			low = uint32(code)
		}
		if first || uint32(code) > high {
			high = uint32(code)
		}
		first = false
	}
	return
}

// Encode implements the [Subtable] interface.  The mapping is split
// into segments so that the total subtable size is minimal; the
// optimal split is found as a shortest path in the graph where
// vertices are character codes and edges are candidate segments.
func (cmap Format4) Encode(language uint16) []byte {
	segments, err := dijkstra.ShortestPath[uint32, *segment, int](segmenter(cmap), 0, 0x10000)
	if err != nil {
		panic(err)
	}

	var startCode, endCode, idDelta, idRangeOffsets, glyphIDArray []uint16
	for i, s := range segments {
		startCode = append(startCode, s.first)
		endCode = append(endCode, s.last)
		idDelta = append(idDelta, s.delta)
		if !s.useValues {
			idRangeOffsets = append(idRangeOffsets, 0)
		} else {
			// offset from the location of this idRangeOffsets entry
			offs := 2 * (len(segments) - i + len(glyphIDArray))
			if offs > 65535 {
				panic("too many mappings for a format 4 subtable")
			}
			idRangeOffsets = append(idRangeOffsets, uint16(offs))
			for c := uint32(s.first); c <= uint32(s.last); c++ {
				glyphIDArray = append(glyphIDArray, uint16(cmap[uint16(c)]))
			}
		}
	}

	segCount := len(startCode)
	sel := bits.Len(uint(segCount))
	header := &cmapFormat4{
		Format:        4,
		Length:        uint16(2 * (8 + 4*segCount + len(glyphIDArray))),
		Language:      language,
		SegCountX2:    uint16(2 * segCount),
		SearchRange:   1 << sel,
		EntrySelector: uint16(sel - 1),
	}
	header.RangeShift = header.SegCountX2 - header.SearchRange

	endCode = append(endCode, 0) // the reservedPad field

	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, header)
	for _, x := range [][]uint16{endCode, startCode, idDelta, idRangeOffsets, glyphIDArray} {
		_ = binary.Write(buf, binary.BigEndian, x)
	}
	return buf.Bytes()
}

// A segment covers the codes first to last, inclusive.  Codes are
// either mapped by adding delta (modulo 65536), or, if useValues is
// set, listed individually in the glyph ID array.
type segment struct {
	first     uint16
	last      uint16
	delta     uint16
	useValues bool
}

// segmenter enumerates candidate segments for the shortest path
// search.  The vertex v is the next code still to be covered; the
// search ends at vertex 0x10000.
type segmenter Format4

func (sg segmenter) AppendEdges(ee []*segment, v uint32) []*segment {
	if v > 0xFFFF {
		return ee
	}

	// unmapped codes before the next segment cost nothing
	start := v
	for start < 0xFFFF && sg[uint16(start)] == 0 {
		start++
	}

	delta := uint16(sg[uint16(start)]) - uint16(start)
	if start == 0xFFFF {
		// the required final segment
		return append(ee, &segment{first: 0xFFFF, last: 0xFFFF, delta: delta})
	}

	// greedily extend a delta-mapped segment
	end := start + 1
	for end < 0xFFFF && uint16(sg[uint16(end)])-uint16(end) == delta {
		end++
	}
	ee = append(ee, &segment{first: uint16(start), last: uint16(end - 1), delta: delta})
	if end-start >= 4 || start == 0xFFFE {
		return ee
	}

	// otherwise, also offer a segment which lists glyph IDs
	// explicitly; it ends where a run of five codes could be covered
	// more cheaply by a delta segment or dropped altogether
	prevDelta := delta
	numDelta := 1
	numNotdef := 0
	end = start + 1
	for end < 0xFFFF {
		gid := sg[uint16(end)]

		thisDelta := uint16(gid) - uint16(end)
		if thisDelta == prevDelta {
			numDelta++
		} else {
			prevDelta = thisDelta
			numDelta = 1 + numNotdef
		}

		if gid == 0 {
			numNotdef++
		} else {
			numNotdef = 0
		}

		if numDelta == 5 || numNotdef == 5 {
			return append(ee, &segment{
				first:     uint16(start),
				last:      uint16(end - 5),
				useValues: true,
			})
		}

		end++
	}

	return append(ee, &segment{
		first:     uint16(start),
		last:      uint16(end - uint32(numNotdef) - 1),
		useValues: true,
	})
}

func (sg segmenter) Length(v uint32, e *segment) int {
	if e.useValues {
		return 4 + int(e.last-e.first) + 1
	}
	return 4
}

func (sg segmenter) To(v uint32, e *segment) uint32 {
	return uint32(e.last) + 1
}

type cmapFormat4 struct {
	Format        uint16
	Length        uint16
	Language      uint16
	SegCountX2    uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
	// endCode        []uint16   end code for each segment, last = 0xFFFF
	// reservedPad    uint16     (0)
	// startCode      []uint16   start code for each segment
	// idDelta        []uint16   delta for all codes in the segment
	// idRangeOffsets []uint16   offset into glyphIDArray, or 0
	// glyphIDArray   []uint16   glyph ID array
}
