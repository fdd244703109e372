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

// Package cmap implements writing the "cmap" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
package cmap

import (
	"bytes"
	"sort"

	"seehuhn.de/go/c64ttf/ttf/glyph"
)

// A Subtable maps character codes of one encoding to glyph IDs.
type Subtable interface {
	// Encode returns the binary representation of the subtable.
	Encode(language uint16) []byte

	// Lookup returns the glyph ID for a character code, 0 if the
	// code is not mapped.
	Lookup(code uint32) glyph.ID

	// CodeRange returns the smallest and largest mapped code.
	CodeRange() (low, high uint32)
}

// Key selects a subtable of a cmap table.
type Key struct {
	PlatformID uint16 // platform ID
	EncodingID uint16 // platform-specific encoding ID
	Language   uint16
}

// Table contains the subtables of a cmap table.
type Table map[Key]Subtable

// Encode returns the binary representation of the cmap table.
// Subtables are sorted by platform ID, encoding ID and language, and
// subtables with identical contents are stored only once.
func (ss Table) Encode() []byte {
	keys := make([]Key, 0, len(ss))
	for key := range ss {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].PlatformID != keys[j].PlatformID {
			return keys[i].PlatformID < keys[j].PlatformID
		}
		if keys[i].EncodingID != keys[j].EncodingID {
			return keys[i].EncodingID < keys[j].EncodingID
		}
		return keys[i].Language < keys[j].Language
	})

	numTables := len(keys)
	endOfHeader := uint32(4 + 8*numTables)

	chunks := make([][]byte, numTables)
	offsets := make([]uint32, numTables)
	pos := endOfHeader
chunkLoop:
	for i, key := range keys {
		data := ss[key].Encode(key.Language)
		for j := 0; j < i; j++ {
			if bytes.Equal(data, chunks[j]) {
				offsets[i] = offsets[j]
				continue chunkLoop
			}
		}
		chunks[i] = data
		offsets[i] = pos
		pos += uint32(len(data))
	}

	res := make([]byte, 0, pos)
	res = append(res, 0, 0, byte(numTables>>8), byte(numTables))
	for i, key := range keys {
		res = append(res,
			byte(key.PlatformID>>8), byte(key.PlatformID),
			byte(key.EncodingID>>8), byte(key.EncodingID),
			byte(offsets[i]>>24), byte(offsets[i]>>16),
			byte(offsets[i]>>8), byte(offsets[i]))
	}
	for _, data := range chunks {
		res = append(res, data...)
	}
	return res
}
