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

// Package ttf assembles TrueType font files from their tables.
package ttf

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/bits"
	"os"
	"sort"

	"seehuhn.de/go/c64ttf/ttf/head"
)

// Font is a collection of TrueType tables, ready to be written to a
// font file.
type Font struct {
	tables map[string][]byte
}

// NewFont returns an empty font.
func NewFont() *Font {
	return &Font{
		tables: make(map[string][]byte),
	}
}

// Set stores the binary data for the table with the given tag,
// replacing any previous contents.  The tag must be 4 bytes long.
func (f *Font) Set(tag string, data []byte) {
	if len(tag) != 4 {
		panic("invalid table tag " + tag)
	}
	f.tables[tag] = data
}

// Table returns the binary data for the table with the given tag, or
// nil if the table is not present.
func (f *Font) Table(tag string) []byte {
	return f.tables[tag]
}

// Write writes the font to the io.Writer w and returns the number of
// bytes written.  The checkSumAdjustment field of the "head" table,
// if present, is filled in.
func (f *Font) Write(w io.Writer) (int64, error) {
	tags := f.tableOrder()
	numTables := len(tags)

	// Clear any checkSumAdjustment left over from a previous call, so
	// that all checksums below are computed with the field zeroed.
	if headData, ok := f.tables["head"]; ok && len(headData) >= 12 {
		copy(headData[8:12], []byte{0, 0, 0, 0})
	}

	type record struct {
		tag      string
		checkSum uint32
		offset   uint32
		length   uint32
	}

	var totalSum uint32
	records := make([]record, numTables)
	offset := uint32(12 + 16*numTables)
	for i, tag := range tags {
		body := f.tables[tag]
		sum := checksum(body)
		records[i] = record{
			tag:      tag,
			checkSum: sum,
			offset:   offset,
			length:   uint32(len(body)),
		}
		totalSum += sum
		offset += 4 * ((uint32(len(body)) + 3) / 4)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].tag < records[j].tag
	})

	// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#table-directory
	sel := bits.Len(uint(numTables)) - 1
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, scalerTypeTrueType)
	_ = binary.Write(buf, binary.BigEndian, uint16(numTables))
	_ = binary.Write(buf, binary.BigEndian, uint16(1<<(sel+4)))
	_ = binary.Write(buf, binary.BigEndian, uint16(sel))
	_ = binary.Write(buf, binary.BigEndian, uint16(16*(numTables-1<<sel)))
	for _, rec := range records {
		buf.WriteString(rec.tag)
		_ = binary.Write(buf, binary.BigEndian, rec.checkSum)
		_ = binary.Write(buf, binary.BigEndian, rec.offset)
		_ = binary.Write(buf, binary.BigEndian, rec.length)
	}
	headerBytes := buf.Bytes()
	totalSum += checksum(headerBytes)

	if headData, ok := f.tables["head"]; ok {
		head.PatchChecksum(headData, totalSum)
	}

	var totalSize int64
	n, err := w.Write(headerBytes)
	if err != nil {
		return 0, err
	}
	totalSize += int64(n)

	var pad [3]byte
	for _, tag := range tags {
		body := f.tables[tag]
		n, err := w.Write(body)
		if err != nil {
			return totalSize, err
		}
		totalSize += int64(n)
		if k := n % 4; k != 0 {
			l, err := w.Write(pad[:4-k])
			if err != nil {
				return totalSize, err
			}
			totalSize += int64(l)
		}
	}

	return totalSize, nil
}

// WriteFile writes the font to the named file.
func (f *Font) WriteFile(name string) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// tableOrder returns the tags of the present tables, in the order the
// table bodies are stored in the file.
// https://docs.microsoft.com/en-us/typography/opentype/spec/recom#optimized-table-ordering
func (f *Font) tableOrder() []string {
	var tags []string
	done := make(map[string]bool)
	for _, tag := range []string{
		"head", "hhea", "maxp", "OS/2", "hmtx", "cmap",
		"fpgm", "prep", "cvt ", "loca", "glyf", "name", "post",
	} {
		done[tag] = true
		if _, ok := f.tables[tag]; ok {
			tags = append(tags, tag)
		}
	}
	extraPos := len(tags)
	for tag := range f.tables {
		if !done[tag] {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags[extraPos:])
	return tags
}

const scalerTypeTrueType uint32 = 0x00010000

// checksum computes the checksum of a table, zero-padded to a
// multiple of four bytes.
func checksum(data []byte) uint32 {
	var sum uint32
	n := len(data) / 4 * 4
	for i := 0; i < n; i += 4 {
		sum += binary.BigEndian.Uint32(data[i : i+4])
	}
	if n < len(data) {
		var tail [4]byte
		copy(tail[:], data[n:])
		sum += binary.BigEndian.Uint32(tail[:])
	}
	return sum
}
