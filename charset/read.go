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

package charset

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errTooBig = errors.New("charset: more than 256 characters in input")

// Read loads a character generator image in the .64c file format.
// The two load address bytes at the start are discarded, the
// remaining data is zero-padded to a multiple of 8 bytes and split
// into 8-byte character bitmaps, top row first.  An image with no
// character data yields a nil slice.
func Read(r io.Reader) ([][]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(data) <= 2 {
		return nil, nil
	}
	data = data[2:]
	for len(data)%8 != 0 {
		data = append(data, 0)
	}
	if len(data) > 256*8 {
		return nil, errTooBig
	}

	bitmaps := make([][]byte, len(data)/8)
	for i := range bitmaps {
		bitmaps[i] = data[8*i : 8*i+8 : 8*i+8]
	}
	return bitmaps, nil
}

// ReadFile loads the character generator image stored in the named
// file.  See [Read] for the file format.
func ReadFile(name string) ([][]byte, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	bitmaps, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return bitmaps, nil
}
