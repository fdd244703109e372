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

package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"seehuhn.de/go/c64ttf/outline"
)

const (
	previewColumns = 32
	previewZoom    = 4
)

// writePreview renders the character bitmaps into a PNG sheet,
// 32 characters per row, scaled up without interpolation so that the
// pixel structure stays visible.
func writePreview(fileName string, bitmaps [][]byte) error {
	if len(bitmaps) == 0 {
		return errors.New("no character data loaded")
	}

	rows := (len(bitmaps) + previewColumns - 1) / previewColumns
	src := image.NewGray(image.Rect(0, 0, previewColumns*8, rows*8))
	for idx, rowData := range bitmaps {
		b := outline.Unpack(rowData)
		x0 := idx % previewColumns * 8
		y0 := idx / previewColumns * 8
		for y, row := range b {
			for x, set := range row {
				if set {
					// the bitmap's y axis points up
					src.SetGray(x0+x, y0+7-y, color.Gray{Y: 255})
				}
			}
		}
	}

	bounds := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0,
		bounds.Dx()*previewZoom, bounds.Dy()*previewZoom))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	fd, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = png.Encode(fd, dst)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
