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

// C64ttf converts Commodore 64 character set ROM images into
// TrueType fonts.
//
// The program reads one or two 64C character set files, maps the
// bitmaps to named glyphs with Unicode code points, vectorizes every
// glyph, and writes a complete .ttf file.  Optionally a PNG preview
// sheet of the loaded character sets can be written as well.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/user"
	"time"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/c64ttf"
	"seehuhn.de/go/c64ttf/charset"
)

func main() {
	lower := flag.String("l", "", "input 64C file with lowercase and uppercase characters")
	upper := flag.String("u", "", "input 64C file with uppercase and graphics characters")
	output := flag.String("o", "", "output file name (default is the font name + \".ttf\")")
	addASCII := flag.Bool("m", false, "add non-PETSCII characters for ASCII compatibility")
	addDanish := flag.Bool("i", false, "add special Danish characters")
	addAll := flag.Bool("a", false, "map the complete character sets at U+EE00 and U+EF00")
	pixelSize := flag.Int("p", 256, "pixel size in font design units")
	descent := flag.Int("d", 1, "descent below the baseline in pixels")
	fontName := flag.String("n", "C64", "font family name")
	year := flag.Int("y", time.Now().Year(), "copyright year")
	creator := flag.String("c", defaultCreator(), "font creator")
	version := flag.String("v", "1.00", "font version number")
	preview := flag.String("png", "", "write a PNG preview sheet to this file")
	flag.Parse()

	if *lower == "" && *upper == "" {
		fmt.Fprintln(os.Stderr, "error: no input files given")
		flag.Usage()
		os.Exit(1)
	}

	outputName := *output
	if outputName == "" {
		outputName = *fontName + ".ttf"
	}

	var upperBitmaps, lowerBitmaps, allBitmaps [][]byte
	if *upper != "" {
		bitmaps, err := loadCharFile(*upper)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		upperBitmaps = bitmaps
		allBitmaps = append(allBitmaps, bitmaps...)
	}
	if *lower != "" {
		bitmaps, err := loadCharFile(*lower)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		lowerBitmaps = bitmaps
		allBitmaps = append(allBitmaps, bitmaps...)
	}

	glyphs := collectGlyphs(upperBitmaps, lowerBitmaps, *addASCII, *addDanish, *addAll)

	opt := &c64ttf.Options{
		FamilyName:  *fontName,
		Creator:     *creator,
		FontVersion: *version,
		Year:        *year,
		PixelSize:   *pixelSize,
		Descent:     *descent,
	}
	font, err := c64ttf.New(glyphs, opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = font.WriteFile(outputName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%d glyphs written to %s\n", len(glyphs), outputName)

	if *preview != "" {
		err = writePreview(*preview, allBitmaps)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("preview sheet written to %s\n", *preview)
	}
}

// collectGlyphs assembles the glyph set for the font.  The raw
// character sets are mapped last, so that bitmaps which already occur
// as named glyphs merge into these instead of getting a second
// outline.
func collectGlyphs(upperBitmaps, lowerBitmaps [][]byte, addASCII, addDanish, addAll bool) map[string]charset.Glyph {
	glyphs := charset.Builtin()
	maps.Copy(glyphs, charset.Map(upperBitmaps, charset.Uppercase))
	maps.Copy(glyphs, charset.Map(lowerBitmaps, charset.Lowercase))
	if addASCII {
		maps.Copy(glyphs, charset.MissingASCII())
	}
	if addDanish {
		maps.Copy(glyphs, charset.Danish())
	}
	if addAll {
		maps.Copy(glyphs, charset.MapAll(glyphs, upperBitmaps, 0xEE00))
		maps.Copy(glyphs, charset.MapAll(glyphs, lowerBitmaps, 0xEF00))
	}
	return glyphs
}

func loadCharFile(fileName string) ([][]byte, error) {
	fmt.Printf("processing input file %s ...\n", fileName)
	bitmaps, err := charset.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	fmt.Printf("%d glyphs loaded\n", len(bitmaps))
	return bitmaps, nil
}

func defaultCreator() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "c64ttf"
}
