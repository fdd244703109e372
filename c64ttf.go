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

// Package c64ttf converts Commodore 64 character set bitmaps into
// TrueType fonts.  Each 8x8 pixel character is vectorized into
// closed, axis-aligned contours, and the resulting glyphs are
// assembled into a complete font file together with all required
// metadata tables.
package c64ttf

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/c64ttf/charset"
	"seehuhn.de/go/c64ttf/outline"
	"seehuhn.de/go/c64ttf/ttf"
	"seehuhn.de/go/c64ttf/ttf/cmap"
	"seehuhn.de/go/c64ttf/ttf/glyf"
	"seehuhn.de/go/c64ttf/ttf/glyph"
	"seehuhn.de/go/c64ttf/ttf/head"
	"seehuhn.de/go/c64ttf/ttf/hmtx"
	"seehuhn.de/go/c64ttf/ttf/name"
	"seehuhn.de/go/c64ttf/ttf/os2"
	"seehuhn.de/go/c64ttf/ttf/post"
)

// Options controls the metrics and metadata of a generated font.
// The zero value selects sensible defaults.
type Options struct {
	FamilyName  string // font family name (default "C64")
	Creator     string // name of the font creator (default "c64ttf")
	FontVersion string // version string, e.g. "1.00" (default "1.00")
	Year        int    // copyright year (default: the current year)

	// PixelSize is the size of one character pixel in font design
	// units (default 256).  The em square is 8 pixels.
	PixelSize int

	// Descent is the number of pixel rows below the baseline
	// (default 1).
	Descent int
}

func (opt *Options) fillDefaults() *Options {
	res := &Options{}
	if opt != nil {
		*res = *opt
	}
	if res.FamilyName == "" {
		res.FamilyName = "C64"
	}
	if res.Creator == "" {
		res.Creator = "c64ttf"
	}
	if res.FontVersion == "" {
		res.FontVersion = "1.00"
	}
	if res.Year == 0 {
		res.Year = time.Now().Year()
	}
	if res.PixelSize == 0 {
		res.PixelSize = 256
	}
	if res.Descent == 0 {
		res.Descent = 1
	}
	return res
}

// New vectorizes the given character bitmaps and assembles them into
// a TrueType font.  Glyphs are ordered by name, so that the same
// input always yields the same font file.
//
// If a bitmap cannot be vectorized, the returned error names the
// offending glyph; the caller may remove it from the map and try
// again.
func New(glyphs map[string]charset.Glyph, opt *Options) (*ttf.Font, error) {
	opt = opt.fillDefaults()
	size := 8 * opt.PixelSize
	descent := opt.Descent * opt.PixelSize

	names := maps.Keys(glyphs)
	slices.Sort(names)

	gid := make(map[string]glyph.ID, len(names))
	for i, glyphName := range names {
		gid[glyphName] = glyph.ID(i)
	}

	var gg glyf.Glyphs
	widths := make([]uint16, len(names))
	extents := make([]funit.Rect16, len(names))
	maxpInfo := &ttf.MaxpInfo{NumGlyphs: len(names)}
	var fontBBox funit.Rect16
	for i, glyphName := range names {
		contours, err := outline.Trace(glyphs[glyphName].Bitmap, opt.PixelSize, opt.Descent)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", glyphName, err)
		}

		var g glyf.Glyph
		for _, c := range contours {
			gc := make(glyf.Contour, len(c))
			for j, p := range c {
				gc[j] = glyf.Point{X: funit.Int16(p.X), Y: funit.Int16(p.Y)}
			}
			g = append(g, gc)
		}
		gg = append(gg, g)

		if glyphName != ".null" {
			widths[i] = uint16(size)
		}
		extents[i] = g.Extent()
		fontBBox.Extend(extents[i])

		if n := g.NumPoints(); n > maxpInfo.MaxPoints {
			maxpInfo.MaxPoints = n
		}
		if len(g) > maxpInfo.MaxContours {
			maxpInfo.MaxContours = len(g)
		}
	}
	glyfEnc := gg.Encode()

	unicode := cmap.Format4{}
	for glyphName, g := range glyphs {
		for _, r := range g.Runes {
			if r > 0xFFFF {
				continue
			}
			unicode[uint16(r)] = gid[glyphName]
		}
	}

	notdef := gid[".notdef"]
	macRoman := &cmap.Format0{}
	for code := 0; code < 256; code++ {
		id, ok := gid[charset.MacRoman[byte(code)]]
		if !ok || id > 0xFF {
			id = notdef
		}
		macRoman.GlyphIDArray[code] = uint8(id)
	}

	cmapTable := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: unicode,
		{PlatformID: 1, EncodingID: 0}: macRoman,
		{PlatformID: 3, EncodingID: 1}: unicode,
	}

	now := time.Now()
	headInfo := &head.Info{
		FontRevision:   makeVersion(opt.FontVersion),
		UnitsPerEm:     uint16(size),
		Created:        now,
		Modified:       now,
		FontBBox:       fontBBox,
		LowestRecPPEM:  8,
		HasLongOffsets: glyfEnc.LocaFormat != 0,
	}

	hmtxInfo := &hmtx.Info{
		Widths:         widths,
		GlyphExtents:   extents,
		Ascent:         funit.Int16(size - descent),
		Descent:        funit.Int16(-descent),
		CaretSlopeRise: 1,
	}

	os2Info := &os2.Info{
		WeightClass:   400,
		WidthClass:    5,
		IsRegular:     true,
		Ascent:        funit.Int16(size - descent),
		Descent:       funit.Int16(-descent),
		CapHeight:     funit.Int16(size - descent),
		XHeight:       funit.Int16(6*opt.PixelSize - descent),
		AvgGlyphWidth: int16(size),

		SubscriptXSize:     int16(size),
		SubscriptYSize:     int16(size / 2),
		SubscriptYOffset:   int16(descent),
		SuperscriptXSize:   int16(size / 2),
		SuperscriptYSize:   int16(size / 2),
		SuperscriptYOffset: int16(size / 2),
		StrikeoutSize:      int16(opt.PixelSize),
		StrikeoutPosition:  int16(size/2 - descent),

		FamilyClass: 0x080A, // sans serif, matrix
		Panose:      [10]byte{2, 1, 6, 9, 6, 2, 2, 8, 1, 1},
		Vendor:      "C=64",

		// Basic Latin, Latin-1, Greek, general punctuation, arrows,
		// mathematical operators, box drawing, block elements,
		// geometric shapes, misc symbols, dingbats, private use area
		UnicodeRange:   [4]uint32{0x80000083, 0x1000F860, 0, 0},
		CodePageRange1: 1 << 0,        // Latin 1 (cp1252)
		CodePageRange2: 1<<30 | 1<<31, // cp850 and cp437
		BreakChar:      0x20,
	}

	fullName := opt.FamilyName + " Regular"
	nameTable := &name.Table{
		Copyright:      fmt.Sprintf("Copyright %d %s", opt.Year, opt.Creator),
		Family:         opt.FamilyName,
		Subfamily:      "Regular",
		Identifier:     opt.Creator + " " + fullName,
		FullName:       fullName,
		Version:        "Version " + opt.FontVersion,
		PostScriptName: makePostScriptName(opt.FamilyName, opt.Creator),
	}

	postInfo := &post.Info{
		UnderlinePosition:  int16(-descent),
		UnderlineThickness: int16(opt.PixelSize),
		IsFixedPitch:       true,
		Names:              names,
	}

	hheaData, hmtxData := hmtxInfo.Encode()

	font := ttf.NewFont()
	font.Set("glyf", glyfEnc.GlyfData)
	font.Set("loca", glyfEnc.LocaData)
	font.Set("maxp", maxpInfo.Encode())
	font.Set("head", headInfo.Encode())
	font.Set("hhea", hheaData)
	font.Set("hmtx", hmtxData)
	font.Set("OS/2", os2Info.Encode(unicode))
	font.Set("cmap", cmapTable.Encode())
	font.Set("name", nameTable.Encode())
	font.Set("post", postInfo.Encode())

	return font, nil
}

// makeVersion converts a version string like "1.25" into 16.16 fixed
// point format.  Unparseable strings map to version 1.0.
func makeVersion(s string) head.Version {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v >= 32768 {
		return 0x00010000
	}
	return head.Version(math.Round(v * 65536))
}

// makePostScriptName builds name ID 6.  Only printable ASCII
// characters of the family name can be used.
func makePostScriptName(familyName, creator string) string {
	var b []byte
	for _, c := range []byte(familyName) {
		if c > 32 && c < 127 {
			b = append(b, c)
		}
	}
	return string(b) + "-" + creator
}
