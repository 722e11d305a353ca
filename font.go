// seehuhn.de/go/bitmap - a software rasterizer for RGB pixel buffers
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

package bitmap

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph atlas layout: a horizontal strip of fixed-width cells covering
// the printable ASCII range, with the last cell reserved as the fallback
// glyph for characters outside it.
const (
	glyphCount = 96   // character codes 0x20–0x7F
	glyphFirst = 0x20 // first character code in the atlas
	glyphLast  = 0x7e // last printable character code
)

// Font indexes a glyph atlas buffer for [Buffer.Text].
//
// The atlas is a horizontal strip of 96 equal-width cells.  Cell pixels
// that are pure white are treated as glyph foreground, pure black as
// glyph background; any other color is copied to the destination
// unchanged.
type Font struct {
	atlas       *Buffer
	glyphWidth  int
	glyphHeight int
}

// NewFont wraps a glyph atlas buffer.  The glyph cell width is the atlas
// width divided by 96 and the cell height is the atlas height; atlases
// narrower than 96 pixels would produce zero-width cells and are
// rejected.
func NewFont(atlas *Buffer) (*Font, error) {
	w := atlas.Width() / glyphCount
	if w == 0 {
		return nil, fmt.Errorf("bitmap: atlas width %d gives zero-width glyph cells", atlas.Width())
	}
	return &Font{
		atlas:       atlas,
		glyphWidth:  w,
		glyphHeight: atlas.Height(),
	}, nil
}

// GlyphWidth returns the width of one glyph cell in pixels.
func (f *Font) GlyphWidth() int { return f.glyphWidth }

// GlyphHeight returns the height of one glyph cell in pixels.
func (f *Font) GlyphHeight() int { return f.glyphHeight }

// glyphOrigin returns the x position of the atlas cell for a character
// code.  Codes outside the printable ASCII range map to the fallback
// cell.
func (f *Font) glyphOrigin(code byte) int {
	idx := glyphCount - 1 // fallback glyph
	if code >= glyphFirst && code <= glyphLast {
		idx = int(code - glyphFirst)
	}
	return idx * f.glyphWidth
}

var (
	builtinOnce sync.Once
	builtinFont *Font
)

// Builtin returns a font rendered from the fixed 7x13 face shipped with
// golang.org/x/image, so text can be drawn without loading an atlas from
// a file.  The returned font is shared; treat it as read-only.
func Builtin() *Font {
	builtinOnce.Do(func() {
		builtinFont = renderBuiltinAtlas()
	})
	return builtinFont
}

// renderBuiltinAtlas draws the printable ASCII range into a white-on-black
// atlas strip using basicfont.Face7x13.
func renderBuiltinAtlas() *Font {
	face := basicfont.Face7x13
	cellW := face.Advance
	cellH := face.Height

	img := image.NewRGBA(image.Rect(0, 0, glyphCount*cellW, cellH))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}
	for code := glyphFirst; code <= glyphLast; code++ {
		d.Dot = fixed.P((code-glyphFirst)*cellW, face.Ascent)
		d.DrawString(string(rune(code)))
	}

	// The fallback cell gets a solid block with a one pixel margin.
	fallback := image.Rect((glyphCount-1)*cellW+1, 1, glyphCount*cellW-1, cellH-1)
	draw.Draw(img, fallback, image.White, image.Point{}, draw.Src)

	f, err := NewFont(FromImage(img))
	if err != nil {
		// cellW is a face constant, so the atlas is always wide enough
		panic(err)
	}
	Logger().Debug("rendered builtin font atlas",
		"glyphWidth", f.glyphWidth, "glyphHeight", f.glyphHeight)
	return f
}
