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

// TextStyle configures [Buffer.Text].
type TextStyle struct {
	// Foreground replaces pure white atlas pixels.  Nil leaves the
	// destination pixel untouched (transparent foreground).
	Foreground *RGB

	// Background replaces pure black atlas pixels.  Nil leaves the
	// destination pixel untouched (transparent background).
	Background *RGB

	// Wrap moves the cursor to the next line before a glyph that would
	// extend past the destination's right edge.
	Wrap bool
}

// DefaultTextStyle returns the default style: white foreground,
// transparent background, no word wrap.
func DefaultTextStyle() TextStyle {
	fg := White
	return TextStyle{Foreground: &fg}
}

// Text lays out a byte string onto the buffer using f's glyph atlas,
// left to right and top to bottom, starting at the anchor (x, y).
//
// The characters '\n' and '\r' move the cursor to the start of the next
// line without drawing a glyph.  Bytes outside the printable ASCII range
// draw the fallback glyph.  All glyph pixel writes are clipped against
// the buffer bounds.
func (b *Buffer) Text(f *Font, text string, x, y int, style TextStyle) {
	xOffset := x
	yOffset := y

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' || c == '\r' {
			xOffset = x
			yOffset += f.glyphHeight
			continue
		}

		if style.Wrap && xOffset+f.glyphWidth > b.width {
			xOffset = x
			yOffset += f.glyphHeight
		}

		b.drawGlyph(f, c, xOffset, yOffset, style)
		xOffset += f.glyphWidth
	}
}

// drawGlyph copies one atlas cell to (x, y), substituting foreground and
// background colors.
func (b *Buffer) drawGlyph(f *Font, code byte, x, y int, style TextStyle) {
	origin := f.glyphOrigin(code)
	for gy := 0; gy < f.glyphHeight; gy++ {
		for gx := 0; gx < f.glyphWidth; gx++ {
			c := f.atlas.Get(origin+gx, gy)
			switch c {
			case White:
				if style.Foreground != nil {
					b.Set(x+gx, y+gy, *style.Foreground)
				}
			case Black:
				if style.Background != nil {
					b.Set(x+gx, y+gy, *style.Background)
				}
			default:
				// decorative atlas pixels are copied unchanged
				b.Set(x+gx, y+gy, c)
			}
		}
	}
}
