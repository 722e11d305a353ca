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

// Fill sets every pixel in the rectangle [x, x+w) × [y, y+h) to c.
// The rectangle is clipped against the buffer bounds; parts outside are
// skipped.  Non-positive w or h fill nothing.
func (b *Buffer) Fill(x, y, w, h int, c RGB) {
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, b.width)
	y1 := min(y+h, b.height)

	for py := y0; py < y1; py++ {
		i := (py*b.width + x0) * 3
		for px := x0; px < x1; px++ {
			b.pix[i] = c.R
			b.pix[i+1] = c.G
			b.pix[i+2] = c.B
			i += 3
		}
	}
}

// Clear fills the whole buffer with c.  The zero RGB clears to black,
// the conventional clear color.
func (b *Buffer) Clear(c RGB) {
	b.Fill(0, 0, b.width, b.height, c)
}
