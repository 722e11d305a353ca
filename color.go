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
	"image/color"
	"strconv"
)

// RGB is a color with 8-bit red, green and blue channels.
// The zero value is black.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// NRGBA converts the color to the standard library representation,
// with full opacity.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex parses a color from a hex string.  Supported forms are "RGB" and
// "RRGGBB", with or without a leading '#'.
func Hex(s string) (RGB, error) {
	orig := s
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(s[i:i+1], 16, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("bitmap: invalid hex color %q", orig)
			}
			c[i] = uint8(v * 17)
		}
		return RGB{R: c[0], G: c[1], B: c[2]}, nil
	case 6:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("bitmap: invalid hex color %q", orig)
			}
			c[i] = uint8(v)
		}
		return RGB{R: c[0], G: c[1], B: c[2]}, nil
	default:
		return RGB{}, fmt.Errorf("bitmap: invalid hex color %q", orig)
	}
}
