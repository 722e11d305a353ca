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

package testcases

var textCases = []TestCase{
	{
		Name:   "hello",
		Width:  128,
		Height: 32,
		Ops: []Op{
			Clear{Color: black},
			Text{Text: "Hello, world!", X: 4, Y: 8, Foreground: ptr(white)},
		},
	},
	{
		Name:   "two_lines",
		Width:  96,
		Height: 48,
		Ops: []Op{
			Clear{Color: blue},
			Text{Text: "line one\nline two", X: 4, Y: 4,
				Foreground: ptr(white), Background: ptr(black)},
		},
	},
	{
		Name:   "wrapped",
		Width:  48,
		Height: 96,
		Ops: []Op{
			Clear{Color: black},
			Text{Text: "wrap around the edge", X: 0, Y: 0,
				Foreground: ptr(green), Wrap: true},
		},
	},
	{
		Name:   "fallback_glyph",
		Width:  64,
		Height: 32,
		Ops: []Op{
			Clear{Color: black},
			Text{Text: "a\tb\x80c", X: 4, Y: 8, Foreground: ptr(red)},
		},
	},
}
