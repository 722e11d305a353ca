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

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  64,
		Height: 64,
		Ops: []Op{
			Clear{Color: black},
			Line{X1: 4, Y1: 32, X2: 60, Y2: 32, Color: white, Precision: 1},
		},
	},
	{
		Name:   "diagonal_dense",
		Width:  64,
		Height: 64,
		Ops: []Op{
			Clear{Color: black},
			Line{X1: 0, Y1: 0, X2: 63, Y2: 63, Color: green, Precision: 2},
		},
	},
	{
		Name:   "sparse_cross",
		Width:  64,
		Height: 64,
		Ops: []Op{
			Clear{Color: black},
			Line{X1: 0, Y1: 32, X2: 63, Y2: 32, Color: red, Precision: 0.1},
			Line{X1: 32, Y1: 0, X2: 32, Y2: 63, Color: red, Precision: 0.1},
		},
	},
	{
		Name:   "clipped",
		Width:  32,
		Height: 32,
		Ops: []Op{
			Clear{Color: black},
			Line{X1: -16, Y1: 16, X2: 48, Y2: 16, Color: white, Precision: 1},
		},
	},
}

var shapeCases = []TestCase{
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Ops: []Op{
			Clear{Color: black},
			Shape{Kind: "circle", X: 8, Y: 8, W: 48, H: 48, Color: white, Precision: 1},
		},
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Ops: []Op{
			Clear{Color: black},
			Shape{Kind: "triangle", X: 8, Y: 8, W: 48, H: 48, Color: blue, Precision: 1},
		},
	},
	{
		Name:   "arrows",
		Width:  128,
		Height: 32,
		Ops: []Op{
			Clear{Color: black},
			Shape{Kind: "arrow_up", X: 2, Y: 2, W: 28, H: 28, Color: white, Precision: 1},
			Shape{Kind: "arrow_down", X: 34, Y: 2, W: 28, H: 28, Color: white, Precision: 1},
			Shape{Kind: "arrow_left", X: 66, Y: 2, W: 28, H: 28, Color: white, Precision: 1},
			Shape{Kind: "arrow_right", X: 98, Y: 2, W: 28, H: 28, Color: white, Precision: 1},
		},
	},
	{
		Name:   "degenerate_flat",
		Width:  64,
		Height: 64,
		Ops: []Op{
			Clear{Color: black},
			Shape{Kind: "circle", X: 32, Y: 32, W: 0, H: 0, Color: white, Precision: 1},
		},
	},
}

var fillCases = []TestCase{
	{
		Name:   "centered_rect",
		Width:  32,
		Height: 32,
		Ops: []Op{
			Clear{Color: black},
			Fill{X: 8, Y: 8, W: 16, H: 16, Color: green},
		},
	},
	{
		Name:   "overhanging_rect",
		Width:  32,
		Height: 32,
		Ops: []Op{
			Clear{Color: white},
			Fill{X: 24, Y: 24, W: 16, H: 16, Color: red},
		},
	},
	{
		Name:   "shape_rectangle",
		Width:  32,
		Height: 32,
		Ops: []Op{
			Clear{Color: black},
			Shape{Kind: "rectangle", X: 4, Y: 4, W: 24, H: 24, Color: blue, Precision: 1},
		},
	},
}
