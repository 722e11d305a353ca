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

// Package testcases defines declarative drawing scenarios shared by the
// rasterizer tests and the bmpdraw demo command.  The package is
// deliberately self-contained so that it can be imported from anywhere
// without depending on the rasterizer itself.
package testcases

// TestCase defines a single drawing scenario.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Ops    []Op   // operations, applied in order
}

// Op is one drawing operation.
type Op interface {
	isOp()
}

// Color is an RGB triple.
type Color [3]uint8

// Clear fills the whole canvas.
type Clear struct {
	Color Color
}

func (Clear) isOp() {}

// Line draws a point-sampled segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          Color
	Precision      float64
}

func (Line) isOp() {}

// Shape draws one of the built-in shapes into a rectangle.
// Kind is one of "rectangle", "circle", "triangle", "arrow_up",
// "arrow_down", "arrow_left", "arrow_right".
type Shape struct {
	Kind       string
	X, Y, W, H float64
	Color      Color
	Precision  float64
}

func (Shape) isOp() {}

// Fill fills an axis-aligned rectangle.
type Fill struct {
	X, Y, W, H int
	Color      Color
}

func (Fill) isOp() {}

// Text lays out a string with the builtin font.
// A nil Foreground or Background leaves the corresponding glyph pixels
// transparent.
type Text struct {
	Text       string
	X, Y       int
	Foreground *Color
	Background *Color
	Wrap       bool
}

func (Text) isOp() {}

// Convenience colors for case tables.
var (
	black = Color{0, 0, 0}
	white = Color{255, 255, 255}
	red   = Color{255, 0, 0}
	green = Color{0, 255, 0}
	blue  = Color{0, 0, 255}
)

// ptr is a helper for optional colors in case tables.
func ptr(c Color) *Color {
	return &c
}
