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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Shape selects one of the built-in shapes for [Buffer.Draw].
type Shape int

// Supported shapes.  Rectangle is drawn as a solid fill; all other shapes
// are drawn as closed outlines.
const (
	Rectangle Shape = iota
	Circle
	Triangle
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
)

// outlineSpace is the side length of the virtual coordinate space the
// shape point tables are expressed in.
const outlineSpace = 512

// Shape outlines are stored as closed polylines in a fixed
// outlineSpace×outlineSpace virtual space; the first and last entry of
// each table are identical.  Drawing scales the table into the requested
// destination rectangle and connects consecutive points with line
// segments, so new shapes only need a new table, no new drawing code.

var circleOutline = []vec.Vec2{
	{X: 512, Y: 256}, {X: 507, Y: 306}, {X: 493, Y: 354}, {X: 469, Y: 398},
	{X: 437, Y: 437}, {X: 398, Y: 469}, {X: 354, Y: 493}, {X: 306, Y: 507},
	{X: 256, Y: 512}, {X: 206, Y: 507}, {X: 158, Y: 493}, {X: 114, Y: 469},
	{X: 75, Y: 437}, {X: 43, Y: 398}, {X: 19, Y: 354}, {X: 5, Y: 306},
	{X: 0, Y: 256}, {X: 5, Y: 206}, {X: 19, Y: 158}, {X: 43, Y: 114},
	{X: 75, Y: 75}, {X: 114, Y: 43}, {X: 158, Y: 19}, {X: 206, Y: 5},
	{X: 256, Y: 0}, {X: 306, Y: 5}, {X: 354, Y: 19}, {X: 398, Y: 43},
	{X: 437, Y: 75}, {X: 469, Y: 114}, {X: 493, Y: 158}, {X: 507, Y: 206},
	{X: 512, Y: 256},
}

var triangleOutline = []vec.Vec2{
	{X: 256, Y: 0}, {X: 512, Y: 512}, {X: 0, Y: 512}, {X: 256, Y: 0},
}

var arrowUpOutline = []vec.Vec2{
	{X: 256, Y: 0}, {X: 512, Y: 256}, {X: 384, Y: 256}, {X: 384, Y: 512},
	{X: 128, Y: 512}, {X: 128, Y: 256}, {X: 0, Y: 256}, {X: 256, Y: 0},
}

var arrowDownOutline = []vec.Vec2{
	{X: 256, Y: 512}, {X: 512, Y: 256}, {X: 384, Y: 256}, {X: 384, Y: 0},
	{X: 128, Y: 0}, {X: 128, Y: 256}, {X: 0, Y: 256}, {X: 256, Y: 512},
}

var arrowLeftOutline = []vec.Vec2{
	{X: 0, Y: 256}, {X: 256, Y: 0}, {X: 256, Y: 128}, {X: 512, Y: 128},
	{X: 512, Y: 384}, {X: 256, Y: 384}, {X: 256, Y: 512}, {X: 0, Y: 256},
}

var arrowRightOutline = []vec.Vec2{
	{X: 512, Y: 256}, {X: 256, Y: 0}, {X: 256, Y: 128}, {X: 0, Y: 128},
	{X: 0, Y: 384}, {X: 256, Y: 384}, {X: 256, Y: 512}, {X: 512, Y: 256},
}

// outlineTable returns the point table for a shape, or nil for shapes
// without one (Rectangle, unknown values).
func outlineTable(s Shape) []vec.Vec2 {
	switch s {
	case Circle:
		return circleOutline
	case Triangle:
		return triangleOutline
	case ArrowUp:
		return arrowUpOutline
	case ArrowDown:
		return arrowDownOutline
	case ArrowLeft:
		return arrowLeftOutline
	case ArrowRight:
		return arrowRightOutline
	}
	return nil
}

// Draw renders a shape into the rectangle with origin (x, y) and size
// (w, h).  Rectangle fills the area solid; all other shapes connect their
// point table entries with [Buffer.Line] calls, forwarding the style's
// precision unchanged.  Zero or negative w and h degenerate to overlapping
// or mirrored points, never to an error.  Unknown shape values draw
// nothing.
func (b *Buffer) Draw(s Shape, x, y, w, h float64, style LineStyle) {
	if s == Rectangle {
		b.Fill(int(math.Floor(x)), int(math.Floor(y)),
			int(math.Floor(w)), int(math.Floor(h)), style.Color)
		return
	}

	table := outlineTable(s)
	if table == nil {
		return
	}

	// Map the virtual space into the destination rectangle.
	m := matrix.Matrix{w / outlineSpace, 0, 0, h / outlineSpace, x, y}
	prev := transform(m, table[0])
	for _, pt := range table[1:] {
		next := transform(m, pt)
		b.Line(prev.X, prev.Y, next.X, next.Y, style)
		prev = next
	}
}

// transform applies an affine matrix to a point.
func transform(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
