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

	"seehuhn.de/go/geom/vec"
)

// LineStyle configures [Buffer.Line] and [Buffer.Draw].
type LineStyle struct {
	// Color is the pixel color for every sample on the line.
	Color RGB

	// Precision is a sample density multiplier, clamped to
	// [MinPrecision, MaxPrecision] before use.  Higher values place more,
	// closer-spaced samples along the segment.  It does not affect the
	// geometry of the line.
	Precision float64
}

// Precision bounds for line sampling.
const (
	MinPrecision = 0.1
	MaxPrecision = 2.0
)

// DefaultLineStyle returns the default style: white at precision 1.
func DefaultLineStyle() LineStyle {
	return LineStyle{Color: White, Precision: 1}
}

// clampPrecision forces p into the valid precision range.
// Out-of-range values are clamped, not rejected.
func clampPrecision(p float64) float64 {
	if p < MinPrecision || math.IsNaN(p) {
		return MinPrecision
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}

// Line draws a point-sampled straight segment from (x1, y1) to (x2, y2).
// Samples outside the buffer are silently skipped.  A zero-length segment
// draws a single point at (x1, y1).
func (b *Buffer) Line(x1, y1, x2, y2 float64, style LineStyle) {
	p := clampPrecision(style.Precision)

	d := vec.Vec2{X: x2 - x1, Y: y2 - y1}
	l := d.Length() * p
	if l == 0 {
		b.Set(int(math.Floor(x1)), int(math.Floor(y1)), style.Color)
		return
	}

	// One sample per unit of scaled length, stepped by the direction
	// vector scaled to 1/l.
	step := d.Mul(1 / l)
	pos := vec.Vec2{X: x1, Y: y1}
	n := int(math.Ceil(l))
	for i := 0; i < n; i++ {
		b.Set(int(math.Floor(pos.X)), int(math.Floor(pos.Y)), style.Color)
		pos = pos.Add(step)
	}
}
