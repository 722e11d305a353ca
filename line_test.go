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
	"testing"
)

// setPixels returns the coordinates of all non-black pixels.
func setPixels(b *Buffer) map[[2]int]RGB {
	got := make(map[[2]int]RGB)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if c := b.Get(x, y); c != (RGB{}) {
				got[[2]int{x, y}] = c
			}
		}
	}
	return got
}

func TestLineHorizontal(t *testing.T) {
	b := mustNew(t, 10, 10)
	b.Line(0, 0, 4, 0, DefaultLineStyle())

	// length 4 at precision 1 gives 4 samples at x = 0..3, y = 0
	got := setPixels(b)
	want := map[[2]int]RGB{
		{0, 0}: White, {1, 0}: White, {2, 0}: White, {3, 0}: White,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d pixels, want %d: %v", len(got), len(want), got)
	}
	for k := range want {
		if got[k] != White {
			t.Errorf("pixel %v = %v, want white", k, got[k])
		}
	}
}

func TestLinePrecisionClamp(t *testing.T) {
	// precision below the minimum is clamped to 0.1, so a length-4
	// segment yields ceil(0.4) = 1 sample
	b := mustNew(t, 10, 10)
	b.Line(0, 0, 4, 0, LineStyle{Color: White, Precision: 0.001})

	got := setPixels(b)
	if len(got) != 1 {
		t.Fatalf("got %d pixels, want 1: %v", len(got), got)
	}
	if got[[2]int{0, 0}] != White {
		t.Errorf("expected single sample at the start point, got %v", got)
	}

	// precision above the maximum is clamped to 2; the extra samples
	// land on the same pixels as precision 1
	b2 := mustNew(t, 10, 10)
	b2.Line(0, 0, 4, 0, LineStyle{Color: White, Precision: 100})
	if got := setPixels(b2); len(got) != 4 {
		t.Errorf("clamped dense line covers %d pixels, want 4", len(got))
	}
}

func TestLineZeroLength(t *testing.T) {
	// a zero-length segment draws a single point rather than dividing
	// by zero
	b := mustNew(t, 10, 10)
	b.Line(2, 3, 2, 3, DefaultLineStyle())

	got := setPixels(b)
	if len(got) != 1 || got[[2]int{2, 3}] != White {
		t.Fatalf("zero-length line drew %v, want single point at (2, 3)", got)
	}
}

func TestLineDiagonalMonotone(t *testing.T) {
	b := mustNew(t, 32, 32)
	b.Line(0, 0, 31, 31, LineStyle{Color: White, Precision: 2})

	// every diagonal pixel must be covered at precision 2
	for i := 0; i < 31; i++ {
		if b.Get(i, i) != White {
			t.Errorf("diagonal pixel (%d, %d) not set", i, i)
		}
	}
}

func TestLineClipped(t *testing.T) {
	b := mustNew(t, 8, 8)
	b.Line(-10, 4, 20, 4, DefaultLineStyle())

	for coord := range setPixels(b) {
		if coord[1] != 4 {
			t.Errorf("unexpected pixel at %v", coord)
		}
	}
	// in-range part of the row is drawn
	if b.Get(3, 4) != White {
		t.Errorf("in-bounds part of clipped line not drawn")
	}
	// endpoints far outside must not wrap around
	if b.Get(0, 0) != (RGB{}) || b.Get(7, 7) != (RGB{}) {
		t.Errorf("clipped line wrote outside its row")
	}
}

func TestLineNaNPrecision(t *testing.T) {
	b := mustNew(t, 8, 8)
	b.Line(0, 0, 4, 0, LineStyle{Color: White, Precision: math.NaN()})
	if len(setPixels(b)) == 0 {
		t.Error("NaN precision drew nothing; want clamp to minimum")
	}
}
