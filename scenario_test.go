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
	"bytes"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/bitmap/testcases"
)

// scenarioShapes maps testcase shape names to shapes.
var scenarioShapes = map[string]Shape{
	"rectangle":   Rectangle,
	"circle":      Circle,
	"triangle":    Triangle,
	"arrow_up":    ArrowUp,
	"arrow_down":  ArrowDown,
	"arrow_left":  ArrowLeft,
	"arrow_right": ArrowRight,
}

// renderScenario applies a declarative test case to a fresh buffer.
func renderScenario(t *testing.T, tc testcases.TestCase) *Buffer {
	t.Helper()
	b := mustNew(t, tc.Width, tc.Height)
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Clear:
			b.Clear(rgbOf(op.Color))
		case testcases.Line:
			b.Line(op.X1, op.Y1, op.X2, op.Y2,
				LineStyle{Color: rgbOf(op.Color), Precision: op.Precision})
		case testcases.Shape:
			shape, ok := scenarioShapes[op.Kind]
			if !ok {
				t.Fatalf("unknown shape %q", op.Kind)
			}
			b.Draw(shape, op.X, op.Y, op.W, op.H,
				LineStyle{Color: rgbOf(op.Color), Precision: op.Precision})
		case testcases.Fill:
			b.Fill(op.X, op.Y, op.W, op.H, rgbOf(op.Color))
		case testcases.Text:
			b.Text(Builtin(), op.Text, op.X, op.Y, TextStyle{
				Foreground: rgbPtrOf(op.Foreground),
				Background: rgbPtrOf(op.Background),
				Wrap:       op.Wrap,
			})
		default:
			t.Fatalf("unknown op type %T", op)
		}
	}
	return b
}

func rgbOf(c testcases.Color) RGB {
	return RGB{R: c[0], G: c[1], B: c[2]}
}

func rgbPtrOf(c *testcases.Color) *RGB {
	if c == nil {
		return nil
	}
	rgb := rgbOf(*c)
	return &rgb
}

// TestScenarios renders every declarative test case and checks basic
// invariants: rendering succeeds, is deterministic, and at least one
// pixel differs from the initial state.
func TestScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				first := renderScenario(t, tc)
				second := renderScenario(t, tc)

				if !bytes.Equal(first.ToImage().Pix, second.ToImage().Pix) {
					t.Error("rendering is not deterministic")
				}

				if len(tc.Ops) > 0 {
					unchanged := true
					blank := mustNew(t, tc.Width, tc.Height)
					if !bytes.Equal(first.ToImage().Pix, blank.ToImage().Pix) {
						unchanged = false
					}
					if unchanged {
						t.Error("scenario left the canvas blank")
					}
				}
			})
		}
	}
}
