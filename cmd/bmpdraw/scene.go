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

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/bitmap"
	"seehuhn.de/go/bitmap/testcases"
)

// scene is the TOML representation of a drawing scene.
//
// Example:
//
//	width = 64
//	height = 64
//
//	[[op]]
//	kind = "clear"
//	color = "#000"
//
//	[[op]]
//	kind = "line"
//	x1 = 0.0
//	y1 = 0.0
//	x2 = 63.0
//	y2 = 63.0
//	color = "#fff"
type scene struct {
	Width  int       `toml:"width"`
	Height int       `toml:"height"`
	Ops    []sceneOp `toml:"op"`
}

// sceneOp is one drawing operation.  Kind selects which of the remaining
// fields are meaningful.
type sceneOp struct {
	Kind string `toml:"kind"` // clear, line, shape, fill, text

	// line endpoints
	X1 float64 `toml:"x1"`
	Y1 float64 `toml:"y1"`
	X2 float64 `toml:"x2"`
	Y2 float64 `toml:"y2"`

	// shape / fill / text placement
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	W float64 `toml:"w"`
	H float64 `toml:"h"`

	Shape     string  `toml:"shape"`     // shape kind, see shapeKinds
	Color     string  `toml:"color"`     // hex; empty means white
	Precision float64 `toml:"precision"` // 0 means default (1)

	Text       string `toml:"text"`
	Foreground string `toml:"foreground"` // hex; empty white, "none" transparent
	Background string `toml:"background"` // hex; empty transparent
	Wrap       bool   `toml:"wrap"`
}

// shapeKinds maps scene and testcase shape names to shapes.
var shapeKinds = map[string]bitmap.Shape{
	"rectangle":   bitmap.Rectangle,
	"circle":      bitmap.Circle,
	"triangle":    bitmap.Triangle,
	"arrow_up":    bitmap.ArrowUp,
	"arrow_down":  bitmap.ArrowDown,
	"arrow_left":  bitmap.ArrowLeft,
	"arrow_right": bitmap.ArrowRight,
}

// loadScene parses a TOML scene file.
func loadScene(path string) (*scene, error) {
	var s scene
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("scene %s: unknown key %q", path, undecoded[0])
	}
	return &s, nil
}

// render applies the scene's operations to a fresh buffer.
func (s *scene) render() (*bitmap.Buffer, error) {
	buf, err := bitmap.New(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	for i, op := range s.Ops {
		if err := op.apply(buf); err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i+1, op.Kind, err)
		}
	}
	return buf, nil
}

// apply executes one scene operation.
func (op sceneOp) apply(buf *bitmap.Buffer) error {
	switch op.Kind {
	case "clear":
		c, err := sceneColor(op.Color, bitmap.Black)
		if err != nil {
			return err
		}
		buf.Clear(*c)

	case "line":
		style, err := op.lineStyle()
		if err != nil {
			return err
		}
		buf.Line(op.X1, op.Y1, op.X2, op.Y2, style)

	case "shape":
		shape, ok := shapeKinds[op.Shape]
		if !ok {
			return fmt.Errorf("unknown shape %q", op.Shape)
		}
		style, err := op.lineStyle()
		if err != nil {
			return err
		}
		buf.Draw(shape, op.X, op.Y, op.W, op.H, style)

	case "fill":
		c, err := sceneColor(op.Color, bitmap.White)
		if err != nil {
			return err
		}
		buf.Fill(int(op.X), int(op.Y), int(op.W), int(op.H), *c)

	case "text":
		fg, err := sceneColor(op.Foreground, bitmap.White)
		if err != nil {
			return err
		}
		bg, err := sceneColor(op.Background, bitmap.RGB{})
		if err != nil {
			return err
		}
		if op.Background == "" {
			bg = nil // transparent by default
		}
		buf.Text(bitmap.Builtin(), op.Text, int(op.X), int(op.Y), bitmap.TextStyle{
			Foreground: fg,
			Background: bg,
			Wrap:       op.Wrap,
		})

	default:
		return fmt.Errorf("unknown op kind %q", op.Kind)
	}
	return nil
}

// lineStyle resolves the shared color/precision fields.
func (op sceneOp) lineStyle() (bitmap.LineStyle, error) {
	c, err := sceneColor(op.Color, bitmap.White)
	if err != nil {
		return bitmap.LineStyle{}, err
	}
	p := op.Precision
	if p == 0 {
		p = 1
	}
	return bitmap.LineStyle{Color: *c, Precision: p}, nil
}

// sceneColor parses an optional hex color.  An empty string yields the
// default, "none" yields nil (transparent).
func sceneColor(s string, def bitmap.RGB) (*bitmap.RGB, error) {
	switch s {
	case "":
		return &def, nil
	case "none":
		return nil, nil
	}
	c, err := bitmap.Hex(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// renderTestCase renders a built-in scenario from the testcases package.
func renderTestCase(tc testcases.TestCase) (*bitmap.Buffer, error) {
	buf, err := bitmap.New(tc.Width, tc.Height)
	if err != nil {
		return nil, err
	}
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Clear:
			buf.Clear(caseColor(op.Color))
		case testcases.Line:
			buf.Line(op.X1, op.Y1, op.X2, op.Y2, bitmap.LineStyle{
				Color:     caseColor(op.Color),
				Precision: op.Precision,
			})
		case testcases.Shape:
			shape, ok := shapeKinds[op.Kind]
			if !ok {
				return nil, fmt.Errorf("unknown shape %q", op.Kind)
			}
			buf.Draw(shape, op.X, op.Y, op.W, op.H, bitmap.LineStyle{
				Color:     caseColor(op.Color),
				Precision: op.Precision,
			})
		case testcases.Fill:
			buf.Fill(op.X, op.Y, op.W, op.H, caseColor(op.Color))
		case testcases.Text:
			buf.Text(bitmap.Builtin(), op.Text, op.X, op.Y, bitmap.TextStyle{
				Foreground: caseColorPtr(op.Foreground),
				Background: caseColorPtr(op.Background),
				Wrap:       op.Wrap,
			})
		default:
			return nil, fmt.Errorf("unknown op type %T", op)
		}
	}
	return buf, nil
}

func caseColor(c testcases.Color) bitmap.RGB {
	return bitmap.RGB{R: c[0], G: c[1], B: c[2]}
}

func caseColorPtr(c *testcases.Color) *bitmap.RGB {
	if c == nil {
		return nil
	}
	rgb := caseColor(*c)
	return &rgb
}
