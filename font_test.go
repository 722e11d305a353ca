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

import "testing"

// testFont builds a synthetic atlas with 2×2 glyph cells.  All cells are
// black except:
//
//   - 'A': white at cell (0,0), gray at cell (1,1)
//   - 'B': white at cell (0,0)
//   - fallback cell: white at (0,0) and (1,1)
func testFont(t *testing.T) *Font {
	t.Helper()
	atlas := mustNew(t, glyphCount*2, 2)

	gray := RGB{R: 100, G: 100, B: 100}
	aOrigin := int('A'-glyphFirst) * 2
	atlas.Set(aOrigin, 0, White)
	atlas.Set(aOrigin+1, 1, gray)

	bOrigin := int('B'-glyphFirst) * 2
	atlas.Set(bOrigin, 0, White)

	fbOrigin := (glyphCount - 1) * 2
	atlas.Set(fbOrigin, 0, White)
	atlas.Set(fbOrigin+1, 1, White)

	f, err := NewFont(atlas)
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	return f
}

func TestNewFontCellSize(t *testing.T) {
	f := testFont(t)
	if f.GlyphWidth() != 2 || f.GlyphHeight() != 2 {
		t.Errorf("glyph cell is %dx%d, want 2x2", f.GlyphWidth(), f.GlyphHeight())
	}
}

func TestNewFontTooNarrow(t *testing.T) {
	atlas := mustNew(t, glyphCount-1, 8)
	if _, err := NewFont(atlas); err == nil {
		t.Error("NewFont accepted an atlas with zero-width cells")
	}
}

func TestGlyphOrigin(t *testing.T) {
	f := testFont(t)
	cases := []struct {
		code byte
		want int
	}{
		{' ', 0},
		{'A', int('A'-glyphFirst) * 2},
		{'~', (glyphCount - 2) * 2},
		{0x1f, (glyphCount - 1) * 2}, // below range: fallback
		{0x7f, (glyphCount - 1) * 2}, // DEL: fallback
		{0xff, (glyphCount - 1) * 2},
	}
	for _, c := range cases {
		if got := f.glyphOrigin(c.code); got != c.want {
			t.Errorf("glyphOrigin(%#02x) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestBuiltinFont(t *testing.T) {
	f := Builtin()
	if f.GlyphWidth() != 7 || f.GlyphHeight() != 13 {
		t.Errorf("builtin glyph cell is %dx%d, want 7x13",
			f.GlyphWidth(), f.GlyphHeight())
	}
	if Builtin() != f {
		t.Error("Builtin is not cached")
	}

	// the letter A must produce foreground pixels
	b := mustNew(t, 20, 20)
	b.Text(f, "A", 0, 0, DefaultTextStyle())
	if len(setPixels(b)) == 0 {
		t.Error("builtin font drew no pixels for 'A'")
	}

	// the fallback cell is a solid block, much denser than any letter
	fb := mustNew(t, 20, 20)
	fb.Text(f, "\x80", 0, 0, DefaultTextStyle())
	if len(setPixels(fb)) <= len(setPixels(b)) {
		t.Error("fallback glyph not denser than a letter glyph")
	}
}
