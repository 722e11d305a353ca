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

func TestHex(t *testing.T) {
	cases := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#fff", want: White},
		{in: "fff", want: White},
		{in: "#000000", want: Black},
		{in: "#ff8000", want: RGB{R: 255, G: 128, B: 0}},
		{in: "1a2B3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{in: "#abc", want: RGB{R: 0xaa, G: 0xbb, B: 0xcc}},
		{in: "", wantErr: true},
		{in: "#ffff", wantErr: true},
		{in: "#ggg", wantErr: true},
		{in: "#12345g", wantErr: true},
	}
	for _, c := range cases {
		got, err := Hex(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("Hex(%q): expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Hex(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Hex(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNRGBA(t *testing.T) {
	c := RGB{R: 1, G: 2, B: 3}.NRGBA()
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 255 {
		t.Errorf("NRGBA = %v", c)
	}
}
