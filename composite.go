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

// FullExtent selects the source's full width or height when passed as a
// dimension to [Buffer.Composite].
const FullExtent = -1

// Composite copies the w×h region at the source's origin into b, with
// its top-left corner at (x, y).  Passing [FullExtent] for w or h selects
// the source's full corresponding dimension; other values are clamped to
// [FullExtent, source dimension].  Destination pixels outside b are
// skipped.
//
// The source is snapshotted before any write, so src may be b itself:
// pixels already written during the operation never feed back into
// pixels still to be read.
func (b *Buffer) Composite(src *Buffer, x, y, w, h int) {
	w = clampExtent(w, src.width)
	h = clampExtent(h, src.height)
	if w == 0 || h == 0 {
		return
	}

	snap := src.Clone()
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			b.Set(x+sx, y+sy, snap.Get(sx, sy))
		}
	}
}

// clampExtent resolves a requested copy dimension against the source
// dimension.  FullExtent (and anything below it) selects the whole
// dimension; values above the source dimension clamp down to it.
func clampExtent(v, srcDim int) int {
	if v <= FullExtent {
		return srcDim
	}
	if v > srcDim {
		return srcDim
	}
	return v
}
