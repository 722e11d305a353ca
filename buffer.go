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

// Package bitmap implements a software rasterizer for in-memory RGB pixel
// buffers.  It draws point-sampled lines, closed shape outlines, rectangle
// fills, composited sub-images and fixed-pitch bitmap-font text.  All
// drawing operations clip silently against the buffer bounds and never
// fail.
//
// The sibling package seehuhn.de/go/bitmap/bmp serializes buffers to and
// from the BMP file format.
package bitmap

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidSize indicates non-positive buffer dimensions.
var ErrInvalidSize = errors.New("bitmap: width and height must be positive")

// Buffer is a width×height grid of RGB pixels.
//
// The zero value is not usable; use [New], [FromImage] or [Buffer.Clone].
// A Buffer is not safe for concurrent mutation.
type Buffer struct {
	width  int
	height int
	pix    []uint8 // 3 bytes per pixel, row-major
}

// New allocates a buffer of the given dimensions, initialized to black.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// contains reports whether (x, y) lies inside the buffer.
func (b *Buffer) contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the pixel at (x, y).  Out-of-bounds coordinates return the
// zero RGB (black).
func (b *Buffer) Get(x, y int) RGB {
	if !b.contains(x, y) {
		return RGB{}
	}
	i := (y*b.width + x) * 3
	return RGB{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2]}
}

// Set overwrites the pixel at (x, y).  Out-of-bounds coordinates are
// silently ignored.
func (b *Buffer) Set(x, y int, c RGB) {
	if !b.contains(x, y) {
		return
	}
	i := (y*b.width + x) * 3
	b.pix[i] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
}

// Clone returns an independent copy sharing no storage with b.
// [Buffer.Composite] relies on this to allow a buffer to be composited
// onto itself.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// ToImage converts the buffer to an opaque image.RGBA.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		src := b.pix[y*b.width*3 : (y+1)*b.width*3]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < b.width; x++ {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}

// FromImage converts an image to a buffer, discarding alpha.
// Images with empty bounds yield a nil buffer.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil
	}
	b, _ := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, bb, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			b.Set(x, y, RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bb >> 8)})
		}
	}
	return b
}
