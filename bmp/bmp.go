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

// Package bmp reads and writes buffers in the BMP file format.
//
// Only the variant needed for seehuhn.de/go/bitmap is implemented:
// 24 bits per pixel, uncompressed (BI_RGB), with the standard 40-byte
// info header.  Decode accepts both bottom-up and top-down row order;
// Encode always writes bottom-up rows.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/bitmap"
)

// ErrUnsupported indicates a structurally valid BMP file using a feature
// outside the 24-bit uncompressed subset.
var ErrUnsupported = errors.New("bmp: unsupported image format")

// File layout constants for the BITMAPFILEHEADER/BITMAPINFOHEADER pair.
const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	bitsPerPixel   = 24
	compressionRGB = 0 // BI_RGB
)

// maxPixels bounds the decoded image size.  Header dimensions are 32-bit
// values under attacker control; without a bound a crafted header could
// request an allocation whose byte size overflows int.
const maxPixels = 1 << 28

// fileHeader is the 14-byte BITMAPFILEHEADER.
type fileHeader struct {
	Type      [2]byte // "BM"
	Size      uint32  // total file size in bytes
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // byte offset of the pixel array
}

// infoHeader is the 40-byte BITMAPINFOHEADER.
type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32 // negative for top-down row order
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// rowSize returns the padded byte length of one pixel row.
// Rows are aligned to 4-byte boundaries.
func rowSize(width int) int {
	return (width*3 + 3) &^ 3
}

// Encode writes b to w as a 24-bit uncompressed BMP image.
func Encode(w io.Writer, b *bitmap.Buffer) error {
	width := b.Width()
	height := b.Height()
	stride := rowSize(width)

	fh := fileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(fileHeaderSize + infoHeaderSize + stride*height),
		OffBits: fileHeaderSize + infoHeaderSize,
	}
	ih := infoHeader{
		Size:        infoHeaderSize,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    bitsPerPixel,
		Compression: compressionRGB,
		SizeImage:   uint32(stride * height),
	}
	if err := binary.Write(w, binary.LittleEndian, fh); err != nil {
		return fmt.Errorf("bmp: writing file header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, ih); err != nil {
		return fmt.Errorf("bmp: writing info header: %w", err)
	}

	// Pixel rows are stored bottom-up in BGR order.
	row := make([]byte, stride)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			c := b.Get(x, y)
			row[x*3] = c.B
			row[x*3+1] = c.G
			row[x*3+2] = c.R
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("bmp: writing pixel row %d: %w", y, err)
		}
	}
	return nil
}

// Decode reads a 24-bit uncompressed BMP image from r.
func Decode(r io.Reader) (*bitmap.Buffer, error) {
	var fh fileHeader
	if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
		return nil, fmt.Errorf("bmp: reading file header: %w", err)
	}
	if fh.Type != [2]byte{'B', 'M'} {
		return nil, fmt.Errorf("bmp: bad magic %q", fh.Type[:])
	}

	var ih infoHeader
	if err := binary.Read(r, binary.LittleEndian, &ih); err != nil {
		return nil, fmt.Errorf("bmp: reading info header: %w", err)
	}
	if ih.Size < infoHeaderSize {
		return nil, fmt.Errorf("%w: info header size %d", ErrUnsupported, ih.Size)
	}
	if ih.BitCount != bitsPerPixel || ih.Compression != compressionRGB {
		return nil, fmt.Errorf("%w: %d bpp, compression %d",
			ErrUnsupported, ih.BitCount, ih.Compression)
	}

	width := int(ih.Width)
	height := int(ih.Height)
	topDown := false
	if height < 0 {
		topDown = true
		height = -height
	}
	if width <= 0 || height == 0 {
		return nil, fmt.Errorf("bmp: invalid dimensions %dx%d", ih.Width, ih.Height)
	}
	if int64(width)*int64(height) > maxPixels {
		return nil, fmt.Errorf("%w: image size %dx%d exceeds %d pixels",
			ErrUnsupported, width, height, maxPixels)
	}

	// Skip any header extension and gap before the pixel array.
	if skip := int64(fh.OffBits) - fileHeaderSize - infoHeaderSize; skip > 0 {
		if _, err := io.CopyN(io.Discard, r, skip); err != nil {
			return nil, fmt.Errorf("bmp: skipping to pixel array: %w", err)
		}
	} else if skip < 0 {
		return nil, fmt.Errorf("bmp: pixel array offset %d inside headers", fh.OffBits)
	}

	b, err := bitmap.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("bmp: %w", err)
	}

	row := make([]byte, rowSize(width))
	for i := 0; i < height; i++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("bmp: reading pixel row %d: %w", i, err)
		}
		y := height - 1 - i
		if topDown {
			y = i
		}
		for x := 0; x < width; x++ {
			b.Set(x, y, bitmap.RGB{
				R: row[x*3+2],
				G: row[x*3+1],
				B: row[x*3],
			})
		}
	}

	bitmap.Logger().Debug("decoded BMP image",
		"width", width, "height", height, "topDown", topDown)
	return b, nil
}

// Save writes b to a file.
func Save(path string, b *bitmap.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a buffer from a BMP file.
func Load(path string) (*bitmap.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
