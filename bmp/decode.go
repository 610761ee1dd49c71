// Package bmp decodes uncompressed true-color BMP containers into raster
// grids. Only 24- and 32-bit non-indexed, non-compressed variants are
// supported.
package bmp

import (
	"encoding/binary"
	"fmt"

	"github.com/wbrown/bmp2ascii/raster"
)

// Fixed header region: 14-byte file header plus 40-byte info header.
const headerSize = 54

// Header byte offsets, per the BITMAPFILEHEADER/BITMAPINFOHEADER layout.
const (
	offMagic      = 0
	offDataOffset = 10
	offWidth      = 18
	offHeight     = 22
	offBitCount   = 28
)

// FormatError reports a malformed or unsupported container.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "bmp: " + e.Reason
}

func formatErrorf(format string, args ...interface{}) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// cursor is a bounds-checked view over an immutable byte buffer. Every
// read validates its range so a truncated file surfaces as a FormatError
// rather than a slice panic.
type cursor struct {
	data []byte
}

func (c cursor) u16(off int) (uint16, error) {
	if off < 0 || off+2 > len(c.data) {
		return 0, formatErrorf("truncated file: read of 2 bytes at offset %d exceeds buffer length %d", off, len(c.data))
	}
	return binary.LittleEndian.Uint16(c.data[off:]), nil
}

func (c cursor) u32(off int) (uint32, error) {
	if off < 0 || off+4 > len(c.data) {
		return 0, formatErrorf("truncated file: read of 4 bytes at offset %d exceeds buffer length %d", off, len(c.data))
	}
	return binary.LittleEndian.Uint32(c.data[off:]), nil
}

func (c cursor) i32(off int) (int32, error) {
	v, err := c.u32(off)
	return int32(v), err
}

// slice returns n bytes starting at off, bounds-checked.
func (c cursor) slice(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(c.data) {
		return nil, formatErrorf("truncated file: read of %d bytes at offset %d exceeds buffer length %d", n, off, len(c.data))
	}
	return c.data[off : off+n], nil
}

// Decode parses an uncompressed 24- or 32-bit BMP buffer into a Grid.
// The returned grid is always stored top-to-bottom regardless of the
// row order in the source, and row padding is stripped. Stored channel
// order B, G, R (plus discarded alpha at 32bpp) is reordered to
// canonical RGB.
func Decode(data []byte) (*raster.Grid, error) {
	if len(data) < headerSize {
		return nil, formatErrorf("header too short: %d bytes, need %d", len(data), headerSize)
	}
	if data[offMagic] != 'B' || data[offMagic+1] != 'M' {
		return nil, formatErrorf("bad magic %q, want \"BM\"", data[offMagic:offMagic+2])
	}

	cur := cursor{data: data}
	dataOffset, err := cur.u32(offDataOffset)
	if err != nil {
		return nil, err
	}
	width, err := cur.i32(offWidth)
	if err != nil {
		return nil, err
	}
	height, err := cur.i32(offHeight)
	if err != nil {
		return nil, err
	}
	bpp, err := cur.u16(offBitCount)
	if err != nil {
		return nil, err
	}

	if bpp != 24 && bpp != 32 {
		return nil, formatErrorf("unsupported bits per pixel %d, only 24 and 32 are supported", bpp)
	}

	absW := int(width)
	if absW < 0 {
		absW = -absW
	}
	absH := int(height)
	if absH < 0 {
		absH = -absH
	}

	if absW == 0 || absH == 0 {
		return raster.NewGrid(absW, absH), nil
	}

	bytesPerPixel := int(bpp) / 8
	// Stored rows are padded to a multiple of 4 bytes.
	rowSize := (absW*bytesPerPixel + 3) &^ 3

	// Validate the layout the header declares before allocating the
	// grid: dimensions exceeding the buffer are a truncated file, not a
	// huge allocation. The last row needs no trailing padding. int64
	// math, with the divide guarding the multiply, since declared
	// dimensions can overflow even 64-bit products.
	avail := int64(len(data)) - int64(dataOffset)
	if avail < 0 {
		return nil, formatErrorf("truncated file: pixel data offset %d exceeds buffer length %d", dataOffset, len(data))
	}
	if int64(absH-1) > avail/int64(rowSize) ||
		int64(absH-1)*int64(rowSize)+int64(absW)*int64(bytesPerPixel) > avail {
		return nil, formatErrorf("truncated file: %dx%d pixels at %d bits per pixel exceed buffer length %d", absW, absH, bpp, len(data))
	}

	grid := raster.NewGrid(absW, absH)

	for y := 0; y < absH; y++ {
		// Positive height means bottom-to-top storage; negative means
		// the source is already top-to-bottom.
		var rowStart int
		if height > 0 {
			rowStart = int(dataOffset) + (absH-1-y)*rowSize
		} else {
			rowStart = int(dataOffset) + y*rowSize
		}

		row, err := cur.slice(rowStart, absW*bytesPerPixel)
		if err != nil {
			return nil, err
		}
		for x := 0; x < absW; x++ {
			p := row[x*bytesPerPixel:]
			grid.Set(x, y, raster.RGB{R: p[2], G: p[1], B: p[0]})
		}
	}

	return grid, nil
}
