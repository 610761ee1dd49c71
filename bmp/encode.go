package bmp

import (
	"encoding/binary"

	"github.com/wbrown/bmp2ascii/raster"
)

// EncodeOptions controls the on-disk layout produced by Encode.
type EncodeOptions struct {
	// BitsPerPixel must be 24 or 32. Zero defaults to 24.
	BitsPerPixel int
	// TopDown stores rows top-to-bottom and encodes a negative height,
	// instead of the conventional bottom-to-top layout.
	TopDown bool
}

// Encode writes a grid as an uncompressed BMP buffer. It exists so tests
// and tools can build real containers with either row order and with the
// mandatory 4-byte row padding.
func Encode(g *raster.Grid, opts EncodeOptions) []byte {
	bpp := opts.BitsPerPixel
	if bpp == 0 {
		bpp = 24
	}
	bytesPerPixel := bpp / 8
	w, h := g.Width(), g.Height()
	rowSize := (w*bytesPerPixel + 3) &^ 3
	pixelDataSize := rowSize * h

	buf := make([]byte, headerSize+pixelDataSize)

	// File header.
	buf[0] = 'B'
	buf[1] = 'M'
	binary.LittleEndian.PutUint32(buf[2:], uint32(len(buf)))
	binary.LittleEndian.PutUint32(buf[offDataOffset:], headerSize)

	// Info header.
	binary.LittleEndian.PutUint32(buf[14:], 40)
	binary.LittleEndian.PutUint32(buf[offWidth:], uint32(int32(w)))
	encHeight := int32(h)
	if opts.TopDown {
		encHeight = -encHeight
	}
	binary.LittleEndian.PutUint32(buf[offHeight:], uint32(encHeight))
	binary.LittleEndian.PutUint16(buf[26:], 1)
	binary.LittleEndian.PutUint16(buf[offBitCount:], uint16(bpp))
	binary.LittleEndian.PutUint32(buf[34:], uint32(pixelDataSize))

	for y := 0; y < h; y++ {
		var rowStart int
		if opts.TopDown {
			rowStart = headerSize + y*rowSize
		} else {
			rowStart = headerSize + (h-1-y)*rowSize
		}
		for x := 0; x < w; x++ {
			c := g.At(x, y)
			off := rowStart + x*bytesPerPixel
			buf[off] = c.B
			buf[off+1] = c.G
			buf[off+2] = c.R
			if bytesPerPixel == 4 {
				buf[off+3] = 255
			}
		}
	}

	return buf
}
