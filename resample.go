package bmp2ascii

import (
	"github.com/wbrown/bmp2ascii/raster"
)

// Resample maps a grid onto a new grid of the specified width using
// nearest-neighbor sampling, preserving aspect ratio. Source indices are
// computed by truncation (floor), never rounding, so output is bit-exact
// across platforms. No interpolation is performed.
func Resample(g *raster.Grid, targetWidth int) (*raster.Grid, error) {
	if targetWidth <= 0 {
		return nil, &InvalidParameterError{
			Param:  "targetWidth",
			Reason: "must be positive",
		}
	}
	srcW, srcH := g.Width(), g.Height()
	if srcW == 0 || srcH == 0 {
		return nil, &InvalidParameterError{
			Param:  "grid",
			Reason: "source width and height must be nonzero",
		}
	}

	scale := float64(targetWidth) / float64(srcW)
	targetHeight := int(float64(srcH) * scale)
	if targetHeight == 0 {
		// A nonempty source never produces an all-zero output.
		targetHeight = 1
	}

	dst := raster.NewGrid(targetWidth, targetHeight)
	for y := 0; y < targetHeight; y++ {
		srcY := int(float64(y) / scale)
		if srcY > srcH-1 {
			srcY = srcH - 1
		}
		for x := 0; x < targetWidth; x++ {
			srcX := int(float64(x) / scale)
			if srcX > srcW-1 {
				srcX = srcW - 1
			}
			dst.Set(x, y, g.At(srcX, srcY))
		}
	}

	return dst, nil
}
