package bmp2ascii

import (
	"strings"

	"github.com/wbrown/bmp2ascii/raster"
)

// Luminance converts a pixel to a brightness scalar in [0, 255] using
// integer-weighted channel contributions: red 30, green 59, blue 11,
// out of 100, with floor division. Green dominates perceived brightness.
// Integer arithmetic keeps the result bit-identical across platforms.
func Luminance(c raster.RGB) int {
	return (int(c.R)*30 + int(c.G)*59 + int(c.B)*11) / 100
}

// rampIndex maps a luminance in [0, 255] onto a ramp of n characters.
// Floor division guarantees the index lands in [0, n-1] inclusive.
func rampIndex(luminance, n int) int {
	return luminance * (n - 1) / 255
}

// ToGlyphs converts a grid into lines of text. Rows are decimated by
// verticalScale (only rows where y % verticalScale == 0 are kept) to
// compensate for text glyph cells being taller than they are wide; each
// retained pixel maps to the ramp character for its luminance.
func ToGlyphs(g *raster.Grid, ramp Ramp, verticalScale int) ([]string, error) {
	if verticalScale < 1 {
		return nil, &InvalidParameterError{
			Param:  "verticalScale",
			Reason: "must be at least 1",
		}
	}
	if len(ramp) == 0 {
		return nil, &InvalidParameterError{
			Param:  "ramp",
			Reason: "must not be empty",
		}
	}

	var lines []string
	for y := 0; y < g.Height(); y++ {
		if y%verticalScale != 0 {
			continue
		}
		var line strings.Builder
		for x := 0; x < g.Width(); x++ {
			line.WriteRune(ramp[rampIndex(Luminance(g.At(x, y)), len(ramp))])
		}
		lines = append(lines, line.String())
	}

	return lines, nil
}
