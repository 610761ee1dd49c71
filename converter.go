package bmp2ascii

import (
	"os"

	"github.com/wbrown/bmp2ascii/bmp"
	"github.com/wbrown/bmp2ascii/raster"
)

// Converter encapsulates the configuration for one BMP-to-text pipeline.
// Converters are independent values with no shared state, so multiple
// conversions can run concurrently from separate Converter instances.
type Converter struct {
	// TargetWidth drives resampling: each output line is exactly this
	// many characters wide.
	TargetWidth int

	// Ramp is the character palette, ordered dark to light.
	Ramp Ramp

	// VerticalScale decimates pixel rows to compensate for glyph cell
	// aspect ratio: only every VerticalScale-th row is kept.
	VerticalScale int
}

// Option configures a Converter.
type Option func(*Converter)

// WithWidth sets the target output width in characters.
func WithWidth(width int) Option {
	return func(c *Converter) {
		c.TargetWidth = width
	}
}

// WithRamp sets the character ramp.
func WithRamp(ramp Ramp) Option {
	return func(c *Converter) {
		c.Ramp = ramp
	}
}

// WithVerticalScale sets the row decimation factor.
func WithVerticalScale(scale int) Option {
	return func(c *Converter) {
		c.VerticalScale = scale
	}
}

// New creates a Converter with the given options. Defaults: width 100,
// the built-in ten-character ramp, vertical scale 2.
func New(opts ...Option) *Converter {
	c := &Converter{
		TargetWidth:   100,
		Ramp:          DefaultRamp,
		VerticalScale: 2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert runs the full pipeline over one BMP buffer: decode, resample
// to the target width, and map pixels to ramp characters. The first
// failing stage aborts the pipeline; no partial output is produced.
func (c *Converter) Convert(data []byte) ([]string, error) {
	grid, err := bmp.Decode(data)
	if err != nil {
		return nil, err
	}
	return c.ConvertGrid(grid)
}

// ConvertGrid runs the resampling and glyph mapping stages over an
// already decoded grid.
func (c *Converter) ConvertGrid(grid *raster.Grid) ([]string, error) {
	resized, err := Resample(grid, c.TargetWidth)
	if err != nil {
		return nil, err
	}
	return ToGlyphs(resized, c.Ramp, c.VerticalScale)
}

// ConvertFile reads a BMP container from the specified path and runs the
// pipeline over it.
func (c *Converter) ConvertFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.Convert(data)
}
