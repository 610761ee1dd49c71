// Package raster provides the in-memory pixel grid model shared by the
// decoder, resampler, and glyph mapper.
package raster

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
// Channel order is canonical red, green, blue regardless of how the
// source container stored the pixel.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB. Any alpha is discarded.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Grid is a row-major pixel grid stored top-to-bottom. The pixel slice
// length always equals Width x Height; row padding from the source
// container never leaks into a Grid.
type Grid struct {
	width  int
	height int
	pix    []RGB
}

// NewGrid creates a Grid with the specified dimensions, all pixels black.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in pixels.
func (g *Grid) Height() int {
	return g.height
}

// At returns the pixel at (x, y), where row 0 is the visually top row.
func (g *Grid) At(x, y int) RGB {
	return g.pix[y*g.width+x]
}

// Set sets the pixel at (x, y).
func (g *Grid) Set(x, y int, c RGB) {
	g.pix[y*g.width+x] = c
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.width, g.height)
	copy(clone.pix, g.pix)
	return clone
}

// ToRGBA converts the grid to an image.RGBA with full alpha.
func (g *Grid) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetRGBA(x, y, g.At(x, y).ToColor())
		}
	}
	return img
}

// GridFromImage converts any image.Image to a Grid, discarding alpha.
func GridFromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := NewGrid(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g.Set(x-bounds.Min.X, y-bounds.Min.Y, RGBFromColor(img.At(x, y)))
		}
	}
	return g
}
