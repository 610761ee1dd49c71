package bmp2ascii

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/wbrown/bmp2ascii/raster"
)

// FontRenderer rasterizes produced text lines to an image using a
// TrueType font, for saving the result as a PNG instead of plain text.
type FontRenderer struct {
	font *truetype.Font
	size float64
	fg   raster.RGB
	bg   raster.RGB
}

// LoadFontRenderer loads a TrueType font from file. Size is the point
// size at 72 DPI; zero defaults to 16.
func LoadFontRenderer(path string, size float64) (*FontRenderer, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	if size == 0 {
		size = 16
	}
	return &FontRenderer{
		font: ttf,
		size: size,
		fg:   raster.RGB{R: 255, G: 255, B: 255},
		bg:   raster.RGB{R: 0, G: 0, B: 0},
	}, nil
}

// SetColors sets the foreground and background colors for rendering.
func (fr *FontRenderer) SetColors(fg, bg raster.RGB) {
	fr.fg = fg
	fr.bg = bg
}

// RenderLines draws each text line onto a freshly allocated image sized
// from the font metrics and the widest line.
func (fr *FontRenderer) RenderLines(lines []string) (*image.RGBA, error) {
	face := truetype.NewFace(fr.font, &truetype.Options{
		Size:    fr.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight == 0 {
		lineHeight = ascent + metrics.Descent.Ceil()
	}

	width := 1
	for _, line := range lines {
		if adv := font.MeasureString(face, line).Ceil(); adv > width {
			width = adv
		}
	}
	height := lineHeight * len(lines)
	if height == 0 {
		height = lineHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(),
		&image.Uniform{fr.bg.ToColor()}, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(fr.font)
	ctx.SetFontSize(fr.size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(fr.fg.ToColor()))
	ctx.SetHinting(font.HintingFull)

	for i, line := range lines {
		pt := freetype.Pt(0, ascent+i*lineHeight)
		if _, err := ctx.DrawString(line, pt); err != nil {
			return nil, fmt.Errorf("failed to draw line %d: %w", i, err)
		}
	}

	return img, nil
}

// SavePNG saves an image as PNG to the specified path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return png.Encode(f, img)
}
