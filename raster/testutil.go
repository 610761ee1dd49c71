package raster

// CreateGradientGrid creates a horizontal grayscale gradient test grid.
// A single-column grid is all black.
func CreateGradientGrid(width, height int) *Grid {
	g := NewGrid(width, height)
	span := width - 1
	if span < 1 {
		span = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / span)
			g.Set(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return g
}

// CreateVerticalGradientGrid creates a vertical grayscale gradient test grid.
// A single-row grid is all black.
func CreateVerticalGradientGrid(width, height int) *Grid {
	g := NewGrid(width, height)
	span := height - 1
	if span < 1 {
		span = 1
	}
	for y := 0; y < height; y++ {
		v := uint8(255 * y / span)
		for x := 0; x < width; x++ {
			g.Set(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return g
}

// CreateSolidGrid creates a solid color test grid.
func CreateSolidGrid(width, height int, c RGB) *Grid {
	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(x, y, c)
		}
	}
	return g
}

// CreateCheckerboardGrid creates a black and white checkerboard pattern.
func CreateCheckerboardGrid(width, height, squareSize int) *Grid {
	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			isWhite := ((x/squareSize)+(y/squareSize))%2 == 0
			if isWhite {
				g.Set(x, y, RGB{R: 255, G: 255, B: 255})
			} else {
				g.Set(x, y, RGB{R: 0, G: 0, B: 0})
			}
		}
	}
	return g
}
