package bmp

import (
	"fmt"
	"os"

	"github.com/wbrown/bmp2ascii/raster"
)

// ReadFile loads and decodes a BMP container from the specified path.
func ReadFile(path string) (*raster.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return Decode(data)
}

// WriteFile encodes a grid and writes it to the specified path.
func WriteFile(path string, g *raster.Grid, opts EncodeOptions) error {
	if err := os.WriteFile(path, Encode(g, opts), 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}
