package bmp2ascii

import (
	"errors"
	"testing"

	"github.com/wbrown/bmp2ascii/raster"
)

func TestResampleIdentity(t *testing.T) {
	src := raster.CreateGradientGrid(16, 9)

	got, err := Resample(src, 16)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if got.Width() != 16 || got.Height() != 9 {
		t.Fatalf("Expected 16x9, got %dx%d", got.Width(), got.Height())
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 16; x++ {
			if got.At(x, y) != src.At(x, y) {
				t.Fatalf("Identity resample changed pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestResampleDownscalePicksNearest(t *testing.T) {
	src := raster.NewGrid(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, raster.RGB{R: uint8(x * 10), G: uint8(y * 10)})
		}
	}

	// Scale 0.5: destination (x, y) truncates back to source (2x, 2y).
	got, err := Resample(src, 2)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if got.Height() != 2 {
		t.Fatalf("Expected height 2, got %d", got.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := src.At(2*x, 2*y)
			if got.At(x, y) != want {
				t.Errorf("Pixel (%d,%d): expected %v, got %v",
					x, y, want, got.At(x, y))
			}
		}
	}
}

func TestResampleUpscale(t *testing.T) {
	src := raster.NewGrid(2, 2)
	src.Set(0, 0, raster.RGB{R: 1})
	src.Set(1, 0, raster.RGB{R: 2})
	src.Set(0, 1, raster.RGB{R: 3})
	src.Set(1, 1, raster.RGB{R: 4})

	// Scale 2: each source pixel becomes a 2x2 block.
	got, err := Resample(src, 4)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if got.Height() != 4 {
		t.Fatalf("Expected height 4, got %d", got.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := src.At(x/2, y/2)
			if got.At(x, y) != want {
				t.Errorf("Pixel (%d,%d): expected %v, got %v",
					x, y, want, got.At(x, y))
			}
		}
	}
}

// A wide, short source whose computed target height truncates to zero
// must still produce one output row.
func TestResampleHeightFloorOfOne(t *testing.T) {
	src := raster.CreateSolidGrid(10, 1, raster.RGB{R: 9})

	got, err := Resample(src, 5)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if got.Height() != 1 {
		t.Errorf("Expected height 1, got %d", got.Height())
	}
	if got.Width() != 5 {
		t.Errorf("Expected width 5, got %d", got.Width())
	}
}

// Exercise awkward ratios and verify every sampled index stays in
// bounds; Grid.At panics on any out-of-range access.
func TestResampleScaleInvariant(t *testing.T) {
	sizes := []struct{ srcW, srcH, target int }{
		{3, 7, 10},
		{7, 3, 10},
		{13, 13, 5},
		{1, 1, 100},
		{640, 480, 79},
		{5, 9, 1},
	}
	for _, s := range sizes {
		src := raster.NewGrid(s.srcW, s.srcH)
		got, err := Resample(src, s.target)
		if err != nil {
			t.Fatalf("%dx%d -> %d: Resample failed: %v",
				s.srcW, s.srcH, s.target, err)
		}
		if got.Width() != s.target {
			t.Errorf("%dx%d -> %d: expected width %d, got %d",
				s.srcW, s.srcH, s.target, s.target, got.Width())
		}
		if got.Height() < 1 {
			t.Errorf("%dx%d -> %d: height must be at least 1, got %d",
				s.srcW, s.srcH, s.target, got.Height())
		}
	}
}

func TestResampleInvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		grid   *raster.Grid
		target int
	}{
		{"zero width", raster.NewGrid(4, 4), 0},
		{"negative width", raster.NewGrid(4, 4), -3},
		{"empty source", raster.NewGrid(0, 0), 10},
		{"zero source height", raster.NewGrid(4, 0), 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resample(tc.grid, tc.target)
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			var paramErr *InvalidParameterError
			if !errors.As(err, &paramErr) {
				t.Errorf("Expected InvalidParameterError, got %T: %v", err, err)
			}
		})
	}
}
