package bmp2ascii

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/wbrown/bmp2ascii/raster"
)

// testFont returns the path to a TTF for font rendering tests, skipping
// when none is configured. Run with:
// BMP2ASCII_TEST_FONT=/path/to/font.ttf go test -run TestFontRenderer -v
func testFont(t *testing.T) string {
	t.Helper()
	path := os.Getenv("BMP2ASCII_TEST_FONT")
	if path == "" {
		t.Skip("Set BMP2ASCII_TEST_FONT to a TTF path to run font rendering tests")
	}
	if _, err := os.Stat(path); err != nil {
		t.Skipf("Configured test font not readable: %v", err)
	}
	return path
}

func TestFontRendererRenderLines(t *testing.T) {
	fr, err := LoadFontRenderer(testFont(t), 16)
	if err != nil {
		t.Fatalf("LoadFontRenderer failed: %v", err)
	}

	img, err := fr.RenderLines([]string{"@@##", "::.."})
	if err != nil {
		t.Fatalf("RenderLines failed: %v", err)
	}
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		t.Errorf("Expected a non-empty image, got %v", img.Bounds())
	}

	// Dark foreground on light background must leave both colors in
	// the output.
	fr.SetColors(raster.RGB{}, raster.RGB{R: 255, G: 255, B: 255})
	img, err = fr.RenderLines([]string{"@"})
	if err != nil {
		t.Fatalf("RenderLines failed: %v", err)
	}
	sawBG := false
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y && !sawBG; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y).R == 255 {
				sawBG = true
				break
			}
		}
	}
	if !sawBG {
		t.Error("Background color missing from rendered output")
	}
}

func TestFontRendererSavePNG(t *testing.T) {
	fr, err := LoadFontRenderer(testFont(t), 12)
	if err != nil {
		t.Fatalf("LoadFontRenderer failed: %v", err)
	}
	img, err := fr.RenderLines([]string{"@%#*+=-:. "})
	if err != nil {
		t.Fatalf("RenderLines failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open saved PNG: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Saved file is not a valid PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}

func TestLoadFontRendererErrors(t *testing.T) {
	if _, err := LoadFontRenderer(filepath.Join(t.TempDir(), "missing.ttf"), 16); err == nil {
		t.Error("Expected an error for a missing font file")
	}

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFontRenderer(bad, 16); err == nil {
		t.Error("Expected an error for a malformed font file")
	}
}
