package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wbrown/bmp2ascii"
	"github.com/wbrown/bmp2ascii/bmp"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input BMP file (required)")
	outputFile := flag.String("output", "",
		"Path to save the output (if not specified, prints to stdout)")
	targetWidth := flag.Int("width", 100,
		"Target width of the ASCII art in characters")
	verticalScale := flag.Int("vscale", 2,
		"Vertical scale factor to compensate for font aspect ratio")
	charset := flag.String("charset", string(bmp2ascii.DefaultRamp),
		"Character set to use, ordered dark to light")
	reverse := flag.Bool("reverse", false,
		"Reverse the character set intensities")
	fontPath := flag.String("font", "",
		"Path to a TTF font for PNG output (requires -output ending in .png)")
	fontSize := flag.Float64("fontsize", 16,
		"Font point size for PNG output")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ramp := bmp2ascii.RampFromString(*charset)
	if *reverse {
		ramp = ramp.Reversed()
	}

	conv := bmp2ascii.New(
		bmp2ascii.WithWidth(*targetWidth),
		bmp2ascii.WithRamp(ramp),
		bmp2ascii.WithVerticalScale(*verticalScale),
	)

	lines, err := conv.ConvertFile(*inputFile)
	if err != nil {
		var formatErr *bmp.FormatError
		var paramErr *bmp2ascii.InvalidParameterError
		switch {
		case errors.As(err, &formatErr):
			fmt.Printf("Error reading image: %v\n", err)
			os.Exit(1)
		case errors.As(err, &paramErr):
			fmt.Printf("Error in options: %v\n", err)
			os.Exit(2)
		default:
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *outputFile == "" {
		if err := bmp2ascii.WriteLines(os.Stdout, lines); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if strings.HasSuffix(strings.ToLower(*outputFile), ".png") {
		if *fontPath == "" {
			fmt.Println("PNG output requires a TTF font via the -font flag")
			os.Exit(2)
		}
		renderer, err := bmp2ascii.LoadFontRenderer(*fontPath, *fontSize)
		if err != nil {
			fmt.Printf("Error loading font: %v\n", err)
			os.Exit(1)
		}
		img, err := renderer.RenderLines(lines)
		if err != nil {
			fmt.Printf("Error rendering text: %v\n", err)
			os.Exit(1)
		}
		if err := bmp2ascii.SavePNG(img, *outputFile); err != nil {
			fmt.Printf("Error writing PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG output written to %s\n", *outputFile)
		return
	}

	if err := bmp2ascii.SaveLines(*outputFile, lines); err != nil {
		fmt.Printf("Error writing to file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output written to %s\n", *outputFile)
}
