package bmp2ascii

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteLines writes text lines to a writer, one per line, UTF-8 encoded
// with a trailing newline each.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveLines writes text lines to a file at the specified path.
func SaveLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := WriteLines(f, lines); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
