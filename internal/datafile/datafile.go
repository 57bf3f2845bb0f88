// Package datafile moves the hotline data file between disk and the
// line-oriented form the scanner works on.
package datafile

import (
	"fmt"
	"os"
	"strings"
)

// ReadLines loads path and splits it into lines. Each line keeps its
// terminator, so joining them reproduces the file byte for byte, including
// a missing final newline.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	return SplitLines(string(content)), nil
}

// SplitLines breaks content into terminator-preserving lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// WriteLines joins lines and writes them to path.
func WriteLines(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}
