package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	componentLines = 2
	maxLineLength  = 1 << 20
	utf8BOM        = "\ufeff"
)

// Components names the implementations to instantiate, in wiring order.
type Components struct {
	Provider   string
	Calculator string
}

// LoadComponents reads the provider identifier from the first line of path and the
// calculator identifier from the second. Further lines are ignored.
func LoadComponents(path string) (Components, error) {
	f, err := os.Open(path)
	if err != nil {
		return Components{}, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
	}
	defer f.Close()

	lines, err := readLines(f, componentLines)
	if errors.Is(err, bufio.ErrTooLong) {
		return Components{}, fmt.Errorf("%w: %s has a line longer than %d bytes", ErrConfigIncomplete, path, maxLineLength)
	}
	if err != nil {
		return Components{}, fmt.Errorf("%w: read %s: %w", ErrConfigNotFound, path, err)
	}
	if len(lines) < componentLines {
		return Components{}, fmt.Errorf("%w: %s has %d line(s), want %d", ErrConfigIncomplete, path, len(lines), componentLines)
	}

	return Components{
		Provider:   strings.TrimSpace(strings.TrimPrefix(lines[0], utf8BOM)),
		Calculator: strings.TrimSpace(lines[1]),
	}, nil
}

// readLines returns at most limit lines from r.
func readLines(r io.Reader, limit int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	lines := make([]string, 0, limit)
	for len(lines) < limit && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
