package floorplan

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// byteOrderMark is stripped from the start of a plan so it does not become a cell.
const byteOrderMark = "\uFEFF"

// blank pads short rows.
const blank = ' '

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Grid is a rectangular plan indexed as [row][column].
type Grid [][]rune

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the width of the first row, which is the common width of a padded grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Row returns the text of row x.
func (g Grid) Row(x int) string {
	return string(g[x])
}

// String renders the grid one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for x, row := range g {
		if x > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// LoadGrid reads the plan file at path.
// A missing file yields ErrNotFound; every other read failure yields ErrLoad.
func LoadGrid(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %q", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: open %q: %w", ErrLoad, path, err)
	}
	defer f.Close()

	grid, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return grid, nil
}

// ReadGrid reads a whole plan from r and normalises it with DecodeGrid.
func ReadGrid(r io.Reader) (Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return DecodeGrid(data)
}

// DecodeGrid is ParseGrid for untrusted input: text that is not valid UTF-8
// yields ErrLoad instead of replacement characters.
func DecodeGrid(data []byte) (Grid, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrLoad)
	}
	return ParseGrid(data), nil
}

// ParseGrid turns raw plan text into a rectangular grid. "\r\n" and a lone "\r"
// both end a line. Trailing whitespace is removed from every line, leading
// whitespace is kept, and short rows are right-padded with blanks to the longest line.
func ParseGrid(data []byte) Grid {
	text := strings.TrimPrefix(string(data), byteOrderMark)
	if text == "" {
		return Grid{}
	}
	text = lineBreaks.Replace(text)

	lines := strings.Split(text, "\n")
	// A final newline terminates the last row rather than opening a new one.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	grid := make(Grid, len(lines))
	for i, line := range lines {
		grid[i] = []rune(strings.TrimRightFunc(line, unicode.IsSpace))
	}
	return grid.Padded()
}

// Padded returns g with every row right-padded with blanks to the longest row.
// Rows already at full width are shared with g.
func (g Grid) Padded() Grid {
	width := 0
	for _, row := range g {
		width = max(width, len(row))
	}

	out := make(Grid, len(g))
	for i, row := range g {
		if len(row) == width {
			out[i] = row
			continue
		}
		padded := make([]rune, width)
		copy(padded, row)
		for y := len(row); y < width; y++ {
			padded[y] = blank
		}
		out[i] = padded
	}
	return out
}
