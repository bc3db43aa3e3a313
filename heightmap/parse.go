package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxRowWidth is the widest row Parse accepts.
const MaxRowWidth = 1 << 20

// Parse reads a height map from r: one row per line, one digit per cell.
// Trailing carriage returns and leading or trailing blank lines are ignored;
// a blank line between rows is an error.
//
// Errors:
//   - ErrEmptyGrid if r holds no rows.
//   - ErrNonRectangular (wrapped with the line number) if a line's length
//     differs from the first line's.
//   - ErrInvalidHeight (wrapped with line, column and rune) for non-digits.
//   - any read error from r, including bufio.ErrTooLong for a line wider
//     than MaxRowWidth cells.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxRowWidth+2)
	var (
		heights []uint8
		stride  int
		rows    int
		blanks  int // blank lines seen after the first row
	)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			if rows > 0 {
				blanks++
			}
			continue
		}
		if rows == 0 {
			stride = len(text)
		}
		if blanks > 0 {
			return nil, fmt.Errorf("%w: blank line before line %d", ErrNonRectangular, line)
		}
		if len(text) != stride {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, line, len(text), stride)
		}
		for col, c := range text {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidHeight, c, line, col+1)
			}
			heights = append(heights, uint8(c-'0'))
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}
	if rows == 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{heights: heights, stride: stride}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is like ParseString but panics on error.
// It is intended for tests and package-level fixtures.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return g
}
