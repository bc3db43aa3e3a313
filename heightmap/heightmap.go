package heightmap

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a flat row-major height slice and its row width.
// It copies heights so later changes by the caller do not leak in.
// Returns ErrEmptyGrid if heights is empty or stride is not positive,
// ErrNonRectangular if len(heights) is not a multiple of stride,
// ErrInvalidHeight if any value exceeds MaxHeight.
// Complexity: O(W×H) time and memory.
func New(heights []uint8, stride int) (*Grid, error) {
	if len(heights) == 0 || stride <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(heights)%stride != 0 {
		return nil, fmt.Errorf("%w: %d cells do not divide into rows of %d", ErrNonRectangular, len(heights), stride)
	}
	for i, h := range heights {
		if h > MaxHeight {
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidHeight, h, i%stride, i/stride)
		}
	}
	cells := make([]uint8, len(heights))
	copy(cells, heights)

	return &Grid{heights: cells, stride: stride}, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice
// indexed rows[y][x]. The rows are flattened into a fresh slice.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	flat := make([]uint8, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		flat = append(flat, row...)
	}

	return New(flat, w)
}

// Size returns the grid dimensions as (width, height).
// Complexity: O(1).
func (g *Grid) Size() (width, height int) {
	return g.stride, len(g.heights) / g.stride
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.heights)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	w, h := g.Size()
	return x >= 0 && x < w && y >= 0 && y < h
}

// Get returns the height at p. Callers must bounds-check first;
// an out-of-bounds point panics with an index error.
// Complexity: O(1).
func (g *Grid) Get(p Point) uint8 {
	if p.X < 0 || p.X >= g.stride {
		panic(fmt.Sprintf("heightmap: column %d out of range [0,%d)", p.X, g.stride))
	}
	return g.heights[g.Index(p)]
}

// Index maps p to its row-major index: y*width + x.
func (g *Grid) Index(p Point) int {
	return p.Y*g.stride + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.stride, Y: idx / g.stride}
}

// Neighbors returns the in-bounds 4-neighbors of p in the order
// up, down, left, right.
func (g *Grid) Neighbors(p Point) []Point {
	return g.AppendNeighbors(make([]Point, 0, len(neighborOffsets)), p)
}

// AppendNeighbors appends the in-bounds 4-neighbors of p to dst and returns
// the extended slice. Reusing dst across calls avoids an allocation per cell.
func (g *Grid) AppendNeighbors(dst []Point, p Point) []Point {
	for _, d := range neighborOffsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if g.InBounds(nx, ny) {
			dst = append(dst, Point{X: nx, Y: ny})
		}
	}
	return dst
}

// String renders the grid as digit rows separated by newlines.
func (g *Grid) String() string {
	w, h := g.Size()
	var sb strings.Builder
	sb.Grow(len(g.heights) + h)
	for y := 0; y < h; y++ {
		for _, v := range g.heights[y*w : (y+1)*w] {
			sb.WriteByte('0' + v)
		}
		if y < h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
