package heightmap

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrInvalidHeight indicates a height outside 0..9 or a non-digit character.
	ErrInvalidHeight = errors.New("heightmap: invalid height")
)

// MaxHeight is the largest height a cell may hold.
const MaxHeight = 9

// Point is a cell coordinate: X is the column, Y is the row.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// neighborOffsets lists the 4-neighbor deltas as (dx, dy) in the order
// up, down, left, right. The order is part of the contract.
var neighborOffsets = [4][2]int{
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

// Grid is an immutable row-major height map.
// The height at (x, y) is heights[y*stride+x].
type Grid struct {
	heights []uint8
	stride  int
}
