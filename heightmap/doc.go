// Package heightmap holds a rectangular map of small unsigned heights
// (0..9) and answers bounds-checked neighbor queries over it.
//
// What:
//
//   - Grid stores heights row-major in a flat slice with a row width (stride).
//   - Parse builds a Grid from line-oriented digit text, one row per line.
//   - Neighbors enumerates the in-bounds 4-neighbors of a cell in the fixed
//     order up, down, left, right.
//
// Why:
//
//   - Terrain analysis: low points, drainage basins, ridges of 9s.
//   - A flat slice keeps the map compact and cache-friendly for scan-line work.
//
// Complexity:
//
//   - Parse:      O(W×H) time and memory.
//   - Get:        O(1).
//   - Neighbors:  O(1), at most 4 points.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidHeight: a value is not a digit 0..9.
//
// A Grid is immutable once built; constructors copy their input, so a Grid
// may be shared freely between goroutines.
package heightmap
