// Package basin finds the low points of a height map and measures the basin
// draining to each one. A basin is the 4-connected region of cells below
// Barrier reachable from its low point; it is computed with a scan-line
// flood fill and only its size is kept.
//
// What:
//
//   - FindLowPoints: cells strictly lower than every existing 4-neighbor.
//   - Analyzer.SizeAt: size of the basin around a low point, via flood.Fill
//     with the predicate "in bounds, below Barrier, not yet visited".
//   - TopProduct / Analyzer.TopThreeProduct: product of the k largest basins,
//     selected with a bounded min-heap.
//   - Analyzer.Analyze: risk sum, all sizes and the top-k product in one pass.
//
// Complexity:
//
//   - FindLowPoints: O(W×H).
//   - Basins:        O(W×H) in total for disjoint basins.
//   - TopProduct:    O(n log k).
//
// Errors:
//
//   - ErrGridNil, ErrOptionViolation from NewAnalyzer.
//   - ErrInsufficientBasins when fewer than k basins exist.
//   - ErrInvalidK for k <= 0.
//   - flood.ErrRegionTooLarge (wrapped) when WithMaxBasinSize is exceeded.
package basin
