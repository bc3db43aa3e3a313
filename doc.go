// Package basins analyzes two-dimensional height maps: it finds the low
// points of a map and measures the basin that drains to each of them.
//
// Under the hood, everything is organized under three subpackages:
//
//	heightmap/ — immutable row-major Grid of heights 0..9, parsing, neighbors
//	flood/     — scan-line flood fill over int coordinates and a predicate
//	basin/     — low points, basin sizes, risk sum and top-k product
//
// The basins command (cmd/basins) wires them to a file or stdin, a YAML
// config and text or YAML output.
//
// Quick example (9 = ridge, lower digits drain to the 0 and the 1):
//
//	2199943210
//	3987894921
//
//	g, _ := heightmap.ParseString(input)
//	a, _ := basin.NewAnalyzer(g)
//	rep, err := a.Analyze()
//	// rep.RiskSum, rep.Sizes, rep.TopProduct
package basins
