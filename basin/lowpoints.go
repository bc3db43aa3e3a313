package basin

import "github.com/katalvlaran/basins/heightmap"

// FindLowPoints returns every cell whose height is strictly less than the
// lowest of its existing 4-neighbors, in row-major order. A tie with any
// neighbor disqualifies the cell. Border cells are compared only against the
// neighbors that exist, so the single cell of a 1×1 grid is a low point
// unless it is a Barrier. Barrier cells never qualify: they belong to no
// basin.
//
// Complexity: O(W×H).
func FindLowPoints(g *heightmap.Grid) []LowPoint {
	w, h := g.Size()
	neighbors := make([]heightmap.Point, 0, 4)
	var lows []LowPoint
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := heightmap.Point{X: x, Y: y}
			v := g.Get(p)
			if v >= Barrier {
				continue
			}
			neighbors = g.AppendNeighbors(neighbors[:0], p)
			if isBelowAll(g, v, neighbors) {
				lows = append(lows, LowPoint{Pos: p, Height: v})
			}
		}
	}
	return lows
}

func isBelowAll(g *heightmap.Grid, v uint8, neighbors []heightmap.Point) bool {
	for _, n := range neighbors {
		if g.Get(n) <= v {
			return false
		}
	}
	return true
}

// RiskSum adds up the risk level (height + 1) of every low point.
func RiskSum(lows []LowPoint) int {
	sum := 0
	for _, lp := range lows {
		sum += lp.RiskLevel()
	}
	return sum
}
