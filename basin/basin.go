package basin

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/basins/flood"
	"github.com/katalvlaran/basins/heightmap"
)

// Analyzer runs basin queries against a single immutable grid.
// It holds no mutable state after construction and is safe for
// concurrent use.
type Analyzer struct {
	grid *heightmap.Grid
	opts Options
}

// NewAnalyzer binds g to the supplied options.
// Returns ErrGridNil or ErrOptionViolation.
func NewAnalyzer(g *heightmap.Grid, opts ...Option) (*Analyzer, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Analyzer{grid: g, opts: o}, nil
}

// Grid returns the analyzed grid.
func (a *Analyzer) Grid() *heightmap.Grid {
	return a.grid
}

// LowPoints is FindLowPoints over the analyzer's grid.
func (a *Analyzer) LowPoints() []LowPoint {
	return FindLowPoints(a.grid)
}

// inside admits in-bounds, unvisited cells lower than Barrier.
func (a *Analyzer) inside(x, y int, visited flood.Set) bool {
	if !a.grid.InBounds(x, y) || visited.Contains(x, y) {
		return false
	}
	return a.grid.Get(heightmap.Point{X: x, Y: y}) < Barrier
}

// BasinAt returns the set of cells reachable from p through cells below
// Barrier. If p itself is a barrier the set is empty.
func (a *Analyzer) BasinAt(p heightmap.Point) (flood.Set, error) {
	set, err := flood.Fill(flood.Point{X: p.X, Y: p.Y}, a.inside,
		flood.WithContext(a.opts.Ctx),
		flood.WithMaxCells(a.opts.MaxBasinSize),
	)
	if err != nil {
		return nil, fmt.Errorf("basin: fill at (%d,%d): %w", p.X, p.Y, err)
	}
	return set, nil
}

// SizeAt returns the number of cells in the basin of low.
func (a *Analyzer) SizeAt(low LowPoint) (int, error) {
	set, err := a.BasinAt(low.Pos)
	if err != nil {
		return 0, err
	}
	a.opts.Logger.WithFields(logrus.Fields{
		"x":      low.Pos.X,
		"y":      low.Pos.Y,
		"height": low.Height,
		"size":   set.Len(),
	}).Debug("basin measured")
	return set.Len(), nil
}

// Basins measures the basin of each low point, in the order given.
func (a *Analyzer) Basins(lows []LowPoint) ([]Basin, error) {
	basins := make([]Basin, 0, len(lows))
	for _, lp := range lows {
		size, err := a.SizeAt(lp)
		if err != nil {
			return nil, err
		}
		basins = append(basins, Basin{Low: lp, Size: size})
	}
	return basins, nil
}

// TopThreeProduct multiplies the sizes of the three largest basins.
// Returns ErrInsufficientBasins if the grid has fewer than three low points.
func (a *Analyzer) TopThreeProduct() (int, error) {
	basins, err := a.Basins(a.LowPoints())
	if err != nil {
		return 0, err
	}
	return TopProduct(sizesOf(basins), 3)
}

// Analyze computes the low points, their risk sum, every basin size and the
// product of the TopK largest basins.
//
// If there are fewer than TopK basins the returned Report is still filled in
// (with TopProduct 0) alongside an error wrapping ErrInsufficientBasins, so
// callers can report the risk sum. Any other error yields a nil Report.
func (a *Analyzer) Analyze() (*Report, error) {
	lows := a.LowPoints()
	basins, err := a.Basins(lows)
	if err != nil {
		return nil, err
	}
	sizes := sizesOf(basins)
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	rep := &Report{
		LowPoints: lows,
		RiskSum:   RiskSum(lows),
		Sizes:     sizes,
		TopK:      a.opts.TopK,
	}
	a.opts.Logger.WithFields(logrus.Fields{
		"lowPoints": len(lows),
		"riskSum":   rep.RiskSum,
	}).Debug("low points found")

	rep.TopProduct, err = TopProduct(sizes, a.opts.TopK)
	return rep, err
}

func sizesOf(basins []Basin) []int {
	sizes := make([]int, len(basins))
	for i, b := range basins {
		sizes[i] = b.Size
	}
	return sizes
}
