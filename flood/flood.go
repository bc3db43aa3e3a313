// Package flood computes the connected region reachable from a seed point
// under a caller-supplied inclusion predicate, using span (scan-line)
// filling: whole horizontal runs are filled per step and the rows above and
// below are scanned for the next seeds.
//
// See https://en.wikipedia.org/wiki/Flood_fill#Span_filling.
package flood

// filler encapsulates mutable scan-line fill state.
type filler struct {
	inside  Predicate
	opts    Options
	stack   []Point
	visited Set
}

// Fill returns every point reachable from seed through 4-adjacent points for
// which inside holds, including seed itself. If seed is not inside, the
// result is empty.
//
// Seeds are kept on a LIFO stack. Each popped seed is re-tested and, if still
// inside, its row is expanded left and right; then the row below (y+1) and
// the row above (y-1) are scanned across the filled span and one seed is
// pushed per maximal run of inside points. Seeds are pushed without checking
// whether another pushed seed already covers the same run; the re-test on pop
// discards duplicates.
//
// Returns ErrPredicateNil, ErrOptionViolation, ErrRegionTooLarge, or the
// context error if Options.Ctx is cancelled.
//
// Complexity: O(N) predicate calls for N filled points (each point is probed
// a constant number of times), Memory: O(N) for the visited set plus O(S) for
// pending seeds, where S is the frontier of unexplored spans.
func Fill(seed Point, inside Predicate, opts ...Option) (Set, error) {
	if inside == nil {
		return nil, ErrPredicateNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	f := &filler{
		inside:  inside,
		opts:    o,
		visited: make(Set),
	}
	if !inside(seed.X, seed.Y, f.visited) {
		return f.visited, nil
	}
	f.stack = append(f.stack, seed)
	if err = f.run(); err != nil {
		return nil, err
	}

	return f.visited, nil
}

// run drains the seed stack.
func (f *filler) run() error {
	for len(f.stack) > 0 {
		if err := f.opts.Ctx.Err(); err != nil {
			return err
		}
		s := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]

		x, y := s.X, s.Y
		if !f.inside(x, y, f.visited) {
			continue // covered by an earlier span
		}
		lx := x
		for f.inside(lx-1, y, f.visited) {
			if err := f.mark(lx-1, y); err != nil {
				return err
			}
			lx--
		}
		for f.inside(x, y, f.visited) {
			if err := f.mark(x, y); err != nil {
				return err
			}
			x++
		}
		f.opts.OnSpan(y, lx, x-1)
		f.scan(lx, x-1, y+1)
		f.scan(lx, x-1, y-1)
	}
	return nil
}

// scan pushes one seed for each maximal run of inside points on row y
// within the inclusive column range [lx, rx].
func (f *filler) scan(lx, rx, y int) {
	added := false
	for x := lx; x <= rx; x++ {
		if !f.inside(x, y, f.visited) {
			added = false
		} else if !added {
			f.stack = append(f.stack, Point{X: x, Y: y})
			added = true
		}
	}
}

// mark adds (x,y) to the visited set, enforcing MaxCells.
func (f *filler) mark(x, y int) error {
	f.visited.add(x, y)
	if f.opts.MaxCells > 0 && len(f.visited) > f.opts.MaxCells {
		return ErrRegionTooLarge
	}
	return nil
}
