package flood

// fourWayOffsets are the (dx, dy) probes of the naive fill: up, down, left, right.
var fourWayOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// FillFourWay is the naive stack-based flood fill: every inside neighbor of
// every visited point is pushed individually. It accepts the same predicate
// and options as Fill and yields the same set; it exists as a reference for
// checking and benchmarking the scan-line engine. OnSpan is invoked once per
// visited point with a single-column span.
//
// Complexity: O(N) time, Memory: O(N) for the visited set and stack.
func FillFourWay(seed Point, inside Predicate, opts ...Option) (Set, error) {
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
	if err = f.mark(seed.X, seed.Y); err != nil {
		return nil, err
	}
	f.stack = append(f.stack, seed)

	for len(f.stack) > 0 {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		p := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		o.OnSpan(p.Y, p.X, p.X)

		for _, d := range fourWayOffsets {
			nx, ny := p.X+d[0], p.Y+d[1]
			if !inside(nx, ny, f.visited) {
				continue
			}
			if err = f.mark(nx, ny); err != nil {
				return nil, err
			}
			f.stack = append(f.stack, Point{X: nx, Y: ny})
		}
	}

	return f.visited, nil
}
