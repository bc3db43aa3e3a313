// Package flood defines the point, set, predicate and option types used by
// the scan-line and four-way fill engines.
package flood

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for fill execution.
var (
	// ErrPredicateNil is returned when Fill is called without a predicate.
	ErrPredicateNil = errors.New("flood: predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flood: invalid option supplied")

	// ErrRegionTooLarge is returned when the region exceeds MaxCells.
	ErrRegionTooLarge = errors.New("flood: region exceeds cell limit")
)

// Point is a signed working coordinate. Probes may reference points
// outside the caller's domain; the predicate is responsible for rejecting them.
type Point struct {
	X, Y int
}

// Set is the collection of points a fill has visited.
type Set map[Point]struct{}

// Contains reports whether (x,y) is in the set.
func (s Set) Contains(x, y int) bool {
	_, ok := s[Point{X: x, Y: y}]
	return ok
}

// Len returns the number of points in the set.
func (s Set) Len() int {
	return len(s)
}

// Points returns the members sorted row-major (by Y, then X).
func (s Set) Points() []Point {
	pts := make([]Point, 0, len(s))
	for p := range s {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

func (s Set) add(x, y int) {
	s[Point{X: x, Y: y}] = struct{}{}
}

// Predicate decides whether (x,y) belongs to the region being filled.
// It receives the set visited so far and must return false for points
// already in it, for points outside the domain, and for points failing the
// domain test. The set is shared with the fill and must not be modified.
type Predicate func(x, y int, visited Set) bool

// Option configures Fill and FillFourWay via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the fill runs.
type Option func(*Options)

// Options holds the parameters and hooks of a fill.
type Options struct {
	// Ctx allows cancellation; it is checked once per popped seed.
	Ctx context.Context

	// OnSpan is called after each horizontal run is filled, with the row
	// and the inclusive column range [lx, rx].
	OnSpan func(y, lx, rx int)

	// MaxCells, if > 0, aborts the fill with ErrRegionTooLarge once the
	// region grows beyond this many points. 0 means no limit.
	MaxCells int

	err error
}

// DefaultOptions returns Options with a background context, no cell
// limit and a no-op OnSpan hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnSpan:   func(int, int, int) {},
		MaxCells: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSpan registers a callback run after each filled span.
func WithOnSpan(fn func(y, lx, rx int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSpan = fn
		}
	}
}

// WithMaxCells limits the region size.
//
//	n > 0: abort once more than n points are visited
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCells cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
