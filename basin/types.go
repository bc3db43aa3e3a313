package basin

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/basins/heightmap"
)

// Barrier is the height that never belongs to a basin.
const Barrier = heightmap.MaxHeight

// DefaultTopK is the number of largest basins multiplied by Analyze.
const DefaultTopK = 3

// Sentinel errors for basin analysis.
var (
	// ErrGridNil is returned when a nil grid is passed to NewAnalyzer.
	ErrGridNil = errors.New("basin: grid is nil")

	// ErrInsufficientBasins is returned when fewer basins exist than requested.
	ErrInsufficientBasins = errors.New("basin: not enough basins")

	// ErrInvalidK is returned when a non-positive basin count is requested.
	ErrInvalidK = errors.New("basin: top-k must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("basin: invalid option supplied")
)

// LowPoint is a cell strictly lower than all of its existing 4-neighbors.
type LowPoint struct {
	Pos    heightmap.Point `yaml:"pos"`
	Height uint8           `yaml:"height"`
}

// RiskLevel is the low point's height plus one.
func (lp LowPoint) RiskLevel() int {
	return int(lp.Height) + 1
}

// Basin records the size of the region draining to Low.
// Membership sets are not retained.
type Basin struct {
	Low  LowPoint `yaml:"low"`
	Size int      `yaml:"size"`
}

// Report is the outcome of a full analysis.
//   - LowPoints: in row-major order.
//   - RiskSum: sum of RiskLevel over LowPoints.
//   - Sizes: basin sizes, largest first.
//   - TopProduct: product of the TopK largest sizes.
type Report struct {
	LowPoints  []LowPoint `yaml:"lowPoints"`
	RiskSum    int        `yaml:"riskSum"`
	Sizes      []int      `yaml:"basinSizes"`
	TopK       int        `yaml:"topK"`
	TopProduct int        `yaml:"topProduct"`
}

// Option configures an Analyzer via functional arguments.
type Option func(*Options)

// Options holds the analyzer parameters.
type Options struct {
	// Ctx allows cancellation of long fills.
	Ctx context.Context

	// TopK is how many of the largest basins Analyze multiplies.
	TopK int

	// MaxBasinSize, if > 0, fails any basin larger than this many cells.
	MaxBasinSize int

	// Logger receives per-basin debug entries.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns Options with a background context, TopK=3,
// no basin size limit and a logger that discards everything.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return Options{
		Ctx:          context.Background(),
		TopK:         DefaultTopK,
		MaxBasinSize: 0,
		Logger:       discard,
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

// WithTopK sets how many of the largest basins are multiplied.
// k must be positive.
func WithTopK(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: TopK must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.TopK = k
	}
}

// WithMaxBasinSize limits how large a single basin may grow; 0 disables
// the limit and negative values are rejected.
func WithMaxBasinSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxBasinSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxBasinSize = n
	}
}

// WithLogger routes debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
