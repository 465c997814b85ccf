package nearest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpair/pairing"
)

// Comparator is a three-way comparison of two keys: negative when a sorts
// before b, zero when they are equal, positive otherwise. Only the sign is used.
type Comparator[K any] func(a, b K) int

// Distance measures how far apart two keys are. It must be non-negative,
// symmetric and zero for keys that Compare as equal.
type Distance[K any] func(a, b K) float64

// Result describes the outcome of a single search.
type Result struct {
	// Index of the closest element. Always valid after a successful search.
	Index int

	// Accuracy is the distance between the closest element and the target.
	Accuracy float64

	// Found is false when the ceiling is set and Accuracy exceeds it.
	Found bool

	// Boundary is true when the target lies before the first or after the last
	// element; the ceiling is not applied in that case.
	Boundary bool
}

// Options configures a Searcher.
//
// Fields:
//   - Ceiling:    maximum accepted distance, used only when HasCeiling is set.
//   - HasCeiling: enables the tolerance ceiling.
type Options struct {
	Ceiling    float64
	HasCeiling bool

	// internal error recorded during option parsing
	err error
}

// Option configures a Searcher via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options without a tolerance ceiling.
func DefaultOptions() Options {
	return Options{}
}

// WithTolerance sets the tolerance ceiling.
//
//	ceiling ≥ 0:        matches farther than ceiling are reported as not found
//	ceiling < 0 or NaN: invalid option → pairing.ErrOptionViolation
func WithTolerance(ceiling float64) Option {
	return func(o *Options) {
		if ceiling < 0 || math.IsNaN(ceiling) {
			o.err = fmt.Errorf("%w: tolerance ceiling must be a non-negative number (%v)",
				pairing.ErrOptionViolation, ceiling)

			return
		}
		o.Ceiling = ceiling
		o.HasCeiling = true
	}
}

// WithoutTolerance disables the tolerance ceiling.
func WithoutTolerance() Option {
	return func(o *Options) {
		o.Ceiling = 0
		o.HasCeiling = false
	}
}

// MissPolicy decides what a Matcher does with a match beyond the ceiling.
type MissPolicy int

const (
	// MissKeep keeps the closest element and reports the miss through OnMiss.
	MissKeep MissPolicy = iota

	// MissFail aborts with pairing.ErrToleranceExceeded.
	MissFail
)

// MatcherOptions configures a Matcher.
type MatcherOptions struct {
	// Policy applied when the closest element is beyond the ceiling.
	Policy MissPolicy

	// OnMiss is called for every out-of-tolerance match, before Policy is applied.
	// It may be called concurrently by a parallel run.
	OnMiss func(res Result)
}

// MatcherOption configures a Matcher via functional arguments.
type MatcherOption func(*MatcherOptions)

// WithMissPolicy selects how out-of-tolerance matches are handled.
func WithMissPolicy(p MissPolicy) MatcherOption {
	return func(o *MatcherOptions) {
		o.Policy = p
	}
}

// WithOnMiss registers a callback invoked for every out-of-tolerance match.
func WithOnMiss(fn func(res Result)) MatcherOption {
	return func(o *MatcherOptions) {
		if fn != nil {
			o.OnMiss = fn
		}
	}
}
