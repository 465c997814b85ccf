package pairing

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every matcher in this module.
var (
	// ErrInvalidArgument indicates a nil hook, nil matcher or otherwise unusable argument.
	ErrInvalidArgument = errors.New("pairing: invalid argument")

	// ErrEmptySequence indicates that the left or right sequence is nil or empty.
	// It wraps ErrInvalidArgument, so errors.Is matches both.
	ErrEmptySequence = fmt.Errorf("%w: sequences must be non-empty", ErrInvalidArgument)

	// ErrNoMatchFound indicates that a left item could not be placed in the right sequence.
	ErrNoMatchFound = errors.New("pairing: no match found")

	// ErrToleranceExceeded indicates that the closest right item lies beyond the
	// tolerance ceiling and the matcher was configured to reject such matches.
	ErrToleranceExceeded = errors.New("pairing: closest match exceeds tolerance ceiling")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pairing: invalid option supplied")
)

// Keyed is implemented by items that expose a comparison key.
// The ordering and distance of keys are supplied per matcher, not by K itself.
type Keyed[K any] interface {
	PairKey() K
}

// Result is an immutable record of one left item matched with one right item.
type Result[L, R any] interface {
	Left() L
	Right() R
	String() string
}

// Pair is the default Result implementation.
// Its textual form is computed once, at construction.
type Pair[L, R any] struct {
	left  L
	right R
	text  string
}

// NewPair assembles left and right into a Pair.
// It has the assembler signature expected by Run: pass NewPair[L, R].
func NewPair[L, R any](left L, right R) Pair[L, R] {
	return Pair[L, R]{
		left:  left,
		right: right,
		text:  fmt.Sprintf("%v ⇄ %v", left, right),
	}
}

// Left returns the left item of the pair.
func (p Pair[L, R]) Left() L { return p.left }

// Right returns the right item of the pair.
func (p Pair[L, R]) Right() R { return p.right }

// String returns the textual representation of the pair.
func (p Pair[L, R]) String() string { return p.text }

// Matcher selects exactly one right item for a single left item.
// Implementations must not modify rights; a run may call Match concurrently.
type Matcher[L, R any] interface {
	Match(left L, rights []R) (R, error)
}

// MatcherFunc adapts an ordinary function to the Matcher interface.
type MatcherFunc[L, R any] func(left L, rights []R) (R, error)

// Match calls f(left, rights).
func (f MatcherFunc[L, R]) Match(left L, rights []R) (R, error) { return f(left, rights) }

// Option configures a pairing run via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds the parameters of a pairing run.
type Options struct {
	// Sink receives pair and progress events. Never nil after DefaultOptions.
	Sink Sink

	// Workers is the number of left items processed concurrently.
	// Values ≤ 1 select the sequential reference behaviour.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op sink and sequential execution.
func DefaultOptions() Options {
	return Options{
		Sink:    NopSink,
		Workers: 1,
	}
}

// WithSink routes run events to s. A nil sink is ignored.
func WithSink(s Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithWorkers bounds the number of left items matched concurrently.
//
//	n > 1:  bounded worker pool, result order still equals left order
//	n == 0: sequential (same as 1)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = 1
		default:
			o.Workers = n
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
