package nearest

import (
	"fmt"

	"github.com/katalvlaran/lvpair/pairing"
)

// Matcher pairs each left item with the right item whose key is closest.
// It implements pairing.Matcher; rights must be sorted by the Searcher's comparator.
type Matcher[L pairing.Keyed[K], R pairing.Keyed[K], K any] struct {
	searcher *Searcher[K]
	opts     MatcherOptions
}

// NewMatcher wraps s into a pairing.Matcher.
//
// Usage: nearest.NewMatcher[Sample, Photo](searcher); K is inferred from s.
func NewMatcher[L pairing.Keyed[K], R pairing.Keyed[K], K any](s *Searcher[K], opts ...MatcherOption) (*Matcher[L, R, K], error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nearest: searcher is nil", pairing.ErrInvalidArgument)
	}

	m := &Matcher[L, R, K]{searcher: s}
	for _, opt := range opts {
		opt(&m.opts)
	}

	return m, nil
}

// Match returns the right item closest to left.
//
// A match beyond the ceiling is reported to OnMiss and, with MissFail, turned
// into pairing.ErrToleranceExceeded; with MissKeep the closest item is returned.
func (m *Matcher[L, R, K]) Match(left L, rights []R) (R, error) {
	var zero R

	if m == nil || m.searcher == nil {
		return zero, fmt.Errorf("%w: nearest: matcher is nil or not built with NewMatcher", pairing.ErrInvalidArgument)
	}

	res, err := m.searcher.Search(len(rights), func(i int) K { return rights[i].PairKey() }, left.PairKey())
	if err != nil {
		return zero, err
	}

	if !res.Found {
		if m.opts.OnMiss != nil {
			m.opts.OnMiss(res)
		}
		if m.opts.Policy == MissFail {
			return zero, fmt.Errorf("%w: distance %g to right item %d, ceiling %g",
				pairing.ErrToleranceExceeded, res.Accuracy, res.Index, m.searcher.opts.Ceiling)
		}
	}

	return rights[res.Index], nil
}
