package nearest

import (
	"fmt"

	"github.com/katalvlaran/lvpair/pairing"
)

// Searcher performs nearest-key lookups with a fixed comparator, distance
// and tolerance. It is immutable and safe for concurrent use.
type Searcher[K any] struct {
	compare  Comparator[K]
	distance Distance[K]
	opts     Options
}

// New creates a Searcher.
// Returns pairing.ErrInvalidArgument for nil hooks and
// pairing.ErrOptionViolation for invalid options.
func New[K any](compare Comparator[K], distance Distance[K], opts ...Option) (*Searcher[K], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nearest: comparator is nil", pairing.ErrInvalidArgument)
	}
	if distance == nil {
		return nil, fmt.Errorf("%w: nearest: distance is nil", pairing.ErrInvalidArgument)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Searcher[K]{compare: compare, distance: distance, opts: o}, nil
}

// Options returns the options the Searcher was built with.
func (s *Searcher[K]) Options() Options { return s.opts }

// Search looks for the element closest to target among n elements whose
// keys are returned by keyAt, in ascending comparator order.
//
// Returns pairing.ErrEmptySequence when n ≤ 0. The returned Result.Index is
// always set on success, even when Result.Found is false.
func (s *Searcher[K]) Search(n int, keyAt func(i int) K, target K) (Result, error) {
	if n <= 0 {
		return Result{Index: -1}, fmt.Errorf("%w: nearest: nothing to search", pairing.ErrEmptySequence)
	}

	// lower bound: first index whose key is not before target
	left, right := 0, n
	for left < right {
		mid := left + (right-left)/2
		if s.compare(keyAt(mid), target) < 0 {
			left = mid + 1
		} else {
			right = mid
		}
	}

	// target outside the key range: no ceiling
	if left == 0 || left == n {
		idx := min(left, n-1)

		return Result{
			Index:    idx,
			Accuracy: s.distance(keyAt(idx), target),
			Found:    true,
			Boundary: true,
		}, nil
	}

	distLeft := s.distance(keyAt(left), target)
	distPrev := s.distance(keyAt(left-1), target)

	res := Result{Index: left - 1, Accuracy: distPrev}
	if distLeft < distPrev {
		res = Result{Index: left, Accuracy: distLeft}
	}
	res.Found = !s.opts.HasCeiling || res.Accuracy <= s.opts.Ceiling

	return res, nil
}

// Closest searches a sorted slice of plain keys.
func (s *Searcher[K]) Closest(keys []K, target K) (Result, error) {
	return s.Search(len(keys), func(i int) K { return keys[i] }, target)
}

// FindClosest returns the element of values whose key is closest to target.
// values must be sorted ascending by s's comparator.
//
// closest is always set on success; callers must check found, which is false
// only when the tolerance ceiling rejected the match.
func FindClosest[T pairing.Keyed[K], K any](s *Searcher[K], values []T, target K) (closest T, found bool, err error) {
	res, err := FindClosestResult(s, values, target)
	if err != nil {
		return closest, false, err
	}

	return values[res.Index], res.Found, nil
}

// FindClosestResult is FindClosest returning the full search Result.
func FindClosestResult[T pairing.Keyed[K], K any](s *Searcher[K], values []T, target K) (Result, error) {
	if s == nil {
		return Result{Index: -1}, fmt.Errorf("%w: nearest: searcher is nil", pairing.ErrInvalidArgument)
	}

	return s.Search(len(values), func(i int) K { return values[i].PairKey() }, target)
}
