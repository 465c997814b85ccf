package bracket

import (
	"fmt"

	"github.com/katalvlaran/lvpair/pairing"
)

// Compare reports where right lies relative to left:
// negative if right lies before left, zero on an exact match, positive if after.
type Compare[L, R any] func(left L, right R) int

// NarrowDown picks one right item among the bracketed candidates.
// candidates is never empty and must not be modified.
type NarrowDown[L, R any] func(left L, candidates []R) R

// Matcher is the comparator-driven bracketing matcher.
// It implements pairing.Matcher and is safe for concurrent use when its
// hooks are.
type Matcher[L, R any] struct {
	compare Compare[L, R]
	narrow  NarrowDown[L, R]
}

// New creates a Matcher. Both hooks are required.
func New[L, R any](compare Compare[L, R], narrow NarrowDown[L, R]) (*Matcher[L, R], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: bracket: comparator is nil", pairing.ErrInvalidArgument)
	}
	if narrow == nil {
		return nil, fmt.Errorf("%w: bracket: narrow-down is nil", pairing.ErrInvalidArgument)
	}

	return &Matcher[L, R]{compare: compare, narrow: narrow}, nil
}

// Bracket returns the inclusive index range [lo, hi] of rights that brackets left.
// When exact is true, lo == hi is the lowest index comparing equal to left.
//
// Errors:
//   - pairing.ErrInvalidArgument: m is nil or a zero Matcher.
//   - pairing.ErrEmptySequence: rights is empty.
//   - pairing.ErrNoMatchFound:  no right item lies before or none lies after
//     left, or the last "before" item comes after the first "after" item.
func (m *Matcher[L, R]) Bracket(left L, rights []R) (lo, hi int, exact bool, err error) {
	if m == nil || m.compare == nil || m.narrow == nil {
		return -1, -1, false, fmt.Errorf("%w: bracket: matcher is nil or not built with New", pairing.ErrInvalidArgument)
	}
	if len(rights) == 0 {
		return -1, -1, false, fmt.Errorf("%w: bracket: right sequence is empty", pairing.ErrEmptySequence)
	}

	lastNeg, firstPos := -1, -1
	for i := range rights {
		c := m.compare(left, rights[i])
		switch {
		case c == 0:
			return i, i, true, nil
		case c < 0:
			lastNeg = i
		case firstPos == -1:
			firstPos = i
		}
	}

	switch {
	case lastNeg == -1:
		return -1, -1, false, fmt.Errorf("%w: bracket: no right item lies before the left item", pairing.ErrNoMatchFound)
	case firstPos == -1:
		return -1, -1, false, fmt.Errorf("%w: bracket: no right item lies after the left item", pairing.ErrNoMatchFound)
	case lastNeg > firstPos:
		return -1, -1, false, fmt.Errorf("%w: bracket: inverted bracket [%d, %d], right sequence is not ordered by the comparator",
			pairing.ErrNoMatchFound, lastNeg, firstPos)
	}

	return lastNeg, firstPos, false, nil
}

// Match returns the right item chosen for left: the first exact match if
// there is one, otherwise the narrow-down pick among the bracketed candidates.
func (m *Matcher[L, R]) Match(left L, rights []R) (R, error) {
	lo, hi, exact, err := m.Bracket(left, rights)
	if err != nil {
		var zero R

		return zero, err
	}
	if exact {
		return rights[lo], nil
	}

	// full slice expression: the narrower cannot grow into the caller's storage
	return m.narrow(left, rights[lo:hi+1:hi+1]), nil
}

// Pair runs m over every left item and assembles the matches with assemble,
// in left order. opts are passed to pairing.Run.
func Pair[L, R any, P pairing.Result[L, R]](
	lefts []L,
	rights []R,
	m *Matcher[L, R],
	assemble func(L, R) P,
	opts ...pairing.Option,
) ([]P, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: bracket: matcher is nil", pairing.ErrInvalidArgument)
	}

	return pairing.Run[L, R, P](lefts, rights, m, assemble, opts...)
}
