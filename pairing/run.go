package pairing

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Run pairs every left item with the right item chosen by matcher and
// returns the assembled results in left order.
//
// Preconditions and validation (in order, before any matching):
//  1. lefts and rights must be non-empty (ErrEmptySequence).
//  2. matcher and assemble must be non-nil (ErrInvalidArgument).
//  3. options must be valid (ErrOptionViolation).
//
// Execution:
//
//   - Workers ≤ 1: left items are matched one at a time, in order.
//   - Workers > 1: a bounded pool matches left items concurrently; every worker
//     writes into the slot of its own left index, so result[i] always belongs
//     to lefts[i]. The pool is joined before Run returns.
//
// The first matcher error aborts the run: no further items are scheduled and
// Run returns (nil, err). There are no retries.
//
// Events: one LevelPair event per pair carrying Result.String(), one LevelDebug
// progress event per left item and a final LevelDebug summary.
func Run[L, R any, P Result[L, R]](
	lefts []L,
	rights []R,
	matcher Matcher[L, R],
	assemble func(L, R) P,
	opts ...Option,
) ([]P, error) {
	if len(lefts) == 0 || len(rights) == 0 {
		return nil, fmt.Errorf("%w: left=%d right=%d", ErrEmptySequence, len(lefts), len(rights))
	}
	if matcher == nil {
		return nil, fmt.Errorf("%w: matcher is nil", ErrInvalidArgument)
	}
	if assemble == nil {
		return nil, fmt.Errorf("%w: assembler is nil", ErrInvalidArgument)
	}

	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r := &runner[L, R, P]{
		lefts:    lefts,
		rights:   rights,
		matcher:  matcher,
		assemble: assemble,
		sink:     o.Sink,
	}

	var pairs []P
	if o.Workers > 1 && len(lefts) > 1 {
		pairs, err = r.parallel(o.Workers)
	} else {
		pairs, err = r.sequential()
	}
	if err != nil {
		return nil, err
	}

	r.sink.Emit(Event{
		Level:     LevelDebug,
		Message:   fmt.Sprintf("%d pairs created", len(pairs)),
		Index:     -1,
		Processed: len(pairs),
		Total:     len(lefts),
	})

	return pairs, nil
}

// runner holds the read-only inputs and the progress counter of a single run.
type runner[L, R any, P Result[L, R]] struct {
	lefts     []L
	rights    []R
	matcher   Matcher[L, R]
	assemble  func(L, R) P
	sink      Sink
	processed atomic.Int64
}

// sequential matches left items one after another.
func (r *runner[L, R, P]) sequential() ([]P, error) {
	pairs := make([]P, 0, len(r.lefts))
	for i := range r.lefts {
		p, err := r.pairAt(i)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

// parallel matches left items on at most workers goroutines.
// Results land in index-addressed slots; nothing is appended in completion order.
func (r *runner[L, R, P]) parallel(workers int) ([]P, error) {
	pairs := make([]P, len(r.lefts))

	var (
		g      errgroup.Group
		failed atomic.Bool
	)
	g.SetLimit(workers)

	for i := range r.lefts {
		if failed.Load() {
			break
		}
		g.Go(func() error {
			if failed.Load() {
				return nil
			}
			p, err := r.pairAt(i)
			if err != nil {
				failed.Store(true)

				return err
			}
			pairs[i] = p

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// pairAt matches lefts[i], assembles the pair and emits its events.
func (r *runner[L, R, P]) pairAt(i int) (P, error) {
	left := r.lefts[i]

	match, err := r.matcher.Match(left, r.rights)
	if err != nil {
		var zero P

		return zero, fmt.Errorf("pairing: left item %d: %w", i, err)
	}

	p := r.assemble(left, match)
	r.sink.Emit(Event{Level: LevelPair, Message: p.String(), Index: i})

	n := int(r.processed.Add(1))
	r.sink.Emit(Event{
		Level:     LevelDebug,
		Message:   fmt.Sprintf("pair created for left item %d", i),
		Index:     i,
		Processed: n,
		Total:     len(r.lefts),
	})

	return p, nil
}
