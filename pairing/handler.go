package pairing

import (
	"fmt"
	"iter"
	"slices"
	"sync"
)

// Handler owns a named set of pairs produced by one matcher.
//
// A Handler is safe for concurrent use. Calculate and Load are serialized,
// so after a Calculate the stored set equals the pairs handed to finalize
// until the next Calculate or Load.
type Handler[L, R any, P Result[L, R]] struct {
	name     string
	matcher  Matcher[L, R]
	assemble func(L, R) P
	finalize func([]P) error
	opts     []Option

	calc  sync.Mutex // serializes Calculate (finalize included) and Load
	mu    sync.RWMutex
	pairs []P
}

// NewHandler creates a Handler named name.
//
// finalize is optional; when set it is invoked exactly once after every
// successful Calculate, with the freshly stored pairs. opts are passed to Run.
func NewHandler[L, R any, P Result[L, R]](
	name string,
	matcher Matcher[L, R],
	assemble func(L, R) P,
	finalize func([]P) error,
	opts ...Option,
) (*Handler[L, R, P], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: handler name is empty", ErrInvalidArgument)
	}
	if matcher == nil {
		return nil, fmt.Errorf("%w: matcher is nil", ErrInvalidArgument)
	}
	if assemble == nil {
		return nil, fmt.Errorf("%w: assembler is nil", ErrInvalidArgument)
	}

	return &Handler[L, R, P]{
		name:     name,
		matcher:  matcher,
		assemble: assemble,
		finalize: finalize,
		opts:     opts,
	}, nil
}

// Name returns the name of this pairing set.
func (h *Handler[L, R, P]) Name() string { return h.name }

// Calculate pairs lefts with rights and stores the result.
// On error the previously stored pairs are left untouched and finalize is not called.
func (h *Handler[L, R, P]) Calculate(lefts []L, rights []R) error {
	h.calc.Lock()
	defer h.calc.Unlock()

	pairs, err := Run(lefts, rights, h.matcher, h.assemble, h.opts...)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.pairs = pairs
	h.mu.Unlock()

	if h.finalize == nil {
		return nil
	}
	if err = h.finalize(slices.Clone(pairs)); err != nil {
		return fmt.Errorf("pairing: finalize %q: %w", h.name, err)
	}

	return nil
}

// Load replaces the stored set with a copy of pairs created elsewhere.
func (h *Handler[L, R, P]) Load(pairs []P) {
	h.calc.Lock()
	defer h.calc.Unlock()

	h.mu.Lock()
	h.pairs = slices.Clone(pairs)
	h.mu.Unlock()
}

// Pairs returns a copy of the stored pairs in left order.
func (h *Handler[L, R, P]) Pairs() []P {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.pairs)
}

// Len returns the number of stored pairs.
func (h *Handler[L, R, P]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.pairs)
}

// All iterates over a snapshot of the stored pairs with their positions.
func (h *Handler[L, R, P]) All() iter.Seq2[int, P] {
	return slices.All(h.Pairs())
}

// Factory creates ready-to-use handlers for one kind of pairing.
type Factory[L, R any, P Result[L, R]] interface {
	NewHandler() (*Handler[L, R, P], error)
}

// FactoryFunc adapts an ordinary function to the Factory interface.
type FactoryFunc[L, R any, P Result[L, R]] func() (*Handler[L, R, P], error)

// NewHandler calls f().
func (f FactoryFunc[L, R, P]) NewHandler() (*Handler[L, R, P], error) { return f() }
