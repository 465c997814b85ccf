package nearest

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// AbsDiff returns |a - b| as a float64.
func AbsDiff[T Number](a, b T) float64 {
	return math.Abs(float64(a) - float64(b))
}

// Numeric returns a Searcher over numeric keys using natural ordering and
// absolute difference as distance.
func Numeric[T Number](opts ...Option) (*Searcher[T], error) {
	return New[T](cmp.Compare[T], AbsDiff[T], opts...)
}
