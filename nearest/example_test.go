package nearest_test

import (
	"fmt"

	"github.com/katalvlaran/lvpair/nearest"
)

// ExampleSearcher_Closest looks up the key closest to 5 in [0, 2, 9, 12],
// first without and then with a tolerance ceiling of 1.
func ExampleSearcher_Closest() {
	keys := []int{0, 2, 9, 12}

	s, _ := nearest.Numeric[int]()
	res, _ := s.Closest(keys, 5)
	fmt.Printf("closest=%d distance=%.0f found=%v\n", keys[res.Index], res.Accuracy, res.Found)

	strict, _ := nearest.Numeric[int](nearest.WithTolerance(1))
	res, _ = strict.Closest(keys, 5)
	fmt.Printf("closest=%d distance=%.0f found=%v\n", keys[res.Index], res.Accuracy, res.Found)
	// Output:
	// closest=2 distance=3 found=true
	// closest=2 distance=3 found=false
}

// ExampleSearcher_Closest_boundary shows that targets outside the key range
// bypass the ceiling.
func ExampleSearcher_Closest_boundary() {
	keys := []float64{1.5, 2.5}

	s, _ := nearest.Numeric[float64](nearest.WithTolerance(0.1))
	res, _ := s.Closest(keys, 40)
	fmt.Printf("closest=%.1f found=%v boundary=%v\n", keys[res.Index], res.Found, res.Boundary)
	// Output:
	// closest=2.5 found=true boundary=true
}
