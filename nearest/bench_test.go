package nearest_test

import (
	"testing"

	"github.com/katalvlaran/lvpair/nearest"
)

// benchmarkClosest runs Closest over n evenly spaced keys.
func benchmarkClosest(b *testing.B, n int, opts ...nearest.Option) {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i * 3
	}
	s, err := nearest.Numeric[int](opts...)
	if err != nil {
		b.Fatalf("Numeric failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Closest(keys, (i*7)%(3*n)); err != nil {
			b.Fatalf("Closest failed: %v", err)
		}
	}
}

// BenchmarkClosest_1K benchmarks lookups in 1 000 keys.
func BenchmarkClosest_1K(b *testing.B) { benchmarkClosest(b, 1_000) }

// BenchmarkClosest_1M benchmarks lookups in 1 000 000 keys with a ceiling.
func BenchmarkClosest_1M(b *testing.B) { benchmarkClosest(b, 1_000_000, nearest.WithTolerance(1)) }
