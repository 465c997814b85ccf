package bracket

import "github.com/katalvlaran/lvpair/pairing"

// ByKey builds a Compare from a key comparator: the right item lies before
// the left item when its key sorts before the left key.
func ByKey[L pairing.Keyed[K], R pairing.Keyed[K], K any](compare func(a, b K) int) Compare[L, R] {
	return func(left L, right R) int {
		return compare(right.PairKey(), left.PairKey())
	}
}

// First picks the earliest bracketed candidate, i.e. the last item before left.
func First[L, R any](_ L, candidates []R) R { return candidates[0] }

// Last picks the latest bracketed candidate, i.e. the first item after left.
func Last[L, R any](_ L, candidates []R) R { return candidates[len(candidates)-1] }

// Closest picks the candidate with the smallest distance to left.
// Ties go to the earlier candidate.
func Closest[L, R any](distance func(left L, right R) float64) NarrowDown[L, R] {
	return func(left L, candidates []R) R {
		best, bestDist := 0, distance(left, candidates[0])
		for i := 1; i < len(candidates); i++ {
			if d := distance(left, candidates[i]); d < bestDist {
				best, bestDist = i, d
			}
		}

		return candidates[best]
	}
}
