// Package nearest finds, for a target key, the closest element of a sorted
// sequence by binary search, and reports whether it lies within an optional
// tolerance ceiling.
//
// Algorithm Outline:
//  1. Binary-search the smallest index `left` with Compare(values[left], target) ≥ 0.
//  2. left == 0     → values[0], found = true.
//  3. left == n     → values[n-1], found = true.
//  4. otherwise compare Distance(values[left], target) with
//     Distance(values[left-1], target); the strictly smaller one wins, ties go
//     to values[left-1]. found = accuracy ≤ ceiling (or true without a ceiling).
//
// Boundary behaviour:
//
//	When the target lies outside the key range (steps 2 and 3) the tolerance
//	ceiling is not applied and Result.Boundary is set. Callers that need the
//	ceiling everywhere can check Result.Accuracy themselves.
//
// Complexity:
//
//	Time   = O(log n) comparisons + 2 distance evaluations
//	Memory = O(1)
//
// The numeric specialisation (Numeric) works for every integer and float type;
// see package timekey for the time.Time specialisation.
package nearest
