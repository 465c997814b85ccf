// Package bracket places each left item between the last right item that
// lies before it and the first right item that lies after it, then lets a
// caller-supplied narrow-down strategy pick one candidate from that bracket.
//
// Algorithm Outline (per left item):
//  1. c[i] = Compare(left, rights[i]) for the right sequence; negative means
//     rights[i] lies before left, positive means it lies after.
//  2. The first i with c[i] == 0 is an exact match; narrow-down is skipped.
//  3. lastNeg = highest i with c[i] < 0, firstPos = lowest i with c[i] > 0.
//     A missing side or lastNeg > firstPos is reported as
//     pairing.ErrNoMatchFound.
//  4. match = NarrowDown(left, rights[lastNeg : firstPos+1]).
//
// The right sequence must be ordered consistently with Compare; bracket does
// not sort or verify it beyond detecting an inverted bracket.
//
// Complexity:
//
//	Time   = O(n) comparisons per left item + cost(NarrowDown)
//	Memory = O(1); the bracket is a view into the caller's slice
package bracket
