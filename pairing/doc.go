// Package pairing aligns two ordered sequences of keyed items into a
// sequence of best-matched pairs, one pair per left item.
//
// 🚀 What is a pairing?
//
//	Given a left sequence (e.g. GPS samples) and a right sequence
//	(e.g. photos or songs, each carrying a timestamp), a pairing run asks a
//	Matcher for the single best right item of every left item and assembles
//	the two into an immutable Result.  The matcher is pluggable:
//	  • nearest:  binary search with a distance tolerance ceiling
//	  • bracket:  comparator bracketing plus a caller-supplied tie-break
//
// ✨ Key features:
//   - generic over left, right and pair types (Keyed, Result, Pair)
//   - strictly ordered output: result[i] always belongs to lefts[i]
//   - optional bounded worker pool (WithWorkers) with index-addressed slots
//   - write-only event Sink: one LevelPair event per pair, LevelDebug progress
//   - fail-fast: the first per-item error aborts the run, no partial result
//   - Handler keeps a named pairing set, supports seeding and a finalize hook
//
// ⚙️ Usage:
//
//	pairs, err := pairing.Run(samples, photos, matcher, pairing.NewPair[Sample, Photo],
//	    pairing.WithSink(sink),
//	    pairing.WithWorkers(4),
//	)
//
// Errors (sentinel):
//
//	– ErrInvalidArgument   nil matcher/assembler or other bad argument.
//	– ErrEmptySequence     empty left or right sequence (wraps ErrInvalidArgument).
//	– ErrNoMatchFound      a matcher could not place a left item.
//	– ErrToleranceExceeded a matcher was asked to reject out-of-tolerance matches.
//	– ErrOptionViolation   an invalid functional option was supplied.
//
// Complexity of a run is len(lefts) × cost(Matcher.Match); the run itself adds
// O(len(lefts)) memory for the result.
package pairing
