// Package lvpair aligns two ordered collections of keyed items into a
// sequence of best-matched pairs: GPS fixes against photos, sensor samples
// against events, any two timelines that need lining up.
//
// 🚀 What is in lvpair?
//
//	A small, generic, concurrency-aware toolkit:
//		• Contracts & orchestration: Keyed items, Result pairs, Run, Handler
//		• Nearest matching: binary search with a distance tolerance ceiling
//		• Bracket matching: comparator bracketing + pluggable narrow-down
//		• Time keys: chronological ordering, distances in seconds
//		• Event sinks: zerolog logging, fan-out, in-memory recording
//
// ✨ Why lvpair?
//
//   - Generic – any key, any left/right item, any pair type
//   - Ordered – result[i] always belongs to lefts[i], even in parallel
//   - Fail-fast – one unplaceable item aborts the run, no partial results
//   - Observable – every pair is broadcast to a write-only Sink
//
// Packages:
//
//	pairing/  – Keyed, Result, Pair, Matcher, Run, Handler, Factory, Sink
//	nearest/  – Searcher, FindClosest, Numeric, Matcher (tolerance & miss policy)
//	bracket/  – Matcher, ByKey, First, Last, Closest, Pair
//	timekey/  – time.Time comparator, distance, tolerance, ready-made matchers
//	broadcast/– Zerolog, Multi, Recorder sinks
//	cmd/lvpair– command-line tool pairing JSON record files
//
// Quick ASCII example (bracket):
//
//	rights:  0 ── 2 ──────── 9 ── 12
//	left:         5
//	bracket:     [2 ,  9]  → narrow-down picks 2
//
//	go get github.com/katalvlaran/lvpair
package lvpair
