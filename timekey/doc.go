// Package timekey specialises the nearest and bracket matchers for
// time.Time keys.
//
// Ordering is chronological (time.Time.Compare) and distance is the absolute
// difference in seconds, with sub-second precision. Tolerances are given as
// time.Duration and converted to seconds.
//
// Usage:
//
//	s, err := timekey.NewSearcher(timekey.WithTolerance(30 * time.Second))
//	m, err := nearest.NewMatcher[Sample, Photo](s)
//	pairs, err := pairing.Run(samples, photos, m, pairing.NewPair[Sample, Photo])
package timekey
