package timekey

import (
	"math"
	"time"

	"github.com/katalvlaran/lvpair/bracket"
	"github.com/katalvlaran/lvpair/nearest"
	"github.com/katalvlaran/lvpair/pairing"
)

// Compare orders two instants chronologically.
func Compare(a, b time.Time) int { return a.Compare(b) }

// Offset returns b - a in seconds. It does not saturate for instants more
// than ~292 years apart, unlike time.Time.Sub.
func Offset(a, b time.Time) float64 {
	return float64(b.Unix()-a.Unix()) + float64(b.Nanosecond()-a.Nanosecond())/float64(time.Second)
}

// Distance returns |b - a| in seconds.
func Distance(a, b time.Time) float64 { return math.Abs(Offset(a, b)) }

// WithTolerance sets the nearest tolerance ceiling to d.
// A negative d is an option violation.
func WithTolerance(d time.Duration) nearest.Option {
	return nearest.WithTolerance(d.Seconds())
}

// NewSearcher returns a nearest.Searcher over time.Time keys.
func NewSearcher(opts ...nearest.Option) (*nearest.Searcher[time.Time], error) {
	return nearest.New[time.Time](Compare, Distance, opts...)
}

// ByTime is the bracket comparator for time-keyed items.
func ByTime[L, R pairing.Keyed[time.Time]]() bracket.Compare[L, R] {
	return bracket.ByKey[L, R, time.Time](Compare)
}

// Narrowest picks the bracketed candidate closest in time to the left item.
// Ties go to the earlier candidate.
func Narrowest[L, R pairing.Keyed[time.Time]]() bracket.NarrowDown[L, R] {
	return bracket.Closest[L, R](func(left L, right R) float64 {
		return Distance(left.PairKey(), right.PairKey())
	})
}

// NewBracketMatcher returns a bracket.Matcher using ByTime and Narrowest.
func NewBracketMatcher[L, R pairing.Keyed[time.Time]]() (*bracket.Matcher[L, R], error) {
	return bracket.New(ByTime[L, R](), Narrowest[L, R]())
}
