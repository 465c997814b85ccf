package bracket_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvpair/bracket"
	"github.com/katalvlaran/lvpair/pairing"
)

// reading is a sensor value taken at a second offset.
type reading struct {
	at    int
	value string
}

func (r reading) PairKey() int   { return r.at }
func (r reading) String() string { return fmt.Sprintf("%s@%d", r.value, r.at) }

// ExampleMatcher_Match places events between surrounding readings and keeps
// the nearer one.
func ExampleMatcher_Match() {
	m, err := bracket.New(
		bracket.ByKey[reading, reading](cmp.Compare[int]),
		bracket.Closest(func(l, r reading) float64 {
			return float64(max(l.at-r.at, r.at-l.at))
		}),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	readings := []reading{{0, "a"}, {2, "b"}, {9, "c"}, {12, "d"}}
	events := []reading{{1, "x"}, {8, "y"}, {9, "z"}}

	pairs, err := bracket.Pair(events, readings, m, pairing.NewPair[reading, reading])
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range pairs {
		fmt.Println(p)
	}

	_, err = m.Match(reading{20, "late"}, readings)
	fmt.Println(err)
	// Output:
	// x@1 ⇄ a@0
	// y@8 ⇄ c@9
	// z@9 ⇄ c@9
	// pairing: no match found: bracket: no right item lies after the left item
}
