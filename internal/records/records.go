// Package records reads and writes the timestamped JSON records the
// command-line tool pairs.
package records

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/lvpair/pairing"
	"github.com/katalvlaran/lvpair/timekey"
)

// ErrMalformedRecord indicates an input document that is not a JSON array of records.
var ErrMalformedRecord = errors.New("records: malformed input")

// Record is a labelled instant.
type Record struct {
	Time  time.Time `json:"time"`
	Label string    `json:"label"`
}

// PairKey returns the record time.
func (r Record) PairKey() time.Time { return r.Time }

// String returns the label, or the RFC 3339 time for unlabelled records.
func (r Record) String() string {
	if len(r.Label) != 0 {
		return r.Label
	}

	return r.Time.Format(time.RFC3339Nano)
}

// Load decodes a JSON array of records from src.
// Every record must carry a time.
func Load(src io.Reader) ([]Record, error) {
	var recs []Record
	if err := json.NewDecoder(src).Decode(&recs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	for i, r := range recs {
		if r.Time.IsZero() {
			return nil, fmt.Errorf("%w: record %d has no time", ErrMalformedRecord, i)
		}
	}

	return recs, nil
}

// LoadFile reads records from the file at path.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// SortByTime orders recs chronologically; records with equal times keep
// their input order.
func SortByTime(recs []Record) {
	slices.SortStableFunc(recs, func(a, b Record) int { return timekey.Compare(a.Time, b.Time) })
}

// Match is a record pair with its JSON form.
type Match struct {
	pairing.Pair[Record, Record]
}

// NewMatch assembles a Match; it is the assembler passed to a pairing run.
func NewMatch(left, right Record) Match {
	return Match{Pair: pairing.NewPair(left, right)}
}

// Offset returns right time minus left time in seconds.
func (m Match) Offset() float64 {
	return timekey.Offset(m.Left().Time, m.Right().Time)
}

type matchJSON struct {
	Left          Record  `json:"left"`
	Right         Record  `json:"right"`
	OffsetSeconds float64 `json:"offset_seconds"`
}

// MarshalJSON renders {"left", "right", "offset_seconds"}.
func (m Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(matchJSON{
		Left:          m.Left(),
		Right:         m.Right(),
		OffsetSeconds: m.Offset(),
	})
}

// Write encodes matches to dst as an indented JSON array.
func Write(dst io.Writer, matches []Match) error {
	if matches == nil {
		matches = []Match{}
	}

	enc := json.NewEncoder(dst)
	enc.SetIndent("", "  ")

	return enc.Encode(matches)
}
