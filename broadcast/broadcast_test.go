package broadcast_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpair/broadcast"
	"github.com/katalvlaran/lvpair/pairing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &entry))
		out = append(out, entry)
	}

	return out
}

// TestZerolog_Levels verifies the mapping of event levels to log levels and fields.
func TestZerolog_Levels(t *testing.T) {
	t.Parallel()

	// GIVEN
	var buf bytes.Buffer
	sink := broadcast.Zerolog(zerolog.New(&buf).Level(zerolog.DebugLevel))

	// WHEN
	sink.Emit(pairing.Event{Level: pairing.LevelPair, Message: "a ⇄ b", Index: 3})
	sink.Emit(pairing.Event{Level: pairing.LevelDebug, Message: "progress", Index: 3, Processed: 4, Total: 9})
	sink.Emit(pairing.Event{Level: pairing.LevelDebug, Message: "done", Index: -1, Processed: 9, Total: 9})

	// THEN
	entries := decodeLines(t, &buf)
	require.Len(t, entries, 3)

	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "pair", entries[0]["kind"])
	assert.Equal(t, "a ⇄ b", entries[0]["message"])
	assert.InDelta(t, 3, entries[0]["index"], 0)

	assert.Equal(t, "debug", entries[1]["level"])
	assert.InDelta(t, 4, entries[1]["processed"], 0)
	assert.InDelta(t, 9, entries[1]["total"], 0)

	assert.NotContains(t, entries[2], "index", "run-level events carry no index")
}

// TestZerolog_LevelFilter ensures debug events are dropped at info level.
func TestZerolog_LevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := broadcast.Zerolog(zerolog.New(&buf).Level(zerolog.InfoLevel))

	sink.Emit(pairing.Event{Level: pairing.LevelDebug, Message: "progress"})
	sink.Emit(pairing.Event{Level: pairing.LevelPair, Message: "x ⇄ y"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "x ⇄ y", entries[0]["message"])
}

// TestZerolog_PairLevel verifies pair events follow the configured level and
// survive a logger filtering above info.
func TestZerolog_PairLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		uc     string
		opts   []broadcast.ZerologOption
		assert func(t *testing.T, entries []map[string]any)
	}{
		{
			uc: "default level is dropped by a warn logger",
			assert: func(t *testing.T, entries []map[string]any) {
				t.Helper()

				assert.Empty(t, entries)
			},
		},
		{
			uc:   "warn level passes a warn logger",
			opts: []broadcast.ZerologOption{broadcast.WithPairLevel(zerolog.WarnLevel)},
			assert: func(t *testing.T, entries []map[string]any) {
				t.Helper()

				require.Len(t, entries, 1)
				assert.Equal(t, "warn", entries[0]["level"])
				assert.Equal(t, "x ⇄ y", entries[0]["message"])
			},
		},
		{
			uc:   "no level always passes",
			opts: []broadcast.ZerologOption{broadcast.WithPairLevel(zerolog.NoLevel)},
			assert: func(t *testing.T, entries []map[string]any) {
				t.Helper()

				require.Len(t, entries, 1)
				assert.NotContains(t, entries[0], "level")
				assert.Equal(t, "pair", entries[0]["kind"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			var buf bytes.Buffer
			sink := broadcast.Zerolog(zerolog.New(&buf).Level(zerolog.WarnLevel), tc.opts...)

			// WHEN
			sink.Emit(pairing.Event{Level: pairing.LevelDebug, Message: "progress", Index: 0, Processed: 1, Total: 1})
			sink.Emit(pairing.Event{Level: pairing.LevelPair, Message: "x ⇄ y", Index: 0})

			// THEN
			tc.assert(t, decodeLines(t, &buf))
		})
	}
}

// TestMulti_FanOut verifies every sink receives every event and nil sinks are skipped.
func TestMulti_FanOut(t *testing.T) {
	t.Parallel()

	a, b := broadcast.NewRecorder(), broadcast.NewRecorder()
	sink := broadcast.Multi(a, nil, b)

	sink.Emit(pairing.Event{Level: pairing.LevelPair, Message: "1"})
	sink.Emit(pairing.Event{Level: pairing.LevelDebug, Message: "2"})

	assert.Len(t, a.Events(), 2)
	assert.Equal(t, a.Events(), b.Events())
}

// TestRecorder_Concurrent checks that concurrent emits are all recorded and
// that pair messages come back in index order.
func TestRecorder_Concurrent(t *testing.T) {
	t.Parallel()

	rec := broadcast.NewRecorder()

	var wg sync.WaitGroup
	for i := 49; i >= 0; i-- {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Emit(pairing.Event{Level: pairing.LevelPair, Message: string(rune('A' + i%26)), Index: i})
			rec.Emit(pairing.Event{Level: pairing.LevelDebug, Index: i})
		}()
	}
	wg.Wait()

	assert.Len(t, rec.Events(), 100)

	msgs := rec.PairMessages()
	require.Len(t, msgs, 50)
	assert.Equal(t, "A", msgs[0])
	assert.Equal(t, "Z", msgs[25])

	rec.Reset()
	assert.Empty(t, rec.Events())
}

// TestRecorder_EventsIsACopy ensures callers cannot alter recorded events.
func TestRecorder_EventsIsACopy(t *testing.T) {
	t.Parallel()

	rec := broadcast.NewRecorder()
	rec.Emit(pairing.Event{Message: "kept"})

	events := rec.Events()
	events[0].Message = "changed"

	assert.Equal(t, "kept", rec.Events()[0].Message)
}
