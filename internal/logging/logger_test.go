package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpair/internal/config"
)

func decodeGelf(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	msg := map[string]any{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &msg))

	return msg
}

func TestNewTextLogger(t *testing.T) {
	// GIVEN
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Format: config.LogTextFormat, Level: zerolog.InfoLevel}, &buf)

	// WHEN
	logger.Info().Str("kind", "pair").Msg("a ⇄ b")
	logger.Debug().Msg("filtered")

	// THEN
	assert.NotContains(t, buf.String(), "{")
	assert.NotContains(t, buf.String(), "short_message")
	assert.Contains(t, buf.String(), "a ⇄ b")
	assert.Contains(t, buf.String(), "kind=")
	assert.NotContains(t, buf.String(), "filtered")
}

func TestNewGelfLogger(t *testing.T) {
	// GIVEN
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Format: config.LogGelfFormat, Level: zerolog.DebugLevel}, &buf)

	// WHEN
	logger.Info().Msg("Hello lvpair")

	// THEN
	msg := decodeGelf(t, &buf)
	assert.Equal(t, "1.1", msg["version"])
	assert.NotEmpty(t, msg["host"])
	assert.Equal(t, "Hello lvpair", msg["short_message"])
	assert.Equal(t, "INFO", msg["_level_name"])
	assert.InDelta(t, 6, msg["level"], 0)
	assert.IsType(t, float64(0), msg["timestamp"])

	assert.Equal(t, "message", zerolog.MessageFieldName, "global field names stay untouched")
	assert.Equal(t, "level", zerolog.LevelFieldName)
}

func TestGelfWriter(t *testing.T) {
	at := time.Date(2024, time.June, 1, 12, 0, 0, 250*int(time.Millisecond), time.UTC)

	testCases := []struct {
		uc     string
		log    func(logger zerolog.Logger)
		assert func(t *testing.T, msg map[string]any)
	}{
		{
			uc: "fields are prefixed",
			log: func(logger zerolog.Logger) {
				logger.Warn().Str("kind", "pair").Int("index", 3).Msg("a ⇄ b")
			},
			assert: func(t *testing.T, msg map[string]any) {
				t.Helper()

				assert.Equal(t, "a ⇄ b", msg["short_message"])
				assert.Equal(t, "pair", msg["_kind"])
				assert.InDelta(t, 3, msg["_index"], 0)
				assert.InDelta(t, 4, msg["level"], 0)
				assert.Equal(t, "WARN", msg["_level_name"])
				assert.NotContains(t, msg, "kind")
				assert.NotContains(t, msg, "message")
			},
		},
		{
			uc: "error field",
			log: func(logger zerolog.Logger) {
				logger.Error().Err(errors.New("boom")).Msg("failed")
			},
			assert: func(t *testing.T, msg map[string]any) {
				t.Helper()

				assert.Equal(t, "boom", msg["_error"])
				assert.InDelta(t, 3, msg["level"], 0)
			},
		},
		{
			uc: "timestamp from the clock",
			log: func(logger zerolog.Logger) {
				logger.Debug().Msg("tick")
			},
			assert: func(t *testing.T, msg map[string]any) {
				t.Helper()

				assert.InDelta(t, float64(at.Unix())+0.25, msg["timestamp"], 1e-3)
				assert.InDelta(t, 7, msg["level"], 0)
			},
		},
		{
			uc: "no level and no message",
			log: func(logger zerolog.Logger) {
				logger.Log().Str("kind", "raw").Send()
			},
			assert: func(t *testing.T, msg map[string]any) {
				t.Helper()

				assert.NotContains(t, msg, "level")
				assert.NotContains(t, msg, "_level_name")
				assert.Equal(t, "", msg["short_message"])
				assert.Equal(t, "raw", msg["_kind"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			var buf bytes.Buffer
			w := newGelfWriter(&buf, "node-1")
			w.now = func() time.Time { return at }
			logger := zerolog.New(w).Level(zerolog.TraceLevel)

			// WHEN
			tc.log(logger)

			// THEN
			msg := decodeGelf(t, &buf)
			assert.Equal(t, "node-1", msg["host"])
			assert.Equal(t, "1.1", msg["version"])
			tc.assert(t, msg)
		})
	}
}

func TestGelfWriterRejectsMalformedInput(t *testing.T) {
	var buf bytes.Buffer

	n, err := newGelfWriter(&buf, "node-1").Write([]byte("not json"))

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

func TestGelfSeverity(t *testing.T) {
	for level, expected := range map[zerolog.Level]int8{
		zerolog.TraceLevel: 7,
		zerolog.DebugLevel: 7,
		zerolog.InfoLevel:  6,
		zerolog.WarnLevel:  4,
		zerolog.ErrorLevel: 3,
		zerolog.FatalLevel: 2,
		zerolog.PanicLevel: 1,
	} {
		assert.Equal(t, expected, gelfSeverity[level], level.String())
	}
}
