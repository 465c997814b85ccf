package broadcast

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvpair/pairing"
)

// ZerologOption configures the sink returned by Zerolog.
type ZerologOption func(*zerologSink)

// WithPairLevel sets the level pair events are written at. The default is
// info, so a logger filtering at warn drops them unless raised here;
// zerolog.NoLevel writes them regardless of the logger level.
func WithPairLevel(level zerolog.Level) ZerologOption {
	return func(s *zerologSink) {
		s.pairLevel = level
	}
}

// Zerolog returns a sink writing events to logger.
//
//	LevelPair  → pair level (info) {kind: pair,  index}
//	LevelDebug → debug             {kind: debug, index, processed, total}
//
// Run-level events (index -1) are logged without an index field.
func Zerolog(logger zerolog.Logger, opts ...ZerologOption) pairing.Sink {
	s := zerologSink{logger: logger, pairLevel: zerolog.InfoLevel}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

type zerologSink struct {
	logger    zerolog.Logger
	pairLevel zerolog.Level
}

func (s zerologSink) Emit(e pairing.Event) {
	var ev *zerolog.Event

	switch e.Level {
	case pairing.LevelPair:
		ev = s.logger.WithLevel(s.pairLevel)
	case pairing.LevelDebug:
		ev = s.logger.Debug().
			Int("processed", e.Processed).
			Int("total", e.Total)
	default:
		ev = s.logger.Trace()
	}

	ev = ev.Str("kind", e.Level.String())
	if e.Index >= 0 {
		ev = ev.Int("index", e.Index)
	}

	ev.Msg(e.Message)
}

// Multi returns a sink emitting every event to each of sinks, in order.
// Nil sinks are skipped.
func Multi(sinks ...pairing.Sink) pairing.Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}

type multiSink []pairing.Sink

func (m multiSink) Emit(e pairing.Event) {
	for _, s := range m {
		s.Emit(e)
	}
}
