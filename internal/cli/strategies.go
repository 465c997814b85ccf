package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvpair/broadcast"
	"github.com/katalvlaran/lvpair/internal/config"
	"github.com/katalvlaran/lvpair/internal/records"
	"github.com/katalvlaran/lvpair/nearest"
	"github.com/katalvlaran/lvpair/pairing"
	"github.com/katalvlaran/lvpair/timekey"
)

const (
	StrategyNearest = config.StrategyNearest
	StrategyBracket = config.StrategyBracket
)

// ErrUnknownStrategy is returned for a strategy name without a registered matcher.
var ErrUnknownStrategy = errors.New("unknown strategy")

type (
	recordMatcher = pairing.Matcher[records.Record, records.Record]
	recordHandler = pairing.Handler[records.Record, records.Record, records.Match]
	recordFactory = pairing.Factory[records.Record, records.Record, records.Match]
)

// matcherBuilder creates the matcher of one strategy.
type matcherBuilder func(conf config.MatchingConfig, logger zerolog.Logger) (recordMatcher, error)

var strategies = map[string]matcherBuilder{ //nolint:gochecknoglobals
	StrategyNearest: newNearestMatcher,
	StrategyBracket: newBracketMatcher,
}

func newNearestMatcher(conf config.MatchingConfig, logger zerolog.Logger) (recordMatcher, error) {
	var opts []nearest.Option
	if conf.HasTolerance() {
		opts = append(opts, timekey.WithTolerance(conf.Tolerance))
	}

	searcher, err := timekey.NewSearcher(opts...)
	if err != nil {
		return nil, err
	}

	policy := nearest.MissKeep
	if conf.OnMiss == config.OnMissFail {
		policy = nearest.MissFail
	}

	m, err := nearest.NewMatcher[records.Record, records.Record](searcher,
		nearest.WithMissPolicy(policy),
		nearest.WithOnMiss(func(res nearest.Result) {
			logger.Warn().
				Int("right_index", res.Index).
				Float64("distance_seconds", res.Accuracy).
				Dur("tolerance", conf.Tolerance).
				Msg("Closest record exceeds the tolerance")
		}),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func newBracketMatcher(_ config.MatchingConfig, _ zerolog.Logger) (recordMatcher, error) {
	m, err := timekey.NewBracketMatcher[records.Record, records.Record]()
	if err != nil {
		return nil, err
	}

	return m, nil
}

// newFactory returns the handler factory of strategy. Handlers write their
// pairs as JSON to out once a run has succeeded and log events to logger.
func newFactory(strategy string, conf config.MatchingConfig, logger zerolog.Logger, out io.Writer) (recordFactory, error) {
	build, ok := strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	return pairing.FactoryFunc[records.Record, records.Record, records.Match](func() (*recordHandler, error) {
		m, err := build(conf, logger)
		if err != nil {
			return nil, err
		}

		return pairing.NewHandler[records.Record, records.Record, records.Match](
			strategy,
			m,
			records.NewMatch,
			func(pairs []records.Match) error { return records.Write(out, pairs) },
			pairing.WithSink(broadcast.Zerolog(logger)),
			pairing.WithWorkers(conf.Workers),
		)
	}), nil
}
