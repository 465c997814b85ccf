package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpair/internal/config"
	"github.com/katalvlaran/lvpair/internal/logging"
	"github.com/katalvlaran/lvpair/internal/records"
)

// newMatchCommand builds a pairing command. An empty strategy means the one
// from the configuration.
func newMatchCommand(use, strategy, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: fmt.Sprintf("lvpair %s --left samples.json --right photos.json", use),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatch(cmd, strategy)
		},
	}

	registerMatchFlags(cmd)

	return cmd
}

func runMatch(cmd *cobra.Command, strategy string) error {
	configPath, _ := cmd.Flags().GetString(FlagConfig)

	conf, err := config.NewConfiguration(configPath)
	if err != nil {
		return err
	}

	settings := readMatchSettings(cmd)
	settings.apply(&conf.Matching)

	if err = conf.Validate(); err != nil {
		return err
	}

	if len(strategy) == 0 {
		strategy = conf.Matching.Strategy
	}

	logger := logging.NewLogger(conf.Log, cmd.ErrOrStderr())

	lefts, err := records.LoadFile(settings.left)
	if err != nil {
		return err
	}

	rights, err := records.LoadFile(settings.right)
	if err != nil {
		return err
	}

	records.SortByTime(rights)

	factory, err := newFactory(strategy, conf.Matching, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	handler, err := factory.NewHandler()
	if err != nil {
		return err
	}

	logger.Debug().
		Str("strategy", handler.Name()).
		Int("left", len(lefts)).
		Int("right", len(rights)).
		Int("workers", conf.Matching.Workers).
		Msg("Pairing records")

	if err = handler.Calculate(lefts, rights); err != nil {
		return err
	}

	logger.Info().Str("strategy", handler.Name()).Int("pairs", handler.Len()).Msg("Pairing done")

	return nil
}

func (s matchSettings) apply(conf *config.MatchingConfig) {
	if s.tolerance != nil {
		conf.Tolerance = *s.tolerance
	}
	if s.workers != nil {
		conf.Workers = *s.workers
	}
	if s.strict {
		conf.OnMiss = config.OnMissFail
	}
}
