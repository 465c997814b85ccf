package cli

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	FlagConfig    = "config"
	FlagLeft      = "left"
	FlagRight     = "right"
	FlagTolerance = "tolerance"
	FlagWorkers   = "workers"
	FlagStrict    = "strict"
)

func registerConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(FlagConfig, "c", "", "Config file")
}

func registerMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(FlagLeft, "l", "", "JSON file with the left records")
	cmd.Flags().StringP(FlagRight, "r", "", "JSON file with the right records")
	cmd.Flags().Duration(FlagTolerance, 0, "Tolerance ceiling for nearest matching, 0 disables it")
	cmd.Flags().Int(FlagWorkers, 1, "Number of left records matched concurrently")
	cmd.Flags().Bool(FlagStrict, false, "Fail when a nearest match exceeds the tolerance")

	_ = cmd.MarkFlagRequired(FlagLeft)
	_ = cmd.MarkFlagRequired(FlagRight)
}

// matchSettings are the flag values overriding the matching configuration.
type matchSettings struct {
	left, right string
	tolerance   *time.Duration
	workers     *int
	strict      bool
}

// readMatchSettings returns the match flags; overrides are only set for
// flags given on the command line.
func readMatchSettings(cmd *cobra.Command) matchSettings {
	s := matchSettings{}
	s.left, _ = cmd.Flags().GetString(FlagLeft)
	s.right, _ = cmd.Flags().GetString(FlagRight)
	s.strict, _ = cmd.Flags().GetBool(FlagStrict)

	if cmd.Flags().Changed(FlagTolerance) {
		d, _ := cmd.Flags().GetDuration(FlagTolerance)
		s.tolerance = &d
	}
	if cmd.Flags().Changed(FlagWorkers) {
		n, _ := cmd.Flags().GetInt(FlagWorkers)
		s.workers = &n
	}

	return s
}
