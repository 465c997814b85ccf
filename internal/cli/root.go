// Package cli implements the lvpair command-line tool.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "master"

// NewRootCommand builds the lvpair command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvpair",
		Short:         "Pairs two sets of timestamped records",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	registerConfigFlag(root)

	root.AddCommand(
		newMatchCommand("match", "",
			"Pairs records with the strategy from the configuration"),
		newMatchCommand(StrategyNearest, StrategyNearest,
			"Pairs every left record with the right record closest in time"),
		newMatchCommand(StrategyBracket, StrategyBracket,
			"Pairs every left record with the closer of the right records around it"),
		newValidateCommand(),
	)

	return root
}
