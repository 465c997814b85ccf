package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpair/internal/config"
)

// ErrNoConfigFile is returned by validate when no config file is given.
var ErrNoConfigFile = errors.New("no config file provided")

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Short:   "Validates the lvpair configuration",
		Example: "lvpair validate -c lvpair.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString(FlagConfig)
			if len(configPath) == 0 {
				return ErrNoConfigFile
			}

			if _, err := config.NewConfiguration(configPath); err != nil {
				return err
			}

			cmd.Println("Configuration is valid")

			return nil
		},
	}
}
