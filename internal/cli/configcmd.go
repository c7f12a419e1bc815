package cli

import (
	"fmt"

	"github.com/pfrederiksen/thai-lotto/internal/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagSave bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file and flags are
applied. With --save the result is written to the --config path.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	cmd.Flags().BoolVar(&flagSave, "save", false, "Write the effective configuration to the config file")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagSave {
		if err := cfg.Save(flagConfig); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("Saved config", logger.Fields{"path": flagConfig})
	}

	if format == FormatJSON {
		return writeJSON(cmd.OutOrStdout(), cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
