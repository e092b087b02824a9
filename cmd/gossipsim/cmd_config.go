package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration a run would use: defaults, then the --config file,
then GOSSIPSIM_* environment variables, then flags.

The output is a valid configuration file:
  gossipsim config > sweep.yaml
  gossipsim config --check --config sweep.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			check, _ := cmd.Flags().GetBool("check")
			if check {
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			raw, err := cfg.YAML()
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
	cmd.Flags().Bool("check", false, "Validate the configuration before printing it")

	return cmd
}
