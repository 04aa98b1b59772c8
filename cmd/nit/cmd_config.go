package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <key> [value]",
		Short: "Get or set repository configuration (supported key: user.name)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if key != "user.name" {
				return fmt.Errorf("unsupported config key %q", key)
			}

			r, err := openRepo()
			if err != nil {
				return err
			}

			cfg, err := r.ReadConfig()
			if err != nil {
				return err
			}

			// Get mode.
			if len(args) == 1 {
				if cfg.User.Name != "" {
					fmt.Fprintln(cmd.OutOrStdout(), cfg.User.Name)
				}
				return nil
			}

			// Set mode.
			cfg.User.Name = args[1]
			return r.WriteConfig(cfg)
		},
	}
}
