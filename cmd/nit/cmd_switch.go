package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <branch>",
		Short: "Switch to a branch, restoring its snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			r, err := openRepo()
			if err != nil {
				return err
			}

			tip, err := r.SwitchBranch(name)
			if err != nil {
				return reportRecoverable(cmd, err)
			}

			if tip == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "switched to branch '%s' (no commits yet)\n", name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "switched to branch '%s'\n", name)
			}
			return nil
		},
	}
}
