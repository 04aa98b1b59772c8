package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <hash-or-ref>",
		Short: "Restore a commit's snapshot and detach HEAD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			r, err := openRepo()
			if err != nil {
				return err
			}

			h, err := r.ResolveRef(target)
			if err != nil {
				return reportRecoverable(cmd, err)
			}

			restored, err := r.Checkout(string(h), true)
			if err != nil {
				return reportRecoverable(cmd, err)
			}

			out := cmd.OutOrStdout()
			if len(restored) == 0 {
				fmt.Fprintln(out, "nothing to checkout (commit empty)")
				return nil
			}
			for _, p := range restored {
				fmt.Fprintf(out, "restored %s\n", p)
			}
			fmt.Fprintf(out, "HEAD now at %s (detached)\n", shortHash(h))
			return nil
		},
	}
}
