package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <hash-or-ref>",
		Short: "Print a stored object's header and payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			h, err := r.ResolveRef(args[0])
			if err != nil {
				return reportRecoverable(cmd, err)
			}

			kind, payload, err := r.Store.Get(h)
			if err != nil {
				return reportRecoverable(cmd, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d\n", kind, len(payload))
			fmt.Fprintln(out, "----")
			fmt.Fprint(out, string(payload))
			return nil
		},
	}
}
