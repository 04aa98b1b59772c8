package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newReflogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "reflog [ref]",
		Short: "Show the movement history of a ref (default: current branch)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}

			r, err := openRepo()
			if err != nil {
				return err
			}

			entries, err := r.ReadReflog(ref, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "no reflog entries")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s %s %s: %s\n",
					shortHash(e.NewHash),
					time.Unix(e.Timestamp, 0).UTC().Format("2006-01-02 15:04:05"),
					e.Ref,
					e.Reason)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "max-count", "n", 0, "limit the number of entries shown")

	return cmd
}
