package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show staged and modified files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			report, err := r.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case report.Branch == "":
				fmt.Fprintln(out, "HEAD detached")
			case !report.HasCommit:
				fmt.Fprintf(out, "on %s (no commits yet)\n", report.Branch)
			default:
				fmt.Fprintf(out, "on %s\n", report.Branch)
			}

			if len(report.Staged) == 0 {
				fmt.Fprintln(out, "no files staged")
			} else {
				fmt.Fprintln(out, "staged:")
				for _, e := range report.Staged {
					fmt.Fprintf(out, "  %s (%s)\n", e.Path, shortHash(e.BlobHash))
				}
			}

			if len(report.Modified) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "modified but not staged:")
				for _, p := range report.Modified {
					fmt.Fprintf(out, "  %s\n", p)
				}
			}
			return nil
		},
	}
}
