package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	var oneline bool
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			start, err := r.CurrentCommit()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if start == "" {
				fmt.Fprintln(out, "no commits yet")
				return nil
			}

			for h, c := range r.WalkAncestry(start) {
				if oneline {
					fmt.Fprintf(out, "%s %s\n", shortHash(h), firstLine(c.Message))
				} else {
					fmt.Fprintf(out, "commit %s\n", h)
					fmt.Fprintf(out, "author %s %s\n", c.Author, c.Timestamp.UTC().Format(time.RFC3339))
					fmt.Fprintln(out)
					fmt.Fprintf(out, "    %s\n", c.Message)
					fmt.Fprintln(out)
				}
				if limit > 0 {
					limit--
					if limit == 0 {
						break
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&oneline, "oneline", false, "one line per commit")
	cmd.Flags().IntVarP(&limit, "max-count", "n", 0, "limit the number of commits shown")

	return cmd
}
