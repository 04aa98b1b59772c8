package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okrauss/nit/pkg/repo"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <files...>",
		Short: "Stage files for the next commit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			for _, path := range args {
				h, err := r.Stage(path)
				if err != nil {
					// A missing file is reported without touching the
					// index; remaining arguments are still staged.
					if errors.Is(err, repo.ErrFileNotFound) {
						fmt.Fprintln(cmd.ErrOrStderr(), err)
						continue
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "staged %s (%s)\n", path, shortHash(h))
			}
			return nil
		},
	}
}
