package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommitCmd() *cobra.Command {
	var message string
	var author string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record staged changes to the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" {
				return fmt.Errorf("commit message is required (-m)")
			}

			r, err := openRepo()
			if err != nil {
				return err
			}

			if author == "" {
				author = r.AuthorName()
			}

			h, err := r.Commit(message, author)
			if err != nil {
				return reportRecoverable(cmd, err)
			}

			branch, err := r.CurrentBranch()
			if err != nil {
				return err
			}
			if branch == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "[detached HEAD %s] %s\n", shortHash(h), message)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s %s] %s\n", branch, shortHash(h), message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().StringVar(&author, "author", "", "override author (default: config user.name, then $USER)")

	return cmd
}
