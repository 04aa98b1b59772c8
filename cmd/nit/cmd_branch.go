package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch <name>",
		Short: "Create a branch at the current commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			r, err := openRepo()
			if err != nil {
				return err
			}

			head, err := r.CurrentCommit()
			if err != nil {
				return err
			}
			if err := r.CreateBranch(name, head); err != nil {
				return reportRecoverable(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created branch %s at %s\n", name, shortHash(head))
			return nil
		},
	}
}

func newBranchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			branches, err := r.ListBranches()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(branches) == 0 {
				fmt.Fprintln(out, "no branches")
				return nil
			}
			for _, b := range branches {
				marker := " "
				if b.Current {
					marker = "*"
				}
				tip := "(no commits)"
				if b.Tip != "" {
					tip = string(b.Tip)
				}
				fmt.Fprintf(out, "%s %s -> %s\n", marker, b.Name, tip)
			}
			return nil
		},
	}
}
