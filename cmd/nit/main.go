package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/okrauss/nit/pkg/object"
	"github.com/okrauss/nit/pkg/repo"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nit",
		Short:         "Minimal content-addressed version control",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newCommitCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newCheckoutCmd())
	root.AddCommand(newBranchCmd())
	root.AddCommand(newBranchesCmd())
	root.AddCommand(newSwitchCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newReflogCmd())
	root.AddCommand(newConfigCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "nit 0.1.0-dev")
		},
	}
}

// newLogger builds the CLI logger: debug console output with --verbose,
// a nop logger otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func openRepo() (*repo.Repo, error) {
	return repo.Open(".", repo.WithLogger(newLogger()))
}

// recoverableKinds are reported to the user without failing the process;
// the command returns success and no state has changed. Repository
// absence and corrupted HEAD are deliberately not in this list: those
// propagate and terminate the invocation.
var recoverableKinds = []error{
	repo.ErrRefNotFound,
	repo.ErrFileNotFound,
	repo.ErrNothingStaged,
	repo.ErrBranchExists,
	repo.ErrNoCommitsYet,
	repo.ErrRepositoryExists,
	object.ErrNotFound,
}

// reportRecoverable renders recoverable error kinds on stderr and
// swallows them; anything else propagates through RunE.
func reportRecoverable(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range recoverableKinds {
		if errors.Is(err, kind) {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return nil
		}
	}
	return err
}
