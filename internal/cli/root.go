// Package cli wires the kit commands. Each command is a thin dispatch to
// one repository engine operation; all real behavior lives in internal/repo.
package cli

import (
	"github.com/spf13/cobra"

	"kit.dev/kit/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kit",
		Short:         "Kit is a minimal content-addressed version control tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(),
		newStatusCmd(),
		newAddCmd(),
		newCommitCmd(),
		newConfigCmd(),
		newLogCmd(),
		newBranchCmd(),
		newCheckoutCmd(),
		newMergeCmd(),
		newDiffCmd(),
		newResetCmd(),
		newRmCmd(),
		newStashCmd(),
		newRemoteCmd(),
		newFetchCmd(),
		newPushCmd(),
		newPullCmd(),
	)

	return rootCmd
}

// getContext opens the repository for a command run.
func getContext(cmd *cobra.Command) (*runtime.Context, error) {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	return runtime.GetContext(verbose)
}
