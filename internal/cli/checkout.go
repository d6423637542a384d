package cli

import (
	"github.com/spf13/cobra"

	"kit.dev/kit/internal/output"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "checkout <branch>",
		Short: "Switch to a branch and materialize its tree onto the working area",
		Long: `Switch to a branch and materialize its tree onto the working area.

The working tree is replaced wholesale: tracked and untracked files outside
the metadata directory are deleted before the branch tip's files are written
out. Unstaged local edits are lost.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			st, err := ctx.Repo.Status()
			if err != nil {
				return err
			}
			if len(st.Modified) > 0 {
				ctx.Splog.Warn("Discarding unstaged changes to %d file(s)", len(st.Modified))
			}
			if err := ctx.Repo.Checkout(args[0], create); err != nil {
				return err
			}
			ctx.Splog.Info("Switched to %s", output.CurrentBranchText(args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&create, "create", "b", false, "Create the branch at the current HEAD before switching")

	return cmd
}
