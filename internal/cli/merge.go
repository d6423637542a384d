package cli

import (
	"github.com/spf13/cobra"

	"kit.dev/kit/internal/output"
)

// newMergeCmd creates the merge command
func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <branch>",
		Short: "Merge a branch into the current branch (fast-forward when possible)",
		Long: `Merge a branch into the current branch.

When HEAD already lies on the target's history the current branch ref is
fast-forwarded with no new commit. Otherwise a merge commit is created whose
tree is the current index snapshot; stage the desired result before merging.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			res, err := ctx.Repo.Merge(args[0])
			if err != nil {
				return err
			}
			switch {
			case res.NoOp:
				ctx.Splog.Info("Already up to date.")
			case res.FastForward:
				ctx.Splog.Info("Fast-forwarded to %s", output.HashText(res.Hash.String()))
			default:
				ctx.Splog.Info("Created merge commit %s", output.HashText(res.Hash.String()))
			}
			return nil
		},
	}
}
