package cli

import (
	"github.com/spf13/cobra"

	"kit.dev/kit/internal/output"
)

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull <remote> <branch>",
		Short: "Fetch from a remote, then fast-forward or merge the tracking ref",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			res, err := ctx.Repo.Pull(args[0], args[1])
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
