package cli

import (
	"github.com/spf13/cobra"

	"kit.dev/kit/internal/output"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <remote> <branch>",
		Short: "Copy missing objects to a remote and overwrite its branch head",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			copied, err := ctx.Repo.Push(args[0], args[1])
			if err != nil {
				return err
			}
			ctx.Splog.Info("Pushed %s to %s (%d new objects)", output.BranchText(args[1]), args[0], copied)
			return nil
		},
	}
}
