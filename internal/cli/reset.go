package cli

import (
	"github.com/spf13/cobra"
)

// newResetCmd creates the reset command
func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <path>",
		Short: "Unstage a path, leaving the working file untouched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			return ctx.Repo.Reset(args[0])
		},
	}
}
