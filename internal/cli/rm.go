package cli

import (
	"github.com/spf13/cobra"
)

// newRmCmd creates the rm command
func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a working file and drop its staged entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			return ctx.Repo.Rm(args[0])
		},
	}
}
