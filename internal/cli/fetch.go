package cli

import (
	"github.com/spf13/cobra"
)

// newFetchCmd creates the fetch command
func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <remote>",
		Short: "Copy missing objects from a remote and update its remote-tracking refs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			res, err := ctx.Repo.Fetch(args[0])
			if err != nil {
				return err
			}
			ctx.Splog.Info("Fetched from %s (%d new objects, %d branches)", args[0], res.ObjectsCopied, len(res.Branches))
			return nil
		},
	}
}
