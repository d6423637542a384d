package cli

import (
	"github.com/spf13/cobra"

	"kit.dev/kit/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize an empty kit repository in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
			ctx, err := runtime.InitContext(verbose)
			if err != nil {
				return err
			}
			ctx.Splog.Info("Initialized empty kit repository in %s", ctx.Repo.MetaDir())
			return nil
		},
	}
}
