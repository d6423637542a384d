package cli

import (
	"github.com/spf13/cobra"

	"kit.dev/kit/internal/output"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record the staged snapshot as a new commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			cfg, err := ctx.Repo.Config()
			if err != nil {
				return err
			}
			hash, err := ctx.Repo.Commit(message, cfg.Author())
			if err != nil {
				return err
			}
			ctx.Splog.Info("Committed %s", output.HashText(hash.String()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.MarkFlagRequired("message")

	return cmd
}
