package cli

import (
	"github.com/spf13/cobra"

	"kit.dev/kit/internal/output"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the commit history of the current branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			entries, err := ctx.Repo.Log(limit)
			if err != nil {
				return err
			}
			for _, e := range entries {
				ctx.Splog.Info("commit %s", output.HashText(e.Hash.String()))
				if e.Commit.Author != "" {
					ctx.Splog.Info("Author: %s", e.Commit.Author)
				}
				ctx.Splog.Info("Date:   %s", output.DimText(e.Timestamp().Format("Mon Jan 2 15:04:05 2006 -0700")))
				ctx.Splog.Newline()
				ctx.Splog.Info("    %s", e.Commit.Message)
				ctx.Splog.Newline()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "max-count", "n", 50, "Limit the number of commits shown")

	return cmd
}
