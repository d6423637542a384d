package cli

import (
	"github.com/spf13/cobra"

	"kit.dev/kit/internal/output"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current branch, staged files, and unstaged modifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			st, err := ctx.Repo.Status()
			if err != nil {
				return err
			}

			head := "(no commits yet)"
			if !st.Head.IsZero() {
				head = output.HashText(st.Head.String())
			}
			ctx.Splog.Info("On %s -> %s", output.CurrentBranchText(st.Branch), head)

			if len(st.Staged) > 0 {
				ctx.Splog.Info("Staged files:")
				for _, p := range st.Staged {
					ctx.Splog.Info("  %s", p)
				}
			} else {
				ctx.Splog.Info("No files staged.")
				ctx.Splog.Tip("Run 'kit add <path>' to stage changes for the next commit")
			}

			if len(st.Modified) > 0 {
				ctx.Splog.Newline()
				ctx.Splog.Info("Modified (unstaged):")
				for _, p := range st.Modified {
					ctx.Splog.Info("  %s", p)
				}
			}
			return nil
		},
	}
}
