package cli

import (
	"github.com/spf13/cobra"

	"kit.dev/kit/internal/output"
	"kit.dev/kit/internal/refs"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	var (
		del      bool
		forceDel bool
	)

	cmd := &cobra.Command{
		Use:   "branch [name]",
		Short: "List branches, create a branch at HEAD, or delete one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				current, err := ctx.Repo.HeadRef()
				if err != nil {
					return err
				}
				branches, err := ctx.Repo.Branches()
				if err != nil {
					return err
				}
				for _, b := range branches {
					if refs.BranchRef(b) == current {
						ctx.Splog.Info("* %s", output.CurrentBranchText(b))
					} else {
						ctx.Splog.Info("  %s", output.BranchText(b))
					}
				}
				return nil
			}

			name := args[0]
			if del || forceDel {
				if err := ctx.Repo.DeleteBranch(name, forceDel); err != nil {
					return err
				}
				ctx.Splog.Info("Deleted %s", output.BranchText(name))
				return nil
			}
			if err := ctx.Repo.CreateBranch(name); err != nil {
				return err
			}
			ctx.Splog.Info("Created %s", output.BranchText(name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&del, "delete", "d", false, "Delete a branch that is merged into HEAD")
	cmd.Flags().BoolVarP(&forceDel, "force-delete", "D", false, "Delete a branch even if it is not merged")

	return cmd
}
