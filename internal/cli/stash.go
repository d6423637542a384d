package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kit.dev/kit/internal/output"
)

// newStashCmd creates the stash command
func newStashCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "stash [list|pop]",
		Short:     "Park the working tree in a numbered stash slot, list slots, or pop the top one",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"list", "pop"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}

			action := "save"
			if len(args) > 0 {
				action = args[0]
			}

			switch action {
			case "save":
				entry, err := ctx.Repo.StashSave()
				if err != nil {
					return err
				}
				ctx.Splog.Info("Saved stash %d %s", entry.Slot, output.HashText(entry.Hash.String()))
				return nil
			case "list":
				entries, err := ctx.Repo.StashList()
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					ctx.Splog.Info("No stash entries.")
					return nil
				}
				for _, e := range entries {
					ctx.Splog.Info("%d %s", e.Slot, output.HashText(e.Hash.String()))
				}
				return nil
			case "pop":
				entry, err := ctx.Repo.StashPop()
				if err != nil {
					return err
				}
				ctx.Splog.Info("Applied stash %d", entry.Slot)
				return nil
			default:
				return fmt.Errorf("unknown stash action %q (expected list or pop)", action)
			}
		},
	}
}
