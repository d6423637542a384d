package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newRemoteCmd creates the remote command
func newRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remote [add <name> <url> | list]",
		Short: "Register or list remotes (file:// URLs pointing at another repository's metadata directory)",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}

			if len(args) > 0 && args[0] == "add" {
				if len(args) != 3 {
					return fmt.Errorf("usage: kit remote add <name> <url>")
				}
				if err := ctx.Repo.AddRemote(args[1], args[2]); err != nil {
					return err
				}
				ctx.Splog.Info("Remote added")
				return nil
			}

			remotes, err := ctx.Repo.Remotes()
			if err != nil {
				return err
			}
			if len(remotes) == 0 {
				ctx.Splog.Info("No remotes")
				return nil
			}
			names := make([]string, 0, len(remotes))
			for name := range remotes {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				ctx.Splog.Info("%s %s", name, remotes[name])
			}
			return nil
		},
	}
}
