package cli

import (
	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	var (
		name  string
		email string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Set the committer identity (user.name, user.email)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			if name == "" && email == "" {
				cfg, err := ctx.Repo.Config()
				if err != nil {
					return err
				}
				ctx.Splog.Info("user.name = %s", cfg.User.Name)
				ctx.Splog.Info("user.email = %s", cfg.User.Email)
				return nil
			}
			if err := ctx.Repo.SetUser(name, email); err != nil {
				return err
			}
			ctx.Splog.Info("Config updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Committer name")
	cmd.Flags().StringVar(&email, "email", "", "Committer email")

	return cmd
}
