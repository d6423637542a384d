package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"kit.dev/kit/internal/output"
)

// newDiffCmd creates the diff command
func newDiffCmd() *cobra.Command {
	var staged bool

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show unstaged changes, or staged changes against HEAD with --staged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext(cmd)
			if err != nil {
				return err
			}
			var text string
			if staged {
				text, err = ctx.Repo.DiffStaged()
			} else {
				text, err = ctx.Repo.DiffUnstaged()
			}
			if err != nil {
				return err
			}
			if text == "" {
				return nil
			}
			var styled strings.Builder
			for _, line := range strings.SplitAfter(text, "\n") {
				if line == "" {
					continue
				}
				styled.WriteString(output.DiffLine(strings.TrimSuffix(line, "\n")))
				styled.WriteString("\n")
			}
			ctx.Splog.Page(styled.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "Compare the index against HEAD instead of the working tree against the index")

	return cmd
}
