package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vulcan/internal/app"
)

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <requirement>",
		Short: "Add a top-level dependency and regenerate the lockfile",
		Long: "Install a requirement into the active virtualenv and record it in the project's dependencies.\n" +
			"Without a version specifier the dependency is pinned to ~=major.minor of the installed version.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noLock, _ := cmd.Flags().GetBool("no-lock")
			return c.app.Add(cmd.Context(), app.AddOptions{
				Dir:         c.v.GetString("dir"),
				Requirement: args[0],
				Python:      c.v.GetString("python"),
				NoLock:      noLock,
			})
		},
	}
	cmd.Flags().Bool("no-lock", false, "Do not regenerate the lockfile")
	return cmd
}
