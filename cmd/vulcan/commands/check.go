package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vulcan/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether the lockfile matches the project configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Check(cmd.Context(), app.CheckOptions{
				Dir:    c.v.GetString("dir"),
				Python: c.v.GetString("python"),
			})
		},
	}
}
