package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vulcan/internal/app"
)

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Resolve dependencies and write the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ifStale, _ := cmd.Flags().GetBool("if-stale")
			return c.app.Lock(cmd.Context(), app.LockOptions{
				Dir:     c.v.GetString("dir"),
				Python:  c.v.GetString("python"),
				IfStale: ifStale || c.v.GetBool("if-stale"),
			})
		},
	}
	cmd.Flags().Bool("if-stale", false, "Skip resolution when the lockfile is up to date (env VULCAN_IF_STALE)")
	return cmd
}
