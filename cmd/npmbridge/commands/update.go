package commands

import "github.com/spf13/cobra"

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Resolve npm dependencies afresh and rewrite composer-npm.lock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.AfterUpdate(cmd.Context(), runOptions(cmd))
		},
	}
	cmd.Flags().Bool("no-dev", false, "Skip the root package's require-dev-npm declarations")
	return cmd
}
