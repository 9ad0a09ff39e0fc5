package commands

import "github.com/spf13/cobra"

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the npm dependencies pinned in composer-npm.lock",
		Long: "Install the npm dependencies pinned in composer-npm.lock.\n" +
			"Locations whose installed tree already matches the lock are skipped.\n" +
			"Without a lock file this behaves like update.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.AfterInstall(cmd.Context(), runOptions(cmd))
		},
	}
	cmd.Flags().Bool("no-dev", false, "Skip the root package's require-dev-npm declarations")
	return cmd
}
