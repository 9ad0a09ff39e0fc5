// Package commands implements the CLI commands for npmbridge.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/npmbridge/internal/app"
	"go.trai.ch/npmbridge/internal/build"
	"go.trai.ch/npmbridge/internal/core/ports"
)

// jsonSwitcher is implemented by loggers that can emit JSON lines.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for npmbridge.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "npmbridge",
		Short:         "Installs the npm dependencies declared by Composer packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Write log lines as JSON")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		asJSON, _ := cmd.Flags().GetBool("json")
		if s, ok := c.logger.(jsonSwitcher); ok {
			s.SetJSON(asJSON)
		}
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	opts := app.DefaultRunOptions()
	noDev, _ := cmd.Flags().GetBool("no-dev")
	opts.DevMode = !noDev
	return opts
}
