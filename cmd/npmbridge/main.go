// Package main is the entry point for the npmbridge tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/npmbridge/cmd/npmbridge/commands"
	"go.trai.ch/npmbridge/internal/app"
	_ "go.trai.ch/npmbridge/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components, bound to the current directory
	components, _, err := graft.ExecuteFor[*app.Components](ctx, graft.DisableCache())
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := components.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
