// Package cmd provides Cobra CLI commands for dumbdesk.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbdesk/internal/cli"
	"github.com/bnema/dumbdesk/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "dumbdesk",
		Short: "A dumb desktop in your terminal",
		Long: `Dumbdesk - a simulated desktop session that runs in a terminal.

Windows open from a start panel, cascade across the screen, and can be
dragged, resized, minimized to the taskbar and maximized with the mouse.

Features:
  - Built-in applications: calculator, notes, browser, files, terminal, minesweeper
  - Desktop context menu, start panel and notification overlays
  - Light and dark themes with switchable wallpapers
  - Extra applications declared in config.toml
  - Scripted sessions with 'dumbdesk replay'

Run 'dumbdesk' with no arguments to start the desktop.`,
		SilenceUsage: true,
		RunE:         runDesktop,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	addDesktopFlags(rootCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}
