package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mawkler/advent-of-code/internal/infra/fsworkspace"
	"github.com/mawkler/advent-of-code/internal/infra/logger"
	"github.com/mawkler/advent-of-code/internal/infra/workspacefinder"
	"github.com/mawkler/advent-of-code/internal/ui/tui"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "aoc",
		Short:        "aoc: Advent of Code solutions, inputs, and answers",
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			cleanup = startLogging(c, debug)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.Component("tui"),
				Debug:                debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .aoc/logs/aoc.log")

	cmd.AddCommand(
		initCmd(),
		listCmd(),
		runCmd(),
		fetchCmd(),
		validateCmd(),
		runsCmd(),
		watchCmd(),
		versionCmd(),
	)
	return cmd
}

// startLogging points the global logger at the workspace the command works
// on. The bare TUI logs into the working directory when there is none yet.
func startLogging(c *cobra.Command, debug bool) func() error {
	var logRoot string

	switch {
	case c.Name() == "init":
		p, _ := c.Flags().GetString("path")
		logRoot, _ = filepath.Abs(p)
	default:
		flag, _ := c.Flags().GetString("workspace")
		root, err := resolveRoot(flag)
		if err == nil {
			logRoot = root
			break
		}
		if c != c.Root() {
			return nil
		}
		wd, werr := os.Getwd()
		if werr != nil {
			wd = "."
		}
		logRoot, _ = filepath.Abs(wd)
	}

	cleanup, _ := logger.Setup(logger.Config{Root: logRoot, Debug: debug})
	return cleanup
}
