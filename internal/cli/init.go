package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mawkler/advent-of-code/internal/buildinfo"
	"github.com/mawkler/advent-of-code/internal/infra/fsworkspace"
	"github.com/mawkler/advent-of-code/internal/infra/logger"
	"github.com/mawkler/advent-of-code/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create an aoc workspace (aoc.yaml, answers.yaml, inputs/, runs/)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}
			logger.L().Info("workspace.init", "root", root, "force", force)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workspace ready at %s\n", root)
			fmt.Fprintln(out, "Next: put your session cookie in .env, then `aoc fetch 2024` and `aoc run`.")
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite aoc.yaml, answers.yaml and .env.example if they exist")
	return c
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
