package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/infra/logger"
	"github.com/mawkler/advent-of-code/internal/infra/watcher"
	"github.com/mawkler/advent-of-code/internal/usecase"
)

func watchCmd() *cobra.Command {
	var workspace string
	var debounce time.Duration

	c := &cobra.Command{
		Use:   "watch [selector]",
		Short: "Re-run a puzzle whenever its input file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			sels, err := domain.ParseSelectors(args)
			if err != nil {
				return err
			}
			// Fail early on a selector that names no solved puzzle.
			if _, err := usecase.SelectPuzzles(ws.Catalog, sels); err != nil {
				return err
			}

			log := logger.Component("watch")
			runner := ws.Runner(log)
			out := cmd.OutOrStdout()

			w := watcher.New(ws.Inputs.BaseDir(), ws.Inputs,
				watcher.WithDebounce(debounce),
				watcher.WithLogger(log),
				watcher.WithFilter(func(k domain.PuzzleKey) bool {
					return domain.MatchesAny(sels, k) && isSolved(ws.Catalog.List(), k)
				}),
			)

			fmt.Fprintf(out, "Watching %s (ctrl+c to stop)\n", ws.Inputs.BaseDir())
			return w.Run(cmd.Context(), func(k domain.PuzzleKey) {
				rerun(cmd, runner, out, k)
			})
		},
	}

	addWorkspaceFlag(c, &workspace)
	c.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "Quiet period before a changed input is re-run")
	return c
}

func rerun(cmd *cobra.Command, runner *usecase.RunPuzzles, out io.Writer, k domain.PuzzleKey) {
	fmt.Fprintf(out, "\n[%s] %s input changed\n", time.Now().Format(time.TimeOnly), k)
	run, _, err := runner.Execute(cmd.Context(), usecase.RunRequest{
		Selectors: []domain.Selector{{Year: k.Year, FromDay: k.Day, ToDay: k.Day}},
	})
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	printPrettyRun(out, run, "")
}

func isSolved(infos []domain.PuzzleInfo, k domain.PuzzleKey) bool {
	for _, info := range infos {
		if info.Key == k {
			return true
		}
	}
	return false
}
