package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/ports"
	"github.com/mawkler/advent-of-code/internal/usecase"
)

func listCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "list [selector]",
		Short: "List solved puzzles with input and answer markers",
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
			infos, err := usecase.SelectPuzzles(ws.Catalog, sels)
			if err != nil {
				return err
			}

			book, err := ws.Answers.LoadAnswers()
			if err != nil && !domain.IsKind(err, domain.KindNotFound) {
				return err
			}

			printCalendar(cmd.OutOrStdout(), infos, ws.Inputs, book)
			return nil
		},
	}

	addWorkspaceFlag(c, &workspace)
	return c
}

// printCalendar writes one line per puzzle, grouped by year:
//
//	2024/12  [input] [answers 2/2]  Garden Groups
func printCalendar(w io.Writer, infos []domain.PuzzleInfo, inputs ports.InputSource, book domain.AnswerBook) {
	if len(infos) == 0 {
		fmt.Fprintln(w, "(no puzzles)")
		return
	}

	year := 0
	for _, info := range infos {
		if info.Key.Year != year {
			if year != 0 {
				fmt.Fprintln(w)
			}
			year = info.Key.Year
			fmt.Fprintf(w, "%d\n", year)
		}

		input := "[     ]"
		if inputs.HasInput(info.Key) {
			input = "[input]"
		}

		answered := 0
		for _, p := range domain.Parts {
			if _, ok := book.Expected(info.Key, p); ok {
				answered++
			}
		}

		fmt.Fprintf(w, "  %-8s %s [answers %d/2]  %s\n", info.Key, input, answered, info.Title)
	}
}
