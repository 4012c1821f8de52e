package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mawkler/advent-of-code/internal/app/workspace"
	"github.com/mawkler/advent-of-code/internal/usecase"
)

func validateCmd() *cobra.Command {
	var ws string
	var strict bool

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check aoc.yaml, answers.yaml and inputs (no network)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveRoot(ws)
			if err != nil {
				return err
			}

			rep, err := workspace.Validator(strict).Execute(cmd.Context(), root)
			printReport(cmd.OutOrStdout(), rep)
			return err
		},
	}

	addWorkspaceFlag(c, &ws)
	c.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")
	return c
}

func printReport(w io.Writer, rep usecase.ValidationReport) {
	if len(rep.Findings) == 0 {
		fmt.Fprintln(w, "OK")
		return
	}
	for _, f := range rep.Findings {
		fmt.Fprintf(w, "%-7s %-16s %s\n", f.Level, f.Check, f.Message)
	}
	fmt.Fprintf(w, "\n%d error(s), %d warning(s)\n", rep.Count(usecase.LevelError), rep.Count(usecase.LevelWarning))
}
