package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/usecase/query"
)

func runsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved run artifacts",
	}

	c.AddCommand(runsListCmd(), runsShowCmd())
	return c
}

func runsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.Runs.ListRuns()
			if err != nil {
				return err
			}
			printRuns(cmd.OutOrStdout(), refs)
			return nil
		},
	}

	addWorkspaceFlag(cmd, &workspace)
	return cmd
}

func printRuns(w io.Writer, refs []domain.RunRef) {
	if len(refs) == 0 {
		fmt.Fprintln(w, "(no runs saved)")
		return
	}
	for _, r := range refs {
		fmt.Fprintf(w, "- %s  %s  %s  (%d correct, %d failed)\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), r.Selection, r.Correct, r.Failed)
	}
}

func runsShowCmd() *cobra.Command {
	var workspace string
	var expr string

	cmd := &cobra.Command{
		Use:   "show <id|latest>",
		Short: "Print a saved run, or query it with a JSONPath expression",
		Example: "  aoc runs show latest\n" +
			"  aoc runs show latest --query '$.results[?(@.status==\"wrong\")].key'",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			raw, err := ws.Runs.LoadRun(args[0])
			if err != nil {
				return err
			}
			return showRun(cmd.OutOrStdout(), raw, expr)
		},
	}

	addWorkspaceFlag(cmd, &workspace)
	cmd.Flags().StringVarP(&expr, "query", "q", "", "JSONPath expression evaluated against the run")
	return cmd
}

func showRun(w io.Writer, raw []byte, expr string) error {
	if expr == "" {
		_, err := w.Write(raw)
		return err
	}

	v, err := query.Eval(raw, expr)
	if err != nil {
		return err
	}
	s, err := query.Format(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s)
	return nil
}
