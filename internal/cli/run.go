package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/infra/logger"
	"github.com/mawkler/advent-of-code/internal/usecase"
	"github.com/mawkler/advent-of-code/internal/usecase/verify"
)

func runCmd() *cobra.Command {
	var workspace string
	var part int
	var format string
	var noSave bool
	var record bool
	var jobs int
	var timeout time.Duration

	c := &cobra.Command{
		Use:   "run [selector...]",
		Short: "Solve puzzles and check the answers against answers.yaml",
		Long: "Selectors look like 2024, 2024/5, 2024/5-9 or all.\n" +
			"Without a selector every solved puzzle that has an input file is run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			sels, err := domain.ParseSelectors(args)
			if err != nil {
				return err
			}

			req := usecase.RunRequest{
				Selectors:     sels,
				OnlyAvailable: len(args) == 0,
				Save:          ws.Config.Run.Save && !noSave,
				Record:        record,
			}
			if part != 0 {
				p, err := domain.ParsePart(strconv.Itoa(part))
				if err != nil {
					return err
				}
				req.Parts = []domain.Part{p}
			}

			var opts []usecase.RunOption
			if jobs > 0 {
				opts = append(opts, usecase.WithParallelism(jobs))
			}
			if cmd.Flags().Changed("timeout") {
				opts = append(opts, usecase.WithPartTimeout(timeout))
			}

			uc := ws.Runner(logger.Component("run"), opts...)
			run, runID, err := uc.Execute(cmd.Context(), req)
			if err != nil {
				// Print what finished before the error.
				_ = printRun(cmd.OutOrStdout(), run, runID, format)
				return err
			}

			if err := printRun(cmd.OutOrStdout(), run, runID, format); err != nil {
				return err
			}
			return runVerdict(run)
		},
	}

	addWorkspaceFlag(c, &workspace)
	c.Flags().IntVarP(&part, "part", "p", 0, "Only solve this part (1 or 2)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the run artifact under runs/")
	c.Flags().BoolVar(&record, "record", false, "Write answers without a recorded value into answers.yaml")
	c.Flags().IntVarP(&jobs, "jobs", "j", 0, "Parts solved in parallel (default from aoc.yaml)")
	c.Flags().DurationVar(&timeout, "timeout", 0, "Per-part timeout, 0 disables (default from aoc.yaml)")
	return c
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

// runVerdict fails the command when any part is wrong or failed.
func runVerdict(run domain.RunResult) error {
	s := verify.Summarize(run.Results)
	if s.OK() {
		return nil
	}
	return fmt.Errorf("run failed (%d wrong, %d failed)", s.Wrong, s.Failed)
}

func printRun(w io.Writer, run domain.RunResult, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"run_id": runID,
			"run":    run,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyRun(w, run, runID)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyRun(w io.Writer, run domain.RunResult, runID string) {
	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Selection: %s\n", run.Selection)
	fmt.Fprintf(w, "Started:   %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:  %s\n", total.Round(time.Millisecond))
	if runID != "" {
		fmt.Fprintf(w, "Run ID:    %s\n", runID)
	}

	var last domain.PuzzleKey
	for _, r := range run.Results {
		if r.Key != last {
			fmt.Fprintf(w, "\n%s  %s\n", r.Key, r.Title)
			last = r.Key
		}
		fmt.Fprintf(w, "  %s\n", partLine(r))
	}

	fmt.Fprintf(w, "\n%s\n", verify.Summarize(run.Results))
}

// partLine renders "Part 1: <answer>" followed by the verdict.
func partLine(r domain.PartResult) string {
	label := fmt.Sprintf("Part %d:", int(r.Part))

	switch r.Status {
	case domain.StatusCorrect, domain.StatusUnverified, domain.StatusWrong:
		line := fmt.Sprintf("%s %s  [%s] %.2fms", label, indentAnswer(r.Answer), statusMark(r.Status), r.DurationMS)
		if r.Status == domain.StatusWrong {
			line += "  expected " + indentAnswer(r.Expected)
		}
		return line
	default:
		return fmt.Sprintf("%s [%s] %s", label, statusMark(r.Status), verify.Message(r))
	}
}

func statusMark(s domain.PartStatus) string {
	switch s {
	case domain.StatusCorrect:
		return "ok"
	case domain.StatusWrong:
		return "WRONG"
	case domain.StatusFailed:
		return "FAIL"
	default:
		return string(s)
	}
}

// indentAnswer keeps multi-line answers (rendered letters) aligned under
// the part label.
func indentAnswer(s string) string {
	s = strings.TrimRight(s, "\n")
	if !strings.Contains(s, "\n") {
		return s
	}
	return "\n    " + strings.ReplaceAll(s, "\n", "\n    ") + "\n   "
}
