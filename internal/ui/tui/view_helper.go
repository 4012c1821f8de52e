package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/usecase/verify"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderRun is the body of the result card.
func renderRun(t Theme, run domain.RunResult, id string, width int) string {
	var b strings.Builder

	b.WriteString(t.Title.Render("Run " + run.Selection))
	b.WriteString("\n")
	if id != "" {
		b.WriteString(t.Subtitle.Render("saved as " + id))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var last domain.PuzzleKey
	for _, r := range run.Results {
		if r.Key != last {
			if last != (domain.PuzzleKey{}) {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("%s  %s\n", r.Key, r.Title))
			last = r.Key
		}

		mark := t.Status(r.Status).Render(fmt.Sprintf("%-10s", r.Status))
		msg := clampString(verify.Message(r), width)
		b.WriteString(fmt.Sprintf("  Part %d  %s %s", int(r.Part), mark, msg))
		if r.Status != domain.StatusSkipped {
			b.WriteString(t.Muted.Render(fmt.Sprintf("  %.1fms", r.DurationMS)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(verify.Summarize(run.Results).String())
	return b.String()
}

// worstStatus folds part verdicts into one per puzzle for the list.
func worstStatus(results []domain.PartResult) map[domain.PuzzleKey]domain.PartStatus {
	rank := map[domain.PartStatus]int{
		domain.StatusCorrect:    0,
		domain.StatusUnverified: 1,
		domain.StatusSkipped:    2,
		domain.StatusWrong:      3,
		domain.StatusFailed:     4,
	}

	out := map[domain.PuzzleKey]domain.PartStatus{}
	for _, r := range results {
		cur, ok := out[r.Key]
		if !ok || rank[r.Status] > rank[cur] {
			out[r.Key] = r.Status
		}
	}
	return out
}
