package verify

import (
	"fmt"
	"strings"

	"github.com/mawkler/advent-of-code/internal/domain"
)

// Check classifies one solved part against the recorded answer.
//
// A solver error always yields StatusFailed, even if an answer is known.
// Without a recorded answer the part is StatusUnverified.
func Check(expected string, hasExpected bool, answer string, err error) domain.PartStatus {
	if err != nil {
		return domain.StatusFailed
	}
	if !hasExpected {
		return domain.StatusUnverified
	}
	if Normalize(answer) == Normalize(expected) {
		return domain.StatusCorrect
	}
	return domain.StatusWrong
}

// Normalize trims surrounding whitespace and unifies line endings so that
// multi-line answers survive a YAML round trip.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}

// Message renders a short human explanation of a result.
func Message(r domain.PartResult) string {
	switch r.Status {
	case domain.StatusCorrect:
		return fmt.Sprintf("answer %s", firstLine(r.Answer))
	case domain.StatusWrong:
		return fmt.Sprintf("expected %s, got %s", firstLine(r.Expected), firstLine(r.Answer))
	case domain.StatusUnverified:
		return fmt.Sprintf("answer %s (no recorded answer)", firstLine(r.Answer))
	case domain.StatusSkipped, domain.StatusFailed:
		if r.Error != nil {
			return r.Error.Error()
		}
		return string(r.Status)
	default:
		return ""
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	if s == "" {
		return `""`
	}
	return s
}

// Summary counts results by status.
type Summary struct {
	Correct    int `json:"correct"`
	Wrong      int `json:"wrong"`
	Unverified int `json:"unverified"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}

func (s Summary) Total() int {
	return s.Correct + s.Wrong + s.Unverified + s.Failed + s.Skipped
}

// OK reports whether nothing was wrong or failed.
func (s Summary) OK() bool { return s.Wrong == 0 && s.Failed == 0 }

func (s Summary) String() string {
	return fmt.Sprintf("%d correct, %d wrong, %d unverified, %d failed, %d skipped",
		s.Correct, s.Wrong, s.Unverified, s.Failed, s.Skipped)
}

func Summarize(results []domain.PartResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case domain.StatusCorrect:
			s.Correct++
		case domain.StatusWrong:
			s.Wrong++
		case domain.StatusUnverified:
			s.Unverified++
		case domain.StatusFailed:
			s.Failed++
		case domain.StatusSkipped:
			s.Skipped++
		}
	}
	return s
}
