package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mawkler/advent-of-code/internal/domain"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	Correct lipgloss.Style
	Wrong   lipgloss.Style
	Muted   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Correct: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Wrong:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}

// Status picks the style for a part verdict.
func (t Theme) Status(s domain.PartStatus) lipgloss.Style {
	switch s {
	case domain.StatusCorrect:
		return t.Correct
	case domain.StatusWrong, domain.StatusFailed:
		return t.Wrong
	default:
		return t.Muted
	}
}
