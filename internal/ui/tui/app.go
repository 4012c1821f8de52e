package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mawkler/advent-of-code/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenResult
)

type puzzleItem struct {
	info     domain.PuzzleInfo
	hasInput bool
	answers  int
	last     domain.PartStatus
}

func (p puzzleItem) Title() string {
	return fmt.Sprintf("%-8s %s", p.info.Key, p.info.Title)
}

func (p puzzleItem) Description() string {
	input := "no input"
	if p.hasInput {
		input = "input"
	}
	desc := fmt.Sprintf("%s · answers %d/2", input, p.answers)
	if p.last != "" {
		desc += " · last run " + string(p.last)
	}
	return desc
}

func (p puzzleItem) FilterValue() string { return p.info.Key.String() + " " + p.info.Title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	list list.Model

	workspaceFound bool
	workspaceRoot  string
	cwd            string

	running   bool
	lastRun   domain.RunResult
	lastRunID string
	toast     string
	width     int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Advent of Code"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		list:  l,
	}

	wd, err := os.Getwd()
	if err == nil {
		m.cwd = wd
		if deps.WorkspaceLocator != nil {
			if root, findErr := deps.WorkspaceLocator.FindRoot(wd); findErr == nil {
				m.workspaceFound = true
				m.workspaceRoot = root
			}
		}
	}

	return m
}

func (m model) Init() tea.Cmd {
	return cmdLoadCatalog(m.workspaceRoot)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case catalogLoadedMsg:
		m.list.SetItems(toListItems(msg.items))
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.cwd != "" {
			m.cwd = msg.cwd
		}
		return m, cmdLoadCatalog(m.workspaceRoot)

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case runDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		} else {
			m.toast = ""
		}
		m.lastRun = msg.run
		m.lastRunID = msg.id
		m.markResults(msg.run.Results)
		if len(msg.run.Results) > 0 {
			m.scr = screenResult
		}
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}

		case "enter":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}
			it, ok := m.list.SelectedItem().(puzzleItem)
			if !ok {
				return m, nil
			}
			return m.startRun([]domain.PuzzleKey{it.info.Key})

		case "a":
			if m.scr != screenHome {
				return m, nil
			}
			var keys []domain.PuzzleKey
			for _, li := range m.list.VisibleItems() {
				if it, ok := li.(puzzleItem); ok && it.hasInput {
					keys = append(keys, it.info.Key)
				}
			}
			if len(keys) == 0 {
				m.toast = "No listed puzzle has an input (aoc fetch)"
				return m, nil
			}
			return m.startRun(keys)

		case "i":
			if m.scr != screenHome || m.workspaceFound || m.cwd == "" {
				return m, nil
			}
			return m, cmdInitWorkspaceHere(m.deps, m.cwd)
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) startRun(keys []domain.PuzzleKey) (tea.Model, tea.Cmd) {
	if !m.workspaceFound {
		m.toast = "No workspace found (press i to create one here)"
		return m, nil
	}
	if m.running {
		return m, nil
	}
	m.running = true
	m.toast = fmt.Sprintf("Solving %d puzzle(s)…", len(keys))
	return m, cmdRun(m.workspaceRoot, keys, m.deps.Logger, m.deps.Debug)
}

func (m *model) markResults(results []domain.PartResult) {
	worst := worstStatus(results)
	items := m.list.Items()
	for i, li := range items {
		it, ok := li.(puzzleItem)
		if !ok {
			continue
		}
		if s, ok := worst[it.info.Key]; ok {
			it.last = s
			items[i] = it
		}
	}
	m.list.SetItems(items)
}

func toListItems(items []puzzleItem) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, it)
	}
	return out
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("aoc") + "\n" +
		m.theme.Subtitle.Render("Advent of Code solutions, 2022 to 2025") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"No workspace found.\n\nPress i to create one in " + m.cwd + ".",
		)
	}

	var toast string
	if strings.TrimSpace(m.toast) != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • / filter • enter run • a run listed • i init • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.list.View()) + "\n" + help + toast)

	case screenResult:
		width := m.width - 30
		if width < 20 {
			width = 60
		}
		card := m.theme.Card.Render(renderRun(m.theme, m.lastRun, m.lastRunID, width))
		help := m.theme.Help.Render("enter/esc back • q home")
		return wrap.Render(header + "\n" + card + "\n" + help + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
