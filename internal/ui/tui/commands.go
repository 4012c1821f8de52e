package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mawkler/advent-of-code/internal/app/workspace"
	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/puzzle/calendar"
	"github.com/mawkler/advent-of-code/internal/usecase"
)

const runTimeout = 5 * time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

// cmdLoadCatalog lists every solved puzzle. With a workspace root the items
// also carry input and answer markers.
func cmdLoadCatalog(root string) tea.Cmd {
	return func() tea.Msg {
		if root == "" {
			return catalogLoadedMsg{items: catalogItems(calendar.Default().List(), nil, nil)}
		}

		ws, err := workspace.Open(root)
		if err != nil {
			return catalogLoadedMsg{root: root, items: catalogItems(calendar.Default().List(), nil, nil), err: err}
		}

		book, err := ws.Answers.LoadAnswers()
		if err != nil && !domain.IsKind(err, domain.KindNotFound) {
			return catalogLoadedMsg{root: root, items: catalogItems(ws.Catalog.List(), ws.Inputs.HasInput, nil), err: err}
		}

		return catalogLoadedMsg{root: root, items: catalogItems(ws.Catalog.List(), ws.Inputs.HasInput, book)}
	}
}

func catalogItems(infos []domain.PuzzleInfo, hasInput func(domain.PuzzleKey) bool, book domain.AnswerBook) []puzzleItem {
	items := make([]puzzleItem, 0, len(infos))
	for _, info := range infos {
		it := puzzleItem{info: info}
		if hasInput != nil {
			it.hasInput = hasInput(info.Key)
		}
		for _, p := range domain.Parts {
			if _, ok := book.Expected(info.Key, p); ok {
				it.answers++
			}
		}
		items = append(items, it)
	}
	return items
}

func cmdRun(root string, keys []domain.PuzzleKey, log *slog.Logger, debug bool) tea.Cmd {
	return func() tea.Msg {
		if log == nil {
			log = slog.Default()
		}

		log.Info("tui.run.start", "workspace", root, "puzzles", len(keys), "debug", debug)

		ws, err := workspace.Open(root)
		if err != nil {
			log.Error("tui.run.load_config.failed", "err", err)
			return runDoneMsg{err: err}
		}

		sels := make([]domain.Selector, 0, len(keys))
		for _, k := range keys {
			sels = append(sels, domain.Selector{Year: k.Year, FromDay: k.Day, ToDay: k.Day})
		}

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		run, id, execErr := ws.Runner(log).Execute(ctx, usecase.RunRequest{
			Selectors: sels,
			Save:      ws.Config.Run.Save,
		})

		if execErr != nil {
			log.Error("tui.run.failed", "err", execErr, "saved_id", id)
		} else {
			log.Info("tui.run.ok", "saved_id", id)
		}

		return runDoneMsg{run: run, id: id, err: execErr}
	}
}
