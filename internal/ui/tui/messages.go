package tui

import "github.com/mawkler/advent-of-code/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type catalogLoadedMsg struct {
	root  string
	items []puzzleItem
	err   error
}

type runDoneMsg struct {
	run domain.RunResult
	id  string
	err error
}
