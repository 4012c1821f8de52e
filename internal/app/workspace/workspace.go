// Package workspace wires the on-disk stores of an aoc workspace together.
package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/infra/aocclient"
	"github.com/mawkler/advent-of-code/internal/infra/config"
	"github.com/mawkler/advent-of-code/internal/infra/inputfs"
	"github.com/mawkler/advent-of-code/internal/infra/runstore"
	"github.com/mawkler/advent-of-code/internal/infra/session"
	"github.com/mawkler/advent-of-code/internal/infra/workspacefinder"
	"github.com/mawkler/advent-of-code/internal/ports"
	"github.com/mawkler/advent-of-code/internal/puzzle/calendar"
	"github.com/mawkler/advent-of-code/internal/usecase"
)

type Workspace struct {
	Root   string
	Config domain.Config

	Catalog ports.SolverCatalog
	Inputs  *inputfs.Store
	Answers *config.AnswerFile
	Runs    *runstore.JSONStore
}

// Open loads aoc.yaml under root and builds the stores it describes.
func Open(root string) (*Workspace, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	inputs, answers := stores(root, cfg)
	return &Workspace{
		Root:    root,
		Config:  cfg,
		Catalog: calendar.Default(),
		Inputs:  inputs,
		Answers: answers,
		Runs:    runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
	}, nil
}

// Resolve turns a --workspace flag into an absolute root. An empty flag
// means "search upwards from the working directory".
func Resolve(flag string) (string, error) {
	w := strings.TrimSpace(flag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `aoc init`): %w", wd, err)
	}
	return root, nil
}

// Stores matches usecase.WorkspaceStores.
func Stores(root string, cfg domain.Config) (ports.InputSource, ports.AnswerBookStore) {
	return stores(root, cfg)
}

func stores(root string, cfg domain.Config) (*inputfs.Store, *config.AnswerFile) {
	answersPath := cfg.Paths.AnswersFile
	if !filepath.IsAbs(answersPath) {
		answersPath = filepath.Join(root, answersPath)
	}
	return inputfs.NewStore(root, cfg), config.NewAnswerFile(answersPath)
}

// Runner builds a RunPuzzles use case configured from aoc.yaml.
func (w *Workspace) Runner(log *slog.Logger, opts ...usecase.RunOption) *usecase.RunPuzzles {
	base := []usecase.RunOption{
		usecase.WithParallelism(w.Config.Run.Parallelism),
		usecase.WithPartTimeout(w.Config.Run.Timeout),
		usecase.WithLogger(log),
	}
	return usecase.NewRunPuzzles(w.Catalog, w.Inputs, w.Answers, w.Runs, append(base, opts...)...)
}

// Fetcher builds an input downloader authenticated with the session cookie
// found in the environment or .env.
func (w *Workspace) Fetcher() (*aocclient.Client, error) {
	cookie, err := session.Lookup(w.Root, w.Config.Fetch.SessionEnv)
	if err != nil {
		return nil, err
	}
	return aocclient.New(w.Config.Fetch, cookie), nil
}

// Validator builds the workspace checks.
func Validator(strict bool) *usecase.ValidateWorkspace {
	return usecase.NewValidateWorkspace(
		workspacefinder.Loader{},
		calendar.Default(),
		Stores,
		usecase.WithStrict(strict),
	)
}
