package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/mawkler/advent-of-code/internal/domain"
)

// --- fakes shared by the use case tests ---

type fakeCatalog struct {
	infos   []domain.PuzzleInfo
	solvers map[domain.PuzzleKey][2]domain.SolveFunc
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{solvers: map[domain.PuzzleKey][2]domain.SolveFunc{}}
}

func (c *fakeCatalog) add(k domain.PuzzleKey, title string, p1, p2 domain.SolveFunc) *fakeCatalog {
	c.infos = append(c.infos, domain.PuzzleInfo{Key: k, Title: title})
	c.solvers[k] = [2]domain.SolveFunc{p1, p2}
	return c
}

func (c *fakeCatalog) List() []domain.PuzzleInfo { return c.infos }

func (c *fakeCatalog) Solver(k domain.PuzzleKey, p domain.Part) (domain.SolveFunc, error) {
	s, ok := c.solvers[k]
	if !ok || s[p-1] == nil {
		return nil, &domain.OpError{Op: "fake.solver", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return s[p-1], nil
}

func constant(answer string) domain.SolveFunc {
	return func(string) (string, error) { return answer, nil }
}

func echo() domain.SolveFunc {
	return func(in string) (string, error) { return in, nil }
}

type fakeInputs struct {
	mu    sync.Mutex
	files map[domain.PuzzleKey]string
	saved map[domain.PuzzleKey][]byte
}

func newFakeInputs(files map[domain.PuzzleKey]string) *fakeInputs {
	if files == nil {
		files = map[domain.PuzzleKey]string{}
	}
	return &fakeInputs{files: files, saved: map[domain.PuzzleKey][]byte{}}
}

func (f *fakeInputs) LoadInput(k domain.PuzzleKey) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	in, ok := f.files[k]
	if !ok {
		return "", &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Path: f.path(k), Err: domain.ErrNotFound}
	}
	return in, nil
}

func (f *fakeInputs) HasInput(k domain.PuzzleKey) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.files[k]
	return ok
}

func (f *fakeInputs) SaveInput(k domain.PuzzleKey, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[k] = string(data)
	f.saved[k] = data
	return nil
}

func (f *fakeInputs) InputPath(k domain.PuzzleKey) (string, error) { return f.path(k), nil }

func (f *fakeInputs) path(k domain.PuzzleKey) string {
	return fmt.Sprintf("inputs/%d/day%02d.txt", k.Year, k.Day)
}

type fakeAnswers struct {
	book    domain.AnswerBook
	loadErr error
	saves   int
}

func (f *fakeAnswers) LoadAnswers() (domain.AnswerBook, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := domain.AnswerBook{}
	for k, v := range f.book {
		out[k] = v
	}
	return out, nil
}

func (f *fakeAnswers) SaveAnswers(b domain.AnswerBook) error {
	f.saves++
	f.book = b
	return nil
}

type fakeStore struct {
	saved bool
	last  domain.RunResult
	err   error
}

func (s *fakeStore) SaveRun(run domain.RunResult) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = run
	return "run-123", nil
}

func (s *fakeStore) ListRuns() ([]domain.RunRef, error) { return nil, nil }

func (s *fakeStore) LoadRun(string) ([]byte, error) { return nil, nil }

type fakeFetcher struct {
	mu    sync.Mutex
	calls []domain.PuzzleKey
	data  map[domain.PuzzleKey]string
	errs  map[domain.PuzzleKey]error
}

func (f *fakeFetcher) FetchInput(ctx context.Context, k domain.PuzzleKey) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, k)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.errs[k]; ok {
		return nil, err
	}
	return []byte(f.data[k]), nil
}
