package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/ports"
	"github.com/mawkler/advent-of-code/internal/usecase/verify"
)

// RunRequest selects what to solve and what to do with the results.
type RunRequest struct {
	Selectors []domain.Selector
	// Parts defaults to both parts.
	Parts []domain.Part
	// OnlyAvailable drops puzzles without an input file instead of
	// reporting them as skipped.
	OnlyAvailable bool
	Save          bool
	Record        bool
}

type RunPuzzles struct {
	catalog ports.SolverCatalog
	inputs  ports.InputSource
	answers ports.AnswerBookStore
	store   ports.ArtifactStore

	parallelism int
	timeout     time.Duration
	now         func() time.Time
	log         *slog.Logger
}

type RunOption func(*RunPuzzles)

func WithParallelism(n int) RunOption {
	return func(uc *RunPuzzles) {
		if n > 0 {
			uc.parallelism = n
		}
	}
}

// WithPartTimeout bounds each part. Zero disables the bound.
func WithPartTimeout(d time.Duration) RunOption {
	return func(uc *RunPuzzles) {
		if d >= 0 {
			uc.timeout = d
		}
	}
}

func WithNow(now func() time.Time) RunOption {
	return func(uc *RunPuzzles) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunPuzzles) {
		if l != nil {
			uc.log = l
		}
	}
}

// NewRunPuzzles wires the run use case. answers and store may be nil.
func NewRunPuzzles(catalog ports.SolverCatalog, inputs ports.InputSource, answers ports.AnswerBookStore, store ports.ArtifactStore, opts ...RunOption) *RunPuzzles {
	uc := &RunPuzzles{
		catalog:     catalog,
		inputs:      inputs,
		answers:     answers,
		store:       store,
		parallelism: domain.DefaultConfig().Run.Parallelism,
		timeout:     domain.DefaultConfig().Run.Timeout,
		now:         time.Now,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type partJob struct {
	info  domain.PuzzleInfo
	part  domain.Part
	input string
}

// Execute solves the selection. The returned run is populated even when an
// error is returned, so callers can still show partial results.
func (uc *RunPuzzles) Execute(ctx context.Context, req RunRequest) (domain.RunResult, string, error) {
	run := domain.RunResult{
		Selection: SelectionString(req.Selectors),
		StartedAt: uc.now().UTC(),
		Results:   []domain.PartResult{},
	}
	finish := func() { run.EndedAt = uc.now().UTC() }

	if err := ctx.Err(); err != nil {
		finish()
		return run, "", err
	}

	infos, err := SelectPuzzles(uc.catalog, req.Selectors)
	if err != nil {
		finish()
		return run, "", err
	}

	book, err := uc.loadBook()
	if err != nil {
		finish()
		return run, "", err
	}

	parts := req.Parts
	if len(parts) == 0 {
		parts = domain.Parts
	}

	results := make([]domain.PartResult, 0, len(infos)*len(parts))
	var jobs []int
	var inputs []partJob
	for _, info := range infos {
		input, loadErr := uc.inputs.LoadInput(info.Key)
		if loadErr != nil && req.OnlyAvailable && domain.IsKind(loadErr, domain.KindNotFound) {
			continue
		}
		for _, p := range parts {
			if loadErr != nil {
				results = append(results, domain.PartResult{
					Key:    info.Key,
					Title:  info.Title,
					Part:   p,
					Status: skippedOrFailed(loadErr),
					Error:  domain.NewRunError(loadErr),
				})
				continue
			}
			jobs = append(jobs, len(results))
			inputs = append(inputs, partJob{info: info, part: p, input: input})
			results = append(results, domain.PartResult{Key: info.Key, Title: info.Title, Part: p})
		}
	}

	uc.log.Info("run.start",
		"selection", run.Selection,
		"puzzles", len(infos),
		"parts", len(jobs),
		"parallelism", uc.parallelism,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.parallelism)
	for n, idx := range jobs {
		if gctx.Err() != nil {
			break
		}
		job := inputs[n]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[idx] = uc.solvePart(gctx, job, book)
			return nil
		})
	}
	waitErr := g.Wait()

	if err := ctx.Err(); err != nil {
		run.Results = completed(results)
		finish()
		uc.log.Warn("run.canceled", "selection", run.Selection, "completed", len(run.Results))
		return run, "", err
	}
	if waitErr != nil {
		run.Results = completed(results)
		finish()
		return run, "", waitErr
	}

	run.Results = results
	finish()

	if req.Record && uc.answers != nil {
		if err := uc.record(book, run.Results); err != nil {
			return run, "", err
		}
	}

	sum := verify.Summarize(run.Results)
	uc.log.Info("run.done",
		"selection", run.Selection,
		"correct", sum.Correct,
		"wrong", sum.Wrong,
		"unverified", sum.Unverified,
		"failed", sum.Failed,
		"skipped", sum.Skipped,
	)

	if !req.Save || uc.store == nil {
		return run, "", nil
	}
	id, err := uc.store.SaveRun(run)
	if err != nil {
		return run, "", fmt.Errorf("save run: %w", err)
	}
	return run, id, nil
}

func (uc *RunPuzzles) loadBook() (domain.AnswerBook, error) {
	if uc.answers == nil {
		return domain.AnswerBook{}, nil
	}
	book, err := uc.answers.LoadAnswers()
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.AnswerBook{}, nil
		}
		return nil, err
	}
	if book == nil {
		book = domain.AnswerBook{}
	}
	return book, nil
}

// record stores unverified answers. The book is only written if it changed.
func (uc *RunPuzzles) record(book domain.AnswerBook, results []domain.PartResult) error {
	changed := false
	for _, r := range results {
		if r.Status != domain.StatusUnverified {
			continue
		}
		if book.Record(r.Key, r.Part, r.Answer) {
			changed = true
			uc.log.Info("answers.recorded", "puzzle", r.Key.String(), "part", int(r.Part))
		}
	}
	if !changed {
		return nil
	}
	return uc.answers.SaveAnswers(book)
}

type solveOutcome struct {
	answer string
	err    error
}

func (uc *RunPuzzles) solvePart(ctx context.Context, job partJob, book domain.AnswerBook) domain.PartResult {
	res := domain.PartResult{
		Key:   job.info.Key,
		Title: job.info.Title,
		Part:  job.part,
	}

	solve, err := uc.catalog.Solver(job.info.Key, job.part)
	if err != nil {
		res.Status = domain.StatusFailed
		res.Error = domain.NewRunError(err)
		return res
	}

	pctx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		pctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	// Solvers are plain functions and cannot be interrupted; on timeout the
	// goroutine finishes in the background and its result is dropped.
	done := make(chan solveOutcome, 1)
	start := time.Now()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- solveOutcome{err: &domain.PanicError{Value: r, Stack: string(debug.Stack())}}
			}
		}()
		answer, err := solve(job.input)
		done <- solveOutcome{answer: answer, err: err}
	}()

	var out solveOutcome
	select {
	case out = <-done:
	case <-pctx.Done():
		out.err = fmt.Errorf("solve %s %s: %w", job.info.Key, job.part, pctx.Err())
	}
	res.DurationMS = float64(time.Since(start).Microseconds()) / 1000

	expected, ok := book.Expected(job.info.Key, job.part)
	res.Answer = out.answer
	res.Expected = expected
	res.Status = verify.Check(expected, ok, out.answer, out.err)
	res.Error = domain.NewRunError(out.err)

	if out.err != nil {
		uc.log.Warn("run.part.failed",
			"puzzle", job.info.Key.String(),
			"part", int(job.part),
			"kind", string(res.Error.Kind),
			"error", out.err.Error(),
		)
	} else {
		uc.log.Debug("run.part.ok",
			"puzzle", job.info.Key.String(),
			"part", int(job.part),
			"status", string(res.Status),
			"duration_ms", res.DurationMS,
		)
	}
	return res
}

func skippedOrFailed(err error) domain.PartStatus {
	if domain.IsKind(err, domain.KindNotFound) {
		return domain.StatusSkipped
	}
	return domain.StatusFailed
}

// completed keeps the parts that finished. Parts never started or cut off by
// cancellation are dropped.
func completed(results []domain.PartResult) []domain.PartResult {
	out := make([]domain.PartResult, 0, len(results))
	for _, r := range results {
		if r.Status == "" || (r.Error != nil && r.Error.Kind == domain.RunErrorCanceled) {
			continue
		}
		out = append(out, r)
	}
	return out
}
