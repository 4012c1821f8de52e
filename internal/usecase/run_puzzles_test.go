package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/mawkler/advent-of-code/internal/domain"
)

var (
	day1 = domain.PuzzleKey{Year: 2024, Day: 1}
	day2 = domain.PuzzleKey{Year: 2024, Day: 2}
	day3 = domain.PuzzleKey{Year: 2024, Day: 3}
)

func TestRunPuzzles_VerifiesAgainstAnswerBook(t *testing.T) {
	cat := newFakeCatalog().
		add(day1, "Historian Hysteria", constant("11"), constant("31")).
		add(day2, "Red-Nosed Reports", constant("2"), constant("4"))
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: "x", day2: "y"})
	answers := &fakeAnswers{book: domain.AnswerBook{day1: {Part1: "11", Part2: "30"}}}

	uc := NewRunPuzzles(cat, inputs, answers, nil)
	run, id, err := uc.Execute(context.Background(), RunRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no id without Save, got %q", id)
	}
	if run.Selection != "all" {
		t.Fatalf("expected selection=all, got %q", run.Selection)
	}

	want := []struct {
		key    domain.PuzzleKey
		part   domain.Part
		status domain.PartStatus
	}{
		{day1, domain.Part1, domain.StatusCorrect},
		{day1, domain.Part2, domain.StatusWrong},
		{day2, domain.Part1, domain.StatusUnverified},
		{day2, domain.Part2, domain.StatusUnverified},
	}
	if len(run.Results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(run.Results))
	}
	for i, w := range want {
		r := run.Results[i]
		if r.Key != w.key || r.Part != w.part || r.Status != w.status {
			t.Fatalf("result[%d] = %v %s %s, want %v %s %s", i, r.Key, r.Part, r.Status, w.key, w.part, w.status)
		}
	}
	if run.Results[1].Expected != "30" || run.Results[1].Answer != "31" {
		t.Fatalf("unexpected wrong result: %+v", run.Results[1])
	}
	if run.Results[0].Title != "Historian Hysteria" {
		t.Fatalf("expected title to be carried, got %q", run.Results[0].Title)
	}
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestRunPuzzles_MissingInputIsSkipped(t *testing.T) {
	cat := newFakeCatalog().add(day1, "a", constant("1"), constant("2"))
	uc := NewRunPuzzles(cat, newFakeInputs(nil), nil, nil)

	run, _, err := uc.Execute(context.Background(), RunRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(run.Results))
	}
	for _, r := range run.Results {
		if r.Status != domain.StatusSkipped {
			t.Fatalf("expected skipped, got %s", r.Status)
		}
		if r.Error == nil || r.Error.Kind != domain.RunErrorInputMissing {
			t.Fatalf("expected input_missing error, got %+v", r.Error)
		}
	}
}

func TestRunPuzzles_OnlyAvailableDropsMissingInputs(t *testing.T) {
	cat := newFakeCatalog().
		add(day1, "a", constant("1"), constant("2")).
		add(day2, "b", constant("3"), constant("4"))
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day2: "in"})

	run, _, err := NewRunPuzzles(cat, inputs, nil, nil).Execute(context.Background(), RunRequest{OnlyAvailable: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.Results) != 2 || run.Results[0].Key != day2 {
		t.Fatalf("expected only day 2 results, got %+v", run.Results)
	}
}

func TestRunPuzzles_PartsFilter(t *testing.T) {
	cat := newFakeCatalog().add(day1, "a", constant("1"), constant("2"))
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: "in"})

	run, _, err := NewRunPuzzles(cat, inputs, nil, nil).Execute(context.Background(), RunRequest{
		Parts: []domain.Part{domain.Part2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.Results) != 1 || run.Results[0].Part != domain.Part2 || run.Results[0].Answer != "2" {
		t.Fatalf("unexpected results: %+v", run.Results)
	}
}

func TestRunPuzzles_SolverReceivesInput(t *testing.T) {
	cat := newFakeCatalog().add(day1, "a", echo(), nil)
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: "hello"})

	run, _, err := NewRunPuzzles(cat, inputs, nil, nil).Execute(context.Background(), RunRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Results[0].Answer != "hello" {
		t.Fatalf("expected solver to receive the input, got %q", run.Results[0].Answer)
	}
	// Part 2 has no solver in the fake catalog.
	if run.Results[1].Status != domain.StatusFailed {
		t.Fatalf("expected part 2 to fail, got %s", run.Results[1].Status)
	}
}

func TestRunPuzzles_SolverErrorIsClassified(t *testing.T) {
	bad := func(string) (string, error) { return "", errors.New("boom") }
	invalid := func(string) (string, error) { return "", errors.Join(errors.New("line 1"), domain.ErrInvalidInput) }
	cat := newFakeCatalog().add(day1, "a", bad, invalid)
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: "in"})

	run, _, err := NewRunPuzzles(cat, inputs, nil, nil).Execute(context.Background(), RunRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Results[0].Error.Kind != domain.RunErrorUnknown {
		t.Fatalf("expected unknown, got %s", run.Results[0].Error.Kind)
	}
	if run.Results[1].Error.Kind != domain.RunErrorInvalidInput {
		t.Fatalf("expected invalid_input, got %s", run.Results[1].Error.Kind)
	}
	for _, r := range run.Results {
		if r.Status != domain.StatusFailed {
			t.Fatalf("expected failed, got %s", r.Status)
		}
	}
}

func TestRunPuzzles_RecoversPanics(t *testing.T) {
	boom := func(string) (string, error) {
		var xs []int
		return string(rune(xs[3])), nil
	}
	cat := newFakeCatalog().add(day1, "a", boom, constant("ok"))
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: "in"})

	run, _, err := NewRunPuzzles(cat, inputs, nil, nil).Execute(context.Background(), RunRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Results[0].Status != domain.StatusFailed || run.Results[0].Error.Kind != domain.RunErrorPanic {
		t.Fatalf("expected panic failure, got %+v", run.Results[0])
	}
	if run.Results[1].Status != domain.StatusUnverified {
		t.Fatalf("expected other part to run, got %s", run.Results[1].Status)
	}
}

func TestRunPuzzles_PartTimeout(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	slow := func(string) (string, error) {
		<-block
		return "late", nil
	}
	cat := newFakeCatalog().add(day1, "a", slow, nil)
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: "in"})

	uc := NewRunPuzzles(cat, inputs, nil, nil, WithPartTimeout(10*time.Millisecond))
	run, _, err := uc.Execute(context.Background(), RunRequest{Parts: []domain.Part{domain.Part1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := run.Results[0]
	if r.Status != domain.StatusFailed || r.Error == nil || r.Error.Kind != domain.RunErrorTimeout {
		t.Fatalf("expected timeout failure, got %+v", r)
	}
	if r.Answer != "" {
		t.Fatalf("expected no answer after timeout, got %q", r.Answer)
	}
}

func TestRunPuzzles_KeepsCatalogOrder(t *testing.T) {
	sleepy := func(d time.Duration, answer string) domain.SolveFunc {
		return func(string) (string, error) {
			time.Sleep(d)
			return answer, nil
		}
	}
	cat := newFakeCatalog().
		add(day1, "a", sleepy(30*time.Millisecond, "1"), nil).
		add(day2, "b", sleepy(10*time.Millisecond, "2"), nil).
		add(day3, "c", sleepy(0, "3"), nil)
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: "", day2: "", day3: ""})

	uc := NewRunPuzzles(cat, inputs, nil, nil, WithParallelism(3))
	run, _, err := uc.Execute(context.Background(), RunRequest{Parts: []domain.Part{domain.Part1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []string{"1", "2", "3"} {
		if run.Results[i].Answer != want {
			t.Fatalf("result[%d] answer = %q, want %q", i, run.Results[i].Answer, want)
		}
	}
}

func TestRunPuzzles_UnknownSelector(t *testing.T) {
	cat := newFakeCatalog().add(day1, "a", constant("1"), nil)
	sel, _ := domain.ParseSelector("2019/4")

	_, _, err := NewRunPuzzles(cat, newFakeInputs(nil), nil, nil).Execute(context.Background(), RunRequest{
		Selectors: []domain.Selector{sel},
	})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestRunPuzzles_AnswerBookErrors(t *testing.T) {
	cat := newFakeCatalog().add(day1, "a", constant("1"), nil)
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: ""})

	missing := &fakeAnswers{loadErr: &domain.OpError{Op: "answers.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}}
	if _, _, err := NewRunPuzzles(cat, inputs, missing, nil).Execute(context.Background(), RunRequest{}); err != nil {
		t.Fatalf("expected a missing answer book to be empty, got %v", err)
	}

	broken := &fakeAnswers{loadErr: &domain.OpError{Op: "answers.load", Kind: domain.KindInvalidConfig, Err: domain.ErrInvalidConfig}}
	_, _, err := NewRunPuzzles(cat, inputs, broken, nil).Execute(context.Background(), RunRequest{})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestRunPuzzles_RecordWritesUnverifiedAnswers(t *testing.T) {
	cat := newFakeCatalog().add(day1, "a", constant("11"), constant("31"))
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: ""})
	answers := &fakeAnswers{book: domain.AnswerBook{day1: {Part1: "11"}}}
	uc := NewRunPuzzles(cat, inputs, answers, nil)

	if _, _, err := uc.Execute(context.Background(), RunRequest{Record: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answers.saves != 1 {
		t.Fatalf("expected 1 save, got %d", answers.saves)
	}
	if got := answers.book[day1]; got.Part1 != "11" || got.Part2 != "31" {
		t.Fatalf("unexpected book: %+v", got)
	}

	// Nothing new to record the second time.
	if _, _, err := uc.Execute(context.Background(), RunRequest{Record: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answers.saves != 1 {
		t.Fatalf("expected the book to be left alone, got %d saves", answers.saves)
	}
}

func TestRunPuzzles_RecordSkipsFailures(t *testing.T) {
	fail := func(string) (string, error) { return "", errors.New("boom") }
	cat := newFakeCatalog().add(day1, "a", fail, nil)
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: ""})
	answers := &fakeAnswers{}

	if _, _, err := NewRunPuzzles(cat, inputs, answers, nil).Execute(context.Background(), RunRequest{Record: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answers.saves != 0 {
		t.Fatalf("expected no save, got %d", answers.saves)
	}
}

func TestRunPuzzles_SaveCallsStore(t *testing.T) {
	cat := newFakeCatalog().add(day1, "a", constant("1"), constant("2"))
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: ""})
	store := &fakeStore{}
	fixed := time.Date(2024, 12, 1, 5, 0, 0, 0, time.UTC)

	uc := NewRunPuzzles(cat, inputs, nil, store, WithNow(func() time.Time { return fixed }))
	run, id, err := uc.Execute(context.Background(), RunRequest{Save: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "run-123" {
		t.Fatalf("expected id=run-123, got %q", id)
	}
	if !store.saved || len(store.last.Results) != 2 {
		t.Fatalf("expected the run to be saved, got %+v", store.last)
	}
	if !run.StartedAt.Equal(fixed) || !run.EndedAt.Equal(fixed) {
		t.Fatalf("expected injected clock, got %v..%v", run.StartedAt, run.EndedAt)
	}
}

func TestRunPuzzles_SaveError(t *testing.T) {
	cat := newFakeCatalog().add(day1, "a", constant("1"), nil)
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: ""})
	saveErr := errors.New("store unavailable")

	run, id, err := NewRunPuzzles(cat, inputs, nil, &fakeStore{err: saveErr}).Execute(context.Background(), RunRequest{Save: true})
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected wrapped saveErr, got %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id on store error, got %q", id)
	}
	// run should still be returned so caller can inspect results.
	if len(run.Results) != 2 {
		t.Fatalf("expected 2 results even on store error, got %d", len(run.Results))
	}
}

func TestRunPuzzles_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls atomic.Int32
	counting := func(string) (string, error) {
		calls.Add(1)
		return "x", nil
	}
	cat := newFakeCatalog().add(day1, "a", counting, counting)
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: ""})
	store := &fakeStore{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run, id, err := NewRunPuzzles(cat, inputs, nil, store).Execute(ctx, RunRequest{Save: true})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if id != "" || store.saved {
		t.Fatalf("expected nothing to be saved")
	}
	if calls.Load() != 0 {
		t.Fatalf("expected 0 solver calls, got %d", calls.Load())
	}
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestRunPuzzles_CancelDuringRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})
	var calls atomic.Int32
	blocking := func(string) (string, error) {
		calls.Add(1)
		cancel()
		<-release
		return "late", nil
	}
	counting := func(string) (string, error) {
		calls.Add(1)
		return "x", nil
	}
	cat := newFakeCatalog().
		add(day1, "a", constant("first"), blocking).
		add(day2, "b", counting, counting)
	inputs := newFakeInputs(map[domain.PuzzleKey]string{day1: "", day2: ""})

	run, _, err := NewRunPuzzles(cat, inputs, nil, nil, WithParallelism(1)).Execute(ctx, RunRequest{})
	close(release)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single interrupted solver call, got %d", calls.Load())
	}
	if len(run.Results) != 1 {
		t.Fatalf("expected only the finished part, got %+v", run.Results)
	}
	got := run.Results[0]
	if got.Key != day1 || got.Part != domain.Part1 || got.Answer != "first" {
		t.Fatalf("unexpected result %+v", got)
	}
	if got.Error != nil {
		t.Fatalf("finished part should carry no error, got %+v", got.Error)
	}
}

func TestCompleted_DropsCanceledParts(t *testing.T) {
	results := []domain.PartResult{
		{Key: day1, Part: domain.Part1, Status: domain.StatusUnverified, Answer: "1"},
		{Key: day1, Part: domain.Part2, Status: domain.StatusFailed, Error: &domain.RunError{Kind: domain.RunErrorCanceled}},
		{Key: day2, Part: domain.Part1, Status: domain.StatusFailed, Error: &domain.RunError{Kind: domain.RunErrorTimeout}},
		{Key: day2, Part: domain.Part2},
	}
	got := completed(results)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %+v", got)
	}
	if got[0].Part != domain.Part1 || got[1].Error.Kind != domain.RunErrorTimeout {
		t.Fatalf("unexpected results %+v", got)
	}
}
