package usecase

import (
	"context"
	"fmt"

	"github.com/mawkler/advent-of-code/internal/app/template"
	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/ports"
)

type FindingLevel string

const (
	LevelError   FindingLevel = "error"
	LevelWarning FindingLevel = "warning"
)

// Finding is one problem found in a workspace.
type Finding struct {
	Level   FindingLevel `json:"level"`
	Check   string       `json:"check"`
	Message string       `json:"message"`
}

type ValidationReport struct {
	Root     string    `json:"root"`
	Findings []Finding `json:"findings"`
}

func (r ValidationReport) Count(level FindingLevel) int {
	n := 0
	for _, f := range r.Findings {
		if f.Level == level {
			n++
		}
	}
	return n
}

func (r *ValidationReport) add(level FindingLevel, check, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Level: level, Check: check, Message: fmt.Sprintf(format, args...)})
}

// WorkspaceStores opens the stores of a workspace once its config is known.
type WorkspaceStores func(root string, cfg domain.Config) (ports.InputSource, ports.AnswerBookStore)

type ValidateWorkspace struct {
	configs ports.ConfigLoader
	catalog ports.SolverCatalog
	open    WorkspaceStores
	strict  bool
}

type ValidateOption func(*ValidateWorkspace)

// WithStrict makes warnings fail validation too.
func WithStrict(strict bool) ValidateOption {
	return func(uc *ValidateWorkspace) {
		uc.strict = strict
	}
}

func NewValidateWorkspace(configs ports.ConfigLoader, catalog ports.SolverCatalog, open WorkspaceStores, opts ...ValidateOption) *ValidateWorkspace {
	uc := &ValidateWorkspace{
		configs: configs,
		catalog: catalog,
		open:    open,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute checks a workspace without solving anything. The report is always
// returned; the error is non-nil when an error-level finding was recorded
// (or any finding, in strict mode).
func (uc *ValidateWorkspace) Execute(ctx context.Context, root string) (ValidationReport, error) {
	rep := ValidationReport{Root: root, Findings: []Finding{}}

	cfg, err := uc.configs.LoadConfig(root)
	if err != nil {
		rep.add(LevelError, "config", "%v", err)
		return rep, uc.verdict(rep)
	}

	patternOK := true
	if err := template.ValidatePattern(cfg.Paths.Inputs); err != nil {
		patternOK = false
		rep.add(LevelError, "inputs_template", "%v", err)
	}

	inputs, answers := uc.open(root, cfg)

	book, err := answers.LoadAnswers()
	switch {
	case err == nil:
	case domain.IsKind(err, domain.KindNotFound):
		rep.add(LevelWarning, "answers", "no answer book at %s", cfg.Paths.AnswersFile)
		book = domain.AnswerBook{}
	default:
		rep.add(LevelError, "answers", "%v", err)
		book = domain.AnswerBook{}
	}

	known := map[domain.PuzzleKey]bool{}
	for _, info := range uc.catalog.List() {
		known[info.Key] = true
	}

	for _, k := range book.Keys() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if !known[k] {
			rep.add(LevelWarning, "answers", "answer recorded for %s, which has no solution", k)
			continue
		}
		if patternOK && !inputs.HasInput(k) {
			path, _ := inputs.InputPath(k)
			rep.add(LevelWarning, "inputs", "%s has recorded answers but no input at %s", k, path)
		}
	}

	return rep, uc.verdict(rep)
}

func (uc *ValidateWorkspace) verdict(rep ValidationReport) error {
	errs := rep.Count(LevelError)
	warns := rep.Count(LevelWarning)
	if errs == 0 && (!uc.strict || warns == 0) {
		return nil
	}
	return &domain.OpError{
		Op:   "usecase.validate",
		Kind: domain.KindInvalidConfig,
		Path: rep.Root,
		Err:  fmt.Errorf("%d error(s), %d warning(s): %w", errs, warns, domain.ErrInvalidConfig),
	}
}
