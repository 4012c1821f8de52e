package puzzle

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/ports"
)

// Registry is an immutable, ordered set of solutions.
type Registry struct {
	byKey map[domain.PuzzleKey]Solution
	order []domain.PuzzleKey
}

var _ ports.SolverCatalog = (*Registry)(nil)

// NewRegistry validates and indexes solutions.
func NewRegistry(solutions ...Solution) (*Registry, error) {
	r := &Registry{byKey: make(map[domain.PuzzleKey]Solution, len(solutions))}

	for _, s := range solutions {
		k := s.Key()
		switch {
		case !k.Valid():
			return nil, invalid(fmt.Errorf("invalid puzzle key %s", k))
		case s.Part1 == nil || s.Part2 == nil:
			return nil, invalid(fmt.Errorf("%s: both parts are required", k))
		}
		if _, dup := r.byKey[k]; dup {
			return nil, invalid(fmt.Errorf("%s registered twice", k))
		}
		r.byKey[k] = s
		r.order = append(r.order, k)
	}

	slices.SortFunc(r.order, domain.PuzzleKey.Compare)
	return r, nil
}

func invalid(err error) error {
	return &domain.OpError{
		Op:   "puzzle.registry",
		Kind: domain.KindInvalidConfig,
		Err:  errors.Join(err, domain.ErrInvalidConfig),
	}
}

func (r *Registry) List() []domain.PuzzleInfo {
	out := make([]domain.PuzzleInfo, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, domain.PuzzleInfo{Key: k, Title: r.byKey[k].Title})
	}
	return out
}

// Lookup returns the solution registered for k.
func (r *Registry) Lookup(k domain.PuzzleKey) (Solution, bool) {
	s, ok := r.byKey[k]
	return s, ok
}

func (r *Registry) Solver(k domain.PuzzleKey, p domain.Part) (domain.SolveFunc, error) {
	s, ok := r.byKey[k]
	if !ok {
		return nil, &domain.OpError{
			Op:   "puzzle.solver",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("puzzle %s: %w", k, domain.ErrNotFound),
		}
	}
	f := s.Solver(p)
	if f == nil {
		return nil, &domain.OpError{
			Op:   "puzzle.solver",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("puzzle %s %s: %w", k, p, domain.ErrNotFound),
		}
	}
	return f, nil
}

// Years returns the distinct years in ascending order.
func (r *Registry) Years() []int {
	var years []int
	for _, k := range r.order {
		if len(years) == 0 || years[len(years)-1] != k.Year {
			years = append(years, k.Year)
		}
	}
	return years
}
