package usecase

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/ports"
)

// SelectPuzzles resolves selectors against the catalog, keeping catalog
// order. A selector that matches no solved puzzle is a KindNotFound error.
func SelectPuzzles(catalog ports.SolverCatalog, sels []domain.Selector) ([]domain.PuzzleInfo, error) {
	if len(sels) == 0 {
		sels = []domain.Selector{domain.All}
	}
	all := catalog.List()

	for _, s := range sels {
		found := false
		for _, info := range all {
			if s.Matches(info.Key) {
				found = true
				break
			}
		}
		if !found {
			return nil, &domain.OpError{
				Op:   "usecase.select",
				Kind: domain.KindNotFound,
				Err:  fmt.Errorf("no solved puzzle matches %q: %w", s.String(), domain.ErrNotFound),
			}
		}
	}

	out := make([]domain.PuzzleInfo, 0, len(all))
	for _, info := range all {
		if domain.MatchesAny(sels, info.Key) {
			out = append(out, info)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.PuzzleInfo) int { return a.Key.Compare(b.Key) })
	return out, nil
}

// SelectionString joins selectors the way they are written on the command line.
func SelectionString(sels []domain.Selector) string {
	if len(sels) == 0 {
		return domain.All.String()
	}
	parts := make([]string, len(sels))
	for i, s := range sels {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
