package ports

import "github.com/mawkler/advent-of-code/internal/domain"

// SolverCatalog exposes the solved puzzles.
type SolverCatalog interface {
	List() []domain.PuzzleInfo
	Solver(key domain.PuzzleKey, part domain.Part) (domain.SolveFunc, error)
}
