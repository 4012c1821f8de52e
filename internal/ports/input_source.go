package ports

import (
	"context"

	"github.com/mawkler/advent-of-code/internal/domain"
)

// InputSource reads and writes puzzle inputs.
type InputSource interface {
	LoadInput(key domain.PuzzleKey) (string, error)
	HasInput(key domain.PuzzleKey) bool
	SaveInput(key domain.PuzzleKey, data []byte) error
	InputPath(key domain.PuzzleKey) (string, error)
}

// InputFetcher downloads a puzzle input from a remote source.
type InputFetcher interface {
	FetchInput(ctx context.Context, key domain.PuzzleKey) ([]byte, error)
}
