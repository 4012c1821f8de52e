package ports

import "github.com/mawkler/advent-of-code/internal/domain"

// ArtifactStore persists run artifacts for later inspection.
type ArtifactStore interface {
	SaveRun(run domain.RunResult) (id string, err error)
	ListRuns() ([]domain.RunRef, error)
	// LoadRun returns the raw JSON of a stored run.
	LoadRun(id string) ([]byte, error)
}
