package ports

import "github.com/mawkler/advent-of-code/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
