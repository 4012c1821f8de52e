package ports

import "github.com/mawkler/advent-of-code/internal/domain"

// ConfigLoader reads the workspace configuration under root.
type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
