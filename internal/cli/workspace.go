package cli

import (
	"github.com/spf13/cobra"

	"github.com/mawkler/advent-of-code/internal/app/workspace"
	"github.com/mawkler/advent-of-code/internal/infra/workspacefinder"
)

func loadWorkspace(workspaceFlag string) (*workspace.Workspace, error) {
	root, err := resolveRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}
	return workspace.Open(root)
}

func resolveRoot(workspaceFlag string) (string, error) {
	return workspace.Resolve(workspaceFlag)
}

func addWorkspaceFlag(c *cobra.Command, target *string) {
	c.Flags().StringVarP(target, "workspace", "w", "", "Workspace root (optional; autodetected from the nearest "+workspacefinder.ConfigFileName+")")
}
