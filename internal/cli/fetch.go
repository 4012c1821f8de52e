package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/infra/logger"
	"github.com/mawkler/advent-of-code/internal/usecase"
)

func fetchCmd() *cobra.Command {
	var workspace string
	var force bool

	c := &cobra.Command{
		Use:   "fetch [selector...]",
		Short: "Download puzzle inputs from adventofcode.com",
		Long: "Needs the session cookie in $AOC_SESSION or in the workspace .env file.\n" +
			"Existing inputs are kept unless --force is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			sels, err := domain.ParseSelectors(args)
			if err != nil {
				return err
			}

			fetcher, err := ws.Fetcher()
			if err != nil {
				return err
			}

			uc := usecase.NewFetchInputs(ws.Catalog, ws.Inputs, fetcher, logger.Component("fetch"))
			outcomes, err := uc.Execute(cmd.Context(), usecase.FetchRequest{Selectors: sels, Force: force})
			printFetch(cmd.OutOrStdout(), outcomes)
			if err != nil {
				return err
			}

			failed := 0
			for _, o := range outcomes {
				if o.Status == usecase.FetchFailed {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("fetch failed for %d input(s)", failed)
			}
			return nil
		},
	}

	addWorkspaceFlag(c, &workspace)
	c.Flags().BoolVar(&force, "force", false, "Download again even if the input file exists")
	return c
}

func printFetch(w io.Writer, outcomes []usecase.FetchOutcome) {
	for _, o := range outcomes {
		switch o.Status {
		case usecase.FetchSaved:
			fmt.Fprintf(w, "- %-8s saved   %s (%d bytes)\n", o.Key, o.Path, o.Bytes)
		case usecase.FetchExists:
			fmt.Fprintf(w, "- %-8s exists  %s\n", o.Key, o.Path)
		default:
			fmt.Fprintf(w, "- %-8s %-7s %s\n", o.Key, o.Status, o.Error)
		}
	}
}
