package usecase

import (
	"context"
	"log/slog"
	"slices"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/ports"
)

type FetchStatus string

const (
	FetchSaved  FetchStatus = "saved"
	FetchExists FetchStatus = "exists"
	FetchLocked FetchStatus = "locked"
	FetchFailed FetchStatus = "failed"
)

// FetchOutcome reports what happened to one puzzle input.
type FetchOutcome struct {
	Key    domain.PuzzleKey `json:"key"`
	Status FetchStatus      `json:"status"`
	Path   string           `json:"path,omitempty"`
	Bytes  int              `json:"bytes,omitempty"`
	Error  string           `json:"error,omitempty"`
}

type FetchRequest struct {
	Selectors []domain.Selector
	Force     bool
}

type FetchInputs struct {
	catalog ports.SolverCatalog
	inputs  ports.InputSource
	fetcher ports.InputFetcher
	log     *slog.Logger
}

func NewFetchInputs(catalog ports.SolverCatalog, inputs ports.InputSource, fetcher ports.InputFetcher, log *slog.Logger) *FetchInputs {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &FetchInputs{catalog: catalog, inputs: inputs, fetcher: fetcher, log: log}
}

// Execute downloads inputs one at a time. A day that is not unlocked yet is
// reported and skipped; an unauthorized session stops the whole fetch.
func (uc *FetchInputs) Execute(ctx context.Context, req FetchRequest) ([]FetchOutcome, error) {
	keys, err := uc.keys(req.Selectors)
	if err != nil {
		return nil, err
	}

	out := make([]FetchOutcome, 0, len(keys))
	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		path, _ := uc.inputs.InputPath(k)
		o := FetchOutcome{Key: k, Path: path}

		if !req.Force && uc.inputs.HasInput(k) {
			o.Status = FetchExists
			out = append(out, o)
			continue
		}

		data, err := uc.fetcher.FetchInput(ctx, k)
		switch {
		case err == nil:
		case domain.IsKind(err, domain.KindUnauthorized):
			o.Status = FetchFailed
			o.Error = err.Error()
			out = append(out, o)
			uc.log.Warn("fetch.unauthorized", "puzzle", k.String())
			return out, err
		case domain.IsKind(err, domain.KindNotFound):
			o.Status = FetchLocked
			o.Error = err.Error()
			out = append(out, o)
			uc.log.Info("fetch.input.locked", "puzzle", k.String())
			continue
		case ctx.Err() != nil:
			return out, ctx.Err()
		default:
			o.Status = FetchFailed
			o.Error = err.Error()
			out = append(out, o)
			uc.log.Warn("fetch.input.failed", "puzzle", k.String(), "error", err.Error())
			continue
		}

		if err := uc.inputs.SaveInput(k, data); err != nil {
			o.Status = FetchFailed
			o.Error = err.Error()
			out = append(out, o)
			uc.log.Warn("fetch.input.failed", "puzzle", k.String(), "error", err.Error())
			continue
		}
		o.Status = FetchSaved
		o.Bytes = len(data)
		out = append(out, o)
		uc.log.Info("fetch.input.saved", "puzzle", k.String(), "path", path, "bytes", len(data))
	}
	return out, nil
}

// keys resolves selectors against the catalog. A single explicit day is
// always fetched, solved or not, so work on a new day can start from it.
func (uc *FetchInputs) keys(sels []domain.Selector) ([]domain.PuzzleKey, error) {
	seen := map[domain.PuzzleKey]bool{}
	var keys []domain.PuzzleKey
	var rest []domain.Selector
	for _, s := range sels {
		if k, ok := s.Single(); ok {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
			continue
		}
		rest = append(rest, s)
	}

	if len(rest) > 0 || len(sels) == 0 {
		infos, err := SelectPuzzles(uc.catalog, rest)
		if err != nil {
			return nil, err
		}
		for _, info := range infos {
			if !seen[info.Key] {
				seen[info.Key] = true
				keys = append(keys, info.Key)
			}
		}
	}

	slices.SortFunc(keys, domain.PuzzleKey.Compare)
	return keys, nil
}
