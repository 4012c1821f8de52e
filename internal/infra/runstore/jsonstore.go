package runstore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/ports"
	"github.com/mawkler/advent-of-code/internal/usecase/verify"
)

const (
	defaultRunsDir = "runs"
	indexFile      = "index.jsonl"

	// Latest resolves to the newest stored run.
	Latest = "latest"
)

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
	newID       func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDSuffix replaces the random suffix of run ids. Useful for tests.
func WithIDSuffix(f func() string) Option {
	return func(s *JSONStore) { s.newID = f }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		writeIndex:  true,
		now:         time.Now,
		newID:       func() string { return uuid.NewString()[:8] },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	if filepath.IsAbs(s.runsDirName) {
		return s.runsDirName
	}
	return filepath.Join(s.rootDir, s.runsDirName)
}

func (s *JSONStore) SaveRun(run domain.RunResult) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := run.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := run
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}
	slug := slugify(run.Selection)
	if slug == "" {
		slug = "run"
	}

	id := fmt.Sprintf("%s_%s_%s", ts.Format("20060102T150405Z"), slug, s.newID())
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, refFor(id, filename, toSave))
	}

	return id, nil
}

func refFor(id, filename string, run domain.RunResult) domain.RunRef {
	sum := verify.Summarize(run.Results)
	return domain.RunRef{
		ID:        id,
		File:      filename,
		Selection: run.Selection,
		StartedAt: run.StartedAt.UTC(),
		Correct:   sum.Correct,
		Failed:    sum.Wrong + sum.Failed,
	}
}

func (s *JSONStore) appendIndex(dir string, ref domain.RunRef) error {
	line, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// ListRuns returns stored runs, newest first. It reads the index when there
// is one and falls back to decoding every artifact otherwise. Index entries
// whose file was deleted are dropped.
func (s *JSONStore) ListRuns() ([]domain.RunRef, error) {
	dir := s.dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.RunRef{}, nil
		}
		return nil, &domain.OpError{Op: "runstore.list", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	files := map[string]bool{}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			files[e.Name()] = true
		}
	}

	refs := map[string]domain.RunRef{}
	if indexed, err := s.readIndex(dir); err == nil {
		for _, r := range indexed {
			if files[r.File] {
				refs[r.File] = r
			}
		}
	}

	for name := range files {
		if _, ok := refs[name]; ok {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var run domain.RunResult
		if err := json.Unmarshal(b, &run); err != nil {
			continue
		}
		refs[name] = refFor(strings.TrimSuffix(name, ".json"), name, run)
	}

	out := make([]domain.RunRef, 0, len(refs))
	for _, r := range refs {
		out = append(out, r)
	}
	// Newest first.
	slices.SortFunc(out, func(a, b domain.RunRef) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (s *JSONStore) readIndex(dir string) ([]domain.RunRef, error) {
	f, err := os.Open(filepath.Join(dir, indexFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []domain.RunRef
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var r domain.RunRef
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, sc.Err()
}

// LoadRun returns the raw artifact. id may be a full id, a unique prefix,
// or Latest.
func (s *JSONStore) LoadRun(id string) ([]byte, error) {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".json")
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, &domain.OpError{
			Op:   "runstore.load",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("run id %q: %w", id, domain.ErrInvalidInput),
		}
	}

	file, err := s.resolve(id)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir(), file)
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{Op: "runstore.load", Kind: kind, Path: path, Err: err}
	}
	return b, nil
}

func (s *JSONStore) resolve(id string) (string, error) {
	refs, err := s.ListRuns()
	if err != nil {
		return "", err
	}

	notFound := &domain.OpError{
		Op:   "runstore.load",
		Kind: domain.KindNotFound,
		Path: s.dir(),
		Err:  fmt.Errorf("run %q: %w", id, domain.ErrNotFound),
	}

	if id == Latest {
		if len(refs) == 0 {
			return "", notFound
		}
		return refs[0].File, nil
	}

	var matches []domain.RunRef
	for _, r := range refs {
		if r.ID == id {
			return r.File, nil
		}
		if strings.HasPrefix(r.ID, id) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return "", notFound
	case 1:
		return matches[0].File, nil
	default:
		return "", &domain.OpError{
			Op:   "runstore.load",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("run id %q is ambiguous (%d matches): %w", id, len(matches), domain.ErrInvalidInput),
		}
	}
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			// any other char -> dash
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
