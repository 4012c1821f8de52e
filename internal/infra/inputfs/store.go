package inputfs

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mawkler/advent-of-code/internal/app/template"
	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/ports"
)

// Store keeps puzzle inputs as plain files laid out by a path template.
type Store struct {
	root    string
	pattern string
}

var _ ports.InputSource = (*Store)(nil)

func NewStore(root string, cfg domain.Config) *Store {
	pattern := cfg.Paths.Inputs
	if strings.TrimSpace(pattern) == "" {
		pattern = domain.DefaultConfig().Paths.Inputs
	}
	return &Store{root: root, pattern: pattern}
}

func (s *Store) Pattern() string { return s.pattern }

func (s *Store) Root() string { return s.root }

func (s *Store) InputPath(key domain.PuzzleKey) (string, error) {
	rel, err := template.InputPath(s.pattern, key)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel), nil
	}
	return filepath.Join(s.root, filepath.FromSlash(rel)), nil
}

// LoadInput returns the input with Windows line endings normalized.
func (s *Store) LoadInput(key domain.PuzzleKey) (string, error) {
	path, err := s.InputPath(key)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return "", &domain.OpError{
			Op:   "inputfs.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	if len(b) == 0 {
		return "", &domain.OpError{
			Op:   "inputfs.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  errors.New("input file is empty"),
		}
	}

	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}

func (s *Store) HasInput(key domain.PuzzleKey) bool {
	path, err := s.InputPath(key)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

func (s *Store) SaveInput(key domain.PuzzleKey, data []byte) error {
	path, err := s.InputPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &domain.OpError{Op: "inputfs.mkdir", Kind: domain.KindExecution, Path: path, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &domain.OpError{Op: "inputfs.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "inputfs.rename", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}

// BaseDir is the deepest directory that holds every input: the part of the
// template before its first placeholder.
func (s *Store) BaseDir() string {
	static := s.pattern
	if i := strings.Index(static, "{{"); i >= 0 {
		static = static[:i]
	}
	static = path.Dir(static + "x")
	if filepath.IsAbs(s.pattern) {
		return filepath.Clean(filepath.FromSlash(static))
	}
	return filepath.Join(s.root, filepath.FromSlash(static))
}

// KeyForPath maps a file path back to the puzzle it holds, if any.
func (s *Store) KeyForPath(p string) (domain.PuzzleKey, bool) {
	rel := p
	if filepath.IsAbs(p) && !filepath.IsAbs(s.pattern) {
		r, err := filepath.Rel(s.root, p)
		if err != nil {
			return domain.PuzzleKey{}, false
		}
		rel = r
	}
	return template.Match(s.pattern, filepath.ToSlash(rel))
}
