package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mawkler/advent-of-code/internal/domain"
	"gopkg.in/yaml.v3"
)

const answersHeader = "# Accepted answers, by year and day. `aoc run --record` fills in new ones.\n"

// AnswerFile is an AnswerBookStore backed by a YAML file.
type AnswerFile struct {
	Path string
}

func NewAnswerFile(path string) *AnswerFile {
	return &AnswerFile{Path: path}
}

func (f *AnswerFile) LoadAnswers() (domain.AnswerBook, error) {
	return LoadAnswerBook(f.Path)
}

func (f *AnswerFile) SaveAnswers(book domain.AnswerBook) error {
	return SaveAnswerBook(f.Path, book)
}

func LoadAnswerBook(path string) (domain.AnswerBook, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "config.load_answers",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLAnswerBook
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_answers",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapAnswerBook(path, dto)
}

// SaveAnswerBook writes the book through a temp file and a rename.
func SaveAnswerBook(path string, book domain.AnswerBook) error {
	b, err := yaml.Marshal(ToYAMLAnswerBook(book))
	if err != nil {
		return &domain.OpError{Op: "config.save_answers", Kind: domain.KindExecution, Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &domain.OpError{Op: "config.save_answers", Kind: domain.KindExecution, Path: path, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append([]byte(answersHeader), b...), 0o644); err != nil {
		return &domain.OpError{Op: "config.save_answers", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "config.save_answers", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}
