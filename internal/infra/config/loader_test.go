package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mawkler/advent-of-code/internal/domain"
)

func TestLoadAnswerBook(t *testing.T) {
	path := filepath.Join("testdata", "answers.yaml")
	book, err := LoadAnswerBook(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(book) != 3 {
		t.Fatalf("expected 3 days, got %d", len(book))
	}
	if v, ok := book.Expected(domain.PuzzleKey{Year: 2024, Day: 1}, domain.Part2); !ok || v != "24349736" {
		t.Fatalf("unexpected 2024/1 part2: %q", v)
	}
	if v, _ := book.Expected(domain.PuzzleKey{Year: 2024, Day: 2}, domain.Part1); v != "218" {
		t.Fatalf("expected unquoted numbers to load as text, got %q", v)
	}
	if v, _ := book.Expected(domain.PuzzleKey{Year: 2022, Day: 10}, domain.Part2); v != "RJERPEFC" {
		t.Fatalf("expected block scalar to be trimmed, got %q", v)
	}
}

func TestLoadAnswerBookInvalid(t *testing.T) {
	path := filepath.Join("testdata", "answers_invalid.yaml")
	_, err := LoadAnswerBook(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "2024.26") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadAnswerBookMissing(t *testing.T) {
	_, err := LoadAnswerBook(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestLoadAnswerBookMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte("2024: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadAnswerBook(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestAnswerFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "answers.yaml")
	store := NewAnswerFile(path)

	book := domain.AnswerBook{
		{Year: 2024, Day: 1}:  {Part1: "11", Part2: "31"},
		{Year: 2022, Day: 10}: {Part2: "##..\n#..#"},
	}
	if err := store.SaveAnswers(book); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(raw), "# Accepted answers") {
		t.Fatalf("expected header comment, got %q", raw)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be gone")
	}

	got, err := store.LoadAnswers()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[domain.PuzzleKey{Year: 2022, Day: 10}].Part2 != "##..\n#..#" {
		t.Fatalf("unexpected book after round trip: %+v", got)
	}
}
