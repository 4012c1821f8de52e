package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mawkler/advent-of-code/internal/domain"
)

func sampleRun(start time.Time, selection string) domain.RunResult {
	return domain.RunResult{
		Selection: selection,
		StartedAt: start,
		EndedAt:   start.Add(2 * time.Second),
		Results: []domain.PartResult{
			{Key: domain.PuzzleKey{Year: 2024, Day: 1}, Part: domain.Part1, Answer: "11", Expected: "11", Status: domain.StatusCorrect},
			{Key: domain.PuzzleKey{Year: 2024, Day: 1}, Part: domain.Part2, Answer: "30", Expected: "31", Status: domain.StatusWrong},
			{Key: domain.PuzzleKey{Year: 2024, Day: 2}, Part: domain.Part1, Status: domain.StatusSkipped},
		},
	}
}

func counter() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

func TestSaveRun_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIDSuffix(counter()))

	start := time.Date(2024, 12, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveRun(sampleRun(start, "2024/1-2"))
	if err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}
	if id != "20241203T101112Z_2024-1-2_id1" {
		t.Fatalf("unexpected id %q", id)
	}

	wantFile := filepath.Join(tmp, "runs", id+".json")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.RunResult
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Selection != "2024/1-2" {
		t.Fatalf("expected selection, got=%q", decoded.Selection)
	}
	if len(decoded.Results) != 3 {
		t.Fatalf("expected 3 results, got=%d", len(decoded.Results))
	}
	if decoded.Results[1].Status != domain.StatusWrong || decoded.Results[1].Expected != "31" {
		t.Fatalf("unexpected second result: %+v", decoded.Results[1])
	}
}

func TestSaveRun_UsesClockWhenStartMissing(t *testing.T) {
	tmp := t.TempDir()
	now := time.Date(2025, 12, 1, 5, 0, 0, 0, time.UTC)
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time { return now }), WithIDSuffix(counter()))

	id, err := store.SaveRun(domain.RunResult{})
	if err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}
	if id != "20251201T050000Z_run_id1" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestSaveRun_UniqueIDs(t *testing.T) {
	store := NewJSONStore(t.TempDir(), domain.DefaultConfig())
	start := time.Date(2024, 12, 3, 10, 11, 12, 0, time.UTC)

	id1, err := store.SaveRun(sampleRun(start, "all"))
	if err != nil {
		t.Fatalf("SaveRun #1 error: %v", err)
	}
	id2, err := store.SaveRun(sampleRun(start, "all"))
	if err != nil {
		t.Fatalf("SaveRun #2 error: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("expected unique ids, got %q", id1)
	}
}

func TestListRuns_NewestFirstWithCounts(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIDSuffix(counter()))

	older := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	if _, err := store.SaveRun(sampleRun(older, "2024")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(sampleRun(newer, "all")); err != nil {
		t.Fatal(err)
	}

	refs, err := store.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(refs))
	}
	if refs[0].Selection != "all" || refs[1].Selection != "2024" {
		t.Fatalf("expected newest first, got %+v", refs)
	}
	if refs[0].Correct != 1 || refs[0].Failed != 1 {
		t.Fatalf("unexpected counts: %+v", refs[0])
	}
}

func TestListRuns_WithoutIndex(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIndex(false), WithIDSuffix(counter()))

	if _, err := store.SaveRun(sampleRun(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), "2024/1")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "runs", indexFile)); !os.IsNotExist(err) {
		t.Fatalf("expected no index file")
	}

	refs, err := store.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(refs) != 1 || refs[0].Selection != "2024/1" || refs[0].Correct != 1 {
		t.Fatalf("unexpected refs: %+v", refs)
	}
}

func TestListRuns_DropsDeletedArtifacts(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIDSuffix(counter()))

	id, err := store.SaveRun(sampleRun(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), "all"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(tmp, "runs", id+".json")); err != nil {
		t.Fatal(err)
	}

	refs, err := store.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("expected no runs, got %+v", refs)
	}
}

func TestListRuns_NoDirectory(t *testing.T) {
	refs, err := NewJSONStore(t.TempDir(), domain.DefaultConfig()).ListRuns()
	if err != nil || len(refs) != 0 {
		t.Fatalf("expected empty list, got %v %v", refs, err)
	}
}

func TestLoadRun(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIDSuffix(counter()))

	first, _ := store.SaveRun(sampleRun(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), "2023"))
	second, _ := store.SaveRun(sampleRun(time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC), "2024"))

	b, err := store.LoadRun(first)
	if err != nil {
		t.Fatalf("LoadRun: %v", err)
	}
	if !strings.Contains(string(b), `"selection": "2023"`) {
		t.Fatalf("unexpected artifact: %s", b)
	}

	b, err = store.LoadRun(Latest)
	if err != nil {
		t.Fatalf("LoadRun latest: %v", err)
	}
	if !strings.Contains(string(b), `"selection": "2024"`) {
		t.Fatalf("expected latest to be %s, got %s", second, b)
	}

	if _, err := store.LoadRun("20241202"); err != nil {
		t.Fatalf("expected unique prefix to resolve, got %v", err)
	}
	if _, err := store.LoadRun("2024120"); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected ambiguous prefix error, got %v", err)
	}
	if _, err := store.LoadRun("nope"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if _, err := store.LoadRun("../secrets"); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid id, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"2024/5-9":    "2024-5-9",
		"all":         "all",
		" 2023 2024 ": "2023-2024",
		"":            "",
		"//":          "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
