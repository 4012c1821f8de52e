package domain

import "testing"

func TestParseSelector(t *testing.T) {
	cases := []struct {
		in   string
		want Selector
	}{
		{"", All},
		{"all", All},
		{"2024", Selector{Year: 2024, FromDay: 1, ToDay: 25}},
		{"2024/5", Selector{Year: 2024, FromDay: 5, ToDay: 5}},
		{"2024/5-9", Selector{Year: 2024, FromDay: 5, ToDay: 9}},
	}
	for _, c := range cases {
		got, err := ParseSelector(c.in)
		if err != nil {
			t.Errorf("ParseSelector(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseSelector(%q) = %+v, want %+v", c.in, got, c.want)
		}
		if back, _ := ParseSelector(got.String()); back != got {
			t.Errorf("String() round trip for %q: %q", c.in, got.String())
		}
	}
}

func TestParseSelector_Invalid(t *testing.T) {
	for _, in := range []string{"20x4", "2024/0", "2024/9-5", "2024/5-30", "2024/x"} {
		if _, err := ParseSelector(in); err == nil {
			t.Errorf("ParseSelector(%q): expected error", in)
		} else if !IsKind(err, KindInvalidInput) {
			t.Errorf("ParseSelector(%q): expected KindInvalidInput, got %v", in, err)
		}
	}
}

func TestSelectorMatches(t *testing.T) {
	s := Selector{Year: 2024, FromDay: 5, ToDay: 9}
	if !s.Matches(PuzzleKey{2024, 5}) || !s.Matches(PuzzleKey{2024, 9}) {
		t.Fatalf("expected range bounds to match")
	}
	if s.Matches(PuzzleKey{2024, 10}) || s.Matches(PuzzleKey{2023, 6}) {
		t.Fatalf("expected out-of-range keys not to match")
	}
	if !All.Matches(PuzzleKey{2022, 1}) {
		t.Fatalf("expected All to match everything")
	}
}

func TestSelectorSingle(t *testing.T) {
	k, ok := Selector{Year: 2023, FromDay: 7, ToDay: 7}.Single()
	if !ok || k != (PuzzleKey{2023, 7}) {
		t.Fatalf("expected single key, got %v %v", k, ok)
	}
	if _, ok := All.Single(); ok {
		t.Fatalf("All is not a single day")
	}
}

func TestParseSelectors_DefaultsToAll(t *testing.T) {
	sels, err := ParseSelectors(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(sels) != 1 || !sels[0].IsAll() {
		t.Fatalf("expected [All], got %+v", sels)
	}
	if !MatchesAny(sels, PuzzleKey{2025, 3}) {
		t.Fatalf("expected match")
	}
}
