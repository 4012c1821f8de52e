package domain

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

const (
	FirstYear = 2015
	LastYear  = 2099
	LastDay   = 25
)

// PuzzleKey identifies one daily puzzle.
type PuzzleKey struct {
	Year int `json:"year" yaml:"year"`
	Day  int `json:"day" yaml:"day"`
}

func (k PuzzleKey) String() string {
	return fmt.Sprintf("%d/%d", k.Year, k.Day)
}

// Valid reports whether the key names a day that can exist in an event.
func (k PuzzleKey) Valid() bool {
	return k.Year >= FirstYear && k.Year <= LastYear && k.Day >= 1 && k.Day <= LastDay
}

// Compare orders keys by year, then day.
func (k PuzzleKey) Compare(o PuzzleKey) int {
	if c := cmp.Compare(k.Year, o.Year); c != 0 {
		return c
	}
	return cmp.Compare(k.Day, o.Day)
}

// ParsePuzzleKey parses "2024/12" (also accepts "2024-12").
func ParsePuzzleKey(s string) (PuzzleKey, error) {
	in := strings.TrimSpace(s)
	y, d, ok := cutAny(in, "/-")
	if !ok {
		return PuzzleKey{}, invalidKey(s, "expected YEAR/DAY")
	}

	year, err := strconv.Atoi(y)
	if err != nil {
		return PuzzleKey{}, invalidKey(s, "year is not a number")
	}
	day, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(d), "day"))
	if err != nil {
		return PuzzleKey{}, invalidKey(s, "day is not a number")
	}

	k := PuzzleKey{Year: year, Day: day}
	if !k.Valid() {
		return PuzzleKey{}, invalidKey(s, "out of range")
	}
	return k, nil
}

func invalidKey(s, msg string) error {
	return &OpError{
		Op:   "domain.parse_key",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("puzzle %q: %s: %w", s, msg, ErrInvalidInput),
	}
}

func cutAny(s, seps string) (string, string, bool) {
	i := strings.IndexAny(s, seps)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// Part is one of the two sub-problems of a day.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// Parts lists both parts in order.
var Parts = []Part{Part1, Part2}

func (p Part) Valid() bool { return p == Part1 || p == Part2 }

func (p Part) String() string { return "part" + strconv.Itoa(int(p)) }

func ParsePart(s string) (Part, error) {
	in := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "part")
	n, err := strconv.Atoi(in)
	if err != nil || !Part(n).Valid() {
		return 0, &OpError{
			Op:   "domain.parse_part",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("part %q: expected 1 or 2: %w", s, ErrInvalidInput),
		}
	}
	return Part(n), nil
}

// SolveFunc computes the answer of one part from the raw puzzle input.
type SolveFunc func(input string) (string, error)

// PuzzleInfo is the catalog view of a day.
type PuzzleInfo struct {
	Key   PuzzleKey
	Title string
}
