package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Selector picks a set of puzzles: a whole year, a day, or a day range.
// The zero Selector matches everything.
type Selector struct {
	Year    int
	FromDay int
	ToDay   int
}

// All matches every puzzle.
var All = Selector{}

// ParseSelector accepts "all", "2024", "2024/5" and "2024/5-9".
func ParseSelector(s string) (Selector, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" || in == "all" {
		return All, nil
	}

	yearPart, dayPart, hasDay := strings.Cut(in, "/")
	year, err := strconv.Atoi(yearPart)
	if err != nil || year < FirstYear || year > LastYear {
		return Selector{}, invalidSelector(s, "bad year")
	}
	if !hasDay {
		return Selector{Year: year, FromDay: 1, ToDay: LastDay}, nil
	}

	from, to, isRange := strings.Cut(dayPart, "-")
	fromDay, err := strconv.Atoi(strings.TrimPrefix(from, "day"))
	if err != nil {
		return Selector{}, invalidSelector(s, "bad day")
	}
	toDay := fromDay
	if isRange {
		toDay, err = strconv.Atoi(to)
		if err != nil {
			return Selector{}, invalidSelector(s, "bad range end")
		}
	}
	if fromDay < 1 || toDay > LastDay || fromDay > toDay {
		return Selector{}, invalidSelector(s, "day out of range")
	}

	return Selector{Year: year, FromDay: fromDay, ToDay: toDay}, nil
}

func invalidSelector(s, msg string) error {
	return &OpError{
		Op:   "domain.parse_selector",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("selector %q: %s: %w", s, msg, ErrInvalidInput),
	}
}

func (s Selector) IsAll() bool { return s.Year == 0 }

// Single reports whether the selector names exactly one day.
func (s Selector) Single() (PuzzleKey, bool) {
	if s.Year == 0 || s.FromDay != s.ToDay {
		return PuzzleKey{}, false
	}
	return PuzzleKey{Year: s.Year, Day: s.FromDay}, true
}

func (s Selector) Matches(k PuzzleKey) bool {
	if s.IsAll() {
		return true
	}
	return k.Year == s.Year && k.Day >= s.FromDay && k.Day <= s.ToDay
}

func (s Selector) String() string {
	switch {
	case s.IsAll():
		return "all"
	case s.FromDay == 1 && s.ToDay == LastDay:
		return strconv.Itoa(s.Year)
	case s.FromDay == s.ToDay:
		return fmt.Sprintf("%d/%d", s.Year, s.FromDay)
	default:
		return fmt.Sprintf("%d/%d-%d", s.Year, s.FromDay, s.ToDay)
	}
}

// ParseSelectors parses each argument; no arguments means All.
func ParseSelectors(args []string) ([]Selector, error) {
	if len(args) == 0 {
		return []Selector{All}, nil
	}
	out := make([]Selector, 0, len(args))
	for _, a := range args {
		sel, err := ParseSelector(a)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}

// MatchesAny reports whether any selector matches k.
func MatchesAny(sels []Selector, k PuzzleKey) bool {
	for _, s := range sels {
		if s.Matches(k) {
			return true
		}
	}
	return false
}
