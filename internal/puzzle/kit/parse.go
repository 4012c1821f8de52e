package kit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mawkler/advent-of-code/internal/domain"
)

// Invalidf reports malformed puzzle input.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func normalize(input string) string {
	return strings.ReplaceAll(input, "\r\n", "\n")
}

// Lines splits input into lines, dropping trailing newlines.
func Lines(input string) []string {
	s := strings.TrimRight(normalize(input), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits input on blank lines.
func Blocks(input string) []string {
	s := strings.Trim(normalize(input), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n\n")
}

// Atoi parses a trimmed decimal integer.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Invalidf("not a number %q", s)
	}
	return n, nil
}

var intRe = regexp.MustCompile(`-?\d+`)

// Ints extracts every signed integer appearing in s.
func Ints(s string) ([]int, error) {
	matches := intRe.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, Invalidf("integer %q: %v", m, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Fields parses whitespace-separated integers.
func Fields(s string) ([]int, error) {
	fs := strings.Fields(s)
	out := make([]int, 0, len(fs))
	for _, f := range fs {
		n, err := Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Digit converts an ASCII digit.
func Digit(b byte) (int, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}
	return int(b - '0'), true
}
