package y2023

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

// cardMatches returns, per card, how many of its numbers are winning.
func cardMatches(input string) ([]int, error) {
	var matches []int
	for i, line := range kit.Lines(input) {
		_, body, ok := strings.Cut(line, ":")
		if !ok {
			return nil, kit.Invalidf("line %d: missing ':'", i+1)
		}
		winning, have, ok := strings.Cut(body, "|")
		if !ok {
			return nil, kit.Invalidf("line %d: missing '|'", i+1)
		}
		w, err := kit.Fields(winning)
		if err != nil {
			return nil, err
		}
		h, err := kit.Fields(have)
		if err != nil {
			return nil, err
		}
		set := make(map[int]bool, len(w))
		for _, n := range w {
			set[n] = true
		}
		count := 0
		for _, n := range h {
			if set[n] {
				count++
			}
		}
		matches = append(matches, count)
	}
	return matches, nil
}

func day04Part1(input string) (int, error) {
	matches, err := cardMatches(input)
	if err != nil {
		return 0, err
	}
	points := 0
	for _, m := range matches {
		if m > 0 {
			points += 1 << (m - 1)
		}
	}
	return points, nil
}

func day04Part2(input string) (int, error) {
	matches, err := cardMatches(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, m := range matches {
		total += copies[i]
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}
