package y2023

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

var spelledDigits = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any. Spelled digits may
// overlap, as in "oneight".
func digitAt(s string, i int, spelled bool) (int, bool) {
	if d, ok := kit.Digit(s[i]); ok {
		return d, true
	}
	if !spelled {
		return 0, false
	}
	for n, word := range spelledDigits {
		if strings.HasPrefix(s[i:], word) {
			return n + 1, true
		}
	}
	return 0, false
}

func calibrationSum(input string, spelled bool) (int, error) {
	sum := 0
	for i, line := range kit.Lines(input) {
		first, last := -1, -1
		for j := range len(line) {
			if d, ok := digitAt(line, j, spelled); ok {
				if first < 0 {
					first = d
				}
				last = d
			}
		}
		if first < 0 {
			return 0, kit.Invalidf("line %d has no digit", i+1)
		}
		sum += first*10 + last
	}
	return sum, nil
}

func day01Part1(input string) (int, error) { return calibrationSum(input, false) }
func day01Part2(input string) (int, error) { return calibrationSum(input, true) }
