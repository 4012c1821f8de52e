package y2025

import (
	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

// maxJoltage picks n batteries from the bank, keeping their order, to form
// the largest number. Each pick takes the leftmost largest digit that still
// leaves enough batteries for the rest.
func maxJoltage(bank string, n int) (int, error) {
	if len(bank) < n {
		return 0, kit.Invalidf("bank %q has fewer than %d batteries", bank, n)
	}
	value, start := 0, 0
	for left := n; left > 0; left-- {
		best, bestAt := -1, -1
		for i := start; i <= len(bank)-left; i++ {
			d, ok := kit.Digit(bank[i])
			if !ok {
				return 0, kit.Invalidf("bank %q: %q is not a digit", bank, bank[i])
			}
			if d > best {
				best, bestAt = d, i
			}
		}
		value = value*10 + best
		start = bestAt + 1
	}
	return value, nil
}

func totalJoltage(input string, n int) (int, error) {
	total := 0
	for _, bank := range kit.Lines(input) {
		j, err := maxJoltage(bank, n)
		if err != nil {
			return 0, err
		}
		total += j
	}
	return total, nil
}

func day03Part1(input string) (int, error) { return totalJoltage(input, 2) }
func day03Part2(input string) (int, error) { return totalJoltage(input, 12) }
