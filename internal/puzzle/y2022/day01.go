package y2022

import (
	"slices"
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

// elfCalories returns the total carried by each elf, in input order.
func elfCalories(input string) ([]int, error) {
	var totals []int
	for _, block := range kit.Blocks(input) {
		sum := 0
		for _, line := range strings.Split(block, "\n") {
			n, err := kit.Atoi(line)
			if err != nil {
				return nil, err
			}
			sum += n
		}
		totals = append(totals, sum)
	}
	if len(totals) == 0 {
		return nil, kit.Invalidf("no elves")
	}
	return totals, nil
}

func day01Part1(input string) (int, error) {
	totals, err := elfCalories(input)
	if err != nil {
		return 0, err
	}
	return slices.Max(totals), nil
}

func day01Part2(input string) (int, error) {
	totals, err := elfCalories(input)
	if err != nil {
		return 0, err
	}
	slices.Sort(totals)
	slices.Reverse(totals)
	return kit.Sum(totals[:min(3, len(totals))]), nil
}
