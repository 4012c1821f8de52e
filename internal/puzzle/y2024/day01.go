package y2024

import (
	"slices"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

func locationLists(input string) (left, right []int, err error) {
	for i, line := range kit.Lines(input) {
		nums, err := kit.Fields(line)
		if err != nil {
			return nil, nil, err
		}
		if len(nums) != 2 {
			return nil, nil, kit.Invalidf("line %d: want two ids, got %q", i+1, line)
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	if len(left) == 0 {
		return nil, nil, kit.Invalidf("empty lists")
	}
	return left, right, nil
}

func day01Part1(input string) (int, error) {
	left, right, err := locationLists(input)
	if err != nil {
		return 0, err
	}
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		total += kit.Abs(left[i] - right[i])
	}
	return total, nil
}

func day01Part2(input string) (int, error) {
	left, right, err := locationLists(input)
	if err != nil {
		return 0, err
	}
	counts := make(map[int]int, len(right))
	for _, n := range right {
		counts[n]++
	}
	score := 0
	for _, n := range left {
		score += n * counts[n]
	}
	return score, nil
}
