package y2024

import (
	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

// blink applies the stone rules once to every stone.
func blink(stones map[int]int) map[int]int {
	next := make(map[int]int, len(stones)*2)
	for s, n := range stones {
		switch d := kit.Digits(s); {
		case s == 0:
			next[1] += n
		case d%2 == 0:
			p := kit.Pow10(d / 2)
			next[s/p] += n
			next[s%p] += n
		default:
			next[s*2024] += n
		}
	}
	return next
}

// stonesAfter returns the stone count after the given number of blinks.
// Order never matters, so stones are tracked as value counts.
func stonesAfter(input string, blinks int) (int, error) {
	nums, err := kit.Fields(input)
	if err != nil {
		return 0, err
	}
	if len(nums) == 0 {
		return 0, kit.Invalidf("no stones")
	}
	stones := map[int]int{}
	for _, n := range nums {
		stones[n]++
	}
	for range blinks {
		stones = blink(stones)
	}
	total := 0
	for _, n := range stones {
		total += n
	}
	return total, nil
}

func day11Part1(input string) (int, error) { return stonesAfter(input, 25) }
func day11Part2(input string) (int, error) { return stonesAfter(input, 75) }
