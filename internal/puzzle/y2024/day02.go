package y2024

import (
	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

// isSafe reports whether levels strictly increase or decrease by 1 to 3.
func isSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	dir := kit.Sign(levels[1] - levels[0])
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if kit.Sign(d) != dir || kit.Abs(d) < 1 || kit.Abs(d) > 3 {
			return false
		}
	}
	return true
}

// isSafeDampened tolerates removing a single bad level.
func isSafeDampened(levels []int) bool {
	if isSafe(levels) {
		return true
	}
	without := make([]int, 0, len(levels)-1)
	for skip := range levels {
		without = without[:0]
		without = append(without, levels[:skip]...)
		without = append(without, levels[skip+1:]...)
		if isSafe(without) {
			return true
		}
	}
	return false
}

func countReports(input string, safe func([]int) bool) (int, error) {
	n := 0
	for _, line := range kit.Lines(input) {
		levels, err := kit.Fields(line)
		if err != nil {
			return 0, err
		}
		if safe(levels) {
			n++
		}
	}
	return n, nil
}

func day02Part1(input string) (int, error) { return countReports(input, isSafe) }
func day02Part2(input string) (int, error) { return countReports(input, isSafeDampened) }
