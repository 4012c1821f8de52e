package y2023

import (
	"slices"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

// extrapolate predicts the value after the end of a sequence.
func extrapolate(seq []int) int {
	if len(seq) == 0 {
		return 0
	}
	allZero := true
	diffs := make([]int, len(seq)-1)
	for i := range diffs {
		diffs[i] = seq[i+1] - seq[i]
		if diffs[i] != 0 {
			allZero = false
		}
	}
	if allZero {
		return seq[len(seq)-1]
	}
	return seq[len(seq)-1] + extrapolate(diffs)
}

func oasisReport(input string, backwards bool) (int, error) {
	sum := 0
	for _, line := range kit.Lines(input) {
		seq, err := kit.Fields(line)
		if err != nil {
			return 0, err
		}
		if len(seq) == 0 {
			return 0, kit.Invalidf("empty history")
		}
		if backwards {
			slices.Reverse(seq)
		}
		sum += extrapolate(seq)
	}
	return sum, nil
}

func day09Part1(input string) (int, error) { return oasisReport(input, false) }
func day09Part2(input string) (int, error) { return oasisReport(input, true) }
