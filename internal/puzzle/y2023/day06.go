package y2023

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

type boatRace struct{ time, record int }

// waysToWin counts hold times h in [0, time] with h*(time-h) > record. The
// distance grows up to time/2, so the smallest winning hold is found by
// binary search and the winners are symmetric around the middle.
func (r boatRace) waysToWin() int {
	lo, hi := 0, r.time/2+1
	for lo < hi {
		mid := (lo + hi) / 2
		if mid*(r.time-mid) > r.record {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo > r.time/2 {
		return 0
	}
	return r.time - 2*lo + 1
}

func raceSheet(input string, kerning bool) ([]boatRace, error) {
	lines := kit.Lines(input)
	if len(lines) != 2 {
		return nil, kit.Invalidf("want Time and Distance lines, got %d lines", len(lines))
	}
	var rows [2][]int
	for i, prefix := range []string{"Time:", "Distance:"} {
		rest, ok := strings.CutPrefix(lines[i], prefix)
		if !ok {
			return nil, kit.Invalidf("line %d: missing %q", i+1, prefix)
		}
		if kerning {
			rest = strings.ReplaceAll(rest, " ", "")
		}
		nums, err := kit.Fields(rest)
		if err != nil {
			return nil, err
		}
		rows[i] = nums
	}
	if len(rows[0]) != len(rows[1]) {
		return nil, kit.Invalidf("%d times but %d distances", len(rows[0]), len(rows[1]))
	}
	races := make([]boatRace, len(rows[0]))
	for i := range races {
		races[i] = boatRace{time: rows[0][i], record: rows[1][i]}
	}
	return races, nil
}

func day06Part1(input string) (int, error) {
	races, err := raceSheet(input, false)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, r := range races {
		product *= r.waysToWin()
	}
	return product, nil
}

func day06Part2(input string) (int, error) {
	races, err := raceSheet(input, true)
	if err != nil {
		return 0, err
	}
	if len(races) != 1 {
		return 0, kit.Invalidf("expected a single race")
	}
	return races[0].waysToWin(), nil
}
