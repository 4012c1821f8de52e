package y2025

import (
	"strconv"
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

type idRange struct{ lo, hi int }

func parseIDRanges(input string) ([]idRange, error) {
	var out []idRange
	for _, part := range strings.Split(strings.TrimSpace(input), ",") {
		lo, hi, ok := strings.Cut(strings.TrimSpace(part), "-")
		if !ok {
			return nil, kit.Invalidf("bad range %q", part)
		}
		a, err := kit.Atoi(lo)
		if err != nil {
			return nil, err
		}
		b, err := kit.Atoi(hi)
		if err != nil {
			return nil, err
		}
		if a > b {
			return nil, kit.Invalidf("range %q is reversed", part)
		}
		out = append(out, idRange{a, b})
	}
	return out, nil
}

// repeatsWithin reports whether id is a digit block repeated exactly n times
// for some n in [2, maxTimes].
func repeatsWithin(id string, maxTimes int) bool {
	for times := 2; times <= min(maxTimes, len(id)); times++ {
		if len(id)%times != 0 {
			continue
		}
		block := id[:len(id)/times]
		if strings.Repeat(block, times) == id {
			return true
		}
	}
	return false
}

func sumInvalidIDs(input string, maxTimes int) (int, error) {
	ranges, err := parseIDRanges(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range ranges {
		for id := r.lo; id <= r.hi; id++ {
			if repeatsWithin(strconv.Itoa(id), maxTimes) {
				sum += id
			}
		}
	}
	return sum, nil
}

// Part one only counts blocks repeated twice; part two any number of times.
func day02Part1(input string) (int, error) { return sumInvalidIDs(input, 2) }
func day02Part2(input string) (int, error) { return sumInvalidIDs(input, 1<<30) }
