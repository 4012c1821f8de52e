package y2025

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

func parseInventory(input string) ([]idRange, []int, error) {
	blocks := kit.Blocks(input)
	if len(blocks) != 2 {
		return nil, nil, kit.Invalidf("want fresh ranges and available ids separated by a blank line")
	}
	ranges, err := parseIDRanges(strings.ReplaceAll(blocks[0], "\n", ","))
	if err != nil {
		return nil, nil, err
	}
	ids, err := kit.Fields(blocks[1])
	if err != nil {
		return nil, nil, err
	}
	return ranges, ids, nil
}

// mergeRanges returns the union of the inclusive ranges, sorted and
// non-overlapping.
func mergeRanges(ranges []idRange) []idRange {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b idRange) int { return cmp.Compare(a.lo, b.lo) })
	var out []idRange
	for _, r := range sorted {
		if n := len(out); n > 0 && r.lo <= out[n-1].hi+1 {
			out[n-1].hi = max(out[n-1].hi, r.hi)
			continue
		}
		out = append(out, r)
	}
	return out
}

func day05Part1(input string) (int, error) {
	ranges, ids, err := parseInventory(input)
	if err != nil {
		return 0, err
	}
	fresh := 0
	for _, id := range ids {
		if slices.ContainsFunc(ranges, func(r idRange) bool { return id >= r.lo && id <= r.hi }) {
			fresh++
		}
	}
	return fresh, nil
}

func day05Part2(input string) (int, error) {
	ranges, _, err := parseInventory(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range mergeRanges(ranges) {
		total += r.hi - r.lo + 1
	}
	return total, nil
}
