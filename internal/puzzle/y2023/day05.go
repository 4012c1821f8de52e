package y2023

import (
	"slices"
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

type mapRange struct{ dst, src, length int }

type rangeMap struct {
	from, to string
	ranges   []mapRange
}

func (m rangeMap) apply(n int) int {
	for _, r := range m.ranges {
		if n >= r.src && n < r.src+r.length {
			return r.dst + n - r.src
		}
	}
	return n
}

// span is the half-open interval [lo, hi).
type span struct{ lo, hi int }

// applySpans maps every span through m, splitting spans that straddle the
// edges of a mapping range.
func (m rangeMap) applySpans(in []span) []span {
	var out []span
	pending := slices.Clone(in)
	for _, r := range m.ranges {
		srcHi := r.src + r.length
		var rest []span
		for _, s := range pending {
			if s.lo < r.src {
				rest = append(rest, span{s.lo, min(s.hi, r.src)})
			}
			if s.hi > srcHi {
				rest = append(rest, span{max(s.lo, srcHi), s.hi})
			}
			lo, hi := max(s.lo, r.src), min(s.hi, srcHi)
			if lo < hi {
				shift := r.dst - r.src
				out = append(out, span{lo + shift, hi + shift})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

type almanac struct {
	seeds []int
	maps  []rangeMap // ordered from "seed" to "location"
}

func parseAlmanac(input string) (almanac, error) {
	blocks := kit.Blocks(input)
	if len(blocks) == 0 || !strings.HasPrefix(blocks[0], "seeds:") {
		return almanac{}, kit.Invalidf("missing seeds line")
	}
	seeds, err := kit.Fields(strings.TrimPrefix(blocks[0], "seeds:"))
	if err != nil {
		return almanac{}, err
	}
	byFrom := map[string]rangeMap{}
	for _, block := range blocks[1:] {
		lines := strings.Split(block, "\n")
		name, ok := strings.CutSuffix(lines[0], " map:")
		from, to, ok2 := strings.Cut(name, "-to-")
		if !ok || !ok2 {
			return almanac{}, kit.Invalidf("bad map header %q", lines[0])
		}
		m := rangeMap{from: from, to: to}
		for _, line := range lines[1:] {
			nums, err := kit.Fields(line)
			if err != nil {
				return almanac{}, err
			}
			if len(nums) != 3 {
				return almanac{}, kit.Invalidf("%s map: %q", name, line)
			}
			m.ranges = append(m.ranges, mapRange{dst: nums[0], src: nums[1], length: nums[2]})
		}
		byFrom[from] = m
	}

	a := almanac{seeds: seeds}
	for cat := "seed"; cat != "location"; {
		m, ok := byFrom[cat]
		if !ok {
			return almanac{}, kit.Invalidf("no map from %q", cat)
		}
		if len(a.maps) > len(byFrom) {
			return almanac{}, kit.Invalidf("map chain loops at %q", cat)
		}
		a.maps = append(a.maps, m)
		cat = m.to
	}
	return a, nil
}

func (a almanac) location(seed int) int {
	for _, m := range a.maps {
		seed = m.apply(seed)
	}
	return seed
}

func day05Part1(input string) (int, error) {
	a, err := parseAlmanac(input)
	if err != nil {
		return 0, err
	}
	if len(a.seeds) == 0 {
		return 0, kit.Invalidf("no seeds")
	}
	best := a.location(a.seeds[0])
	for _, s := range a.seeds[1:] {
		best = min(best, a.location(s))
	}
	return best, nil
}

// In part two the seeds line lists (start, length) pairs.
func day05Part2(input string) (int, error) {
	a, err := parseAlmanac(input)
	if err != nil {
		return 0, err
	}
	if len(a.seeds) == 0 || len(a.seeds)%2 != 0 {
		return 0, kit.Invalidf("seeds must come in (start, length) pairs")
	}
	var spans []span
	for i := 0; i < len(a.seeds); i += 2 {
		spans = append(spans, span{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
	}
	for _, m := range a.maps {
		spans = m.applySpans(spans)
	}
	best := spans[0].lo
	for _, s := range spans[1:] {
		best = min(best, s.lo)
	}
	return best, nil
}
