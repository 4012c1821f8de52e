package y2022

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

func priority(item rune) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	default:
		return 0, kit.Invalidf("bad item %q", item)
	}
}

// commonItem returns the first item of first that is present in all others.
func commonItem(first string, others ...string) (rune, bool) {
	for _, r := range first {
		found := true
		for _, o := range others {
			if !strings.ContainsRune(o, r) {
				found = false
				break
			}
		}
		if found {
			return r, true
		}
	}
	return 0, false
}

func day03Part1(input string) (int, error) {
	sum := 0
	for i, line := range kit.Lines(input) {
		half := len(line) / 2
		item, ok := commonItem(line[:half], line[half:])
		if !ok {
			return 0, kit.Invalidf("line %d: no shared item", i+1)
		}
		p, err := priority(item)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}

func day03Part2(input string) (int, error) {
	lines := kit.Lines(input)
	if len(lines)%3 != 0 {
		return 0, kit.Invalidf("%d rucksacks do not form groups of three", len(lines))
	}
	sum := 0
	for i := 0; i < len(lines); i += 3 {
		badge, ok := commonItem(lines[i], lines[i+1], lines[i+2])
		if !ok {
			return 0, kit.Invalidf("group %d: no badge", i/3+1)
		}
		p, err := priority(badge)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}
