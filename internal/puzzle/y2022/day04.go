package y2022

import "github.com/mawkler/advent-of-code/internal/puzzle/kit"

type sections struct{ lo, hi int }

func (s sections) contains(o sections) bool { return s.lo <= o.lo && s.hi >= o.hi }
func (s sections) overlaps(o sections) bool { return s.lo <= o.hi && o.lo <= s.hi }

func assignmentPairs(input string) ([][2]sections, error) {
	var pairs [][2]sections
	for i, line := range kit.Lines(input) {
		// "2-4,6-8": the dashes are separators, not signs.
		nums, err := kit.Ints(stripDashes(line))
		if err != nil {
			return nil, err
		}
		if len(nums) != 4 {
			return nil, kit.Invalidf("line %d: %q", i+1, line)
		}
		pairs = append(pairs, [2]sections{{nums[0], nums[1]}, {nums[2], nums[3]}})
	}
	return pairs, nil
}

func stripDashes(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '-' {
			b[i] = ' '
		}
	}
	return string(b)
}

func countPairs(input string, pred func(a, b sections) bool) (int, error) {
	pairs, err := assignmentPairs(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range pairs {
		if pred(p[0], p[1]) {
			n++
		}
	}
	return n, nil
}

func day04Part1(input string) (int, error) {
	return countPairs(input, func(a, b sections) bool { return a.contains(b) || b.contains(a) })
}

func day04Part2(input string) (int, error) {
	return countPairs(input, sections.overlaps)
}
