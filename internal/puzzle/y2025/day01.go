package y2025

import (
	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

const (
	dialSize  = 100
	dialStart = 50
)

// rotations parses lines like "L68" into signed click counts.
func rotations(input string) ([]int, error) {
	var out []int
	for i, line := range kit.Lines(input) {
		if len(line) < 2 || (line[0] != 'L' && line[0] != 'R') {
			return nil, kit.Invalidf("line %d: %q", i+1, line)
		}
		n, err := kit.Atoi(line[1:])
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, kit.Invalidf("line %d: negative distance", i+1)
		}
		if line[0] == 'L' {
			n = -n
		}
		out = append(out, n)
	}
	return out, nil
}

// zeroClicks counts the clicks of a rotation by delta from pos that leave
// the dial on 0, including the last one.
func zeroClicks(pos, delta int) int {
	if delta >= 0 {
		return (pos + delta) / dialSize
	}
	d := -delta
	if pos == 0 {
		return d / dialSize
	}
	if d < pos {
		return 0
	}
	return (d-pos)/dialSize + 1
}

func day01Part1(input string) (int, error) {
	rots, err := rotations(input)
	if err != nil {
		return 0, err
	}
	pos, zeroes := dialStart, 0
	for _, r := range rots {
		pos = kit.Mod(pos+r, dialSize)
		if pos == 0 {
			zeroes++
		}
	}
	return zeroes, nil
}

func day01Part2(input string) (int, error) {
	rots, err := rotations(input)
	if err != nil {
		return 0, err
	}
	pos, zeroes := dialStart, 0
	for _, r := range rots {
		zeroes += zeroClicks(pos, r)
		pos = kit.Mod(pos+r, dialSize)
	}
	return zeroes, nil
}
