package y2022

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

const (
	crtWidth  = 40
	crtHeight = 6
)

// registerTrace runs the program and returns the value of X during each
// cycle; trace[0] is cycle 1.
func registerTrace(input string) ([]int, error) {
	x := 1
	var trace []int
	for i, line := range kit.Lines(input) {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 1 && fields[0] == "noop":
			trace = append(trace, x)
		case len(fields) == 2 && fields[0] == "addx":
			v, err := kit.Atoi(fields[1])
			if err != nil {
				return nil, err
			}
			trace = append(trace, x, x)
			x += v
		default:
			return nil, kit.Invalidf("line %d: %q", i+1, line)
		}
	}
	// Once the program halts, X holds its final value.
	for len(trace) < crtWidth*crtHeight {
		trace = append(trace, x)
	}
	return trace, nil
}

func day10Part1(input string) (int, error) {
	trace, err := registerTrace(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for cycle := 20; cycle <= 220; cycle += 40 {
		sum += cycle * trace[cycle-1]
	}
	return sum, nil
}

// day10Part2 renders the CRT as six rows of '#' and '.'.
func day10Part2(input string) (string, error) {
	trace, err := registerTrace(input)
	if err != nil {
		return "", err
	}
	rows := make([]string, crtHeight)
	for y := range rows {
		var row strings.Builder
		for x := range crtWidth {
			sprite := trace[y*crtWidth+x]
			if kit.Abs(sprite-x) <= 1 {
				row.WriteByte('#')
			} else {
				row.WriteByte('.')
			}
		}
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n"), nil
}
