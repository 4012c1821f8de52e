package y2022

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

var ropeDirs = map[string]kit.Point{"U": kit.Up, "D": kit.Down, "L": kit.Left, "R": kit.Right}

// tailVisits simulates a rope of the given number of knots and counts the
// distinct positions of its last knot.
func tailVisits(input string, knots int) (int, error) {
	rope := make([]kit.Point, knots)
	visited := map[kit.Point]struct{}{rope[knots-1]: {}}
	for i, line := range kit.Lines(input) {
		dir, count, ok := strings.Cut(line, " ")
		d, known := ropeDirs[dir]
		if !ok || !known {
			return 0, kit.Invalidf("line %d: %q", i+1, line)
		}
		n, err := kit.Atoi(count)
		if err != nil {
			return 0, err
		}
		for range n {
			rope[0] = rope[0].Add(d)
			for k := 1; k < knots; k++ {
				if rope[k].Touching(rope[k-1]) {
					break
				}
				rope[k] = rope[k].Toward(rope[k-1])
			}
			visited[rope[knots-1]] = struct{}{}
		}
	}
	return len(visited), nil
}

func day09Part1(input string) (int, error) { return tailVisits(input, 2) }
func day09Part2(input string) (int, error) { return tailVisits(input, 10) }
