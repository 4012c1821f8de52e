package y2022

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

// markerEnd returns the number of characters read when the last n of them
// are all distinct.
func markerEnd(input string, n int) (int, error) {
	s := strings.TrimSpace(input)
	var seen [256]int
	distinct := 0
	for i := 0; i < len(s); i++ {
		if seen[s[i]] == 0 {
			distinct++
		}
		seen[s[i]]++
		if i >= n {
			old := s[i-n]
			seen[old]--
			if seen[old] == 0 {
				distinct--
			}
		}
		if distinct == n {
			return i + 1, nil
		}
	}
	return 0, kit.Invalidf("no marker of length %d", n)
}

func day06Part1(input string) (int, error) { return markerEnd(input, 4) }
func day06Part2(input string) (int, error) { return markerEnd(input, 14) }
