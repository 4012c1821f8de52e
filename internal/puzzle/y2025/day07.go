package y2025

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

// tachyonBeams sends the beam down the manifold. It returns how many
// splitters were hit and how many timelines reach the bottom, where each
// split doubles the timelines of the particle that hits it.
func tachyonBeams(input string) (splits, timelines int, err error) {
	lines := kit.Lines(input)
	if len(lines) == 0 {
		return 0, 0, kit.Invalidf("empty manifold")
	}
	start := strings.IndexByte(lines[0], 'S')
	if start < 0 {
		return 0, 0, kit.Invalidf("no beam source on the first row")
	}
	beams := map[int]int{start: 1}
	for _, line := range lines[1:] {
		next := make(map[int]int, len(beams)+2)
		for col, n := range beams {
			if col >= 0 && col < len(line) && line[col] == '^' {
				splits++
				next[col-1] += n
				next[col+1] += n
				continue
			}
			next[col] += n
		}
		beams = next
	}
	for _, n := range beams {
		timelines += n
	}
	return splits, timelines, nil
}

func day07Part1(input string) (int, error) {
	splits, _, err := tachyonBeams(input)
	return splits, err
}

func day07Part2(input string) (int, error) {
	_, timelines, err := tachyonBeams(input)
	return timelines, err
}
