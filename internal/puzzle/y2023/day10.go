package y2023

import (
	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

// pipeExits lists the directions each pipe tile connects to.
var pipeExits = map[byte][2]kit.Point{
	'|': {kit.Up, kit.Down},
	'-': {kit.Left, kit.Right},
	'L': {kit.Up, kit.Right},
	'J': {kit.Up, kit.Left},
	'7': {kit.Down, kit.Left},
	'F': {kit.Down, kit.Right},
}

func connects(tile byte, d kit.Point) bool {
	exits, ok := pipeExits[tile]
	return ok && (exits[0] == d || exits[1] == d)
}

// pipeLoop returns the maze with S replaced by its real pipe, plus the set
// of tiles on the loop through S.
func pipeLoop(input string) (*kit.Grid[byte], map[kit.Point]bool, error) {
	g, err := kit.ByteGrid(input)
	if err != nil {
		return nil, nil, err
	}
	start, ok := kit.Find(g, 'S')
	if !ok {
		return nil, nil, kit.Invalidf("no start tile")
	}

	var open []kit.Point
	for _, d := range kit.Dirs4 {
		if n, ok := g.Get(start.Add(d)); ok && connects(n, d.Neg()) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return nil, nil, kit.Invalidf("start connects to %d pipes, want 2", len(open))
	}
	for tile, exits := range pipeExits {
		if (exits[0] == open[0] && exits[1] == open[1]) || (exits[0] == open[1] && exits[1] == open[0]) {
			g.Set(start, tile)
			break
		}
	}

	loop := map[kit.Point]bool{start: true}
	pos, dir := start.Add(open[0]), open[0]
	for pos != start {
		loop[pos] = true
		exits := pipeExits[g.At(pos)]
		switch {
		case exits[0] == dir.Neg():
			dir = exits[1]
		case exits[1] == dir.Neg():
			dir = exits[0]
		default:
			return nil, nil, kit.Invalidf("loop breaks at %s", pos)
		}
		pos = pos.Add(dir)
		if !g.In(pos) {
			return nil, nil, kit.Invalidf("loop leaves the maze at %s", pos)
		}
	}
	return g, loop, nil
}

func day10Part1(input string) (int, error) {
	_, loop, err := pipeLoop(input)
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

// day10Part2 scans each row and flips inside/outside whenever it crosses a
// loop tile with a north exit.
func day10Part2(input string) (int, error) {
	g, loop, err := pipeLoop(input)
	if err != nil {
		return 0, err
	}
	enclosed := 0
	for y := range g.H {
		inside := false
		for x := range g.W {
			p := kit.P(x, y)
			if loop[p] {
				if connects(g.At(p), kit.Up) {
					inside = !inside
				}
				continue
			}
			if inside {
				enclosed++
			}
		}
	}
	return enclosed, nil
}
