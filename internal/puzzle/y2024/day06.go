package y2024

import "github.com/mawkler/advent-of-code/internal/puzzle/kit"

func guardLab(input string) (*kit.Grid[byte], kit.Point, error) {
	g, err := kit.ByteGrid(input)
	if err != nil {
		return nil, kit.Point{}, err
	}
	start, ok := kit.Find(g, '^')
	if !ok {
		return nil, kit.Point{}, kit.Invalidf("no guard on the map")
	}
	return g, start, nil
}

func dirIndex(d kit.Point) int {
	for i, x := range kit.Dirs4 {
		if x == d {
			return i
		}
	}
	return -1
}

// patrol walks the guard until it leaves the map and reports whether a
// (tile, heading) state repeated first. Visited tiles are only collected
// when no extra obstacle is placed.
func patrol(g *kit.Grid[byte], start kit.Point, obstacle *kit.Point) (visited map[kit.Point]bool, loops bool) {
	seen := make([][4]bool, g.W*g.H)
	if obstacle == nil {
		visited = map[kit.Point]bool{}
	}
	pos, dir := start, kit.Up
	for {
		if visited != nil {
			visited[pos] = true
		}
		state := &seen[pos.Y*g.W+pos.X][dirIndex(dir)]
		if *state {
			return visited, true
		}
		*state = true

		next := pos.Add(dir)
		c, ok := g.Get(next)
		if !ok {
			return visited, false
		}
		if c == '#' || (obstacle != nil && next == *obstacle) {
			dir = dir.TurnRight()
			continue
		}
		pos = next
	}
}

func day06Part1(input string) (int, error) {
	g, start, err := guardLab(input)
	if err != nil {
		return 0, err
	}
	visited, loops := patrol(g, start, nil)
	if loops {
		return 0, kit.Invalidf("guard never leaves the lab")
	}
	return len(visited), nil
}

// Only tiles on the original route can change it, so those are the
// candidate obstructions.
func day06Part2(input string) (int, error) {
	g, start, err := guardLab(input)
	if err != nil {
		return 0, err
	}
	route, _ := patrol(g, start, nil)
	n := 0
	for p := range route {
		if p == start {
			continue
		}
		if _, loops := patrol(g, start, &p); loops {
			n++
		}
	}
	return n, nil
}
