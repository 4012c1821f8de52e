package y2024

import "github.com/mawkler/advent-of-code/internal/puzzle/kit"

// trails counts the paths from head to every reachable 9.
func trails(g *kit.Grid[int], head kit.Point) map[kit.Point]int {
	ends := map[kit.Point]int{}
	var walk func(p kit.Point)
	walk = func(p kit.Point) {
		h := g.At(p)
		if h == 9 {
			ends[p]++
			return
		}
		for _, n := range p.Neighbors4() {
			if v, ok := g.Get(n); ok && v == h+1 {
				walk(n)
			}
		}
	}
	walk(head)
	return ends
}

func trailheads(input string, rating bool) (int, error) {
	g, err := kit.ParseGrid(input, func(r rune) (int, error) {
		if r == '.' {
			return -1, nil
		}
		if r < '0' || r > '9' {
			return 0, kit.Invalidf("bad height %q", r)
		}
		return int(r - '0'), nil
	})
	if err != nil {
		return 0, err
	}
	total := 0
	for p := range g.Points() {
		if g.At(p) != 0 {
			continue
		}
		ends := trails(g, p)
		if !rating {
			total += len(ends)
			continue
		}
		for _, n := range ends {
			total += n
		}
	}
	return total, nil
}

func day10Part1(input string) (int, error) { return trailheads(input, false) }
func day10Part2(input string) (int, error) { return trailheads(input, true) }
