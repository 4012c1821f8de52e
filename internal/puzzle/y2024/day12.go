package y2024

import "github.com/mawkler/advent-of-code/internal/puzzle/kit"

type gardenRegion struct {
	plant     byte
	area      int
	perimeter int
	sides     int
}

// gardenRegions flood-fills the map. Sides are counted through corners: a
// polygon has as many sides as corners.
func gardenRegions(g *kit.Grid[byte]) []gardenRegion {
	seen := kit.NewGrid[bool](g.W, g.H)
	same := func(p kit.Point, plant byte) bool {
		c, ok := g.Get(p)
		return ok && c == plant
	}

	var regions []gardenRegion
	for start := range g.Points() {
		if seen.At(start) {
			continue
		}
		r := gardenRegion{plant: g.At(start)}
		seen.Set(start, true)
		queue := []kit.Point{start}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			r.area++
			for i, d := range kit.Dirs4 {
				n := p.Add(d)
				if !same(n, r.plant) {
					r.perimeter++
				} else if !seen.At(n) {
					seen.Set(n, true)
					queue = append(queue, n)
				}

				// Corner between d and the next direction clockwise.
				d2 := kit.Dirs4[(i+1)%4]
				a, b := same(p.Add(d), r.plant), same(p.Add(d2), r.plant)
				diag := same(p.Add(d).Add(d2), r.plant)
				if (!a && !b) || (a && b && !diag) {
					r.sides++
				}
			}
		}
		regions = append(regions, r)
	}
	return regions
}

func fencePrice(input string, bulk bool) (int, error) {
	g, err := kit.ByteGrid(input)
	if err != nil {
		return 0, err
	}
	if p, bad := g.FindFunc(func(c byte) bool { return c < 'A' || c > 'Z' }); bad {
		return 0, kit.Invalidf("bad plant %q at %s", g.At(p), p)
	}
	total := 0
	for _, r := range gardenRegions(g) {
		if bulk {
			total += r.area * r.sides
		} else {
			total += r.area * r.perimeter
		}
	}
	return total, nil
}

func day12Part1(input string) (int, error) { return fencePrice(input, false) }
func day12Part2(input string) (int, error) { return fencePrice(input, true) }
