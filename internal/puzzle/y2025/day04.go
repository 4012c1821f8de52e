package y2025

import "github.com/mawkler/advent-of-code/internal/puzzle/kit"

const paperRoll = '@'

func rollGrid(input string) (*kit.Grid[byte], error) {
	g, err := kit.ByteGrid(input)
	if err != nil {
		return nil, err
	}
	if p, bad := g.FindFunc(func(c byte) bool { return c != '.' && c != paperRoll }); bad {
		return nil, kit.Invalidf("unexpected %q at %s", g.At(p), p)
	}
	return g, nil
}

// accessible reports whether a forklift can reach the roll at p: fewer than
// four of its eight neighbors hold rolls.
func accessible(g *kit.Grid[byte], p kit.Point) bool {
	n := 0
	for _, q := range p.Neighbors8() {
		if c, ok := g.Get(q); ok && c == paperRoll {
			n++
		}
	}
	return n < 4
}

func accessibleRolls(g *kit.Grid[byte]) []kit.Point {
	var out []kit.Point
	for p := range g.Points() {
		if g.At(p) == paperRoll && accessible(g, p) {
			out = append(out, p)
		}
	}
	return out
}

func day04Part1(input string) (int, error) {
	g, err := rollGrid(input)
	if err != nil {
		return 0, err
	}
	return len(accessibleRolls(g)), nil
}

// day04Part2 removes accessible rolls in waves until none are left to take.
func day04Part2(input string) (int, error) {
	g, err := rollGrid(input)
	if err != nil {
		return 0, err
	}
	removed := 0
	for {
		wave := accessibleRolls(g)
		if len(wave) == 0 {
			return removed, nil
		}
		for _, p := range wave {
			g.Set(p, '.')
		}
		removed += len(wave)
	}
}
