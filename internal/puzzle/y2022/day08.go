package y2022

import "github.com/mawkler/advent-of-code/internal/puzzle/kit"

func day08Part1(input string) (int, error) {
	g, err := kit.DigitGrid(input)
	if err != nil {
		return 0, err
	}
	visible := 0
	for p := range g.Points() {
		h := g.At(p)
		for _, d := range kit.Dirs4 {
			seen := true
			for q := p.Add(d); g.In(q); q = q.Add(d) {
				if g.At(q) >= h {
					seen = false
					break
				}
			}
			if seen {
				visible++
				break
			}
		}
	}
	return visible, nil
}

func day08Part2(input string) (int, error) {
	g, err := kit.DigitGrid(input)
	if err != nil {
		return 0, err
	}
	best := 0
	for p := range g.Points() {
		h := g.At(p)
		score := 1
		for _, d := range kit.Dirs4 {
			n := 0
			for q := p.Add(d); g.In(q); q = q.Add(d) {
				n++
				if g.At(q) >= h {
					break
				}
			}
			score *= n
		}
		best = max(best, score)
	}
	return best, nil
}
