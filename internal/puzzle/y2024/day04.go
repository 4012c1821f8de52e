package y2024

import "github.com/mawkler/advent-of-code/internal/puzzle/kit"

func wordAt(g *kit.Grid[byte], p, d kit.Point, word string) bool {
	for i := range len(word) {
		c, ok := g.Get(p.Add(d.Scale(i)))
		if !ok || c != word[i] {
			return false
		}
	}
	return true
}

func day04Part1(input string) (int, error) {
	g, err := kit.ByteGrid(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for p := range g.Points() {
		for _, d := range kit.Dirs8 {
			if wordAt(g, p, d, "XMAS") {
				n++
			}
		}
	}
	return n, nil
}

// An X-MAS is two MAS words crossing on their A.
func day04Part2(input string) (int, error) {
	g, err := kit.ByteGrid(input)
	if err != nil {
		return 0, err
	}
	mas := func(p, d kit.Point) bool {
		return wordAt(g, p.Sub(d), d, "MAS") || wordAt(g, p.Add(d), d.Neg(), "MAS")
	}
	n := 0
	for p := range g.Points() {
		if g.At(p) == 'A' && mas(p, kit.P(1, 1)) && mas(p, kit.P(1, -1)) {
			n++
		}
	}
	return n, nil
}
