package y2024

import "github.com/mawkler/advent-of-code/internal/puzzle/kit"

// antennas groups antenna positions by frequency. Frequencies are letters
// and digits; '#' marks an antinode in drawn maps and counts as empty.
func antennas(g *kit.Grid[byte]) (map[byte][]kit.Point, error) {
	freq := map[byte][]kit.Point{}
	for p := range g.Points() {
		switch c := g.At(p); {
		case c == '.' || c == '#':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			freq[c] = append(freq[c], p)
		default:
			return nil, kit.Invalidf("bad frequency %q at %s", c, p)
		}
	}
	return freq, nil
}

// antinodes counts distinct in-bounds antinodes. Without harmonics only the
// points at twice the distance count; with harmonics every point on the line
// through a pair does, antennas included.
func antinodes(input string, harmonics bool) (int, error) {
	g, err := kit.ByteGrid(input)
	if err != nil {
		return 0, err
	}
	freq, err := antennas(g)
	if err != nil {
		return 0, err
	}
	found := map[kit.Point]bool{}
	for _, ps := range freq {
		for i, a := range ps {
			for j, b := range ps {
				if i == j {
					continue
				}
				step := b.Sub(a)
				if !harmonics {
					if p := b.Add(step); g.In(p) {
						found[p] = true
					}
					continue
				}
				if k := kit.GCD(kit.Abs(step.X), kit.Abs(step.Y)); k > 1 {
					step = kit.P(step.X/k, step.Y/k)
				}
				for p := a; g.In(p); p = p.Add(step) {
					found[p] = true
				}
			}
		}
	}
	return len(found), nil
}

func day08Part1(input string) (int, error) { return antinodes(input, false) }
func day08Part2(input string) (int, error) { return antinodes(input, true) }
