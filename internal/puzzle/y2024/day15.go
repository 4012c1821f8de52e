package y2024

import (
	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

var robotMoves = map[rune]kit.Point{'^': kit.Up, '>': kit.Right, 'v': kit.Down, '<': kit.Left}

func parseWarehouse(input string) (*kit.Grid[byte], []kit.Point, error) {
	blocks := kit.Blocks(input)
	if len(blocks) != 2 {
		return nil, nil, kit.Invalidf("want a map and moves separated by a blank line")
	}
	g, err := kit.ByteGrid(blocks[0])
	if err != nil {
		return nil, nil, err
	}
	var moves []kit.Point
	for _, r := range blocks[1] {
		if r == '\n' || r == '\r' {
			continue
		}
		d, ok := robotMoves[r]
		if !ok {
			return nil, nil, kit.Invalidf("unknown move %q", r)
		}
		moves = append(moves, d)
	}
	return g, moves, nil
}

// widen doubles every tile horizontally for the second warehouse.
func widen(g *kit.Grid[byte]) *kit.Grid[byte] {
	wide := kit.NewGrid[byte](g.W*2, g.H)
	for p := range g.Points() {
		pair := map[byte]string{'#': "##", 'O': "[]", '.': "..", '@': "@."}[g.At(p)]
		if pair == "" {
			pair = string([]byte{g.At(p), g.At(p)})
		}
		wide.Set(kit.P(2*p.X, p.Y), pair[0])
		wide.Set(kit.P(2*p.X+1, p.Y), pair[1])
	}
	return wide
}

// push moves the tile at from one step in d along with everything it pushes.
// Wide boxes drag their other half when pushed vertically.
func push(g *kit.Grid[byte], from, d kit.Point) bool {
	vertical := d.X == 0
	moving := []kit.Point{from}
	queued := map[kit.Point]bool{from: true}
	add := func(p kit.Point) {
		if !queued[p] {
			queued[p] = true
			moving = append(moving, p)
		}
	}
	for i := 0; i < len(moving); i++ {
		n := moving[i].Add(d)
		switch g.At(n) {
		case '#':
			return false
		case 'O':
			add(n)
		case '[':
			add(n)
			if vertical {
				add(n.Add(kit.Right))
			}
		case ']':
			add(n)
			if vertical {
				add(n.Add(kit.Left))
			}
		}
	}

	tiles := make([]byte, len(moving))
	for i, p := range moving {
		tiles[i] = g.At(p)
		g.Set(p, '.')
	}
	for i, p := range moving {
		g.Set(p.Add(d), tiles[i])
	}
	return true
}

func gpsSum(g *kit.Grid[byte]) int {
	sum := 0
	for p := range g.Points() {
		if c := g.At(p); c == 'O' || c == '[' {
			sum += 100*p.Y + p.X
		}
	}
	return sum
}

// runRobot applies every move and returns the final warehouse.
func runRobot(g *kit.Grid[byte], moves []kit.Point) (*kit.Grid[byte], error) {
	pos, ok := kit.Find(g, '@')
	if !ok {
		return nil, kit.Invalidf("no robot in the warehouse")
	}
	for _, d := range moves {
		if push(g, pos, d) {
			pos = pos.Add(d)
		}
	}
	return g, nil
}

func warehouseGPS(input string, wide bool) (int, error) {
	g, moves, err := parseWarehouse(input)
	if err != nil {
		return 0, err
	}
	if wide {
		g = widen(g)
	}
	g, err = runRobot(g, moves)
	if err != nil {
		return 0, err
	}
	return gpsSum(g), nil
}

func day15Part1(input string) (int, error) { return warehouseGPS(input, false) }
func day15Part2(input string) (int, error) { return warehouseGPS(input, true) }

