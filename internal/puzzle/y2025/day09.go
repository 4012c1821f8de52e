package y2025

import (
	"slices"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

func parseRedTiles(input string) ([]kit.Point, error) {
	var tiles []kit.Point
	for i, line := range kit.Lines(input) {
		nums, err := kit.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(nums) != 2 {
			return nil, kit.Invalidf("line %d: want X,Y, got %q", i+1, line)
		}
		tiles = append(tiles, kit.P(nums[0], nums[1]))
	}
	if len(tiles) < 2 {
		return nil, kit.Invalidf("need at least two red tiles")
	}
	return tiles, nil
}

func rectArea(a, b kit.Point) int {
	return (kit.Abs(a.X-b.X) + 1) * (kit.Abs(a.Y-b.Y) + 1)
}

func day09Part1(input string) (int, error) {
	tiles, err := parseRedTiles(input)
	if err != nil {
		return 0, err
	}
	best := 0
	for i, a := range tiles {
		for _, b := range tiles[i+1:] {
			best = max(best, rectArea(a, b))
		}
	}
	return best, nil
}

// compressed maps each distinct coordinate to a cell index. Coordinates more
// than one apart get a gap cell between them, and there is always a gap cell
// before the first and after the last.
type compressed struct {
	values []int
	pos    []int
}

func compress(vs []int) compressed {
	s := slices.Clone(vs)
	slices.Sort(s)
	s = slices.Compact(s)
	pos := make([]int, len(s))
	at := 1
	for i := range s {
		if i > 0 {
			at++
			if s[i]-s[i-1] > 1 {
				at++
			}
		}
		pos[i] = at
	}
	return compressed{values: s, pos: pos}
}

func (c compressed) index(v int) int {
	i, _ := slices.BinarySearch(c.values, v)
	return c.pos[i]
}

func (c compressed) size() int {
	if len(c.pos) == 0 {
		return 1
	}
	return c.pos[len(c.pos)-1] + 2
}

// theaterFloor marks which compressed cells lie outside the loop of red and
// green tiles and keeps prefix sums of them for rectangle queries.
type theaterFloor struct {
	xs, ys  compressed
	outside [][]int // outside[y+1][x+1] = outside cells in [0..x]x[0..y]
}

func newTheaterFloor(tiles []kit.Point) (*theaterFloor, error) {
	var xv, yv []int
	for _, t := range tiles {
		xv = append(xv, t.X)
		yv = append(yv, t.Y)
	}
	f := &theaterFloor{xs: compress(xv), ys: compress(yv)}
	w, h := f.xs.size(), f.ys.size()
	border := kit.NewGrid[bool](w, h)
	for i, a := range tiles {
		b := tiles[(i+1)%len(tiles)]
		if a.X != b.X && a.Y != b.Y {
			return nil, kit.Invalidf("tiles %s and %s are not in one row or column", a, b)
		}
		pa := kit.P(f.xs.index(a.X), f.ys.index(a.Y))
		pb := kit.P(f.xs.index(b.X), f.ys.index(b.Y))
		for p := pa; ; p = p.Toward(pb) {
			border.Set(p, true)
			if p == pb {
				break
			}
		}
	}

	// Flood the outside from the corner, which is always a gap cell.
	out := kit.NewGrid[bool](w, h)
	out.Set(kit.P(0, 0), true)
	stack := []kit.Point{kit.P(0, 0)}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range p.Neighbors4() {
			if border.In(n) && !border.At(n) && !out.At(n) {
				out.Set(n, true)
				stack = append(stack, n)
			}
		}
	}

	f.outside = make([][]int, h+1)
	f.outside[0] = make([]int, w+1)
	for y := range h {
		row := make([]int, w+1)
		for x := range w {
			v := 0
			if out.At(kit.P(x, y)) {
				v = 1
			}
			row[x+1] = row[x] + f.outside[y][x+1] - f.outside[y][x] + v
		}
		f.outside[y+1] = row
	}
	return f, nil
}

// inside reports whether the rectangle with corners a and b covers only red
// or green tiles.
func (f *theaterFloor) inside(a, b kit.Point) bool {
	x0, x1 := f.xs.index(min(a.X, b.X)), f.xs.index(max(a.X, b.X))
	y0, y1 := f.ys.index(min(a.Y, b.Y)), f.ys.index(max(a.Y, b.Y))
	n := f.outside[y1+1][x1+1] - f.outside[y0][x1+1] - f.outside[y1+1][x0] + f.outside[y0][x0]
	return n == 0
}

func day09Part2(input string) (int, error) {
	tiles, err := parseRedTiles(input)
	if err != nil {
		return 0, err
	}
	floor, err := newTheaterFloor(tiles)
	if err != nil {
		return 0, err
	}
	best := 0
	for i, a := range tiles {
		for _, b := range tiles[i+1:] {
			if area := rectArea(a, b); area > best && floor.inside(a, b) {
				best = area
			}
		}
	}
	return best, nil
}
