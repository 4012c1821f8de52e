package kit

import (
	"iter"
	"strings"
)

// Grid is a dense rectangular grid indexed by Point.
type Grid[T any] struct {
	W, H  int
	cells []T
}

func NewGrid[T any](w, h int) *Grid[T] {
	return &Grid[T]{W: w, H: h, cells: make([]T, w*h)}
}

// ParseGrid builds a grid from lines of text; every line must be as wide as
// the first one.
func ParseGrid[T any](input string, cell func(r rune) (T, error)) (*Grid[T], error) {
	lines := Lines(input)
	if len(lines) == 0 {
		return nil, Invalidf("empty grid")
	}
	w := len([]rune(lines[0]))
	g := NewGrid[T](w, len(lines))
	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != w {
			return nil, Invalidf("grid row %d has width %d, want %d", y, len(runes), w)
		}
		for x, r := range runes {
			v, err := cell(r)
			if err != nil {
				return nil, err
			}
			g.cells[y*w+x] = v
		}
	}
	return g, nil
}

// ByteGrid parses a grid of ASCII characters.
func ByteGrid(input string) (*Grid[byte], error) {
	return ParseGrid(input, func(r rune) (byte, error) {
		if r > 127 {
			return 0, Invalidf("non-ASCII cell %q", r)
		}
		return byte(r), nil
	})
}

// DigitGrid parses a grid of decimal digits.
func DigitGrid(input string) (*Grid[int], error) {
	return ParseGrid(input, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, Invalidf("not a digit %q", r)
		}
		return int(r - '0'), nil
	})
}

func (g *Grid[T]) In(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

// At returns the cell at p. p must be inside the grid.
func (g *Grid[T]) At(p Point) T {
	return g.cells[p.Y*g.W+p.X]
}

// Get returns the cell at p and whether p is inside the grid.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g.At(p), true
}

func (g *Grid[T]) Set(p Point, v T) {
	g.cells[p.Y*g.W+p.X] = v
}

func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{W: g.W, H: g.H, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Points yields every coordinate in row-major order.
func (g *Grid[T]) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

// FindFunc returns the first point (row-major) whose cell satisfies pred.
func (g *Grid[T]) FindFunc(pred func(T) bool) (Point, bool) {
	for p := range g.Points() {
		if pred(g.At(p)) {
			return p, true
		}
	}
	return Point{}, false
}

// Find returns the first point holding v.
func Find[T comparable](g *Grid[T], v T) (Point, bool) {
	return g.FindFunc(func(c T) bool { return c == v })
}

// Render draws a byte grid back into text, one row per line.
func Render(g *Grid[byte]) string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		b.Write(g.cells[y*g.W : (y+1)*g.W])
		if y < g.H-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
