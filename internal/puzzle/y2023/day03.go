package y2023

import (
	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

type partNumber struct {
	value  int
	row    int
	x0, x1 int // inclusive columns
}

// adjacentTo reports whether n touches p, diagonals included.
func (n partNumber) adjacentTo(p kit.Point) bool {
	return p.Y >= n.row-1 && p.Y <= n.row+1 && p.X >= n.x0-1 && p.X <= n.x1+1
}

func (n partNumber) touchesSymbol(g *kit.Grid[byte]) bool {
	for y := n.row - 1; y <= n.row+1; y++ {
		for x := n.x0 - 1; x <= n.x1+1; x++ {
			if c, ok := g.Get(kit.P(x, y)); ok && isSymbol(c) {
				return true
			}
		}
	}
	return false
}

func isSymbol(c byte) bool {
	_, digit := kit.Digit(c)
	return !digit && c != '.'
}

// schematicNumbers finds every number in the engine schematic.
func schematicNumbers(g *kit.Grid[byte]) []partNumber {
	var nums []partNumber
	for y := range g.H {
		for x := 0; x < g.W; x++ {
			d, ok := kit.Digit(g.At(kit.P(x, y)))
			if !ok {
				continue
			}
			n := partNumber{value: d, row: y, x0: x, x1: x}
			for x+1 < g.W {
				d, ok := kit.Digit(g.At(kit.P(x+1, y)))
				if !ok {
					break
				}
				n.value = n.value*10 + d
				x++
				n.x1 = x
			}
			nums = append(nums, n)
		}
	}
	return nums
}

func day03Part1(input string) (int, error) {
	g, err := kit.ByteGrid(input)
	if err != nil {
		return 0, err
	}
	nums := schematicNumbers(g)
	if len(nums) == 0 {
		return 0, kit.Invalidf("schematic has no numbers")
	}
	sum := 0
	for _, n := range nums {
		if n.touchesSymbol(g) {
			sum += n.value
		}
	}
	return sum, nil
}

// A gear is a '*' adjacent to exactly two part numbers.
func day03Part2(input string) (int, error) {
	g, err := kit.ByteGrid(input)
	if err != nil {
		return 0, err
	}
	nums := schematicNumbers(g)
	if len(nums) == 0 {
		return 0, kit.Invalidf("schematic has no numbers")
	}
	sum := 0
	for p := range g.Points() {
		if g.At(p) != '*' {
			continue
		}
		var adjacent []int
		for _, n := range nums {
			if n.adjacentTo(p) {
				adjacent = append(adjacent, n.value)
			}
		}
		if len(adjacent) == 2 {
			sum += adjacent[0] * adjacent[1]
		}
	}
	return sum, nil
}
