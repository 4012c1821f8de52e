package y2024

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

const prizeOffset = 10_000_000_000_000

type clawMachine struct {
	a, b, prize kit.Point
}

func parseClawMachines(input string) ([]clawMachine, error) {
	var machines []clawMachine
	for i, block := range kit.Blocks(input) {
		nums, err := kit.Ints(block)
		if err != nil {
			return nil, err
		}
		if len(nums) != 6 || strings.Count(block, "\n") != 2 {
			return nil, kit.Invalidf("machine %d: want two buttons and a prize", i+1)
		}
		machines = append(machines, clawMachine{
			a:     kit.P(nums[0], nums[1]),
			b:     kit.P(nums[2], nums[3]),
			prize: kit.P(nums[4], nums[5]),
		})
	}
	return machines, nil
}

// presses solves a*A + b*B = prize with Cramer's rule. Machines whose
// buttons are parallel, or whose solution is fractional or negative, cannot
// win the prize.
func (m clawMachine) presses() (a, b int, ok bool) {
	det := m.a.X*m.b.Y - m.a.Y*m.b.X
	if det == 0 {
		return 0, 0, false
	}
	an := m.prize.X*m.b.Y - m.prize.Y*m.b.X
	bn := m.a.X*m.prize.Y - m.a.Y*m.prize.X
	if an%det != 0 || bn%det != 0 {
		return 0, 0, false
	}
	a, b = an/det, bn/det
	if a < 0 || b < 0 {
		return 0, 0, false
	}
	return a, b, true
}

func fewestTokens(input string, offset, limit int) (int, error) {
	machines, err := parseClawMachines(input)
	if err != nil {
		return 0, err
	}
	tokens := 0
	for _, m := range machines {
		m.prize = m.prize.Add(kit.P(offset, offset))
		a, b, ok := m.presses()
		if !ok || (limit > 0 && (a > limit || b > limit)) {
			continue
		}
		tokens += 3*a + b
	}
	return tokens, nil
}

// Each button may be pressed at most 100 times in part one.
func day13Part1(input string) (int, error) { return fewestTokens(input, 0, 100) }
func day13Part2(input string) (int, error) { return fewestTokens(input, prizeOffset, 0) }
