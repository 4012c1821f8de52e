package y2024

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

type equation struct {
	target  int
	numbers []int
}

func parseEquations(input string) ([]equation, error) {
	var eqs []equation
	for i, line := range kit.Lines(input) {
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, kit.Invalidf("line %d: missing ':'", i+1)
		}
		target, err := kit.Atoi(head)
		if err != nil {
			return nil, err
		}
		nums, err := kit.Fields(tail)
		if err != nil {
			return nil, err
		}
		if len(nums) == 0 {
			return nil, kit.Invalidf("line %d: no operands", i+1)
		}
		eqs = append(eqs, equation{target: target, numbers: nums})
	}
	return eqs, nil
}

// solvable works backwards from the target: the last operand must have been
// added, multiplied or concatenated onto the rest.
func (e equation) solvable(concat bool) bool {
	return reachable(e.target, e.numbers, concat)
}

func reachable(target int, nums []int, concat bool) bool {
	last := nums[len(nums)-1]
	if len(nums) == 1 {
		return target == last
	}
	rest := nums[:len(nums)-1]
	if target >= last && reachable(target-last, rest, concat) {
		return true
	}
	if last != 0 && target%last == 0 && reachable(target/last, rest, concat) {
		return true
	}
	if concat {
		p := kit.Pow10(kit.Digits(last))
		if target > last && target%p == last && reachable(target/p, rest, concat) {
			return true
		}
	}
	return false
}

func calibration(input string, concat bool) (int, error) {
	eqs, err := parseEquations(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, e := range eqs {
		if e.solvable(concat) {
			total += e.target
		}
	}
	return total, nil
}

func day07Part1(input string) (int, error) { return calibration(input, false) }
func day07Part2(input string) (int, error) { return calibration(input, true) }
