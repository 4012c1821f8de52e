package y2022

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

type craneMove struct{ count, from, to int }

// parseCrates reads the drawing above the blank line. Crates sit at columns
// 1, 5, 9, ... and the last drawing line numbers the stacks. Each stack is
// stored bottom first.
func parseCrates(input string) ([][]byte, []craneMove, error) {
	parts := strings.SplitN(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n", 2)
	if len(parts) != 2 {
		return nil, nil, kit.Invalidf("missing blank line between stacks and moves")
	}
	drawing := strings.Split(strings.TrimLeft(parts[0], "\n"), "\n")
	if len(drawing) < 2 {
		return nil, nil, kit.Invalidf("stack drawing too short")
	}
	labels := strings.Fields(drawing[len(drawing)-1])
	stacks := make([][]byte, len(labels))
	for i := len(drawing) - 2; i >= 0; i-- {
		row := drawing[i]
		for s := range stacks {
			col := 1 + 4*s
			if col >= len(row) {
				break
			}
			if c := row[col]; c != ' ' {
				stacks[s] = append(stacks[s], c)
			}
		}
	}

	var moves []craneMove
	for i, line := range kit.Lines(parts[1]) {
		nums, err := kit.Ints(line)
		if err != nil {
			return nil, nil, err
		}
		if len(nums) != 3 {
			return nil, nil, kit.Invalidf("move %d: %q", i+1, line)
		}
		m := craneMove{count: nums[0], from: nums[1] - 1, to: nums[2] - 1}
		if m.from < 0 || m.from >= len(stacks) || m.to < 0 || m.to >= len(stacks) {
			return nil, nil, kit.Invalidf("move %d: unknown stack", i+1)
		}
		moves = append(moves, m)
	}
	return stacks, moves, nil
}

func operateCrane(input string, keepOrder bool) (string, error) {
	stacks, moves, err := parseCrates(input)
	if err != nil {
		return "", err
	}
	for i, m := range moves {
		src := stacks[m.from]
		if m.count > len(src) {
			return "", kit.Invalidf("move %d: stack %d holds only %d crates", i+1, m.from+1, len(src))
		}
		lifted := append([]byte(nil), src[len(src)-m.count:]...)
		stacks[m.from] = src[:len(src)-m.count]
		if !keepOrder {
			for l, r := 0, len(lifted)-1; l < r; l, r = l+1, r-1 {
				lifted[l], lifted[r] = lifted[r], lifted[l]
			}
		}
		stacks[m.to] = append(stacks[m.to], lifted...)
	}
	var top strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			top.WriteByte(s[len(s)-1])
		}
	}
	return top.String(), nil
}

// CrateMover 9000 moves one crate at a time.
func day05Part1(input string) (string, error) { return operateCrane(input, false) }

// CrateMover 9001 moves the whole pile at once.
func day05Part2(input string) (string, error) { return operateCrane(input, true) }
