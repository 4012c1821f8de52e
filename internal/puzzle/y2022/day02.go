package y2022

import (
	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

type shape int

const (
	rock shape = iota
	paper
	scissors
)

func (s shape) score() int { return int(s) + 1 }

// beats returns the shape that s defeats.
func (s shape) beats() shape { return (s + 2) % 3 }

// losesTo returns the shape that defeats s.
func (s shape) losesTo() shape { return (s + 1) % 3 }

func outcome(me, them shape) int {
	switch {
	case me == them:
		return 3
	case me.beats() == them:
		return 6
	default:
		return 0
	}
}

// strategyRounds parses "A Y" lines into (opponent, column) pairs of indices 0..2.
func strategyRounds(input string) ([][2]int, error) {
	var rounds [][2]int
	for i, line := range kit.Lines(input) {
		if len(line) != 3 || line[1] != ' ' ||
			line[0] < 'A' || line[0] > 'C' || line[2] < 'X' || line[2] > 'Z' {
			return nil, kit.Invalidf("line %d: %q", i+1, line)
		}
		rounds = append(rounds, [2]int{int(line[0] - 'A'), int(line[2] - 'X')})
	}
	return rounds, nil
}

func day02Part1(input string) (int, error) {
	rounds, err := strategyRounds(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range rounds {
		them, me := shape(r[0]), shape(r[1])
		total += me.score() + outcome(me, them)
	}
	return total, nil
}

// In part two the second column is the desired result: X lose, Y draw, Z win.
func day02Part2(input string) (int, error) {
	rounds, err := strategyRounds(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range rounds {
		them := shape(r[0])
		var me shape
		switch r[1] {
		case 0:
			me = them.beats()
		case 1:
			me = them
		default:
			me = them.losesTo()
		}
		total += me.score() + outcome(me, them)
	}
	return total, nil
}
