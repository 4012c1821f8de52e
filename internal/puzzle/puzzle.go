// Package puzzle holds the Solution type shared by every year package and the
// Registry that exposes them to the rest of the tool.
package puzzle

import (
	"fmt"
	"strconv"

	"github.com/mawkler/advent-of-code/internal/domain"
)

// Solution is one day with its two parts.
type Solution struct {
	Year  int
	Day   int
	Title string
	Part1 domain.SolveFunc
	Part2 domain.SolveFunc
}

func (s Solution) Key() domain.PuzzleKey {
	return domain.PuzzleKey{Year: s.Year, Day: s.Day}
}

func (s Solution) Solver(p domain.Part) domain.SolveFunc {
	switch p {
	case domain.Part1:
		return s.Part1
	case domain.Part2:
		return s.Part2
	default:
		return nil
	}
}

// Int adapts a solver producing an integer answer.
func Int(f func(input string) (int, error)) domain.SolveFunc {
	return func(input string) (string, error) {
		v, err := f(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	}
}

// Text adapts a solver producing a string answer.
func Text(f func(input string) (string, error)) domain.SolveFunc {
	return domain.SolveFunc(f)
}

// Solve runs one part of s. Missing parts are reported as errors so a
// half-registered day cannot silently pass.
func (s Solution) Solve(p domain.Part, input string) (string, error) {
	f := s.Solver(p)
	if f == nil {
		return "", fmt.Errorf("%s %s: not implemented", s.Key(), p)
	}
	return f(input)
}
