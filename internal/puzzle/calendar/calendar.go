// Package calendar assembles every solved year into one registry.
package calendar

import (
	"github.com/mawkler/advent-of-code/internal/puzzle"
	"github.com/mawkler/advent-of-code/internal/puzzle/y2022"
	"github.com/mawkler/advent-of-code/internal/puzzle/y2023"
	"github.com/mawkler/advent-of-code/internal/puzzle/y2024"
	"github.com/mawkler/advent-of-code/internal/puzzle/y2025"
)

// Solutions returns the solutions of every year, oldest first.
func Solutions() []puzzle.Solution {
	var all []puzzle.Solution
	for _, year := range [][]puzzle.Solution{
		y2022.Solutions(),
		y2023.Solutions(),
		y2024.Solutions(),
		y2025.Solutions(),
	} {
		all = append(all, year...)
	}
	return all
}

// Default builds the registry of all solutions. A registration error is a
// programming mistake, so it panics.
func Default() *puzzle.Registry {
	return mustRegistry(Solutions()...)
}

func mustRegistry(solutions ...puzzle.Solution) *puzzle.Registry {
	r, err := puzzle.NewRegistry(solutions...)
	if err != nil {
		panic(err)
	}
	return r
}
