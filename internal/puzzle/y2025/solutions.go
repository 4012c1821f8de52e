// Package y2025 solves Advent of Code 2025, days 1 to 9.
package y2025

import "github.com/mawkler/advent-of-code/internal/puzzle"

const year = 2025

func Solutions() []puzzle.Solution {
	return []puzzle.Solution{
		{Year: year, Day: 1, Title: "Secret Entrance", Part1: puzzle.Int(day01Part1), Part2: puzzle.Int(day01Part2)},
		{Year: year, Day: 2, Title: "Gift Shop", Part1: puzzle.Int(day02Part1), Part2: puzzle.Int(day02Part2)},
		{Year: year, Day: 3, Title: "Lobby", Part1: puzzle.Int(day03Part1), Part2: puzzle.Int(day03Part2)},
		{Year: year, Day: 4, Title: "Printing Department", Part1: puzzle.Int(day04Part1), Part2: puzzle.Int(day04Part2)},
		{Year: year, Day: 5, Title: "Cafeteria", Part1: puzzle.Int(day05Part1), Part2: puzzle.Int(day05Part2)},
		{Year: year, Day: 6, Title: "Trash Compactor", Part1: puzzle.Int(day06Part1), Part2: puzzle.Int(day06Part2)},
		{Year: year, Day: 7, Title: "Laboratories", Part1: puzzle.Int(day07Part1), Part2: puzzle.Int(day07Part2)},
		{Year: year, Day: 8, Title: "Playground", Part1: puzzle.Int(day08Part1), Part2: puzzle.Int(day08Part2)},
		{Year: year, Day: 9, Title: "Movie Theater", Part1: puzzle.Int(day09Part1), Part2: puzzle.Int(day09Part2)},
	}
}
