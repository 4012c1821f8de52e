// Package y2024 solves Advent of Code 2024, days 1 to 16.
package y2024

import "github.com/mawkler/advent-of-code/internal/puzzle"

const year = 2024

func Solutions() []puzzle.Solution {
	return []puzzle.Solution{
		{Year: year, Day: 1, Title: "Historian Hysteria", Part1: puzzle.Int(day01Part1), Part2: puzzle.Int(day01Part2)},
		{Year: year, Day: 2, Title: "Red-Nosed Reports", Part1: puzzle.Int(day02Part1), Part2: puzzle.Int(day02Part2)},
		{Year: year, Day: 3, Title: "Mull It Over", Part1: puzzle.Int(day03Part1), Part2: puzzle.Int(day03Part2)},
		{Year: year, Day: 4, Title: "Ceres Search", Part1: puzzle.Int(day04Part1), Part2: puzzle.Int(day04Part2)},
		{Year: year, Day: 5, Title: "Print Queue", Part1: puzzle.Int(day05Part1), Part2: puzzle.Int(day05Part2)},
		{Year: year, Day: 6, Title: "Guard Gallivant", Part1: puzzle.Int(day06Part1), Part2: puzzle.Int(day06Part2)},
		{Year: year, Day: 7, Title: "Bridge Repair", Part1: puzzle.Int(day07Part1), Part2: puzzle.Int(day07Part2)},
		{Year: year, Day: 8, Title: "Resonant Collinearity", Part1: puzzle.Int(day08Part1), Part2: puzzle.Int(day08Part2)},
		{Year: year, Day: 9, Title: "Disk Fragmenter", Part1: puzzle.Int(day09Part1), Part2: puzzle.Int(day09Part2)},
		{Year: year, Day: 10, Title: "Hoof It", Part1: puzzle.Int(day10Part1), Part2: puzzle.Int(day10Part2)},
		{Year: year, Day: 11, Title: "Plutonian Pebbles", Part1: puzzle.Int(day11Part1), Part2: puzzle.Int(day11Part2)},
		{Year: year, Day: 12, Title: "Garden Groups", Part1: puzzle.Int(day12Part1), Part2: puzzle.Int(day12Part2)},
		{Year: year, Day: 13, Title: "Claw Contraption", Part1: puzzle.Int(day13Part1), Part2: puzzle.Int(day13Part2)},
		{Year: year, Day: 14, Title: "Restroom Redoubt", Part1: puzzle.Int(day14Part1), Part2: puzzle.Int(day14Part2)},
		{Year: year, Day: 15, Title: "Warehouse Woes", Part1: puzzle.Int(day15Part1), Part2: puzzle.Int(day15Part2)},
		{Year: year, Day: 16, Title: "Reindeer Maze", Part1: puzzle.Int(day16Part1), Part2: puzzle.Int(day16Part2)},
	}
}
