// Package y2023 solves Advent of Code 2023, days 1 to 10.
package y2023

import "github.com/mawkler/advent-of-code/internal/puzzle"

const year = 2023

func Solutions() []puzzle.Solution {
	return []puzzle.Solution{
		{Year: year, Day: 1, Title: "Trebuchet?!", Part1: puzzle.Int(day01Part1), Part2: puzzle.Int(day01Part2)},
		{Year: year, Day: 2, Title: "Cube Conundrum", Part1: puzzle.Int(day02Part1), Part2: puzzle.Int(day02Part2)},
		{Year: year, Day: 3, Title: "Gear Ratios", Part1: puzzle.Int(day03Part1), Part2: puzzle.Int(day03Part2)},
		{Year: year, Day: 4, Title: "Scratchcards", Part1: puzzle.Int(day04Part1), Part2: puzzle.Int(day04Part2)},
		{Year: year, Day: 5, Title: "If You Give A Seed A Fertilizer", Part1: puzzle.Int(day05Part1), Part2: puzzle.Int(day05Part2)},
		{Year: year, Day: 6, Title: "Wait For It", Part1: puzzle.Int(day06Part1), Part2: puzzle.Int(day06Part2)},
		{Year: year, Day: 7, Title: "Camel Cards", Part1: puzzle.Int(day07Part1), Part2: puzzle.Int(day07Part2)},
		{Year: year, Day: 8, Title: "Haunted Wasteland", Part1: puzzle.Int(day08Part1), Part2: puzzle.Int(day08Part2)},
		{Year: year, Day: 9, Title: "Mirage Maintenance", Part1: puzzle.Int(day09Part1), Part2: puzzle.Int(day09Part2)},
		{Year: year, Day: 10, Title: "Pipe Maze", Part1: puzzle.Int(day10Part1), Part2: puzzle.Int(day10Part2)},
	}
}
