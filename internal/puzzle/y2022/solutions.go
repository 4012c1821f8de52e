// Package y2022 solves Advent of Code 2022, days 1 to 10.
package y2022

import "github.com/mawkler/advent-of-code/internal/puzzle"

const year = 2022

func Solutions() []puzzle.Solution {
	return []puzzle.Solution{
		{Year: year, Day: 1, Title: "Calorie Counting", Part1: puzzle.Int(day01Part1), Part2: puzzle.Int(day01Part2)},
		{Year: year, Day: 2, Title: "Rock Paper Scissors", Part1: puzzle.Int(day02Part1), Part2: puzzle.Int(day02Part2)},
		{Year: year, Day: 3, Title: "Rucksack Reorganization", Part1: puzzle.Int(day03Part1), Part2: puzzle.Int(day03Part2)},
		{Year: year, Day: 4, Title: "Camp Cleanup", Part1: puzzle.Int(day04Part1), Part2: puzzle.Int(day04Part2)},
		{Year: year, Day: 5, Title: "Supply Stacks", Part1: puzzle.Text(day05Part1), Part2: puzzle.Text(day05Part2)},
		{Year: year, Day: 6, Title: "Tuning Trouble", Part1: puzzle.Int(day06Part1), Part2: puzzle.Int(day06Part2)},
		{Year: year, Day: 7, Title: "No Space Left On Device", Part1: puzzle.Int(day07Part1), Part2: puzzle.Int(day07Part2)},
		{Year: year, Day: 8, Title: "Treetop Tree House", Part1: puzzle.Int(day08Part1), Part2: puzzle.Int(day08Part2)},
		{Year: year, Day: 9, Title: "Rope Bridge", Part1: puzzle.Int(day09Part1), Part2: puzzle.Int(day09Part2)},
		{Year: year, Day: 10, Title: "Cathode-Ray Tube", Part1: puzzle.Int(day10Part1), Part2: puzzle.Text(day10Part2)},
	}
}
