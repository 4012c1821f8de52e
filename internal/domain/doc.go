// Package domain contains the core model of the aoc workspace tool.
//
// The domain knows nothing about YAML, HTTP, or the filesystem. Infra adapters
// map into and out of these types, and the puzzle packages only depend on
// PuzzleKey and SolveFunc.
package domain
