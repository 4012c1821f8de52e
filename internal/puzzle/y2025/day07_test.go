package y2025

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day07Example = heredoc.Doc(`
	.......S.......
	...............
	.......^.......
	...............
	......^.^......
	...............
	.....^.^.^.....
	...............
	....^.^...^....
	...............
	...^.^...^.^...
	...............
	..^...^.....^..
	...............
	.^.^.^.^.^...^.
	...............
`)

func TestDay07(t *testing.T) {
	got, err := day07Part1(day07Example)
	require.NoError(t, err)
	assert.Equal(t, 21, got)

	got, err = day07Part2(day07Example)
	require.NoError(t, err)
	assert.Equal(t, 40, got)
}

func TestTachyonBeams_MergingBeams(t *testing.T) {
	splits, timelines, err := tachyonBeams("..S..\n..^..\n.^.^.\n")
	require.NoError(t, err)
	assert.Equal(t, 3, splits)
	assert.Equal(t, 4, timelines)
}
