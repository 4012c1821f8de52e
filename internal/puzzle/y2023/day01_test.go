package y2023

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay01Part1(t *testing.T) {
	got, err := day01Part1(heredoc.Doc(`
		1abc2
		pqr3stu8vwx
		a1b2c3d4e5f
		treb7uchet
	`))
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestDay01Part2(t *testing.T) {
	got, err := day01Part2(heredoc.Doc(`
		two1nine
		eightwothree
		abcone2threexyz
		xtwone3four
		4nineeightseven2
		zoneight234
		7pqrstsixteen
	`))
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestDay01_OverlappingWords(t *testing.T) {
	got, err := day01Part2("oneight\n")
	require.NoError(t, err)
	assert.Equal(t, 18, got)
}
