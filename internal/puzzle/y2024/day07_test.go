package y2024

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day07Example = heredoc.Doc(`
	190: 10 19
	3267: 81 40 27
	83: 17 5
	156: 15 6
	7290: 6 8 6 15
	161011: 16 10 13
	192: 17 8 14
	21037: 9 7 18 13
	292: 11 6 16 20
`)

func TestDay07(t *testing.T) {
	got, err := day07Part1(day07Example)
	require.NoError(t, err)
	assert.Equal(t, 3749, got)

	got, err = day07Part2(day07Example)
	require.NoError(t, err)
	assert.Equal(t, 11387, got)
}

func TestEquationSolvable(t *testing.T) {
	assert.True(t, equation{156, []int{15, 6}}.solvable(true))
	assert.False(t, equation{156, []int{15, 6}}.solvable(false))
	assert.True(t, equation{7290, []int{6, 8, 6, 15}}.solvable(true))
	assert.False(t, equation{83, []int{17, 5}}.solvable(true))
}
