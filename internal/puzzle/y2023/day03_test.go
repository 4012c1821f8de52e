package y2023

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

var day03Example = heredoc.Doc(`
	467..114..
	...*......
	..35..633.
	......#...
	617*......
	.....+.58.
	..592.....
	......755.
	...$.*....
	.664.598..
`)

func TestSchematicNumbers(t *testing.T) {
	g, err := kit.ByteGrid(day03Example)
	require.NoError(t, err)

	var values []int
	for _, n := range schematicNumbers(g) {
		values = append(values, n.value)
	}
	assert.Equal(t, []int{467, 114, 35, 633, 617, 58, 592, 755, 664, 598}, values)
}

func TestDay03(t *testing.T) {
	got, err := day03Part1(day03Example)
	require.NoError(t, err)
	assert.Equal(t, 4361, got)

	got, err = day03Part2(day03Example)
	require.NoError(t, err)
	assert.Equal(t, 467835, got)
}

func TestDay03_NumberAtRowEnd(t *testing.T) {
	got, err := day03Part1("..*\n987\n")
	require.NoError(t, err)
	assert.Equal(t, 987, got)
}
