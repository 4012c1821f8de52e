package y2024

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day10Example = heredoc.Doc(`
	89010123
	78121874
	87430965
	96549874
	45678903
	32019012
	01329801
	10456732
`)

func TestDay10(t *testing.T) {
	got, err := day10Part1(day10Example)
	require.NoError(t, err)
	assert.Equal(t, 36, got)

	got, err = day10Part2(day10Example)
	require.NoError(t, err)
	assert.Equal(t, 81, got)
}

func TestDay10_ImpassableTiles(t *testing.T) {
	input := heredoc.Doc(`
		...0...
		...1...
		...2...
		6543456
		7.....7
		8.....8
		9.....9
	`)
	got, err := day10Part1(input)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
