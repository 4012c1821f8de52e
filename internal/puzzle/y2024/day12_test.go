package y2024

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

func TestGardenRegions(t *testing.T) {
	g, err := kit.ByteGrid("AAAA\nBBCD\nBBCC\nEEEC\n")
	require.NoError(t, err)

	got := map[byte]gardenRegion{}
	for _, r := range gardenRegions(g) {
		got[r.plant] = r
	}
	assert.Equal(t, gardenRegion{plant: 'A', area: 4, perimeter: 10, sides: 4}, got['A'])
	assert.Equal(t, gardenRegion{plant: 'B', area: 4, perimeter: 8, sides: 4}, got['B'])
	assert.Equal(t, gardenRegion{plant: 'C', area: 4, perimeter: 10, sides: 8}, got['C'])
	assert.Equal(t, gardenRegion{plant: 'D', area: 1, perimeter: 4, sides: 4}, got['D'])
}

func TestDay12(t *testing.T) {
	cases := []struct {
		name         string
		input        string
		part1, part2 int
	}{
		{"small", "AAAA\nBBCD\nBBCC\nEEEC\n", 140, 80},
		{"holes", "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO\n", 772, 436},
		{"large", heredoc.Doc(`
			RRRRIICCFF
			RRRRIICCCF
			VVRRRCCFFF
			VVRCCCJFFF
			VVVVCJJCFE
			VVIVCCJJEE
			VVIIICJJEE
			MIIIIIJJEE
			MIIISIJEEE
			MMMISSJEEE
		`), 1930, 1206},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := day12Part1(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.part1, got)

			got, err = day12Part2(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.part2, got)
		})
	}
}

func TestDay12_Sides(t *testing.T) {
	got, err := day12Part2("EEEEE\nEXXXX\nEEEEE\nEXXXX\nEEEEE\n")
	require.NoError(t, err)
	assert.Equal(t, 236, got)

	got, err = day12Part2("AAAAAA\nAAABBA\nAAABBA\nABBAAA\nABBAAA\nAAAAAA\n")
	require.NoError(t, err)
	assert.Equal(t, 368, got)
}
