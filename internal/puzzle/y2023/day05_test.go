package y2023

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day05Example = heredoc.Doc(`
	seeds: 79 14 55 13

	seed-to-soil map:
	50 98 2
	52 50 48

	soil-to-fertilizer map:
	0 15 37
	37 52 2
	39 0 15

	fertilizer-to-water map:
	49 53 8
	0 11 42
	42 0 7
	57 7 4

	water-to-light map:
	88 18 7
	18 25 70

	light-to-temperature map:
	45 77 23
	81 45 19
	68 64 13

	temperature-to-humidity map:
	0 69 1
	1 0 69

	humidity-to-location map:
	60 56 37
	56 93 4
`)

func TestParseAlmanac(t *testing.T) {
	a, err := parseAlmanac(day05Example)
	require.NoError(t, err)
	assert.Equal(t, []int{79, 14, 55, 13}, a.seeds)
	require.Len(t, a.maps, 7)
	assert.Equal(t, "seed", a.maps[0].from)
	assert.Equal(t, "location", a.maps[6].to)
	assert.Equal(t, []mapRange{{50, 98, 2}, {52, 50, 48}}, a.maps[0].ranges)
}

func TestRangeMapApply(t *testing.T) {
	a, err := parseAlmanac(day05Example)
	require.NoError(t, err)

	soil := a.maps[0]
	for in, want := range map[int]int{0: 0, 49: 49, 50: 52, 51: 53, 98: 50, 99: 51, 100: 100} {
		assert.Equal(t, want, soil.apply(in), "seed %d", in)
	}
}

func TestRangeMapApplySpans(t *testing.T) {
	m := rangeMap{ranges: []mapRange{{dst: 100, src: 10, length: 5}}}
	got := m.applySpans([]span{{5, 20}})
	assert.ElementsMatch(t, []span{{100, 105}, {5, 10}, {15, 20}}, got)
}

func TestDay05(t *testing.T) {
	got, err := day05Part1(day05Example)
	require.NoError(t, err)
	assert.Equal(t, 35, got)

	got, err = day05Part2(day05Example)
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}
