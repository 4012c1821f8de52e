package y2025

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day05Example = heredoc.Doc(`
	3-5
	10-14
	16-20
	12-18

	1
	5
	8
	11
	17
	32
`)

func TestMergeRanges(t *testing.T) {
	got := mergeRanges([]idRange{{3, 5}, {10, 14}, {16, 20}, {12, 18}, {6, 6}})
	assert.Equal(t, []idRange{{3, 6}, {10, 20}}, got)
}

func TestDay05(t *testing.T) {
	got, err := day05Part1(day05Example)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = day05Part2(day05Example)
	require.NoError(t, err)
	assert.Equal(t, 14, got)
}
