package y2023

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day09Example = heredoc.Doc(`
	0 3 6 9 12 15
	1 3 6 10 15 21
	10 13 16 21 30 45
`)

func TestExtrapolate(t *testing.T) {
	assert.Equal(t, 18, extrapolate([]int{0, 3, 6, 9, 12, 15}))
	assert.Equal(t, 68, extrapolate([]int{10, 13, 16, 21, 30, 45}))
	assert.Equal(t, 7, extrapolate([]int{7}))
}

func TestDay09(t *testing.T) {
	got, err := day09Part1(day09Example)
	require.NoError(t, err)
	assert.Equal(t, 114, got)

	got, err = day09Part2(day09Example)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
