package y2022

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay04(t *testing.T) {
	input := heredoc.Doc(`
		2-4,6-8
		2-3,4-5
		5-7,7-9
		2-8,3-7
		6-6,4-6
		2-6,4-8
	`)

	got, err := day04Part1(input)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = day04Part2(input)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}
