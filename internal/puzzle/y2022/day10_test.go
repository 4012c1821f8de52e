package y2022

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTrace(t *testing.T) {
	trace, err := registerTrace("noop\naddx 3\naddx -5\n")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 4, 4}, trace[:5])
	// X keeps its final value after the program ends.
	assert.Equal(t, -1, trace[5])
	assert.Equal(t, -1, trace[239])
}

func TestDay10Part1(t *testing.T) {
	got, err := day10Part1(strings.Repeat("addx 1\n", 110))
	require.NoError(t, err)
	assert.Equal(t, 57200, got)
}

func TestDay10Part2(t *testing.T) {
	got, err := day10Part2(strings.Repeat("noop\n", 240))
	require.NoError(t, err)

	rows := strings.Split(got, "\n")
	require.Len(t, rows, crtHeight)
	for _, row := range rows {
		assert.Equal(t, "###"+strings.Repeat(".", 37), row)
	}
}
