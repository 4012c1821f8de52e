package y2024

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

var day13Example = heredoc.Doc(`
	Button A: X+94, Y+34
	Button B: X+22, Y+67
	Prize: X=8400, Y=5400

	Button A: X+26, Y+66
	Button B: X+67, Y+21
	Prize: X=12748, Y=12176

	Button A: X+17, Y+86
	Button B: X+84, Y+37
	Prize: X=7870, Y=6450

	Button A: X+69, Y+23
	Button B: X+27, Y+71
	Prize: X=18641, Y=10279
`)

func TestClawMachinePresses(t *testing.T) {
	m := clawMachine{a: kit.P(94, 34), b: kit.P(22, 67), prize: kit.P(8400, 5400)}
	a, b, ok := m.presses()
	require.True(t, ok)
	assert.Equal(t, 80, a)
	assert.Equal(t, 40, b)

	m = clawMachine{a: kit.P(26, 66), b: kit.P(67, 21), prize: kit.P(12748, 12176)}
	_, _, ok = m.presses()
	assert.False(t, ok)

	m = clawMachine{a: kit.P(1, 1), b: kit.P(2, 2), prize: kit.P(4, 4)}
	_, _, ok = m.presses()
	assert.False(t, ok, "parallel buttons")
}

func TestDay13(t *testing.T) {
	got, err := day13Part1(day13Example)
	require.NoError(t, err)
	assert.Equal(t, 480, got)

	got, err = day13Part2(day13Example)
	require.NoError(t, err)
	assert.Equal(t, 875318608908, got)
}
