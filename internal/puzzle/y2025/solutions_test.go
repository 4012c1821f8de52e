package y2025

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/puzzle"
)

func TestSolutions_Register(t *testing.T) {
	r, err := puzzle.NewRegistry(Solutions()...)
	require.NoError(t, err)
	require.Len(t, r.List(), 9)
	assert.Equal(t, domain.PuzzleKey{Year: 2025, Day: 9}, r.List()[8].Key)
}

func TestSolutions_MalformedInput(t *testing.T) {
	for _, s := range Solutions() {
		for _, p := range domain.Parts {
			_, err := s.Solve(p, "?!\n")
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "%s %s", s.Key(), p)
		}
	}
}
