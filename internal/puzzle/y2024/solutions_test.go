package y2024

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
	require.Len(t, r.List(), 16)

	s, ok := r.Lookup(domain.PuzzleKey{Year: 2024, Day: 12})
	require.True(t, ok)
	assert.Equal(t, "Garden Groups", s.Title)
}

func TestSolutions_MalformedInput(t *testing.T) {
	// Days 3 and 4 scan free text, so any input is well formed for them.
	lenient := map[int]bool{3: true, 4: true}
	for _, s := range Solutions() {
		if lenient[s.Day] {
			continue
		}
		for _, p := range domain.Parts {
			_, err := s.Solve(p, "?!\n")
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "%s %s", s.Key(), p)
		}
	}
}
