package y2022

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay02(t *testing.T) {
	input := "A Y\nB X\nC Z\n"

	got, err := day02Part1(input)
	require.NoError(t, err)
	assert.Equal(t, 15, got)

	got, err = day02Part2(input)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestShapeRelations(t *testing.T) {
	assert.Equal(t, scissors, rock.beats())
	assert.Equal(t, paper, rock.losesTo())
	assert.Equal(t, 6, outcome(scissors, paper))
	assert.Equal(t, 0, outcome(scissors, rock))
}
