package y2023

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day07Example = heredoc.Doc(`
	32T3K 765
	T55J5 684
	KK677 28
	KTJJT 220
	QQQJA 483
`)

func TestClassify(t *testing.T) {
	cases := []struct {
		hand   string
		jokers bool
		want   handType
	}{
		{"AAAAA", false, fiveOfAKind},
		{"AA8AA", false, fourOfAKind},
		{"23332", false, fullHouse},
		{"TTT98", false, threeOfAKind},
		{"23432", false, twoPair},
		{"A23A4", false, onePair},
		{"23456", false, highCard},
		{"JJJJJ", true, fiveOfAKind},
		{"KJJJJ", true, fiveOfAKind},
		{"T55J5", true, fourOfAKind},
		{"KTJJT", true, fourOfAKind},
		{"2J299", true, fullHouse},
		{"47TJ4", true, threeOfAKind},
		{"J9285", true, onePair},
		{"KTJJT", false, twoPair},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classify(tc.hand, tc.jokers), "%s jokers=%v", tc.hand, tc.jokers)
	}
}

func TestCompareHands(t *testing.T) {
	// Both two pair; K beats T on the second card.
	assert.Positive(t, compareHands("KK677", "KTJJT", false))
	assert.Negative(t, compareHands("T55J5", "QQQJA", false))
	assert.Positive(t, compareHands("KTJJT", "QQQJA", true))
	// J is the weakest card when wild.
	assert.Negative(t, compareHands("JKKK2", "QQQQ2", true))
}

func TestDay07(t *testing.T) {
	got, err := day07Part1(day07Example)
	require.NoError(t, err)
	assert.Equal(t, 6440, got)

	got, err = day07Part2(day07Example)
	require.NoError(t, err)
	assert.Equal(t, 5905, got)
}
