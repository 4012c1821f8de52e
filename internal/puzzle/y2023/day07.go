package y2023

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

type camelHand struct {
	cards string
	bid   int
}

// classify ranks the hand. With jokers, every J joins the largest group of
// the other cards.
func classify(cards string, jokers bool) handType {
	counts := map[rune]int{}
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	default:
		return highCard
	}
}

// compareHands orders hands by type and then card by card.
func compareHands(a, b string, jokers bool) int {
	if c := cmp.Compare(classify(a, jokers), classify(b, jokers)); c != 0 {
		return c
	}
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	for i := range len(a) {
		if c := cmp.Compare(strings.IndexByte(order, a[i]), strings.IndexByte(order, b[i])); c != 0 {
			return c
		}
	}
	return 0
}

func parseCamelHands(input string) ([]camelHand, error) {
	var hands []camelHand
	for i, line := range kit.Lines(input) {
		cards, bid, ok := strings.Cut(line, " ")
		if !ok || len(cards) != 5 {
			return nil, kit.Invalidf("line %d: %q", i+1, line)
		}
		for _, c := range cards {
			if !strings.ContainsRune(cardOrder, c) {
				return nil, kit.Invalidf("line %d: unknown card %q", i+1, c)
			}
		}
		n, err := kit.Atoi(bid)
		if err != nil {
			return nil, err
		}
		hands = append(hands, camelHand{cards: cards, bid: n})
	}
	return hands, nil
}

func winnings(input string, jokers bool) (int, error) {
	hands, err := parseCamelHands(input)
	if err != nil {
		return 0, err
	}
	slices.SortFunc(hands, func(a, b camelHand) int { return compareHands(a.cards, b.cards, jokers) })
	total := 0
	for rank, h := range hands {
		total += (rank + 1) * h.bid
	}
	return total, nil
}

func day07Part1(input string) (int, error) { return winnings(input, false) }
func day07Part2(input string) (int, error) { return winnings(input, true) }
