package y2024

import (
	"slices"
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

type printQueue struct {
	before  map[[2]int]bool // before[{a, b}] means a must print before b
	updates [][]int
}

func parsePrintQueue(input string) (printQueue, error) {
	blocks := kit.Blocks(input)
	if len(blocks) != 2 {
		return printQueue{}, kit.Invalidf("want rules and updates separated by a blank line")
	}
	q := printQueue{before: map[[2]int]bool{}}
	for _, line := range strings.Split(blocks[0], "\n") {
		a, b, ok := strings.Cut(line, "|")
		if !ok {
			return printQueue{}, kit.Invalidf("bad rule %q", line)
		}
		x, err := kit.Atoi(a)
		if err != nil {
			return printQueue{}, err
		}
		y, err := kit.Atoi(b)
		if err != nil {
			return printQueue{}, err
		}
		q.before[[2]int{x, y}] = true
	}
	for _, line := range strings.Split(blocks[1], "\n") {
		pages, err := kit.Ints(line)
		if err != nil {
			return printQueue{}, err
		}
		if len(pages)%2 == 0 {
			return printQueue{}, kit.Invalidf("update %q has no middle page", line)
		}
		q.updates = append(q.updates, pages)
	}
	return q, nil
}

func (q printQueue) compare(a, b int) int {
	switch {
	case q.before[[2]int{a, b}]:
		return -1
	case q.before[[2]int{b, a}]:
		return 1
	default:
		return 0
	}
}

func (q printQueue) middleSum(reordered bool) int {
	sum := 0
	for _, u := range q.updates {
		ordered := slices.IsSortedFunc(u, q.compare)
		if ordered == reordered {
			continue
		}
		if reordered {
			u = slices.Clone(u)
			slices.SortFunc(u, q.compare)
		}
		sum += u[len(u)/2]
	}
	return sum
}

func day05Part1(input string) (int, error) {
	q, err := parsePrintQueue(input)
	if err != nil {
		return 0, err
	}
	return q.middleSum(false), nil
}

func day05Part2(input string) (int, error) {
	q, err := parsePrintQueue(input)
	if err != nil {
		return 0, err
	}
	return q.middleSum(true), nil
}
