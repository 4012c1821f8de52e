package y2025

import (
	"cmp"
	"slices"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

const junctionLinks = 1000

type junction = kit.Pt3[int]

type junctionPair struct {
	a, b   int
	distSq int
}

func parseJunctions(input string) ([]junction, error) {
	var out []junction
	for i, line := range kit.Lines(input) {
		nums, err := kit.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(nums) != 3 {
			return nil, kit.Invalidf("line %d: want X,Y,Z, got %q", i+1, line)
		}
		out = append(out, junction{X: nums[0], Y: nums[1], Z: nums[2]})
	}
	if len(out) < 2 {
		return nil, kit.Invalidf("need at least two junction boxes")
	}
	return out, nil
}

// closestPairs lists every pair of boxes, nearest first.
func closestPairs(boxes []junction) []junctionPair {
	pairs := make([]junctionPair, 0, len(boxes)*(len(boxes)-1)/2)
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			pairs = append(pairs, junctionPair{i, j, boxes[i].DistSq(boxes[j])})
		}
	}
	slices.SortStableFunc(pairs, func(x, y junctionPair) int { return cmp.Compare(x.distSq, y.distSq) })
	return pairs
}

// circuits is a union-find over box indices.
type circuits struct {
	parent []int
	size   []int
	count  int
}

func newCircuits(n int) *circuits {
	c := &circuits{parent: make([]int, n), size: make([]int, n), count: n}
	for i := range c.parent {
		c.parent[i] = i
		c.size[i] = 1
	}
	return c
}

func (c *circuits) find(i int) int {
	for c.parent[i] != i {
		c.parent[i] = c.parent[c.parent[i]]
		i = c.parent[i]
	}
	return i
}

// join reports whether a and b were in different circuits.
func (c *circuits) join(a, b int) bool {
	ra, rb := c.find(a), c.find(b)
	if ra == rb {
		return false
	}
	if c.size[ra] < c.size[rb] {
		ra, rb = rb, ra
	}
	c.parent[rb] = ra
	c.size[ra] += c.size[rb]
	c.count--
	return true
}

// largestCircuits connects the given number of closest pairs, even pairs
// already in one circuit, and multiplies the three largest circuit sizes.
func largestCircuits(boxes []junction, links int) int {
	c := newCircuits(len(boxes))
	pairs := closestPairs(boxes)
	for _, p := range pairs[:min(links, len(pairs))] {
		c.join(p.a, p.b)
	}
	var sizes []int
	for i := range boxes {
		if c.find(i) == i {
			sizes = append(sizes, c.size[i])
		}
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return kit.Product(sizes[:min(3, len(sizes))])
}

// lastLink connects closest pairs until every box is in one circuit and
// returns the pair that completed it.
func lastLink(boxes []junction) (junction, junction) {
	c := newCircuits(len(boxes))
	for _, p := range closestPairs(boxes) {
		if c.join(p.a, p.b) && c.count == 1 {
			return boxes[p.a], boxes[p.b]
		}
	}
	return boxes[0], boxes[0]
}

func day08Part1(input string) (int, error) {
	boxes, err := parseJunctions(input)
	if err != nil {
		return 0, err
	}
	return largestCircuits(boxes, junctionLinks), nil
}

func day08Part2(input string) (int, error) {
	boxes, err := parseJunctions(input)
	if err != nil {
		return 0, err
	}
	a, b := lastLink(boxes)
	return a.X * b.X, nil
}
