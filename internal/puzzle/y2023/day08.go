package y2023

import (
	"regexp"
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

var nodeRe = regexp.MustCompile(`^(\w{3}) = \((\w{3}), (\w{3})\)$`)

type wasteland struct {
	turns string
	nodes map[string][2]string
}

func parseWasteland(input string) (wasteland, error) {
	blocks := kit.Blocks(input)
	if len(blocks) != 2 {
		return wasteland{}, kit.Invalidf("want instructions and a network")
	}
	w := wasteland{turns: strings.TrimSpace(blocks[0]), nodes: map[string][2]string{}}
	if strings.Trim(w.turns, "LR") != "" || w.turns == "" {
		return wasteland{}, kit.Invalidf("bad instructions %q", w.turns)
	}
	for _, line := range strings.Split(blocks[1], "\n") {
		m := nodeRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return wasteland{}, kit.Invalidf("bad node %q", line)
		}
		w.nodes[m[1]] = [2]string{m[2], m[3]}
	}
	return w, nil
}

// walk counts steps from start until done reports true.
func (w wasteland) walk(start string, done func(string) bool) (int, error) {
	cur := start
	limit := len(w.turns) * (len(w.nodes) + 1)
	for steps := 0; steps <= limit; steps++ {
		if done(cur) && steps > 0 {
			return steps, nil
		}
		next, ok := w.nodes[cur]
		if !ok {
			return 0, kit.Invalidf("unknown node %q", cur)
		}
		if w.turns[steps%len(w.turns)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
	}
	return 0, kit.Invalidf("no exit reachable from %q", start)
}

func day08Part1(input string) (int, error) {
	w, err := parseWasteland(input)
	if err != nil {
		return 0, err
	}
	return w.walk("AAA", func(n string) bool { return n == "ZZZ" })
}

// Ghosts start on every node ending in A. Each ghost's path is a cycle whose
// first Z arrives after a full cycle length, so they meet at the LCM.
func day08Part2(input string) (int, error) {
	w, err := parseWasteland(input)
	if err != nil {
		return 0, err
	}
	result := 0
	for node := range w.nodes {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		steps, err := w.walk(node, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return 0, err
		}
		if result == 0 {
			result = steps
		} else {
			result = kit.LCM(result, steps)
		}
	}
	if result == 0 {
		return 0, kit.Invalidf("no starting nodes")
	}
	return result, nil
}
