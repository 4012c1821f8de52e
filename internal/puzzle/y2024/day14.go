package y2024

import (
	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

const (
	bathroomWidth  = 101
	bathroomHeight = 103
)

type robot struct{ pos, vel kit.Point }

func parseRobots(input string) ([]robot, error) {
	var robots []robot
	for i, line := range kit.Lines(input) {
		nums, err := kit.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(nums) != 4 {
			return nil, kit.Invalidf("line %d: %q", i+1, line)
		}
		robots = append(robots, robot{pos: kit.P(nums[0], nums[1]), vel: kit.P(nums[2], nums[3])})
	}
	if len(robots) == 0 {
		return nil, kit.Invalidf("no robots")
	}
	return robots, nil
}

// at returns the robot's position after the given seconds on a wrapping
// w x h floor.
func (r robot) at(seconds, w, h int) kit.Point {
	p := r.pos.Add(r.vel.Scale(seconds))
	return kit.P(kit.Mod(p.X, w), kit.Mod(p.Y, h))
}

// safetyFactor multiplies the robot counts of the four quadrants; robots on
// the middle row or column count for none.
func safetyFactor(robots []robot, w, h, seconds int) int {
	var quads [4]int
	for _, r := range robots {
		p := r.at(seconds, w, h)
		if p.X == w/2 || p.Y == h/2 {
			continue
		}
		q := 0
		if p.X > w/2 {
			q++
		}
		if p.Y > h/2 {
			q += 2
		}
		quads[q]++
	}
	return quads[0] * quads[1] * quads[2] * quads[3]
}

// treeSecond finds the first second at which no two robots overlap and at
// least ten of them stand side by side in a row. Positions repeat after
// w*h seconds.
func treeSecond(robots []robot, w, h int) (int, bool) {
	for s := 1; s <= w*h; s++ {
		floor := kit.NewGrid[bool](w, h)
		overlap := false
		for _, r := range robots {
			p := r.at(s, w, h)
			if floor.At(p) {
				overlap = true
				break
			}
			floor.Set(p, true)
		}
		if overlap {
			continue
		}
		for y := range h {
			run := 0
			for x := range w {
				if floor.At(kit.P(x, y)) {
					run++
					if run >= 10 {
						return s, true
					}
				} else {
					run = 0
				}
			}
		}
	}
	return 0, false
}

func day14Part1(input string) (int, error) {
	robots, err := parseRobots(input)
	if err != nil {
		return 0, err
	}
	return safetyFactor(robots, bathroomWidth, bathroomHeight, 100), nil
}

func day14Part2(input string) (int, error) {
	robots, err := parseRobots(input)
	if err != nil {
		return 0, err
	}
	s, ok := treeSecond(robots, bathroomWidth, bathroomHeight)
	if !ok {
		return 0, kit.Invalidf("robots never form a tree")
	}
	return s, nil
}
