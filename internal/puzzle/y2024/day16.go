package y2024

import (
	"container/heap"
	"math"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

const (
	stepCost = 1
	turnCost = 1000
)

type reindeer struct {
	pos kit.Point
	dir int // index into kit.Dirs4
}

type mazeItem struct {
	state reindeer
	cost  int
}

type mazeQueue []mazeItem

func (q mazeQueue) Len() int           { return len(q) }
func (q mazeQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q mazeQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *mazeQueue) Push(x any)        { *q = append(*q, x.(mazeItem)) }
func (q *mazeQueue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

// mazeCosts runs Dijkstra over (tile, heading) states from every start.
func mazeCosts(g *kit.Grid[byte], starts []reindeer) map[reindeer]int {
	dist := map[reindeer]int{}
	q := &mazeQueue{}
	for _, s := range starts {
		dist[s] = 0
		heap.Push(q, mazeItem{s, 0})
	}
	relax := func(s reindeer, cost int) {
		if d, ok := dist[s]; !ok || cost < d {
			dist[s] = cost
			heap.Push(q, mazeItem{s, cost})
		}
	}
	for q.Len() > 0 {
		it := heap.Pop(q).(mazeItem)
		if it.cost > dist[it.state] {
			continue
		}
		s := it.state
		if next := s.pos.Add(kit.Dirs4[s.dir]); g.At(next) != '#' {
			relax(reindeer{next, s.dir}, it.cost+stepCost)
		}
		relax(reindeer{s.pos, (s.dir + 1) % 4}, it.cost+turnCost)
		relax(reindeer{s.pos, (s.dir + 3) % 4}, it.cost+turnCost)
	}
	return dist
}

type reindeerMaze struct {
	g          *kit.Grid[byte]
	start, end kit.Point
}

func parseReindeerMaze(input string) (reindeerMaze, error) {
	g, err := kit.ByteGrid(input)
	if err != nil {
		return reindeerMaze{}, err
	}
	start, ok := kit.Find(g, 'S')
	end, ok2 := kit.Find(g, 'E')
	if !ok || !ok2 {
		return reindeerMaze{}, kit.Invalidf("maze needs both S and E")
	}
	// Surround the maze so stepping never leaves the grid.
	for p := range g.Points() {
		if p.X == 0 || p.Y == 0 || p.X == g.W-1 || p.Y == g.H-1 {
			g.Set(p, '#')
		}
	}
	return reindeerMaze{g: g, start: start, end: end}, nil
}

// lowestScore also returns the forward costs for reuse by part two.
func (m reindeerMaze) lowestScore() (int, map[reindeer]int, error) {
	east := 1 // kit.Dirs4 is Up, Right, Down, Left
	fwd := mazeCosts(m.g, []reindeer{{m.start, east}})
	best := math.MaxInt
	for dir := range 4 {
		if d, ok := fwd[reindeer{m.end, dir}]; ok {
			best = min(best, d)
		}
	}
	if best == math.MaxInt {
		return 0, nil, kit.Invalidf("no path from S to E")
	}
	return best, fwd, nil
}

func day16Part1(input string) (int, error) {
	m, err := parseReindeerMaze(input)
	if err != nil {
		return 0, err
	}
	best, _, err := m.lowestScore()
	return best, err
}

// A state lies on a best path when the cost to reach it plus the cost from
// it to E equals the best score. Costs to E come from a search that starts at
// E with every heading reversed.
func day16Part2(input string) (int, error) {
	m, err := parseReindeerMaze(input)
	if err != nil {
		return 0, err
	}
	best, fwd, err := m.lowestScore()
	if err != nil {
		return 0, err
	}
	var ends []reindeer
	for dir := range 4 {
		if fwd[reindeer{m.end, dir}] == best {
			ends = append(ends, reindeer{m.end, (dir + 2) % 4})
		}
	}
	bwd := mazeCosts(m.g, ends)

	tiles := map[kit.Point]bool{}
	for s, d := range fwd {
		back, ok := bwd[reindeer{s.pos, (s.dir + 2) % 4}]
		if ok && d+back == best {
			tiles[s.pos] = true
		}
	}
	return len(tiles), nil
}
