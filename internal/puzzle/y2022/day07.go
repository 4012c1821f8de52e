package y2022

import (
	"path"
	"strconv"
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

const (
	diskSize   = 70_000_000
	updateSize = 30_000_000
)

// directorySizes replays a terminal session and returns the total size of
// every directory, keyed by absolute path.
func directorySizes(input string) (map[string]int, error) {
	sizes := map[string]int{"/": 0}
	cwd := "/"
	for i, line := range kit.Lines(input) {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "$" && len(fields) >= 2 && fields[1] == "ls":
			continue
		case fields[0] == "$" && len(fields) == 3 && fields[1] == "cd":
			switch arg := fields[2]; arg {
			case "/":
				cwd = "/"
			case "..":
				cwd = path.Dir(cwd)
			default:
				cwd = path.Join(cwd, arg)
			}
			if _, ok := sizes[cwd]; !ok {
				sizes[cwd] = 0
			}
		case fields[0] == "dir" && len(fields) == 2:
			dir := path.Join(cwd, fields[1])
			if _, ok := sizes[dir]; !ok {
				sizes[dir] = 0
			}
		case len(fields) == 2:
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, kit.Invalidf("line %d: %q", i+1, line)
			}
			// Add the file to every ancestor of the current directory.
			for dir := cwd; ; dir = path.Dir(dir) {
				sizes[dir] += n
				if dir == "/" {
					break
				}
			}
		default:
			return nil, kit.Invalidf("line %d: %q", i+1, line)
		}
	}
	return sizes, nil
}

func day07Part1(input string) (int, error) {
	sizes, err := directorySizes(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range sizes {
		if s <= 100_000 {
			total += s
		}
	}
	return total, nil
}

func day07Part2(input string) (int, error) {
	sizes, err := directorySizes(input)
	if err != nil {
		return 0, err
	}
	need := updateSize - (diskSize - sizes["/"])
	if need <= 0 {
		return 0, nil
	}
	best := sizes["/"]
	for _, s := range sizes {
		if s >= need && s < best {
			best = s
		}
	}
	return best, nil
}
