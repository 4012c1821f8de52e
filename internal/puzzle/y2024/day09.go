package y2024

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

const freeBlock = -1

// diskBlocks expands the dense disk map into one entry per block holding a
// file id or freeBlock.
func diskBlocks(input string) ([]int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, kit.Invalidf("empty disk map")
	}
	var blocks []int
	for i := range len(s) {
		n, ok := kit.Digit(s[i])
		if !ok {
			return nil, kit.Invalidf("position %d: %q is not a digit", i, s[i])
		}
		id := freeBlock
		if i%2 == 0 {
			id = i / 2
		}
		for range n {
			blocks = append(blocks, id)
		}
	}
	return blocks, nil
}

func checksum(blocks []int) int {
	sum := 0
	for i, id := range blocks {
		if id != freeBlock {
			sum += i * id
		}
	}
	return sum
}

func day09Part1(input string) (int, error) {
	blocks, err := diskBlocks(input)
	if err != nil {
		return 0, err
	}
	l, r := 0, len(blocks)-1
	for {
		for l < r && blocks[l] != freeBlock {
			l++
		}
		for l < r && blocks[r] == freeBlock {
			r--
		}
		if l >= r {
			break
		}
		blocks[l], blocks[r] = blocks[r], freeBlock
	}
	return checksum(blocks), nil
}

type diskSpan struct{ start, size int }

// diskLayout returns the span of each file, indexed by id, and the free
// spans in disk order.
func diskLayout(input string) (files, free []diskSpan, err error) {
	s := strings.TrimSpace(input)
	pos := 0
	for i := range len(s) {
		n, ok := kit.Digit(s[i])
		if !ok {
			return nil, nil, kit.Invalidf("position %d: %q is not a digit", i, s[i])
		}
		if i%2 == 0 {
			files = append(files, diskSpan{pos, n})
		} else if n > 0 {
			free = append(free, diskSpan{pos, n})
		}
		pos += n
	}
	if len(files) == 0 {
		return nil, nil, kit.Invalidf("empty disk map")
	}
	return files, free, nil
}

// Part two moves whole files, highest id first, into the leftmost free span
// that fits and lies before the file.
func day09Part2(input string) (int, error) {
	files, free, err := diskLayout(input)
	if err != nil {
		return 0, err
	}
	for id := len(files) - 1; id >= 0; id-- {
		f := &files[id]
		for i := range free {
			s := &free[i]
			if s.start >= f.start {
				break
			}
			if s.size >= f.size {
				f.start = s.start
				s.start += f.size
				s.size -= f.size
				break
			}
		}
	}
	sum := 0
	for id, f := range files {
		for k := range f.size {
			sum += (f.start + k) * id
		}
	}
	return sum, nil
}
