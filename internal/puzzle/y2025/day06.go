package y2025

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

type mathProblem struct {
	op      byte
	numbers []int
}

func (p mathProblem) solve() int {
	if p.op == '*' {
		return kit.Product(p.numbers)
	}
	return kit.Sum(p.numbers)
}

// worksheetColumns pads every line to the same width and splits the sheet
// into problems at columns that are blank on every line. Each problem is
// returned as its rows of text, the operator row last.
func worksheetColumns(input string) ([][]string, error) {
	lines := kit.Lines(input)
	if len(lines) < 2 {
		return nil, kit.Invalidf("worksheet needs numbers and an operator row")
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", width-len(l))
	}

	blank := func(x int) bool {
		for _, l := range lines {
			if l[x] != ' ' {
				return false
			}
		}
		return true
	}
	var problems [][]string
	for x := 0; x < width; {
		if blank(x) {
			x++
			continue
		}
		end := x
		for end < width && !blank(end) {
			end++
		}
		rows := make([]string, len(lines))
		for i, l := range lines {
			rows[i] = l[x:end]
		}
		problems = append(problems, rows)
		x = end
	}
	return problems, nil
}

func operator(row string) (byte, error) {
	op := strings.TrimSpace(row)
	if op != "+" && op != "*" {
		return 0, kit.Invalidf("unknown operator %q", op)
	}
	return op[0], nil
}

// byRows reads each number left to right on its own line.
func byRows(rows []string) (mathProblem, error) {
	op, err := operator(rows[len(rows)-1])
	if err != nil {
		return mathProblem{}, err
	}
	p := mathProblem{op: op}
	for _, r := range rows[:len(rows)-1] {
		if strings.TrimSpace(r) == "" {
			continue
		}
		n, err := kit.Atoi(r)
		if err != nil {
			return mathProblem{}, err
		}
		p.numbers = append(p.numbers, n)
	}
	return p, nil
}

// byColumns reads each number top to bottom in its own character column.
// Column order does not change a sum or product.
func byColumns(rows []string) (mathProblem, error) {
	op, err := operator(rows[len(rows)-1])
	if err != nil {
		return mathProblem{}, err
	}
	p := mathProblem{op: op}
	for x := len(rows[0]) - 1; x >= 0; x-- {
		var digits strings.Builder
		for _, r := range rows[:len(rows)-1] {
			if r[x] != ' ' {
				digits.WriteByte(r[x])
			}
		}
		if digits.Len() == 0 {
			continue
		}
		n, err := kit.Atoi(digits.String())
		if err != nil {
			return mathProblem{}, err
		}
		p.numbers = append(p.numbers, n)
	}
	return p, nil
}

func grandTotal(input string, read func([]string) (mathProblem, error)) (int, error) {
	problems, err := worksheetColumns(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, rows := range problems {
		p, err := read(rows)
		if err != nil {
			return 0, err
		}
		total += p.solve()
	}
	return total, nil
}

func day06Part1(input string) (int, error) { return grandTotal(input, byRows) }
func day06Part2(input string) (int, error) { return grandTotal(input, byColumns) }
