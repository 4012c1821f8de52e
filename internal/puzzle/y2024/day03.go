package y2024

import (
	"regexp"
	"strconv"
)

var instrRe = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// sumMultiplications adds every valid mul(a,b). With toggles, don't()
// disables later instructions until the next do().
func sumMultiplications(memory string, toggles bool) int {
	enabled := true
	sum := 0
	for _, m := range instrRe.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if enabled || !toggles {
				// The pattern only admits 1-3 digits, so these cannot fail.
				a, _ := strconv.Atoi(m[1])
				b, _ := strconv.Atoi(m[2])
				sum += a * b
			}
		}
	}
	return sum
}

func day03Part1(input string) (int, error) { return sumMultiplications(input, false), nil }
func day03Part2(input string) (int, error) { return sumMultiplications(input, true), nil }
