package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mawkler/advent-of-code/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("%w: unclosed template expression", domain.ErrInvalidConfig),
			}
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("%w: empty template expression", domain.ErrInvalidConfig),
			}
		}

		value, ok := vars[key]
		if !ok {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindMissingVar,
				Err:  fmt.Errorf("%w: %q", domain.ErrMissingVar, key),
			}
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// PuzzleVars returns the placeholders available to input path templates.
func PuzzleVars(key domain.PuzzleKey) map[string]string {
	return map[string]string{
		"year": strconv.Itoa(key.Year),
		"day":  strconv.Itoa(key.Day),
		"day2": fmt.Sprintf("%02d", key.Day),
	}
}

// InputPath renders pattern for one puzzle.
func InputPath(pattern string, key domain.PuzzleKey) (string, error) {
	return RenderString(pattern, PuzzleVars(key))
}

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-z0-9]+)\s*\}\}`)

// ValidatePattern checks that pattern renders and identifies a single puzzle:
// it must name the year and one of the day placeholders.
func ValidatePattern(pattern string) error {
	if _, err := InputPath(pattern, domain.PuzzleKey{Year: domain.FirstYear, Day: 1}); err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, m := range placeholderRe.FindAllStringSubmatch(pattern, -1) {
		seen[m[1]] = true
	}
	if !seen["year"] || (!seen["day"] && !seen["day2"]) {
		return &domain.OpError{
			Op:   "template.validate",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: %q must contain {{year}} and {{day}} or {{day2}}", domain.ErrInvalidConfig, pattern),
		}
	}
	return nil
}

// Match is the inverse of InputPath: it reports which puzzle, if any, a
// rendered path belongs to.
func Match(pattern, path string) (domain.PuzzleKey, bool) {
	var expr strings.Builder
	expr.WriteString("^")
	last := 0
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(pattern, -1) {
		expr.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		switch name := pattern[loc[2]:loc[3]]; name {
		case "year":
			expr.WriteString(`(?P<year>\d{4})`)
		case "day":
			expr.WriteString(`(?P<day>\d{1,2})`)
		case "day2":
			expr.WriteString(`(?P<day2>\d{2})`)
		default:
			return domain.PuzzleKey{}, false
		}
		last = loc[1]
	}
	expr.WriteString(regexp.QuoteMeta(pattern[last:]))
	expr.WriteString("$")

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return domain.PuzzleKey{}, false
	}
	m := re.FindStringSubmatch(path)
	if m == nil {
		return domain.PuzzleKey{}, false
	}

	var key domain.PuzzleKey
	for i, name := range re.SubexpNames() {
		if name == "" {
			continue
		}
		n, _ := strconv.Atoi(m[i])
		switch name {
		case "year":
			if key.Year != 0 && key.Year != n {
				return domain.PuzzleKey{}, false
			}
			key.Year = n
		case "day", "day2":
			if key.Day != 0 && key.Day != n {
				return domain.PuzzleKey{}, false
			}
			key.Day = n
		}
	}
	return key, key.Valid()
}
