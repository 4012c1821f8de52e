package y2023

import (
	"strings"

	"github.com/mawkler/advent-of-code/internal/puzzle/kit"
)

// cubeSet counts red, green and blue cubes.
type cubeSet struct{ red, green, blue int }

type cubeGame struct {
	id    int
	draws []cubeSet
}

func parseCubeGames(input string) ([]cubeGame, error) {
	var games []cubeGame
	for i, line := range kit.Lines(input) {
		head, body, ok := strings.Cut(line, ": ")
		if !ok || !strings.HasPrefix(head, "Game ") {
			return nil, kit.Invalidf("line %d: %q", i+1, line)
		}
		id, err := kit.Atoi(strings.TrimPrefix(head, "Game "))
		if err != nil {
			return nil, err
		}
		g := cubeGame{id: id}
		for _, draw := range strings.Split(body, "; ") {
			var set cubeSet
			for _, item := range strings.Split(draw, ", ") {
				count, color, ok := strings.Cut(item, " ")
				if !ok {
					return nil, kit.Invalidf("game %d: %q", id, item)
				}
				n, err := kit.Atoi(count)
				if err != nil {
					return nil, err
				}
				switch color {
				case "red":
					set.red += n
				case "green":
					set.green += n
				case "blue":
					set.blue += n
				default:
					return nil, kit.Invalidf("game %d: unknown color %q", id, color)
				}
			}
			g.draws = append(g.draws, set)
		}
		games = append(games, g)
	}
	return games, nil
}

// minimum is the smallest bag that makes every draw of g possible.
func (g cubeGame) minimum() cubeSet {
	var m cubeSet
	for _, d := range g.draws {
		m.red = max(m.red, d.red)
		m.green = max(m.green, d.green)
		m.blue = max(m.blue, d.blue)
	}
	return m
}

func day02Part1(input string) (int, error) {
	games, err := parseCubeGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		m := g.minimum()
		if m.red <= 12 && m.green <= 13 && m.blue <= 14 {
			sum += g.id
		}
	}
	return sum, nil
}

func day02Part2(input string) (int, error) {
	games, err := parseCubeGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		m := g.minimum()
		sum += m.red * m.green * m.blue
	}
	return sum, nil
}
