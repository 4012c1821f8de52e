package config

import (
	"fmt"
	"strings"

	"github.com/mawkler/advent-of-code/internal/domain"
)

func MapAnswerBook(path string, dto YAMLAnswerBook) (domain.AnswerBook, error) {
	book := domain.AnswerBook{}
	for year, days := range dto {
		for day, a := range days {
			key := domain.PuzzleKey{Year: year, Day: day}
			if !key.Valid() {
				return nil, invalidField(path, fmt.Sprintf("%d.%d", year, day), "no such puzzle")
			}
			answers := domain.Answers{
				Part1: strings.TrimSpace(a.Part1),
				Part2: strings.TrimSpace(a.Part2),
			}
			if answers == (domain.Answers{}) {
				continue
			}
			book[key] = answers
		}
	}
	return book, nil
}

// ToYAMLAnswerBook is the inverse of MapAnswerBook. Days without answers are dropped.
func ToYAMLAnswerBook(book domain.AnswerBook) YAMLAnswerBook {
	out := YAMLAnswerBook{}
	for _, k := range book.Keys() {
		a := book[k]
		if a == (domain.Answers{}) {
			continue
		}
		if out[k.Year] == nil {
			out[k.Year] = map[int]YAMLAnswers{}
		}
		out[k.Year][k.Day] = YAMLAnswers{Part1: a.Part1, Part2: a.Part2}
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
