package ports

import "github.com/mawkler/advent-of-code/internal/domain"

// AnswerBookStore loads and saves accepted answers.
type AnswerBookStore interface {
	LoadAnswers() (domain.AnswerBook, error)
	SaveAnswers(book domain.AnswerBook) error
}
