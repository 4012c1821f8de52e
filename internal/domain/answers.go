package domain

import "slices"

// Answers holds the accepted answers of one day. Empty means unknown.
type Answers struct {
	Part1 string
	Part2 string
}

func (a Answers) For(p Part) string {
	if p == Part2 {
		return a.Part2
	}
	return a.Part1
}

func (a *Answers) Set(p Part, v string) {
	if p == Part2 {
		a.Part2 = v
		return
	}
	a.Part1 = v
}

// AnswerBook maps puzzles to their accepted answers.
type AnswerBook map[PuzzleKey]Answers

// Expected returns the accepted answer for a part, if recorded.
func (b AnswerBook) Expected(k PuzzleKey, p Part) (string, bool) {
	if b == nil {
		return "", false
	}
	a, ok := b[k]
	if !ok {
		return "", false
	}
	v := a.For(p)
	return v, v != ""
}

// Record stores v unless an answer is already known. It reports whether the
// book changed.
func (b AnswerBook) Record(k PuzzleKey, p Part, v string) bool {
	if v == "" {
		return false
	}
	if _, ok := b.Expected(k, p); ok {
		return false
	}
	a := b[k]
	a.Set(p, v)
	b[k] = a
	return true
}

// Keys returns the book's keys in calendar order.
func (b AnswerBook) Keys() []PuzzleKey {
	keys := make([]PuzzleKey, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, PuzzleKey.Compare)
	return keys
}
