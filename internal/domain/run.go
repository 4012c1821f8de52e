package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// PartStatus is the verification outcome of one solved part.
type PartStatus string

const (
	StatusCorrect    PartStatus = "correct"
	StatusWrong      PartStatus = "wrong"
	StatusUnverified PartStatus = "unverified"
	StatusFailed     PartStatus = "failed"
	StatusSkipped    PartStatus = "skipped"
)

// RunErrorKind is a high-level classification of solver failures.
type RunErrorKind string

const (
	RunErrorUnknown      RunErrorKind = "unknown"
	RunErrorInputMissing RunErrorKind = "input_missing"
	RunErrorInvalidInput RunErrorKind = "invalid_input"
	RunErrorPanic        RunErrorKind = "panic"
	RunErrorTimeout      RunErrorKind = "timeout"
	RunErrorCanceled     RunErrorKind = "canceled"
)

// RunError represents a structured error produced while solving a part.
type RunError struct {
	Kind    RunErrorKind `json:"kind"`
	Message string       `json:"message"`
}

func (e *RunError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return string(e.Kind) + ": " + e.Message
}

// PanicError carries a recovered solver panic.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("solver panicked: %v", e.Value)
}

// NewRunError classifies err into a RunError. It returns nil for nil.
func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}
	return &RunError{Kind: ClassifyRunError(err), Message: err.Error()}
}

func ClassifyRunError(err error) RunErrorKind {
	var pe *PanicError
	switch {
	case err == nil:
		return RunErrorUnknown
	case errors.As(err, &pe):
		return RunErrorPanic
	case errors.Is(err, context.DeadlineExceeded):
		return RunErrorTimeout
	case errors.Is(err, context.Canceled):
		return RunErrorCanceled
	case IsKind(err, KindNotFound):
		return RunErrorInputMissing
	case IsKind(err, KindInvalidInput), errors.Is(err, ErrInvalidInput):
		return RunErrorInvalidInput
	default:
		return RunErrorUnknown
	}
}

// PartResult is the outcome of solving one part of one day.
type PartResult struct {
	Key      PuzzleKey  `json:"key"`
	Title    string     `json:"title"`
	Part     Part       `json:"part"`
	Answer   string     `json:"answer"`
	Expected string     `json:"expected,omitempty"`
	Status   PartStatus `json:"status"`

	DurationMS float64 `json:"duration_ms"`

	Error *RunError `json:"error,omitempty"`
}

// Failed reports whether the part counts against the run.
func (r PartResult) Failed() bool {
	return r.Status == StatusWrong || r.Status == StatusFailed
}

// RunResult is one execution of a selection of puzzles.
type RunResult struct {
	Selection string    `json:"selection"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Results []PartResult `json:"results"`
}

// RunRef is a lightweight reference to a stored run.
type RunRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Selection string    `json:"selection"`
	StartedAt time.Time `json:"started_at"`
	Correct   int       `json:"correct"`
	Failed    int       `json:"failed"`
}
