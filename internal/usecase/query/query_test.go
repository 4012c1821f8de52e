package query

import (
	"errors"
	"testing"

	"github.com/mawkler/advent-of-code/internal/domain"
)

const artifact = `{
  "selection": "2024/1",
  "results": [
    {"key": {"year": 2024, "day": 1}, "part": 1, "answer": "11", "status": "correct"},
    {"key": {"year": 2024, "day": 1}, "part": 2, "answer": "31", "status": "wrong", "expected": "30"}
  ]
}`

func TestEval_Scalar(t *testing.T) {
	v, err := Eval([]byte(artifact), "$.selection")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "2024/1" {
		t.Fatalf("expected 2024/1, got %v", v)
	}
}

func TestEval_Wildcard(t *testing.T) {
	v, err := Eval([]byte(artifact), "$.results[*].answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := v.([]any)
	if !ok || len(arr) != 2 || arr[0] != "11" || arr[1] != "31" {
		t.Fatalf("unexpected result: %#v", v)
	}
}

func TestEval_Filter(t *testing.T) {
	v, err := Eval([]byte(artifact), `$.results[?(@.status == "wrong")].expected`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := Format(v)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if s != "30" {
		t.Fatalf("expected 30, got %q", s)
	}
}

func TestEval_InvalidJSON(t *testing.T) {
	_, err := Eval([]byte("nope"), "$.selection")
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput in chain")
	}
}

func TestEval_EmptyExpression(t *testing.T) {
	_, err := Eval([]byte(artifact), "  ")
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestEval_BadExpression(t *testing.T) {
	_, err := Eval([]byte(artifact), "$.results[")
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestEval_NoMatch(t *testing.T) {
	_, err := Eval([]byte(artifact), "$.results[?(@.status == \"failed\")]")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"abc", "abc"},
		{float64(7), "7"},
		{true, "true"},
		{[]any{"x"}, "x"},
		{map[string]any{"a": float64(1)}, "{\n  \"a\": 1\n}"},
	}
	for _, c := range cases {
		got, err := Format(c.in)
		if err != nil {
			t.Fatalf("Format(%v): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
