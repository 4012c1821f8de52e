package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/mawkler/advent-of-code/internal/domain"
)

// Eval evaluates a JSONPath expression against a stored run artifact.
//
// Bad JSON, an empty expression, or an expression jsonpath rejects are all
// KindInvalidInput errors. An expression that matches nothing is
// KindNotFound.
func Eval(artifactJSON []byte, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, invalid(fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidInput))
	}

	doc, err := parseJSON(artifactJSON)
	if err != nil {
		return nil, invalid(fmt.Errorf("artifact is not valid JSON: %v: %w", err, domain.ErrInvalidInput))
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, invalid(fmt.Errorf("jsonpath %q: %v: %w", expr, err, domain.ErrInvalidInput))
	}
	if isEmptyValue(val) {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("jsonpath %q: no value found: %w", expr, domain.ErrNotFound),
		}
	}
	return val, nil
}

// Format renders a query result for the terminal: strings verbatim, single
// element arrays unwrapped, everything else as indented JSON.
func Format(v any) (string, error) {
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return Format(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool, int, int64:
		return fmt.Sprint(t), nil
	default:
		b, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func invalid(err error) error {
	return &domain.OpError{Op: "query.eval", Kind: domain.KindInvalidInput, Err: err}
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
