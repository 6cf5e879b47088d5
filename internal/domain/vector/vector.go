package vector

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dimensions is the embedding length produced by the external AI service
// (all-MiniLM-L6-v2).
const Dimensions = 384

var (
	ErrDimensionMismatch      = errors.New("vector dimension mismatch")
	ErrInvalidEmbeddingFormat = errors.New("invalid embedding format")
)

// Vector is a fixed-length text embedding. Stored embeddings arrive either as
// a native numeric sequence or as a bracketed string ("[0.1,0.2,...]", the
// pgvector text encoding); both are normalized here and nothing past this
// package handles the string form.
type Vector []float64

func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Parse normalizes a stored embedding into a Vector. It accepts []float64,
// []float32, []any of numbers, and the bracketed string encoding.
func Parse(raw any) (Vector, error) {
	switch e := raw.(type) {
	case nil:
		return nil, nil
	case Vector:
		return e, nil
	case []float64:
		return Vector(e), nil
	case []float32:
		out := make(Vector, len(e))
		for i, x := range e {
			out[i] = float64(x)
		}
		return out, nil
	case []any:
		out := make(Vector, len(e))
		for i, x := range e {
			f, ok := asFloat(x)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T", ErrInvalidEmbeddingFormat, i, x)
			}
			out[i] = f
		}
		return out, nil
	case string:
		return parseString(e)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidEmbeddingFormat, raw)
	}
}

func parseString(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return Vector{}, nil
	}

	parts := strings.Split(s, ",")
	out := make(Vector, 0, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrInvalidEmbeddingFormat, i, strings.TrimSpace(p))
		}
		out = append(out, f)
	}
	return out, nil
}

func asFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
