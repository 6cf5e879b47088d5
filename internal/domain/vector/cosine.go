package vector

import (
	"fmt"
	"math"
)

// Cosine returns the cosine similarity of two equal-length vectors.
// A zero-magnitude operand yields 0 so that empty or uninitialized embeddings
// compare as "no relation" instead of NaN.
func Cosine(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
