package vector

import (
	"errors"
	"math"
	"testing"
)

func TestParse_BracketedString(t *testing.T) {
	v, err := Parse("[0.1,0.2,0.3]")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := Vector{0.1, 0.2, 0.3}
	if len(v) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(v))
	}
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("element %d: expected %v, got %v", i, want[i], v[i])
		}
	}
}

func TestParse_StringMatchesNativeSequence(t *testing.T) {
	fromString, err := Parse("[0.1, 0.2, 0.3]")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	fromSlice, err := Parse([]float64{0.1, 0.2, 0.3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fromString) != len(fromSlice) {
		t.Fatalf("length mismatch: %d vs %d", len(fromString), len(fromSlice))
	}
	for i := range fromSlice {
		if fromString[i] != fromSlice[i] {
			t.Fatalf("element %d: string %v vs native %v", i, fromString[i], fromSlice[i])
		}
	}
}

func TestParse_Float32Sequence(t *testing.T) {
	v, err := Parse([]float32{1, 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(v) != 2 || v[0] != 1 || v[1] != 2 {
		t.Fatalf("unexpected vector: %v", v)
	}
}

func TestParse_NonNumericToken(t *testing.T) {
	_, err := Parse("[0.1,abc,0.3]")
	if !errors.Is(err, ErrInvalidEmbeddingFormat) {
		t.Fatalf("expected ErrInvalidEmbeddingFormat, got %v", err)
	}
}

func TestParse_Nil(t *testing.T) {
	v, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil vector, got %v", v)
	}
}

func TestCosine_Symmetry(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}

	ab, err := Cosine(a, b)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ba, err := Cosine(b, a)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if math.Abs(ab-ba) > 1e-12 {
		t.Fatalf("expected symmetry, got %v vs %v", ab, ba)
	}
}

func TestCosine_SelfSimilarity(t *testing.T) {
	a := Vector{0.3, 0.1, 0.8}
	got, err := Cosine(a, a)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	zero := Vector{0, 0, 0}
	v := Vector{1, 2, 3}

	got, err := Cosine(zero, v)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for zero vector, got %v", got)
	}
}

func TestCosine_DimensionMismatch(t *testing.T) {
	_, err := Cosine(Vector{1, 2}, Vector{1, 2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}
