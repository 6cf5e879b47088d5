package ranking

import (
	"errors"
	"math/rand"
	"testing"

	"intern-match/internal/domain/job"
	"intern-match/internal/domain/vector"

	"github.com/google/uuid"
)

func posting(embedding vector.Vector) job.Posting {
	return job.Posting{ID: uuid.New(), Role: "Backend Intern", Embedding: embedding}
}

func TestVectorRanker_ScoresWithinBounds(t *testing.T) {
	query := vector.Vector{1, 0, 0}
	pool := []job.Posting{
		posting(vector.Vector{1, 0, 0}),       // sim 1.0 -> clamped to 90
		posting(vector.Vector{0.9, 0.1, 0}),   // high sim
		posting(vector.Vector{0.8, 0.6, 0}),   // sim 0.8
	}

	r := NewVectorRanker(nil)
	matches, err := r.Rank(query, pool, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("expected matches")
	}
	for _, m := range matches {
		if m.Score < VectorMinScore || m.Score > 90 {
			t.Fatalf("score %d outside [70,90]", m.Score)
		}
		if m.Method != MethodVectorSimilarity {
			t.Fatalf("expected vector_similarity method, got %s", m.Method)
		}
	}
}

func TestVectorRanker_SortedDescendingWithRanks(t *testing.T) {
	query := vector.Vector{1, 0, 0}
	pool := []job.Posting{
		posting(vector.Vector{0.8, 0.6, 0}), // sim 0.8
		posting(vector.Vector{1, 0, 0}),     // sim 1.0
		posting(vector.Vector{0.9, 0.3, 0}), // sim ~0.95
	}

	matches, err := NewVectorRanker(nil).Rank(query, pool, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Fatalf("not sorted desc at %d: %d < %d", i, matches[i-1].Score, matches[i].Score)
		}
	}
	for i, m := range matches {
		if m.Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, m.Rank)
		}
	}
}

func TestVectorRanker_SkipsPostingsWithoutEmbedding(t *testing.T) {
	query := vector.Vector{1, 0, 0}
	bare := job.Posting{ID: uuid.New(), Role: "No Embedding"}
	pool := []job.Posting{bare, posting(vector.Vector{1, 0, 0})}

	matches, err := NewVectorRanker(nil).Rank(query, pool, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, m := range matches {
		if m.Posting.ID == bare.ID {
			t.Fatalf("posting without embedding surfaced in vector path")
		}
	}
}

func TestVectorRanker_DimensionMismatch(t *testing.T) {
	query := vector.Vector{1, 0}
	pool := []job.Posting{posting(vector.Vector{1, 0, 0})}

	_, err := NewVectorRanker(nil).Rank(query, pool, 10)
	if !errors.Is(err, vector.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestVectorRanker_FiltersBeforeTruncating(t *testing.T) {
	query := vector.Vector{1, 0, 0}
	pool := []job.Posting{
		posting(vector.Vector{0, 1, 0}),   // sim 0 -> filtered
		posting(vector.Vector{0.2, 1, 0}), // low sim -> filtered
		posting(vector.Vector{1, 0, 0}),
		posting(vector.Vector{0.9, 0.1, 0}),
	}

	matches, err := NewVectorRanker(nil).Rank(query, pool, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	for _, m := range matches {
		if m.Score < VectorMinScore {
			t.Fatalf("below-threshold score %d survived truncation", m.Score)
		}
	}
}

func TestVectorRanker_IdenticalQueriesScoreIdentically(t *testing.T) {
	pool := []job.Posting{posting(vector.Vector{0.7, 0.7, 0.2})}
	q1 := vector.Vector{0.6, 0.7, 0.1}
	q2 := vector.Vector{0.6, 0.7, 0.1}

	m1, err := NewVectorRanker(nil).Rank(q1, pool, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m2, err := NewVectorRanker(nil).Rank(q2, pool, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(m1) != len(m2) {
		t.Fatalf("result count differs: %d vs %d", len(m1), len(m2))
	}
	for i := range m1 {
		if m1[i].Score != m2[i].Score {
			t.Fatalf("identical queries scored differently: %d vs %d", m1[i].Score, m2[i].Score)
		}
	}
}

func TestVectorRanker_SeededJitterIsReproducible(t *testing.T) {
	query := vector.Vector{1, 0, 0}
	pool := []job.Posting{
		posting(vector.Vector{1, 0, 0}),
		posting(vector.Vector{0.9, 0.1, 0}),
	}

	m1, err := NewVectorRanker(rand.New(rand.NewSource(42))).Rank(query, pool, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m2, err := NewVectorRanker(rand.New(rand.NewSource(42))).Rank(query, pool, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(m1) != len(m2) {
		t.Fatalf("result count differs: %d vs %d", len(m1), len(m2))
	}
	for i := range m1 {
		if m1[i].Score != m2[i].Score || m1[i].Posting.ID != m2[i].Posting.ID {
			t.Fatalf("seeded runs diverged at %d", i)
		}
	}
}
