package ranking

import (
	"math"
	"math/rand"
	"sort"

	"intern-match/internal/domain/job"
	"intern-match/internal/domain/vector"
)

const (
	// VectorMinScore is the floor a vector-path match must reach to be shown.
	VectorMinScore = 70
	// vectorMaxScore keeps vector-path percentages below a "perfect" 100.
	vectorMaxScore = 90

	DefaultLimit = 10
)

// VectorRanker ranks postings by cosine similarity between the candidate's
// resume embedding and each posting's embedding.
//
// Raw similarity underestimates weak-but-real matches with this embedding
// model, so low percentages are boosted before filtering: (0,20) gets x1.5,
// [20,40) gets x1.2, everything above passes through.
type VectorRanker struct {
	jitter *rand.Rand
}

// NewVectorRanker builds a ranker. jitter adds a variation in [-1.5,+1.5)
// percentage points to each score; nil disables it (tests, deterministic
// deployments).
func NewVectorRanker(jitter *rand.Rand) *VectorRanker {
	return &VectorRanker{jitter: jitter}
}

// Rank scores every posting with a present embedding against query, filters
// to scores >= VectorMinScore and returns at most limit matches sorted by
// descending score. Postings without an embedding are skipped; a dimension
// mismatch fails the whole ranking so the caller can fall back to keyword
// matching.
func (r *VectorRanker) Rank(query vector.Vector, pool []job.Posting, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	type scored struct {
		posting  job.Posting
		adjusted float64
		display  int
	}

	candidates := make([]scored, 0, len(pool))
	for _, p := range pool {
		if !p.HasEmbedding() {
			continue
		}
		sim, err := vector.Cosine(query, p.Embedding)
		if err != nil {
			return nil, err
		}

		pct := sim * 100
		switch {
		case pct > 0 && pct < 20:
			pct *= 1.5
		case pct >= 20 && pct < 40:
			pct *= 1.2
		}
		if r.jitter != nil {
			// Float64 is [0,1), so the variation is half-open: [-1.5,+1.5).
			pct += (r.jitter.Float64() - 0.5) * 3
		}

		display := int(math.Round(pct))
		if display < 0 {
			display = 0
		}
		if display > vectorMaxScore {
			display = vectorMaxScore
		}
		if display < VectorMinScore {
			continue
		}
		candidates = append(candidates, scored{posting: p, adjusted: pct, display: display})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].adjusted > candidates[j].adjusted
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]Match, 0, len(candidates))
	for i, c := range candidates {
		out = append(out, Match{
			Posting: c.posting,
			Score:   c.display,
			Rank:    i + 1,
			Method:  MethodVectorSimilarity,
		})
	}
	return out, nil
}
