package ranking

import (
	"math/rand"
	"testing"

	"intern-match/internal/domain/job"

	"github.com/google/uuid"
)

func keywordPool() []job.Posting {
	return []job.Posting{
		{
			ID:           uuid.New(),
			Role:         "Frontend Developer Intern",
			Description:  "Build web apps with React and Node",
			Requirements: "React, Node, TypeScript experience",
		},
		{
			ID:           uuid.New(),
			Role:         "Backend Developer",
			Description:  "Services in Node",
			Requirements: "Node",
		},
		{
			ID:           uuid.New(),
			Role:         "Accountant",
			Description:  "Manage ledgers",
			Requirements: "CPA certification",
		},
	}
}

func TestKeywordRanker_SkillAndTechOverlap(t *testing.T) {
	pool := keywordPool()
	r := NewKeywordRanker(DefaultVocabulary(), nil)

	matches := r.Rank([]string{"React", "Node"}, "react node javascript", pool, 10)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	// The React/Node internship accumulates direct skill hits (35/30 per
	// field), tech-keyword overlap and the entry-level bonus, so it must lead.
	if matches[0].Posting.ID != pool[0].ID {
		t.Fatalf("expected the React internship first, got %s", matches[0].Posting.Role)
	}
	for _, m := range matches {
		if m.Score < KeywordMinScore || m.Score > 95 {
			t.Fatalf("score %d outside [65,95]", m.Score)
		}
		if m.Method != MethodKeywordMatching {
			t.Fatalf("expected keyword_matching method, got %s", m.Method)
		}
	}
}

func TestKeywordRanker_ZeroSignalNeverSurfaces(t *testing.T) {
	pool := keywordPool()
	accountant := pool[2].ID

	// Seeded jitter active: randomness must not resurrect a zero-signal job.
	r := NewKeywordRanker(DefaultVocabulary(), rand.New(rand.NewSource(7)))
	matches := r.Rank([]string{"React"}, "react", pool, 10)
	for _, m := range matches {
		if m.Posting.ID == accountant {
			t.Fatalf("zero-signal posting surfaced with score %d", m.Score)
		}
	}
}

func TestKeywordRanker_NilSkillsDegradeToTextOnly(t *testing.T) {
	pool := keywordPool()
	r := NewKeywordRanker(DefaultVocabulary(), nil)

	// Malformed stored skills arrive as nil; tech-keyword overlap still works.
	matches := r.Rank(nil, "react node javascript developer", pool, 10)
	for _, m := range matches {
		if m.Score < KeywordMinScore {
			t.Fatalf("unexpected below-threshold score %d", m.Score)
		}
	}
}

func TestKeywordRanker_SortedDescendingWithRanks(t *testing.T) {
	pool := keywordPool()
	r := NewKeywordRanker(DefaultVocabulary(), nil)

	matches := r.Rank([]string{"React", "Node"}, "react node javascript", pool, 10)
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Fatalf("not sorted desc at %d", i)
		}
	}
	for i, m := range matches {
		if m.Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, m.Rank)
		}
	}
}

func TestKeywordRanker_TruncatesToLimit(t *testing.T) {
	pool := keywordPool()
	r := NewKeywordRanker(DefaultVocabulary(), nil)

	matches := r.Rank([]string{"React", "Node"}, "react node javascript", pool, 1)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Posting.ID != pool[0].ID {
		t.Fatalf("truncation dropped the best match")
	}
}

func TestKeywordRanker_DeterministicWithoutJitter(t *testing.T) {
	pool := keywordPool()
	r := NewKeywordRanker(DefaultVocabulary(), nil)

	m1 := r.Rank([]string{"React", "Node"}, "react node javascript", pool, 10)
	m2 := r.Rank([]string{"React", "Node"}, "react node javascript", pool, 10)
	if len(m1) != len(m2) {
		t.Fatalf("result count differs")
	}
	for i := range m1 {
		if m1[i].Score != m2[i].Score || m1[i].Posting.ID != m2[i].Posting.ID {
			t.Fatalf("jitter-free runs diverged at %d", i)
		}
	}
}

func TestDefaultVocabulary_NonEmptyCategories(t *testing.T) {
	v := DefaultVocabulary()
	if len(v.Technology) == 0 || len(v.Education) == 0 || len(v.Experience) == 0 ||
		len(v.Domain) == 0 || len(v.EntryLevel) == 0 {
		t.Fatalf("expected every vocabulary category populated")
	}
}
