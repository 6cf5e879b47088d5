package ranking

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"intern-match/internal/domain/job"
)

const (
	// KeywordMinScore is the floor a keyword-path match must reach to be shown.
	KeywordMinScore = 65
	// keywordMaxScore caps the displayed keyword-path percentage.
	keywordMaxScore = 95
)

// Signal weights, additive per hit. A skill can contribute to requirements,
// description and role simultaneously.
const (
	skillInRequirements = 35
	skillInDescription  = 30
	skillInRole         = 25

	techInRequirements = 15
	techInDescription  = 12
	techInRole         = 8

	educationOverlap  = 10
	experienceOverlap = 15
	domainOverlap     = 12

	// Blanket bonus favoring entry-level postings, independent of the
	// candidate's text.
	entryLevelBonus = 20
)

// KeywordRanker scores postings by weighted case-insensitive substring
// overlap between the candidate's skills/resume text and the posting's
// role, description and requirements.
type KeywordRanker struct {
	vocab  Vocabulary
	jitter *rand.Rand
}

// NewKeywordRanker builds a ranker over vocab. jitter adds a dampener in
// [0,5) to postings that already have a nonzero score; nil disables it.
func NewKeywordRanker(vocab Vocabulary, jitter *rand.Rand) *KeywordRanker {
	return &KeywordRanker{vocab: vocab, jitter: jitter}
}

// Rank scores every posting in pool, filters to display scores >=
// KeywordMinScore and returns at most limit matches sorted by descending raw
// score. Postings with zero signal never score, so randomness alone cannot
// surface a job. skills may be nil or contain duplicates.
func (r *KeywordRanker) Rank(skills []string, resumeText string, pool []job.Posting, limit int) []Match {
	if limit <= 0 {
		limit = DefaultLimit
	}
	userText := strings.ToLower(resumeText)

	type scored struct {
		posting job.Posting
		raw     float64
		display int
	}

	candidates := make([]scored, 0, len(pool))
	for _, p := range pool {
		raw := r.score(skills, userText, p)
		display := int(math.Round(raw))
		if display > keywordMaxScore {
			display = keywordMaxScore
		}
		if display < KeywordMinScore {
			continue
		}
		candidates = append(candidates, scored{posting: p, raw: raw, display: display})
	}

	// Ties on the capped display score break by pre-cap magnitude.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].raw > candidates[j].raw
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
			Method:  MethodKeywordMatching,
		})
	}
	return out
}

func (r *KeywordRanker) score(skills []string, userText string, p job.Posting) float64 {
	requirements := strings.ToLower(p.Requirements)
	description := strings.ToLower(p.Description)
	role := strings.ToLower(p.Role)

	score := 0.0

	for _, skill := range skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" {
			continue
		}
		if strings.Contains(requirements, s) {
			score += skillInRequirements
		}
		if strings.Contains(description, s) {
			score += skillInDescription
		}
		if strings.Contains(role, s) {
			score += skillInRole
		}
	}

	for _, kw := range r.vocab.Technology {
		if !strings.Contains(userText, kw) {
			continue
		}
		if strings.Contains(requirements, kw) {
			score += techInRequirements
		}
		if strings.Contains(description, kw) {
			score += techInDescription
		}
		if strings.Contains(role, kw) {
			score += techInRole
		}
	}

	for _, kw := range r.vocab.Education {
		if strings.Contains(userText, kw) && strings.Contains(requirements, kw) {
			score += educationOverlap
		}
	}

	for _, kw := range r.vocab.Experience {
		if strings.Contains(userText, kw) && (strings.Contains(requirements, kw) || strings.Contains(role, kw)) {
			score += experienceOverlap
		}
	}

	for _, kw := range r.vocab.Domain {
		if strings.Contains(userText, kw) && strings.Contains(description, kw) {
			score += domainOverlap
		}
	}

	for _, kw := range r.vocab.EntryLevel {
		if strings.Contains(role, kw) || strings.Contains(description, kw) {
			score += entryLevelBonus
		}
	}

	// Dampener applies only on top of real signal; zero stays zero.
	// Float64 is [0,1), so the added range is half-open: [0,5).
	if score > 0 && r.jitter != nil {
		score += r.jitter.Float64() * 5
	}
	return score
}
