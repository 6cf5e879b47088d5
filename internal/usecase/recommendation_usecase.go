package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"intern-match/internal/domain/company"
	"intern-match/internal/domain/job"
	"intern-match/internal/domain/ranking"
	"intern-match/internal/domain/vector"
	"intern-match/internal/repository"

	"github.com/google/uuid"
)

const (
	// Guidance shown instead of an error when the terminal state is empty.
	MsgNoResume = "Please upload your resume first to get job recommendations"
	MsgNoJobs   = "No jobs are currently available. Companies need to post jobs first!"

	maxRecommendationLimit  = 50
	recommendationCacheTTL  = 5 * time.Minute
	recommendationKeyPrefix = "recommendations:"
)

type RecommendationParams struct {
	Limit int
}

type RecommendationItem struct {
	Job         job.Posting    `json:"job"`
	CompanyName string         `json:"company_name"`
	CompanyLogo *string        `json:"company_logo"`
	Score       int            `json:"score"`
	Rank        int            `json:"rank"`
	Method      ranking.Method `json:"method"`
}

type RecommendationMetadata struct {
	Method              ranking.Method `json:"method,omitempty"`
	JobsAnalyzed        int            `json:"jobs_analyzed"`
	MinScore            int            `json:"min_score,omitempty"`
	EmbeddingDimensions int            `json:"embedding_dimensions,omitempty"`
}

type RecommendationSet struct {
	Items    []RecommendationItem   `json:"recommendations"`
	Total    int                    `json:"total"`
	Message  string                 `json:"message,omitempty"`
	Metadata RecommendationMetadata `json:"metadata"`
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, params RecommendationParams) (RecommendationSet, error)
}

// Recommendation walks an explicit per-request state machine:
// FetchResume -> RouteOnEmbedding -> VectorPath | KeywordPath -> Enrich.
// Failures local to the vector path (parse, dimension mismatch) fall through
// to the keyword path; only store-read failures fail the request.
type Recommendation struct {
	resumes   repository.ResumeRepository
	jobs      repository.JobRepository
	companies repository.CompanyRepository

	vectorRanker  *ranking.VectorRanker
	keywordRanker *ranking.KeywordRanker

	cache  RecommendationCache
	logger *log.Logger
}

func NewRecommendationUsecase(
	resumes repository.ResumeRepository,
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	vectorRanker *ranking.VectorRanker,
	keywordRanker *ranking.KeywordRanker,
	cache RecommendationCache,
	logger *log.Logger,
) *Recommendation {
	return &Recommendation{
		resumes:       resumes,
		jobs:          jobs,
		companies:     companies,
		vectorRanker:  vectorRanker,
		keywordRanker: keywordRanker,
		cache:         cache,
		logger:        logger,
	}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, params RecommendationParams) (RecommendationSet, error) {
	if userID == uuid.Nil {
		return RecommendationSet{}, ErrUnauthorized
	}

	limit := params.Limit
	if limit <= 0 {
		limit = ranking.DefaultLimit
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}

	cacheKey := fmt.Sprintf("%s%s:%d", recommendationKeyPrefix, userID, limit)
	if u.cache != nil {
		var cached RecommendationSet
		if ok, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	rec, err := u.resumes.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			u.logf("recommendation | user=%s state=no_resume", userID)
			return RecommendationSet{
				Items:   []RecommendationItem{},
				Message: MsgNoResume,
			}, nil
		}
		return RecommendationSet{}, ErrInternal
	}

	var set RecommendationSet
	handled := false

	if rec.HasEmbedding() {
		set, handled, err = u.vectorPath(ctx, rec.Embedding, limit, userID)
		if err != nil {
			return RecommendationSet{}, err
		}
	} else {
		u.logf("recommendation | user=%s state=route_keyword reason=no_embedding", userID)
	}

	if !handled {
		set, err = u.keywordPath(ctx, rec.Skills, rec.ParsedText, limit, userID)
		if err != nil {
			return RecommendationSet{}, err
		}
	}

	if u.cache != nil && set.Message == "" {
		_ = u.cache.SetJSON(ctx, cacheKey, set, recommendationCacheTTL)
	}
	return set, nil
}

// vectorPath reports handled=false when the keyword fallback should run:
// either no posting carries an embedding yet, or the ranker itself failed.
func (u *Recommendation) vectorPath(ctx context.Context, query vector.Vector, limit int, userID uuid.UUID) (RecommendationSet, bool, error) {
	pool, err := u.jobs.ListWithEmbeddings(ctx)
	if err != nil {
		return RecommendationSet{}, false, ErrInternal
	}
	if len(pool) == 0 {
		u.logf("recommendation | user=%s state=route_keyword reason=no_embedded_jobs", userID)
		return RecommendationSet{}, false, nil
	}

	matches, err := u.vectorRanker.Rank(query, pool, limit)
	if err != nil {
		u.logf("recommendation | user=%s state=vector_path_failed fallback=keyword reason=%v", userID, err)
		return RecommendationSet{}, false, nil
	}

	items, err := u.enrich(ctx, matches)
	if err != nil {
		return RecommendationSet{}, false, ErrInternal
	}
	u.logf("recommendation | user=%s state=vector_path results=%d analyzed=%d", userID, len(items), len(pool))
	return RecommendationSet{
		Items: items,
		Total: len(items),
		Metadata: RecommendationMetadata{
			Method:              ranking.MethodVectorSimilarity,
			JobsAnalyzed:        len(pool),
			MinScore:            ranking.VectorMinScore,
			EmbeddingDimensions: len(query),
		},
	}, true, nil
}

func (u *Recommendation) keywordPath(ctx context.Context, skills []string, resumeText string, limit int, userID uuid.UUID) (RecommendationSet, error) {
	pool, err := u.jobs.ListAll(ctx)
	if err != nil {
		return RecommendationSet{}, ErrInternal
	}
	if len(pool) == 0 {
		u.logf("recommendation | user=%s state=no_jobs path=keyword", userID)
		return RecommendationSet{
			Items:   []RecommendationItem{},
			Message: MsgNoJobs,
		}, nil
	}

	matches := u.keywordRanker.Rank(skills, resumeText, pool, limit)
	items, err := u.enrich(ctx, matches)
	if err != nil {
		return RecommendationSet{}, ErrInternal
	}
	u.logf("recommendation | user=%s state=keyword_path results=%d analyzed=%d", userID, len(items), len(pool))
	return RecommendationSet{
		Items: items,
		Total: len(items),
		Metadata: RecommendationMetadata{
			Method:       ranking.MethodKeywordMatching,
			JobsAnalyzed: len(pool),
			MinScore:     ranking.KeywordMinScore,
		},
	}, nil
}

// enrich attaches company display metadata to ranked matches. A missing
// profile is not an error; the posting's denormalized name or a placeholder
// stands in.
func (u *Recommendation) enrich(ctx context.Context, matches []ranking.Match) ([]RecommendationItem, error) {
	companyIDs := make([]uuid.UUID, 0, len(matches))
	seen := make(map[uuid.UUID]struct{}, len(matches))
	for _, m := range matches {
		if m.Posting.CompanyID == uuid.Nil {
			continue
		}
		if _, ok := seen[m.Posting.CompanyID]; ok {
			continue
		}
		seen[m.Posting.CompanyID] = struct{}{}
		companyIDs = append(companyIDs, m.Posting.CompanyID)
	}

	profiles := map[uuid.UUID]company.Profile{}
	if len(companyIDs) > 0 {
		var err error
		profiles, err = u.companies.GetByUserIDs(ctx, companyIDs)
		if err != nil {
			return nil, err
		}
	}

	items := make([]RecommendationItem, 0, len(matches))
	for _, m := range matches {
		name := m.Posting.CompanyName
		var logo *string
		if p, ok := profiles[m.Posting.CompanyID]; ok {
			if p.CompanyName != "" {
				name = p.CompanyName
			}
			logo = p.LogoURL
		}
		if name == "" {
			name = company.PlaceholderName
		}
		items = append(items, RecommendationItem{
			Job:         m.Posting,
			CompanyName: name,
			CompanyLogo: logo,
			Score:       m.Score,
			Rank:        m.Rank,
			Method:      m.Method,
		})
	}
	return items, nil
}

func (u *Recommendation) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
