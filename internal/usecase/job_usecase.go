package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"intern-match/internal/domain/job"
	"intern-match/internal/infrastructure/ai"
	"intern-match/internal/repository"

	"github.com/google/uuid"
)

type CreateJobInput struct {
	Role           string
	Description    string
	Requirements   string
	Location       string
	WorkMode       string
	JobType        string
	DurationMonths int

	StipendAmount   *float64
	StipendCurrency *string
	StipendType     *string
}

type JobUsecase interface {
	CreateJob(ctx context.Context, companyID uuid.UUID, in CreateJobInput) (job.Posting, error)
	ListOwnJobs(ctx context.Context, companyID uuid.UUID) ([]job.Posting, error)
}

// JobNotifier is satisfied by the websocket hub; dashboards refresh their
// recommendations when a new posting lands.
type JobNotifier interface {
	NotifyJobPosted(role string, companyName string)
}

type Job struct {
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	aiSvc     ai.Client
	cache     RecommendationCache
	notifier  JobNotifier
	logger    *log.Logger
}

func NewJobUsecase(jobs repository.JobRepository, companies repository.CompanyRepository, aiSvc ai.Client, cache RecommendationCache, notifier JobNotifier, logger *log.Logger) *Job {
	return &Job{jobs: jobs, companies: companies, aiSvc: aiSvc, cache: cache, notifier: notifier, logger: logger}
}

func (u *Job) CreateJob(ctx context.Context, companyID uuid.UUID, in CreateJobInput) (job.Posting, error) {
	if companyID == uuid.Nil {
		return job.Posting{}, ErrUnauthorized
	}
	if strings.TrimSpace(in.Role) == "" {
		return job.Posting{}, ErrInvalidInput
	}

	companyName := ""
	if profile, err := u.companies.GetByUserID(ctx, companyID); err == nil {
		companyName = profile.CompanyName
	}

	p := job.Posting{
		ID:              uuid.New(),
		CompanyID:       companyID,
		CompanyName:     companyName,
		Role:            strings.TrimSpace(in.Role),
		Description:     in.Description,
		Requirements:    in.Requirements,
		Location:        strings.TrimSpace(in.Location),
		WorkMode:        job.WorkMode(strings.ToLower(strings.TrimSpace(in.WorkMode))),
		JobType:         strings.TrimSpace(in.JobType),
		DurationMonths:  in.DurationMonths,
		StipendAmount:   in.StipendAmount,
		StipendCurrency: in.StipendCurrency,
		StipendType:     in.StipendType,
		CreatedAt:       time.Now().UTC(),
	}

	// A posting without an embedding still matches through the keyword path.
	if u.aiSvc != nil {
		text := p.Role + "\n" + p.Description + "\n" + p.Requirements
		emb, err := u.aiSvc.GenerateEmbedding(ctx, text)
		if err != nil {
			u.logf("job | company=%s embedding_failed err=%v", companyID, err)
		} else {
			p.Embedding = emb
		}
	}

	if err := u.jobs.Insert(ctx, p); err != nil {
		return job.Posting{}, ErrInternal
	}

	// New postings change every candidate's ranking; drop all cached sets.
	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, recommendationKeyPrefix+"*")
	}
	if u.notifier != nil {
		u.notifier.NotifyJobPosted(p.Role, p.CompanyName)
	}
	return p, nil
}

func (u *Job) ListOwnJobs(ctx context.Context, companyID uuid.UUID) ([]job.Posting, error) {
	if companyID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Job) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
