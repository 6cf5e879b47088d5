package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"intern-match/internal/domain/resume"
	"intern-match/internal/infrastructure/ai"
	"intern-match/internal/repository"

	"github.com/google/uuid"
)

type CreateResumeInput struct {
	FileURL    string
	ParsedText string

	// When empty, the AI service extracts structured data from ParsedText.
	Skills     []string
	Education  []string
	Experience []string
}

type ResumeUsecase interface {
	CreateResume(ctx context.Context, userID uuid.UUID, in CreateResumeInput) (resume.Record, error)
	ListOwnResumes(ctx context.Context, userID uuid.UUID) ([]resume.Record, error)
}

// Resume creates immutable resume records. Every upload is a new row; the
// recommendation path always reads the newest one.
type Resume struct {
	resumes repository.ResumeRepository
	aiSvc   ai.Client
	cache   RecommendationCache
	logger  *log.Logger
}

func NewResumeUsecase(resumes repository.ResumeRepository, aiSvc ai.Client, cache RecommendationCache, logger *log.Logger) *Resume {
	return &Resume{resumes: resumes, aiSvc: aiSvc, cache: cache, logger: logger}
}

func (u *Resume) CreateResume(ctx context.Context, userID uuid.UUID, in CreateResumeInput) (resume.Record, error) {
	if userID == uuid.Nil {
		return resume.Record{}, ErrUnauthorized
	}
	if strings.TrimSpace(in.ParsedText) == "" {
		return resume.Record{}, ErrInvalidInput
	}

	rec := resume.Record{
		ID:         uuid.New(),
		UserID:     userID,
		FileURL:    strings.TrimSpace(in.FileURL),
		ParsedText: in.ParsedText,
		Skills:     in.Skills,
		Education:  toEntries(in.Education),
		Experience: toEntries(in.Experience),
		CreatedAt:  time.Now().UTC(),
	}

	if u.aiSvc != nil {
		if len(rec.Skills) == 0 {
			data, err := u.aiSvc.ExtractResumeData(ctx, in.ParsedText)
			if err != nil {
				u.logf("resume | user=%s extract_failed err=%v", userID, err)
			} else {
				rec.Skills = data.Skills
				rec.Education = toEntries(data.Education)
				rec.Experience = toEntries(data.Experience)
			}
		}

		// Embedding failure is not fatal: the record is stored without one
		// and recommendations use keyword matching until re-upload.
		emb, err := u.aiSvc.GenerateEmbedding(ctx, in.ParsedText)
		if err != nil {
			u.logf("resume | user=%s embedding_failed err=%v", userID, err)
		} else {
			rec.Embedding = emb
		}
	}

	if err := u.resumes.Insert(ctx, rec); err != nil {
		return resume.Record{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, recommendationKeyPrefix+userID.String()+":*")
	}
	return rec, nil
}

func (u *Resume) ListOwnResumes(ctx context.Context, userID uuid.UUID) ([]resume.Record, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.resumes.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func toEntries(items []string) []map[string]any {
	if len(items) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		out = append(out, map[string]any{"value": it})
	}
	return out
}

func (u *Resume) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
