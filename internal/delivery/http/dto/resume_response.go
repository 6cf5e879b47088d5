package dto

import (
	"time"

	"intern-match/internal/domain/resume"

	"github.com/google/uuid"
)

// ResumeResponse never exposes the raw embedding; it is internal ranking
// state, not API data.
type ResumeResponse struct {
	ID           uuid.UUID        `json:"id"`
	FileURL      string           `json:"file_url"`
	Skills       []string         `json:"skills"`
	Education    []map[string]any `json:"education"`
	Experience   []map[string]any `json:"experience"`
	HasEmbedding bool             `json:"has_embedding"`
	CreatedAt    time.Time        `json:"created_at"`
}

func NewResumeResponse(r resume.Record) ResumeResponse {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return ResumeResponse{
		ID:           r.ID,
		FileURL:      r.FileURL,
		Skills:       skills,
		Education:    r.Education,
		Experience:   r.Experience,
		HasEmbedding: r.HasEmbedding(),
		CreatedAt:    r.CreatedAt,
	}
}

func NewResumeListResponse(records []resume.Record) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewResumeResponse(r))
	}
	return out
}
