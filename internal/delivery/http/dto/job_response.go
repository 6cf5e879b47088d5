package dto

import (
	"time"

	"intern-match/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      uuid.UUID `json:"company_id"`
	CompanyName    string    `json:"company_name"`
	Role           string    `json:"role"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	Location       string    `json:"location"`
	WorkMode       string    `json:"work_mode"`
	JobType        string    `json:"job_type"`
	DurationMonths int       `json:"duration_months"`

	StipendAmount   *float64 `json:"stipend_amount"`
	StipendCurrency *string  `json:"stipend_currency"`
	StipendType     *string  `json:"stipend_type"`

	CreatedAt time.Time `json:"created_at"`
}

func NewJobResponse(p job.Posting) JobResponse {
	return JobResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		CompanyName:     p.CompanyName,
		Role:            p.Role,
		Description:     p.Description,
		Requirements:    p.Requirements,
		Location:        p.Location,
		WorkMode:        string(p.WorkMode),
		JobType:         p.JobType,
		DurationMonths:  p.DurationMonths,
		StipendAmount:   p.StipendAmount,
		StipendCurrency: p.StipendCurrency,
		StipendType:     p.StipendType,
		CreatedAt:       p.CreatedAt,
	}
}

func NewJobListResponse(postings []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(postings))
	for _, p := range postings {
		out = append(out, NewJobResponse(p))
	}
	return out
}
