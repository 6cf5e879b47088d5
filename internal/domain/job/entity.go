package job

import (
	"time"

	"intern-match/internal/domain/vector"

	"github.com/google/uuid"
)

type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"
)

// Posting is a company job listing. The ranking core treats postings as
// read-only; Embedding is nil when the AI service was unavailable at posting
// time, in which case the posting only participates in keyword ranking.
type Posting struct {
	ID        uuid.UUID
	CompanyID uuid.UUID

	// Denormalized for display resilience when the company profile is absent.
	CompanyName string

	Role           string
	Description    string
	Requirements   string
	Location       string
	WorkMode       WorkMode
	JobType        string
	DurationMonths int

	StipendAmount   *float64
	StipendCurrency *string
	StipendType     *string

	Embedding vector.Vector
	CreatedAt time.Time
}

func (p Posting) HasEmbedding() bool {
	return len(p.Embedding) > 0
}
