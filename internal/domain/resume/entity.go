package resume

import (
	"time"

	"intern-match/internal/domain/vector"

	"github.com/google/uuid"
)

// Record is an uploaded resume. Records are immutable: a re-upload creates a
// new row, and ranking always uses the owner's most recent record.
type Record struct {
	ID     uuid.UUID
	UserID uuid.UUID

	FileURL    string
	ParsedText string

	// Skills may contain duplicates; callers must tolerate them.
	Skills     []string
	Education  []map[string]any
	Experience []map[string]any

	Embedding vector.Vector
	CreatedAt time.Time
}

func (r Record) HasEmbedding() bool {
	return len(r.Embedding) > 0
}
