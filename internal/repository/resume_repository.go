package repository

import (
	"context"
	"encoding/json"
	"errors"

	"intern-match/internal/database"
	"intern-match/internal/domain/resume"
	"intern-match/internal/domain/vector"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgv "github.com/pgvector/pgvector-go"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Insert(ctx context.Context, r resume.Record) error
	LatestByUser(ctx context.Context, userID uuid.UUID) (resume.Record, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]resume.Record, error)
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Insert(ctx context.Context, rec resume.Record) error {
	skills, err := json.Marshal(rec.Skills)
	if err != nil {
		return err
	}
	education, err := json.Marshal(rec.Education)
	if err != nil {
		return err
	}
	experience, err := json.Marshal(rec.Experience)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO resumes (id, user_id, file_url, parsed_text, skills, education, experience, embedding)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.UserID, rec.FileURL, rec.ParsedText,
		skills, education, experience, embeddingParam(rec.Embedding),
	)
	return err
}

func (r *PostgresResumeRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (resume.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, COALESCE(file_url, ''), COALESCE(parsed_text, ''),
		        COALESCE(skills, 'null'), COALESCE(education, 'null'), COALESCE(experience, 'null'),
		        embedding::text, created_at
		 FROM resumes
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID,
	)
	rec, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Record{}, ErrResumeNotFound
		}
		return resume.Record{}, err
	}
	return rec, nil
}

func (r *PostgresResumeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]resume.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, COALESCE(file_url, ''), COALESCE(parsed_text, ''),
		        COALESCE(skills, 'null'), COALESCE(education, 'null'), COALESCE(experience, 'null'),
		        embedding::text, created_at
		 FROM resumes
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Record, 0)
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResume(row scanner) (resume.Record, error) {
	var (
		rec        resume.Record
		skills     []byte
		education  []byte
		experience []byte
		embedding  *string
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.FileURL, &rec.ParsedText,
		&skills, &education, &experience, &embedding, &rec.CreatedAt); err != nil {
		return resume.Record{}, err
	}

	// Malformed stored skills degrade to empty rather than failing the read;
	// ranking tolerates an empty skill list.
	if err := json.Unmarshal(skills, &rec.Skills); err != nil {
		rec.Skills = nil
	}
	_ = json.Unmarshal(education, &rec.Education)
	_ = json.Unmarshal(experience, &rec.Experience)

	if embedding != nil {
		// An unparseable stored embedding leaves the record embedding-less;
		// the orchestrator then routes to keyword matching instead of failing.
		if v, err := vector.Parse(*embedding); err == nil {
			rec.Embedding = v
		}
	}
	return rec, nil
}

// embeddingParam converts a domain vector into the pgvector wire type; nil
// stays NULL so embedding-less rows are queryable with IS NULL.
func embeddingParam(v vector.Vector) any {
	if len(v) == 0 {
		return nil
	}
	f := make([]float32, len(v))
	for i, x := range v {
		f[i] = float32(x)
	}
	return pgv.NewVector(f)
}
