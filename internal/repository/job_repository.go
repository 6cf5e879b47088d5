package repository

import (
	"context"
	"errors"

	"intern-match/internal/database"
	"intern-match/internal/domain/job"
	"intern-match/internal/domain/vector"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Insert(ctx context.Context, p job.Posting) error
	ListAll(ctx context.Context) ([]job.Posting, error)
	ListWithEmbeddings(ctx context.Context) ([]job.Posting, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Insert(ctx context.Context, p job.Posting) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, company_id, company_name, role, description, requirements,
		                   location, work_mode, job_type, duration_months,
		                   stipend_amount, stipend_currency, stipend_type, embedding)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.CompanyID, p.CompanyName, p.Role, p.Description, p.Requirements,
		p.Location, string(p.WorkMode), p.JobType, p.DurationMonths,
		p.StipendAmount, p.StipendCurrency, p.StipendType, embeddingParam(p.Embedding),
	)
	return err
}

const jobColumns = `id, company_id, COALESCE(company_name, ''), COALESCE(role, ''),
		        COALESCE(description, ''), COALESCE(requirements, ''), COALESCE(location, ''),
		        COALESCE(work_mode, ''), COALESCE(job_type, ''), COALESCE(duration_months, 0),
		        stipend_amount, stipend_currency, stipend_type, embedding::text, created_at`

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListWithEmbeddings(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE embedding IS NOT NULL ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postings, err := collectJobs(rows)
	if err != nil {
		return nil, err
	}

	// A row whose stored embedding failed to parse is excluded from the
	// vector path; it still surfaces through ListAll for keyword ranking.
	out := postings[:0]
	for _, p := range postings {
		if p.HasEmbedding() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func collectJobs(rows database.Rows) ([]job.Posting, error) {
	out := make([]job.Posting, 0)
	for rows.Next() {
		var (
			p         job.Posting
			workMode  string
			embedding *string
		)
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.CompanyName, &p.Role,
			&p.Description, &p.Requirements, &p.Location,
			&workMode, &p.JobType, &p.DurationMonths,
			&p.StipendAmount, &p.StipendCurrency, &p.StipendType,
			&embedding, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.WorkMode = job.WorkMode(workMode)
		if embedding != nil {
			if v, err := vector.Parse(*embedding); err == nil {
				p.Embedding = v
			}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
