package migration

import (
	"context"
	"errors"
	"fmt"

	"intern-match/internal/database"
)

// Migration is one idempotent schema step. Versions must be unique and are
// applied in ascending order.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// All returns the schema in application order. Statements are written to be
// re-runnable; the version table exists to keep startup logs honest.
func All() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "enable_pgvector",
			SQL:     `CREATE EXTENSION IF NOT EXISTS vector`,
		},
		{
			Version: 2,
			Name:    "create_users",
			SQL: `CREATE TABLE IF NOT EXISTS users (
				id UUID PRIMARY KEY,
				email TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				role TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
		},
		{
			Version: 3,
			Name:    "create_companies",
			SQL: `CREATE TABLE IF NOT EXISTS companies (
				user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
				company_name TEXT NOT NULL,
				logo_url TEXT,
				industry TEXT NOT NULL DEFAULT '',
				location TEXT NOT NULL DEFAULT '',
				website TEXT NOT NULL DEFAULT ''
			)`,
		},
		{
			Version: 4,
			Name:    "create_resumes",
			SQL: `CREATE TABLE IF NOT EXISTS resumes (
				id UUID PRIMARY KEY,
				user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				file_url TEXT NOT NULL DEFAULT '',
				parsed_text TEXT NOT NULL DEFAULT '',
				skills JSONB,
				education JSONB,
				experience JSONB,
				embedding vector(384),
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
		},
		{
			Version: 5,
			Name:    "create_jobs",
			SQL: `CREATE TABLE IF NOT EXISTS jobs (
				id UUID PRIMARY KEY,
				company_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				company_name TEXT NOT NULL DEFAULT '',
				role TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				requirements TEXT NOT NULL DEFAULT '',
				location TEXT NOT NULL DEFAULT '',
				work_mode TEXT NOT NULL DEFAULT 'onsite',
				job_type TEXT NOT NULL DEFAULT '',
				duration_months INT NOT NULL DEFAULT 0,
				stipend_amount NUMERIC,
				stipend_currency TEXT,
				stipend_type TEXT,
				embedding vector(384),
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
		},
		{
			Version: 6,
			Name:    "index_resumes_user_created",
			SQL:     `CREATE INDEX IF NOT EXISTS idx_resumes_user_created ON resumes (user_id, created_at DESC)`,
		},
		{
			Version: 7,
			Name:    "index_jobs_company",
			SQL:     `CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs (company_id)`,
		},
	}
}

// Run applies all pending migrations. An advisory lock keeps concurrent
// replicas from racing on startup.
func Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	if _, err := db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INT PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	const lockKey = 839106227
	if _, err := db.Exec(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	defer func() {
		_, _ = db.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	for _, m := range All() {
		applied, err := isApplied(ctx, db, m.Version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if _, err := db.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply migration version=%d name=%s: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
			m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("record migration version=%d: %w", m.Version, err)
		}
	}
	return nil
}

func isApplied(ctx context.Context, db database.DB, version int) (bool, error) {
	var count int
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations WHERE version = $1`, version)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("check migration version=%d: %w", version, err)
	}
	return count > 0, nil
}
