package repository

import (
	"context"
	"errors"

	"intern-match/internal/database"
	"intern-match/internal/domain/company"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCompanyNotFound = errors.New("company profile not found")

type CompanyRepository interface {
	Upsert(ctx context.Context, p company.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (company.Profile, error)
	GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]company.Profile, error)
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) Upsert(ctx context.Context, p company.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (user_id, company_name, logo_url, industry, location, website)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
		   company_name = EXCLUDED.company_name,
		   logo_url = EXCLUDED.logo_url,
		   industry = EXCLUDED.industry,
		   location = EXCLUDED.location,
		   website = EXCLUDED.website`,
		p.UserID, p.CompanyName, p.LogoURL, p.Industry, p.Location, p.Website,
	)
	return err
}

func (r *PostgresCompanyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (company.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, COALESCE(company_name, ''), logo_url,
		        COALESCE(industry, ''), COALESCE(location, ''), COALESCE(website, '')
		 FROM companies WHERE user_id = $1`,
		userID,
	)

	var p company.Profile
	if err := row.Scan(&p.UserID, &p.CompanyName, &p.LogoURL, &p.Industry, &p.Location, &p.Website); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Profile{}, ErrCompanyNotFound
		}
		return company.Profile{}, err
	}
	return p, nil
}

func (r *PostgresCompanyRepository) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]company.Profile, error) {
	out := make(map[uuid.UUID]company.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT user_id, COALESCE(company_name, ''), logo_url,
		        COALESCE(industry, ''), COALESCE(location, ''), COALESCE(website, '')
		 FROM companies WHERE user_id = ANY($1)`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p company.Profile
		if err := rows.Scan(&p.UserID, &p.CompanyName, &p.LogoURL, &p.Industry, &p.Location, &p.Website); err != nil {
			return nil, err
		}
		out[p.UserID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
