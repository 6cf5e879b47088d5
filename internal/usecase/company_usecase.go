package usecase

import (
	"context"
	"errors"
	"strings"

	"intern-match/internal/domain/company"
	"intern-match/internal/repository"

	"github.com/google/uuid"
)

var ErrCompanyProfileNotFound = errors.New("company profile not found")

type UpsertCompanyProfileInput struct {
	CompanyName string
	LogoURL     *string
	Industry    string
	Location    string
	Website     string
}

type CompanyUsecase interface {
	UpsertProfile(ctx context.Context, userID uuid.UUID, in UpsertCompanyProfileInput) (company.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (company.Profile, error)
}

type Company struct {
	companies repository.CompanyRepository
}

func NewCompanyUsecase(companies repository.CompanyRepository) *Company {
	return &Company{companies: companies}
}

func (u *Company) UpsertProfile(ctx context.Context, userID uuid.UUID, in UpsertCompanyProfileInput) (company.Profile, error) {
	if userID == uuid.Nil {
		return company.Profile{}, ErrUnauthorized
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return company.Profile{}, ErrInvalidInput
	}

	p := company.Profile{
		UserID:      userID,
		CompanyName: strings.TrimSpace(in.CompanyName),
		LogoURL:     in.LogoURL,
		Industry:    strings.TrimSpace(in.Industry),
		Location:    strings.TrimSpace(in.Location),
		Website:     strings.TrimSpace(in.Website),
	}
	if err := u.companies.Upsert(ctx, p); err != nil {
		return company.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Company) GetProfile(ctx context.Context, userID uuid.UUID) (company.Profile, error) {
	if userID == uuid.Nil {
		return company.Profile{}, ErrUnauthorized
	}
	p, err := u.companies.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return company.Profile{}, ErrCompanyProfileNotFound
		}
		return company.Profile{}, ErrInternal
	}
	return p, nil
}
