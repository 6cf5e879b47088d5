package dto

import (
	"intern-match/internal/domain/company"

	"github.com/google/uuid"
)

type CompanyProfileResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	LogoURL     *string   `json:"logo_url"`
	Industry    string    `json:"industry"`
	Location    string    `json:"location"`
	Website     string    `json:"website"`
}

func NewCompanyProfileResponse(p company.Profile) CompanyProfileResponse {
	return CompanyProfileResponse{
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		LogoURL:     p.LogoURL,
		Industry:    p.Industry,
		Location:    p.Location,
		Website:     p.Website,
	}
}
