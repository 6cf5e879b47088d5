package company

import "github.com/google/uuid"

// PlaceholderName is shown when a posting's owning company has no profile.
const PlaceholderName = "Company"

// Profile carries display enrichment for ranked results. It never feeds
// scoring.
type Profile struct {
	UserID      uuid.UUID
	CompanyName string
	LogoURL     *string
	Industry    string
	Location    string
	Website     string
}
