package seeder

import (
	"context"
	"fmt"

	"intern-match/internal/database"
	"intern-match/internal/domain/company"
	"intern-match/internal/domain/job"
	"intern-match/internal/domain/user"
	"intern-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoSeeder creates one company account with a handful of internship
// postings plus a candidate account, enough to exercise the keyword
// recommendation path end to end on a fresh database.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

const (
	demoCompanyEmail   = "talent@acmelabs.example"
	demoCandidateEmail = "candidate@example.com"
	demoPassword       = "password123"
)

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	users := repository.NewPostgresUserRepository(db)
	companies := repository.NewPostgresCompanyRepository(db)
	jobs := repository.NewPostgresJobRepository(db)

	companyID, created, err := ensureUser(ctx, users, demoCompanyEmail, user.RoleCompany)
	if err != nil {
		return err
	}
	if _, _, err := ensureUser(ctx, users, demoCandidateEmail, user.RoleCandidate); err != nil {
		return err
	}
	if !created {
		return nil
	}

	profile := company.Profile{
		UserID:      companyID,
		CompanyName: "Acme Labs",
		Industry:    "software",
		Location:    "Jakarta, ID",
		Website:     "https://acmelabs.example",
	}
	if err := companies.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("seed company profile: %w", err)
	}

	for _, p := range demoPostings(companyID, profile.CompanyName) {
		if err := jobs.Insert(ctx, p); err != nil {
			return fmt.Errorf("seed job %q: %w", p.Role, err)
		}
	}
	return nil
}

func ensureUser(ctx context.Context, users repository.UserRepository, email string, role user.Role) (uuid.UUID, bool, error) {
	existing, err := users.GetUserByEmail(ctx, email)
	if err == nil {
		return existing.ID, false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, false, err
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := users.CreateUser(ctx, u); err != nil {
		return uuid.Nil, false, fmt.Errorf("seed user %s: %w", email, err)
	}
	return u.ID, true, nil
}

func demoPostings(companyID uuid.UUID, companyName string) []job.Posting {
	return []job.Posting{
		{
			ID:             uuid.New(),
			CompanyID:      companyID,
			CompanyName:    companyName,
			Role:           "Frontend Developer Intern",
			Description:    "Build user-facing features with React and TypeScript alongside the product team.",
			Requirements:   "Familiarity with JavaScript, React, HTML and CSS. Git experience is a plus.",
			Location:       "Jakarta, ID",
			WorkMode:       job.WorkModeHybrid,
			JobType:        "internship",
			DurationMonths: 6,
		},
		{
			ID:             uuid.New(),
			CompanyID:      companyID,
			CompanyName:    companyName,
			Role:           "Backend Engineer Intern",
			Description:    "Work on REST APIs in Go and Node.js backed by PostgreSQL and Redis.",
			Requirements:   "Basic SQL knowledge. Exposure to Docker and AWS is welcome.",
			Location:       "Remote",
			WorkMode:       job.WorkModeRemote,
			JobType:        "internship",
			DurationMonths: 3,
		},
		{
			ID:             uuid.New(),
			CompanyID:      companyID,
			CompanyName:    companyName,
			Role:           "Data Analyst Intern",
			Description:    "Analyze product metrics with Python and SQL, build dashboards for the growth team.",
			Requirements:   "Python, SQL, and a university degree in progress. Entry level applicants welcome.",
			Location:       "Bandung, ID",
			WorkMode:       job.WorkModeOnsite,
			JobType:        "internship",
			DurationMonths: 6,
		},
	}
}
