package usecase

import (
	"context"
	"errors"
	"testing"

	"intern-match/internal/domain/company"
	"intern-match/internal/domain/vector"

	"github.com/google/uuid"
)

func TestCreateJob_RejectsEmptyRole(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{}, &mockCompanyRepo{}, nil, nil, nil, nil)

	_, err := uc.CreateJob(context.Background(), uuid.New(), CreateJobInput{Role: "  "})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateJob_DenormalizesCompanyName(t *testing.T) {
	companyID := uuid.New()
	jobs := &mockJobRepo{}
	companies := &mockCompanyRepo{profiles: map[uuid.UUID]company.Profile{
		companyID: {UserID: companyID, CompanyName: "Acme Labs"},
	}}
	uc := NewJobUsecase(jobs, companies, nil, nil, nil, nil)

	posting, err := uc.CreateJob(context.Background(), companyID, CreateJobInput{
		Role:     "Backend Intern",
		WorkMode: "Remote",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if posting.CompanyName != "Acme Labs" {
		t.Fatalf("expected denormalized name, got %q", posting.CompanyName)
	}
	if string(posting.WorkMode) != "remote" {
		t.Fatalf("expected normalized work mode, got %q", posting.WorkMode)
	}
	if len(jobs.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(jobs.inserted))
	}
}

func TestCreateJob_EmbeddingFailureStoresWithoutEmbedding(t *testing.T) {
	jobs := &mockJobRepo{}
	aiSvc := &mockAIClient{embErr: errors.New("service down")}
	uc := NewJobUsecase(jobs, &mockCompanyRepo{}, aiSvc, nil, nil, nil)

	posting, err := uc.CreateJob(context.Background(), uuid.New(), CreateJobInput{Role: "Backend Intern"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if posting.HasEmbedding() {
		t.Fatalf("expected posting without embedding")
	}
	if len(jobs.inserted) != 1 {
		t.Fatalf("expected posting stored anyway, got %d inserts", len(jobs.inserted))
	}
}

func TestCreateJob_EmbedsNotifiesAndInvalidates(t *testing.T) {
	companyID := uuid.New()
	jobs := &mockJobRepo{}
	companies := &mockCompanyRepo{profiles: map[uuid.UUID]company.Profile{
		companyID: {UserID: companyID, CompanyName: "Acme Labs"},
	}}
	aiSvc := &mockAIClient{embedding: vector.Vector{0.5, 0.5}}
	cache := newMockCache()
	notifier := &mockNotifier{}
	uc := NewJobUsecase(jobs, companies, aiSvc, cache, notifier, nil)

	posting, err := uc.CreateJob(context.Background(), companyID, CreateJobInput{Role: "Backend Intern"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !posting.HasEmbedding() {
		t.Fatalf("expected embedding on posting")
	}
	if len(notifier.events) != 1 || notifier.events[0] != "Backend Intern|Acme Labs" {
		t.Fatalf("unexpected notifications: %v", notifier.events)
	}
	if len(cache.deletedPatterns) != 1 || cache.deletedPatterns[0] != recommendationKeyPrefix+"*" {
		t.Fatalf("expected global cache invalidation, got %v", cache.deletedPatterns)
	}
}

func TestListOwnJobs_RejectsNilCompany(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{}, &mockCompanyRepo{}, nil, nil, nil, nil)

	_, err := uc.ListOwnJobs(context.Background(), uuid.Nil)
	if err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
