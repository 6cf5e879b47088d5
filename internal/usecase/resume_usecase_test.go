package usecase

import (
	"context"
	"errors"
	"testing"

	"intern-match/internal/domain/vector"
	"intern-match/internal/infrastructure/ai"

	"github.com/google/uuid"
)

func TestCreateResume_RejectsEmptyText(t *testing.T) {
	uc := NewResumeUsecase(&mockResumeRepo{}, nil, nil, nil)

	_, err := uc.CreateResume(context.Background(), uuid.New(), CreateResumeInput{ParsedText: "   "})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateResume_ExtractsWhenSkillsMissing(t *testing.T) {
	repo := &mockResumeRepo{}
	aiSvc := &mockAIClient{
		embedding: vector.Vector{0.1, 0.2, 0.3},
		data: ai.ResumeData{
			Skills:     []string{"python", "sql"},
			Education:  []string{"Bachelor of CS"},
			Experience: []string{"Data intern at Example Corp"},
		},
	}
	uc := NewResumeUsecase(repo, aiSvc, nil, nil)

	rec, err := uc.CreateResume(context.Background(), uuid.New(), CreateResumeInput{
		ParsedText: "python sql bachelor",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if aiSvc.extractCalls != 1 {
		t.Fatalf("expected one extract call, got %d", aiSvc.extractCalls)
	}
	if len(rec.Skills) != 2 || rec.Skills[0] != "python" {
		t.Fatalf("unexpected skills: %v", rec.Skills)
	}
	if len(rec.Embedding) != 3 {
		t.Fatalf("expected embedding stored, got %v", rec.Embedding)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.inserted))
	}
}

func TestCreateResume_SkipsExtractionWhenSkillsProvided(t *testing.T) {
	aiSvc := &mockAIClient{embedding: vector.Vector{0.1}}
	uc := NewResumeUsecase(&mockResumeRepo{}, aiSvc, nil, nil)

	rec, err := uc.CreateResume(context.Background(), uuid.New(), CreateResumeInput{
		ParsedText: "resume text",
		Skills:     []string{"go"},
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if aiSvc.extractCalls != 0 {
		t.Fatalf("expected no extract call, got %d", aiSvc.extractCalls)
	}
	if len(rec.Skills) != 1 || rec.Skills[0] != "go" {
		t.Fatalf("unexpected skills: %v", rec.Skills)
	}
}

func TestCreateResume_EmbeddingFailureIsNotFatal(t *testing.T) {
	repo := &mockResumeRepo{}
	aiSvc := &mockAIClient{embErr: errors.New("service down")}
	uc := NewResumeUsecase(repo, aiSvc, nil, nil)

	rec, err := uc.CreateResume(context.Background(), uuid.New(), CreateResumeInput{
		ParsedText: "resume text",
		Skills:     []string{"go"},
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if rec.HasEmbedding() {
		t.Fatalf("expected record without embedding")
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected record stored anyway, got %d inserts", len(repo.inserted))
	}
}

func TestCreateResume_InvalidatesOwnCachedRecommendations(t *testing.T) {
	cache := newMockCache()
	userID := uuid.New()
	uc := NewResumeUsecase(&mockResumeRepo{}, nil, cache, nil)

	if _, err := uc.CreateResume(context.Background(), userID, CreateResumeInput{
		ParsedText: "resume text",
		Skills:     []string{"go"},
	}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(cache.deletedPatterns) != 1 {
		t.Fatalf("expected one pattern delete, got %v", cache.deletedPatterns)
	}
	want := recommendationKeyPrefix + userID.String() + ":*"
	if cache.deletedPatterns[0] != want {
		t.Fatalf("expected pattern %q, got %q", want, cache.deletedPatterns[0])
	}
}
