package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"intern-match/internal/domain/company"
	"intern-match/internal/domain/job"
	"intern-match/internal/domain/resume"
	"intern-match/internal/domain/vector"
	"intern-match/internal/infrastructure/ai"
	"intern-match/internal/repository"

	"github.com/google/uuid"
)

type mockResumeRepo struct {
	latest    resume.Record
	latestErr error

	list    []resume.Record
	listErr error

	inserted  []resume.Record
	insertErr error

	latestCalls int
}

func (m *mockResumeRepo) Insert(_ context.Context, r resume.Record) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, r)
	return nil
}

func (m *mockResumeRepo) LatestByUser(_ context.Context, _ uuid.UUID) (resume.Record, error) {
	m.latestCalls++
	if m.latestErr != nil {
		return resume.Record{}, m.latestErr
	}
	return m.latest, nil
}

func (m *mockResumeRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]resume.Record, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.list, nil
}

type mockJobRepo struct {
	all      []job.Posting
	embedded []job.Posting

	allErr      error
	embeddedErr error

	inserted  []job.Posting
	insertErr error
}

func (m *mockJobRepo) Insert(_ context.Context, p job.Posting) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, p)
	return nil
}

func (m *mockJobRepo) ListAll(_ context.Context) ([]job.Posting, error) {
	if m.allErr != nil {
		return nil, m.allErr
	}
	return m.all, nil
}

func (m *mockJobRepo) ListWithEmbeddings(_ context.Context) ([]job.Posting, error) {
	if m.embeddedErr != nil {
		return nil, m.embeddedErr
	}
	return m.embedded, nil
}

func (m *mockJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]job.Posting, error) {
	out := []job.Posting{}
	for _, p := range m.all {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockCompanyRepo struct {
	profiles map[uuid.UUID]company.Profile

	upserted  []company.Profile
	upsertErr error
}

func (m *mockCompanyRepo) Upsert(_ context.Context, p company.Profile) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, p)
	return nil
}

func (m *mockCompanyRepo) GetByUserID(_ context.Context, userID uuid.UUID) (company.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return company.Profile{}, repository.ErrCompanyNotFound
	}
	return p, nil
}

func (m *mockCompanyRepo) GetByUserIDs(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]company.Profile, error) {
	out := make(map[uuid.UUID]company.Profile, len(userIDs))
	for _, id := range userIDs {
		if p, ok := m.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type mockCache struct {
	store map[string][]byte

	deletedKeys     []string
	deletedPatterns []string
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deletedKeys = append(m.deletedKeys, key)
	delete(m.store, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.store {
		if strings.HasPrefix(k, prefix) {
			delete(m.store, k)
		}
	}
	return nil
}

type mockAIClient struct {
	embedding vector.Vector
	embErr    error

	data       ai.ResumeData
	extractErr error

	embedCalls   int
	extractCalls int
}

func (m *mockAIClient) GenerateEmbedding(_ context.Context, _ string) (vector.Vector, error) {
	m.embedCalls++
	if m.embErr != nil {
		return nil, m.embErr
	}
	return m.embedding, nil
}

func (m *mockAIClient) ExtractResumeData(_ context.Context, _ string) (ai.ResumeData, error) {
	m.extractCalls++
	if m.extractErr != nil {
		return ai.ResumeData{}, m.extractErr
	}
	return m.data, nil
}

type mockNotifier struct {
	events []string
}

func (m *mockNotifier) NotifyJobPosted(role, companyName string) {
	m.events = append(m.events, role+"|"+companyName)
}
