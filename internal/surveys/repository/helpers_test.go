package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/survey-manager/survey-backend/internal/surveys/domain"
)

func newSurvey(t *testing.T, author string) *domain.Survey {
	t.Helper()
	s, err := domain.NewSurvey(domain.CreateSurveyCommand{
		Author:      author,
		Title:       "Favorite bands poll",
		Description: "Pick your favorite band from the options below please",
		Category:    "music",
		Questions: []domain.CreateQuestionCommand{
			{
				QuestionType: "ranked",
				Title:        "Rank these bands",
				Choices: []domain.CreateChoiceCommand{
					{ContentType: "text", Title: "Band A"},
				},
			},
		},
	})
	require.NoError(t, err)
	return s
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// memorySurveyRepo is an in-memory SurveyRepository with per-call counters.
type memorySurveyRepo struct {
	mu      sync.Mutex
	surveys map[string]domain.SurveyDocument
	calls   map[string]int
}

func newMemorySurveyRepo() *memorySurveyRepo {
	return &memorySurveyRepo{
		surveys: map[string]domain.SurveyDocument{},
		calls:   map[string]int{},
	}
}

func (m *memorySurveyRepo) Insert(_ context.Context, s *domain.Survey) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["insert"]++
	if _, ok := m.surveys[s.ID()]; ok {
		return "", false, nil
	}
	m.surveys[s.ID()] = s.Document()
	s.MarkPersisted()
	return s.ID(), true, nil
}

func (m *memorySurveyRepo) Get(_ context.Context, id string) (*domain.Survey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["get"]++
	doc, ok := m.surveys[id]
	if !ok {
		return nil, nil
	}
	return domain.SurveyFromDocument(doc)
}

func (m *memorySurveyRepo) GetPaged(_ context.Context, _, _ int) ([]*domain.Survey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["get_paged"]++
	out := make([]*domain.Survey, 0, len(m.surveys))
	for _, doc := range m.surveys {
		s, err := domain.SurveyFromDocument(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memorySurveyRepo) Update(_ context.Context, s *domain.Survey) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["update"]++
	stored, ok := m.surveys[s.ID()]
	if !ok || stored.Version != s.StoredVersion() {
		return "", false, nil
	}
	m.surveys[s.ID()] = s.Document()
	s.MarkPersisted()
	return s.ID(), true, nil
}

func (m *memorySurveyRepo) Remove(_ context.Context, id string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["remove"]++
	if _, ok := m.surveys[id]; !ok {
		return "", false, nil
	}
	delete(m.surveys, id)
	return id, true, nil
}

// GetSurveyForAuthor and GetSurveysByAuthor let the same store back the read
// side, like the shared table does in production.
func (m *memorySurveyRepo) GetSurveyForAuthor(_ context.Context, id, author string) (*domain.SurveyDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["read_one"]++
	doc, ok := m.surveys[id]
	if !ok || doc.Author != author {
		return nil, nil
	}
	return &doc, nil
}

func (m *memorySurveyRepo) GetSurveysByAuthor(_ context.Context, author string) (*domain.SurveyList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["read_list"]++
	var list []domain.ListViewSurvey
	for _, doc := range m.surveys {
		if doc.Author != author {
			continue
		}
		list = append(list, domain.ListViewSurvey{
			ID:       doc.ID,
			Author:   doc.Author,
			Title:    doc.Title,
			Category: doc.Category.String(),
		})
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &domain.SurveyList{Surveys: list}, nil
}

func (m *memorySurveyRepo) count(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// failingCache fails every operation.
type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, error) { return "", errCacheDown }
func (failingCache) Set(context.Context, string, string) error   { return errCacheDown }
func (failingCache) Delete(context.Context, ...string) error     { return errCacheDown }

var errCacheDown = errors.New("cache unavailable")
