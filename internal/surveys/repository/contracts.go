package repository

import (
	"context"
	"errors"

	"github.com/survey-manager/survey-backend/internal/surveys/domain"
)

// SurveyRepository is the write-side collection of survey aggregates.
// Methods report "no such row" through their ok result or a nil survey, and
// reserve errors for infrastructure failures.
type SurveyRepository interface {
	// Insert returns ok == false when a survey with the same id exists.
	Insert(ctx context.Context, s *domain.Survey) (id string, ok bool, err error)
	// Get returns nil, nil when the survey does not exist.
	Get(ctx context.Context, id string) (*domain.Survey, error)
	GetPaged(ctx context.Context, pageNum, pageSize int) ([]*domain.Survey, error)
	// Update returns ok == false when no row matched.
	Update(ctx context.Context, s *domain.Survey) (id string, ok bool, err error)
	// Remove returns ok == false when no row matched.
	Remove(ctx context.Context, id string) (removedID string, ok bool, err error)
}

// ReadRepository serves read-optimized projections.
type ReadRepository interface {
	// GetSurveyForAuthor returns nil, nil when absent or owned by someone else.
	GetSurveyForAuthor(ctx context.Context, id, author string) (*domain.SurveyDocument, error)
	// GetSurveysByAuthor returns the author's full list, or nil when empty.
	GetSurveysByAuthor(ctx context.Context, author string) (*domain.SurveyList, error)
}

var ErrCacheMiss = errors.New("cache miss")

// Cache is a minimal string key/value store. Callers treat every error as a
// miss or a no-op.
type Cache interface {
	// Get returns ErrCacheMiss when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// EventPublisher fans committed-change events out to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// AuthorListKey is the cache key holding an author's full survey list.
func AuthorListKey(author string) string {
	return author + "_surveys"
}
