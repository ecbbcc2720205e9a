package repository

import (
	"context"
	"encoding/json"

	"github.com/survey-manager/survey-backend/internal/logger"
	"github.com/survey-manager/survey-backend/internal/surveys/domain"
)

// CachedSurveyRepository decorates a SurveyRepository with write-through
// invalidation. The store is always written first; the cache is touched only
// after the store reported success, and cache failures are logged, not
// returned.
type CachedSurveyRepository struct {
	repo  SurveyRepository
	cache Cache
	log   *logger.Logger
}

func NewCachedSurveyRepository(repo SurveyRepository, cache Cache, log *logger.Logger) *CachedSurveyRepository {
	return &CachedSurveyRepository{
		repo:  repo,
		cache: cache,
		log:   log.With("component", "CachedSurveyRepository"),
	}
}

func (r *CachedSurveyRepository) Insert(ctx context.Context, s *domain.Survey) (string, bool, error) {
	id, ok, err := r.repo.Insert(ctx, s)
	if err != nil || !ok {
		return id, ok, err
	}
	r.writeThrough(ctx, s)
	return id, ok, nil
}

func (r *CachedSurveyRepository) Get(ctx context.Context, id string) (*domain.Survey, error) {
	return r.repo.Get(ctx, id)
}

func (r *CachedSurveyRepository) GetPaged(ctx context.Context, pageNum, pageSize int) ([]*domain.Survey, error) {
	return r.repo.GetPaged(ctx, pageNum, pageSize)
}

func (r *CachedSurveyRepository) Update(ctx context.Context, s *domain.Survey) (string, bool, error) {
	id, ok, err := r.repo.Update(ctx, s)
	if err != nil || !ok {
		return id, ok, err
	}
	r.writeThrough(ctx, s, s.ID())
	return id, ok, nil
}

// Remove invalidates the author's entries before the row is deleted. A survey
// that is already gone leaves the cache untouched.
func (r *CachedSurveyRepository) Remove(ctx context.Context, id string) (string, bool, error) {
	s, err := r.repo.Get(ctx, id)
	if err != nil {
		return "", false, err
	}
	if s == nil {
		return "", false, nil
	}

	r.invalidate(ctx, AuthorListKey(s.Author().String()), id)
	return r.repo.Remove(ctx, id)
}

// writeThrough stores the aggregate under its author's key and drops the
// author's list so the next list read goes to the store.
func (r *CachedSurveyRepository) writeThrough(ctx context.Context, s *domain.Survey, extra ...string) {
	author := s.Author().String()

	data, err := json.Marshal(s.Document())
	if err != nil {
		r.log.ForContext(ctx).Warn("cache encode failed", "survey_id", s.ID(), "error", err)
	} else if err := r.cache.Set(ctx, author, string(data)); err != nil {
		r.log.ForContext(ctx).Warn("cache write failed", "key", author, "error", err)
	}

	r.invalidate(ctx, append([]string{AuthorListKey(author)}, extra...)...)
}

func (r *CachedSurveyRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Delete(ctx, keys...); err != nil {
		r.log.ForContext(ctx).Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}
