package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/survey-manager/survey-backend/internal/logger"
	"github.com/survey-manager/survey-backend/internal/surveys/domain"
)

// CachedReadRepository is a cache-aside decorator over a ReadRepository.
// The cache is only an optimization: cache failures degrade to store reads
// and never fail the caller.
type CachedReadRepository struct {
	repo  ReadRepository
	cache Cache
	log   *logger.Logger
	group singleflight.Group
}

func NewCachedReadRepository(repo ReadRepository, cache Cache, log *logger.Logger) *CachedReadRepository {
	return &CachedReadRepository{
		repo:  repo,
		cache: cache,
		log:   log.With("component", "CachedReadRepository"),
	}
}

func (r *CachedReadRepository) GetSurveyForAuthor(ctx context.Context, id, author string) (*domain.SurveyDocument, error) {
	var doc domain.SurveyDocument
	// the key space is shared with author keys, so a hit for another id is a miss
	if r.lookup(ctx, id, &doc) && doc.ID == id {
		// entries are keyed by id alone; ownership is checked on every hit
		if doc.Author != author {
			return nil, nil
		}
		return &doc, nil
	}

	v, err, _ := r.group.Do("survey:"+id+":"+author, func() (interface{}, error) {
		sctx := context.WithoutCancel(ctx)
		found, err := r.repo.GetSurveyForAuthor(sctx, id, author)
		if err != nil || found == nil {
			return found, err
		}
		r.populate(sctx, id, found)
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.SurveyDocument), nil
}

// GetSurveysByAuthor caches the author's full list; paging is applied by the
// caller so one entry serves every page.
func (r *CachedReadRepository) GetSurveysByAuthor(ctx context.Context, author string) (*domain.SurveyList, error) {
	key := AuthorListKey(author)

	var list domain.SurveyList
	if r.lookup(ctx, key, &list) {
		return &list, nil
	}

	v, err, _ := r.group.Do("list:"+key, func() (interface{}, error) {
		sctx := context.WithoutCancel(ctx)
		found, err := r.repo.GetSurveysByAuthor(sctx, author)
		if err != nil || found == nil {
			return found, err
		}
		r.populate(sctx, key, found)
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.SurveyList), nil
}

// lookup reports a usable hit. Cache errors and entries that do not decode
// strictly into the target type count as misses.
func (r *CachedReadRepository) lookup(ctx context.Context, key string, into interface{}) bool {
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			r.log.ForContext(ctx).Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		r.log.ForContext(ctx).Warn("discarding undecodable cache entry", "key", key, "error", err)
		return false
	}
	return true
}

func (r *CachedReadRepository) populate(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		r.log.ForContext(ctx).Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := r.cache.Set(ctx, key, string(data)); err != nil {
		r.log.ForContext(ctx).Warn("cache populate failed", "key", key, "error", err)
	}
}
