package service

import (
	"context"

	"github.com/survey-manager/survey-backend/internal/surveys/domain"
	"github.com/survey-manager/survey-backend/internal/surveys/repository"
)

// QueryService serves read projections. The cached and direct read
// repositories are usually the same store with and without the cache
// decorator.
type QueryService struct {
	cached repository.ReadRepository
	direct repository.ReadRepository
}

func NewQueryService(cached, direct repository.ReadRepository) *QueryService {
	return &QueryService{cached: cached, direct: direct}
}

// FindSurvey returns the survey if it exists and belongs to the requesting
// author.
func (s *QueryService) FindSurvey(ctx context.Context, q domain.FindSurveyQuery) (*domain.SurveyDocument, error) {
	return s.find(ctx, s.cached, q)
}

// FindSurveyUncached is FindSurvey without the cache in front of the store.
func (s *QueryService) FindSurveyUncached(ctx context.Context, q domain.FindSurveyQuery) (*domain.SurveyDocument, error) {
	return s.find(ctx, s.direct, q)
}

func (s *QueryService) find(ctx context.Context, repo repository.ReadRepository, q domain.FindSurveyQuery) (*domain.SurveyDocument, error) {
	doc, err := repo.GetSurveyForAuthor(ctx, q.ID, q.RequestingAuthor)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.SurveyNotFound(q.ID)
	}
	return doc, nil
}

// FindSurveysByAuthor returns one page of the author's surveys. The full list
// is fetched (and cached) once; the page is cut here.
func (s *QueryService) FindSurveysByAuthor(ctx context.Context, q domain.FindSurveysByAuthorQuery) (*domain.SurveyList, error) {
	lower, upper, err := q.Page.Bounds()
	if err != nil {
		return nil, err
	}

	list, err := s.cached.GetSurveysByAuthor(ctx, q.Author)
	if err != nil {
		return nil, err
	}

	page := list.Bounded(lower, upper)
	if page == nil {
		return &domain.SurveyList{Surveys: []domain.ListViewSurvey{}}, nil
	}
	return page, nil
}
