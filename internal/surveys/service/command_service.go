package service

import (
	"context"
	"fmt"

	"github.com/survey-manager/survey-backend/internal/logger"
	"github.com/survey-manager/survey-backend/internal/surveys/domain"
	"github.com/survey-manager/survey-backend/internal/surveys/repository"
)

// CommandService handles survey creation, patching and removal
type CommandService struct {
	repo   repository.SurveyRepository
	events repository.EventPublisher
	log    *logger.Logger
}

// NewCommandService creates a new command service. events may be nil.
func NewCommandService(repo repository.SurveyRepository, events repository.EventPublisher, log *logger.Logger) *CommandService {
	return &CommandService{
		repo:   repo,
		events: events,
		log:    log.With("component", "CommandService"),
	}
}

// UpdateResult reports the stored state after a successful update.
type UpdateResult struct {
	ID      string
	Version uint64
}

// CreateSurvey builds a new survey and stores it, returning its id.
func (s *CommandService) CreateSurvey(ctx context.Context, cmd domain.CreateSurveyCommand) (string, error) {
	survey, err := domain.NewSurvey(cmd)
	if err != nil {
		return "", err
	}

	id, ok, err := s.repo.Insert(ctx, survey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("survey %s: %w", survey.ID(), domain.ErrAlreadyExists)
	}

	s.publish(ctx, survey.CreatedEvent())
	return id, nil
}

// UpdateSurvey applies a partial changeset to a survey owned by cmd.Author.
func (s *CommandService) UpdateSurvey(ctx context.Context, cmd domain.UpdateSurveyCommand) (*UpdateResult, error) {
	survey, err := s.load(ctx, cmd.ID, cmd.Author)
	if err != nil {
		return nil, err
	}

	event, err := survey.Apply(cmd)
	if err != nil {
		return nil, err
	}

	id, ok, err := s.repo.Update(ctx, survey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("update survey %s: %w", cmd.ID, domain.ErrConcurrencyFailure)
	}

	s.publish(ctx, event)
	return &UpdateResult{ID: id, Version: survey.Version()}, nil
}

// RemoveSurvey deletes a survey owned by cmd.RequestingAuthor.
func (s *CommandService) RemoveSurvey(ctx context.Context, cmd domain.RemoveSurveyCommand) (string, error) {
	if _, err := s.load(ctx, cmd.ID, cmd.RequestingAuthor); err != nil {
		return "", err
	}

	id, ok, err := s.repo.Remove(ctx, cmd.ID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("remove survey %s: %w", cmd.ID, domain.ErrConcurrencyFailure)
	}

	s.publish(ctx, domain.NewSurveyRemoved(id, cmd.RequestingAuthor))
	return id, nil
}

// load fetches a survey and checks ownership before anything is mutated.
func (s *CommandService) load(ctx context.Context, id, author string) (*domain.Survey, error) {
	survey, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, domain.SurveyNotFound(id)
	}
	if !survey.BelongsTo(author) {
		return nil, fmt.Errorf("survey %s: %w", id, domain.ErrNotAuthorized)
	}
	return survey, nil
}

// publish is best effort: the write has already been committed.
func (s *CommandService) publish(ctx context.Context, e domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.ForContext(ctx).Warn("failed to publish event",
			"event", e.EventName(),
			"survey_id", e.SurveyID(),
			"error", err,
		)
	}
}
