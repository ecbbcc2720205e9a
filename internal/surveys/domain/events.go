package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventSurveyCreated = "survey_created"
	EventSurveyUpdated = "survey_updated"
	EventSurveyRemoved = "survey_removed"
)

// Event is a notification about a committed change. Events are published
// for downstream consumers and are never replayed into an aggregate.
type Event interface {
	EventName() string
	SurveyID() string
}

// SurveyCreated is a full snapshot of a freshly created survey.
type SurveyCreated struct {
	ID          string         `json:"id"`
	AggregateID string         `json:"aggregate_id"`
	Version     uint64         `json:"version"`
	Occurred    time.Time      `json:"occurred"`
	Survey      SurveyDocument `json:"survey"`
}

func (e *SurveyCreated) EventName() string { return EventSurveyCreated }
func (e *SurveyCreated) SurveyID() string  { return e.AggregateID }

// CreatedEvent describes the survey as it was built by NewSurvey.
func (s *Survey) CreatedEvent() *SurveyCreated {
	return &SurveyCreated{
		ID:          uuid.New().String(),
		AggregateID: s.id,
		Version:     s.version,
		Occurred:    s.createdOn,
		Survey:      s.Document(),
	}
}

// SurveyUpdated carries the changeset that was applied, not a snapshot.
type SurveyUpdated struct {
	ID          string            `json:"id"`
	AggregateID string            `json:"aggregate_id"`
	Version     uint64            `json:"version"`
	Occurred    time.Time         `json:"occurred"`
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	Category    *string           `json:"category,omitempty"`
	Questions   []QuestionUpdated `json:"questions,omitempty"`
}

type QuestionUpdated struct {
	ID           *string         `json:"id,omitempty"`
	QuestionType *string         `json:"question_type,omitempty"`
	Title        *string         `json:"title,omitempty"`
	Choices      []ChoiceUpdated `json:"choices,omitempty"`
}

type ChoiceUpdated struct {
	ID          *string       `json:"id,omitempty"`
	Content     *ContentPatch `json:"content,omitempty"`
	ContentType *string       `json:"content_type,omitempty"`
	Title       *string       `json:"title,omitempty"`
}

func (e *SurveyUpdated) EventName() string { return EventSurveyUpdated }
func (e *SurveyUpdated) SurveyID() string  { return e.AggregateID }

// MarshalJSON renders a cleared content as null and set content as a string.
func (p ContentPatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Value)
}

func (s *Survey) updatedEvent(cmd UpdateSurveyCommand) *SurveyUpdated {
	var questions []QuestionUpdated
	for _, qc := range cmd.Questions {
		var choices []ChoiceUpdated
		for _, cc := range qc.Choices {
			choices = append(choices, ChoiceUpdated{
				ID:          cc.ID,
				Content:     cc.Content,
				ContentType: cc.ContentType,
				Title:       cc.Title,
			})
		}
		questions = append(questions, QuestionUpdated{
			ID:           qc.ID,
			QuestionType: qc.QuestionType,
			Title:        qc.Title,
			Choices:      choices,
		})
	}
	return &SurveyUpdated{
		ID:          uuid.New().String(),
		AggregateID: s.id,
		Version:     s.version,
		Occurred:    time.Now().UTC(),
		Title:       cmd.Title,
		Description: cmd.Description,
		Category:    cmd.Category,
		Questions:   questions,
	}
}

// SurveyRemoved announces that a survey no longer exists.
type SurveyRemoved struct {
	ID          string    `json:"id"`
	AggregateID string    `json:"aggregate_id"`
	Author      string    `json:"author"`
	Occurred    time.Time `json:"occurred"`
}

func (e *SurveyRemoved) EventName() string { return EventSurveyRemoved }
func (e *SurveyRemoved) SurveyID() string  { return e.AggregateID }

func NewSurveyRemoved(surveyID, author string) *SurveyRemoved {
	return &SurveyRemoved{
		ID:          uuid.New().String(),
		AggregateID: surveyID,
		Author:      author,
		Occurred:    time.Now().UTC(),
	}
}
