package http

import (
	"bytes"
	"encoding/json"

	"github.com/survey-manager/survey-backend/internal/logger"
	"github.com/survey-manager/survey-backend/internal/surveys/domain"
	"github.com/survey-manager/survey-backend/internal/surveys/service"
)

type Handler struct {
	commands *service.CommandService
	queries  *service.QueryService
	log      *logger.Logger
}

func New(commands *service.CommandService, queries *service.QueryService, log *logger.Logger) *Handler {
	return &Handler{
		commands: commands,
		queries:  queries,
		log:      log.With("component", "SurveyHandler"),
	}
}

type createSurveyReq struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Questions   []createQuestionReq `json:"questions"`
}

type createQuestionReq struct {
	QuestionType string            `json:"question_type"`
	Title        string            `json:"title"`
	Choices      []createChoiceReq `json:"choices"`
}

type createChoiceReq struct {
	Content     *string `json:"content"`
	ContentType string  `json:"content_type"`
	Title       string  `json:"title"`
}

func (r createSurveyReq) command(author string) domain.CreateSurveyCommand {
	cmd := domain.CreateSurveyCommand{
		Author:      author,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Questions:   make([]domain.CreateQuestionCommand, 0, len(r.Questions)),
	}
	for _, q := range r.Questions {
		qc := domain.CreateQuestionCommand{
			QuestionType: q.QuestionType,
			Title:        q.Title,
			Choices:      make([]domain.CreateChoiceCommand, 0, len(q.Choices)),
		}
		for _, c := range q.Choices {
			qc.Choices = append(qc.Choices, domain.CreateChoiceCommand{
				Content:     c.Content,
				ContentType: c.ContentType,
				Title:       c.Title,
			})
		}
		cmd.Questions = append(cmd.Questions, qc)
	}
	return cmd
}

type updateSurveyReq struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Category    *string             `json:"category"`
	Questions   []updateQuestionReq `json:"questions"`
}

type updateQuestionReq struct {
	ID           *string           `json:"id"`
	QuestionType *string           `json:"question_type"`
	Title        *string           `json:"title"`
	Choices      []updateChoiceReq `json:"choices"`
}

type updateChoiceReq struct {
	ID          *string         `json:"id"`
	Content     optionalContent `json:"content"`
	ContentType *string         `json:"content_type"`
	Title       *string         `json:"title"`
}

// optionalContent tells an absent "content" key (leave unchanged) apart from
// an explicit null (clear).
type optionalContent struct {
	Set   bool
	Value *string
}

func (o *optionalContent) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (r updateSurveyReq) command(id, author string) domain.UpdateSurveyCommand {
	cmd := domain.UpdateSurveyCommand{
		ID:          id,
		Author:      author,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
	}
	for _, q := range r.Questions {
		qc := domain.UpdateQuestionCommand{
			ID:           q.ID,
			QuestionType: q.QuestionType,
			Title:        q.Title,
		}
		for _, c := range q.Choices {
			cc := domain.UpdateChoiceCommand{
				ID:          c.ID,
				ContentType: c.ContentType,
				Title:       c.Title,
			}
			if c.Content.Set {
				cc.Content = &domain.ContentPatch{Value: c.Content.Value}
			}
			qc.Choices = append(qc.Choices, cc)
		}
		cmd.Questions = append(cmd.Questions, qc)
	}
	return cmd
}
