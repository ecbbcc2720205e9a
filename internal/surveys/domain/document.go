package domain

import (
	"fmt"
	"time"
)

// SurveyDocument is the persisted JSON form of a survey. It is also the
// single-survey projection served by the read side.
type SurveyDocument struct {
	ID          string             `json:"id"`
	Version     uint64             `json:"version"`
	Author      string             `json:"author"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CreatedOn   time.Time          `json:"created_on"`
	Category    Category           `json:"category"`
	Questions   []QuestionDocument `json:"questions"`
}

type QuestionDocument struct {
	ID           string           `json:"id"`
	QuestionType QuestionType     `json:"question_type"`
	Title        string           `json:"title"`
	Choices      []ChoiceDocument `json:"choices"`
}

type ChoiceDocument struct {
	ID          string      `json:"id"`
	Content     *string     `json:"content"`
	ContentType ContentType `json:"content_type"`
	Title       string      `json:"title"`
}

func (s *Survey) Document() SurveyDocument {
	questions := make([]QuestionDocument, 0, len(s.questions))
	for _, q := range s.questions {
		choices := make([]ChoiceDocument, 0, len(q.choices))
		for _, c := range q.choices {
			var content *string
			if c.content != nil {
				ref := c.content.Ref.String()
				content = &ref
			}
			choices = append(choices, ChoiceDocument{
				ID:          c.id,
				Content:     content,
				ContentType: c.contentType,
				Title:       c.title.String(),
			})
		}
		questions = append(questions, QuestionDocument{
			ID:           q.id,
			QuestionType: q.questionType,
			Title:        q.title.String(),
			Choices:      choices,
		})
	}
	return SurveyDocument{
		ID:          s.id,
		Version:     s.version,
		Author:      s.author.String(),
		Title:       s.title.String(),
		Description: s.description.String(),
		CreatedOn:   s.createdOn,
		Category:    s.category,
		Questions:   questions,
	}
}

// SurveyFromDocument rehydrates a stored survey, re-validating every field.
func SurveyFromDocument(doc SurveyDocument) (*Survey, error) {
	if doc.ID == "" {
		return nil, fmt.Errorf("survey document without id")
	}
	author, err := NewAuthor(doc.Author)
	if err != nil {
		return nil, fmt.Errorf("survey %s: %w", doc.ID, err)
	}
	title, err := NewTitle(doc.Title)
	if err != nil {
		return nil, fmt.Errorf("survey %s: %w", doc.ID, err)
	}
	description, err := NewDescription(doc.Description)
	if err != nil {
		return nil, fmt.Errorf("survey %s: %w", doc.ID, err)
	}
	if _, ok := categoryTokens[doc.Category]; !ok {
		return nil, fmt.Errorf("survey %s: %w", doc.ID, invalid("category", "missing"))
	}

	questions := make([]Question, 0, len(doc.Questions))
	for _, qd := range doc.Questions {
		q, err := questionFromDocument(qd)
		if err != nil {
			return nil, fmt.Errorf("survey %s: %w", doc.ID, err)
		}
		questions = append(questions, q)
	}

	return &Survey{
		id:            doc.ID,
		version:       doc.Version,
		author:        author,
		title:         title,
		description:   description,
		category:      doc.Category,
		createdOn:     doc.CreatedOn,
		questions:     questions,
		storedVersion: doc.Version,
	}, nil
}

func questionFromDocument(qd QuestionDocument) (Question, error) {
	if _, ok := questionTypeTokens[qd.QuestionType]; !ok {
		return Question{}, invalid("question_type", "missing")
	}
	title, err := newTitle("question.title", qd.Title)
	if err != nil {
		return Question{}, err
	}
	choices := make([]Choice, 0, len(qd.Choices))
	for _, cd := range qd.Choices {
		c, err := choiceFromDocument(cd)
		if err != nil {
			return Question{}, err
		}
		choices = append(choices, c)
	}
	return Question{
		id:           qd.ID,
		questionType: qd.QuestionType,
		title:        title,
		choices:      choices,
	}, nil
}

func choiceFromDocument(cd ChoiceDocument) (Choice, error) {
	if _, ok := contentTypeTokens[cd.ContentType]; !ok {
		return Choice{}, invalid("content_type", "missing")
	}
	content, err := buildContent(cd.ContentType, cd.Content)
	if err != nil {
		return Choice{}, err
	}
	title, err := NewChoiceTitle(cd.Title)
	if err != nil {
		return Choice{}, err
	}
	return Choice{
		id:          cd.ID,
		content:     content,
		contentType: cd.ContentType,
		title:       title,
	}, nil
}
