package domain

import (
	"time"

	"github.com/google/uuid"
)

// Survey is the aggregate root. Questions and choices are only reachable
// through it, and every mutation goes through NewSurvey or Apply.
type Survey struct {
	id          string
	version     uint64
	author      Author
	title       Title
	description Description
	category    Category
	createdOn   time.Time
	questions   []Question

	// storedVersion is the version last read from or written to the store.
	storedVersion uint64
}

// NewSurvey builds a survey bottom-up from a validated command. The first
// failing field aborts construction.
func NewSurvey(cmd CreateSurveyCommand) (*Survey, error) {
	questions, err := newQuestions(cmd.Questions)
	if err != nil {
		return nil, err
	}
	author, err := NewAuthor(cmd.Author)
	if err != nil {
		return nil, err
	}
	title, err := NewTitle(cmd.Title)
	if err != nil {
		return nil, err
	}
	description, err := NewDescription(cmd.Description)
	if err != nil {
		return nil, err
	}
	category, err := ParseCategory(cmd.Category)
	if err != nil {
		return nil, err
	}

	return &Survey{
		id:          uuid.New().String(),
		version:     0,
		author:      author,
		title:       title,
		description: description,
		category:    category,
		createdOn:   time.Now().UTC(),
		questions:   questions,
	}, nil
}

func (s *Survey) ID() string               { return s.id }
func (s *Survey) Version() uint64          { return s.version }
func (s *Survey) Author() Author           { return s.author }
func (s *Survey) Title() Title             { return s.title }
func (s *Survey) Description() Description { return s.description }
func (s *Survey) Category() Category       { return s.category }
func (s *Survey) CreatedOn() time.Time     { return s.createdOn }

func (s *Survey) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// BelongsTo reports whether author owns the survey.
func (s *Survey) BelongsTo(author string) bool {
	return s.author.String() == author
}

// StoredVersion is the version the store holds for this survey. Update uses
// it as the optimistic-concurrency token.
func (s *Survey) StoredVersion() uint64 { return s.storedVersion }

// MarkPersisted records that the current version has reached the store.
func (s *Survey) MarkPersisted() { s.storedVersion = s.version }

func (s *Survey) findQuestion(id string) (*Question, error) {
	for i := range s.questions {
		if s.questions[i].id == id {
			return &s.questions[i], nil
		}
	}
	return nil, notFound("question", id)
}

func (s *Survey) clone() *Survey {
	cp := *s
	cp.questions = make([]Question, len(s.questions))
	for i, q := range s.questions {
		cp.questions[i] = q.clone()
	}
	return &cp
}
