package domain

import "github.com/google/uuid"

type Question struct {
	id           string
	questionType QuestionType
	title        Title
	choices      []Choice
}

func (q Question) ID() string                 { return q.id }
func (q Question) QuestionType() QuestionType { return q.questionType }
func (q Question) Title() Title               { return q.title }

func (q Question) Choices() []Choice {
	out := make([]Choice, len(q.choices))
	copy(out, q.choices)
	return out
}

// newQuestion builds the choices first, then the question itself.
func newQuestion(cmd CreateQuestionCommand) (Question, error) {
	choices, err := newChoices(cmd.Choices)
	if err != nil {
		return Question{}, err
	}
	qt, err := ParseQuestionType(cmd.QuestionType)
	if err != nil {
		return Question{}, err
	}
	title, err := newTitle("question.title", cmd.Title)
	if err != nil {
		return Question{}, err
	}
	return Question{
		id:           uuid.New().String(),
		questionType: qt,
		title:        title,
		choices:      choices,
	}, nil
}

func newQuestions(cmds []CreateQuestionCommand) ([]Question, error) {
	questions := make([]Question, 0, len(cmds))
	for _, cmd := range cmds {
		q, err := newQuestion(cmd)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (q *Question) findChoice(id string) (*Choice, error) {
	for i := range q.choices {
		if q.choices[i].id == id {
			return &q.choices[i], nil
		}
	}
	return nil, notFound("choice", id)
}

func (q Question) clone() Question {
	cp := q
	cp.choices = make([]Choice, len(q.choices))
	copy(cp.choices, q.choices)
	return cp
}
