package domain

// CreateSurveyCommand carries everything needed to build a new survey.
type CreateSurveyCommand struct {
	Author      string
	Title       string
	Description string
	Category    string
	Questions   []CreateQuestionCommand
}

type CreateQuestionCommand struct {
	QuestionType string
	Title        string
	Choices      []CreateChoiceCommand
}

type CreateChoiceCommand struct {
	Content     *string
	ContentType string
	Title       string
}

// UpdateSurveyCommand is a changeset: nil fields are left unchanged.
type UpdateSurveyCommand struct {
	ID          string
	Author      string
	Title       *string
	Description *string
	Category    *string
	Questions   []UpdateQuestionCommand
}

// UpdateQuestionCommand without an ID appends a new question.
type UpdateQuestionCommand struct {
	ID           *string
	QuestionType *string
	Title        *string
	Choices      []UpdateChoiceCommand
}

// UpdateChoiceCommand without an ID appends a new choice.
type UpdateChoiceCommand struct {
	ID          *string
	Content     *ContentPatch
	ContentType *string
	Title       *string
}

// ContentPatch distinguishes "set" (Value != nil) from "clear" (Value == nil).
// A nil *ContentPatch leaves the content unchanged.
type ContentPatch struct {
	Value *string
}

type RemoveSurveyCommand struct {
	ID               string
	RequestingAuthor string
}
