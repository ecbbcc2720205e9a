package domain

// Apply patches the survey with a changeset. The changeset is applied to a
// working copy; the survey only changes, and its version only moves by one,
// when every field and nested changeset validated.
func (s *Survey) Apply(cmd UpdateSurveyCommand) (*SurveyUpdated, error) {
	work := s.clone()
	if err := work.applyChangeset(cmd); err != nil {
		return nil, err
	}
	work.version++
	*s = *work
	return s.updatedEvent(cmd), nil
}

// Field order is fixed: title, category, description, questions.
func (s *Survey) applyChangeset(cmd UpdateSurveyCommand) error {
	if cmd.Title != nil {
		title, err := NewTitle(*cmd.Title)
		if err != nil {
			return err
		}
		s.title = title
	}
	if cmd.Category != nil {
		category, err := ParseCategory(*cmd.Category)
		if err != nil {
			return err
		}
		s.category = category
	}
	if cmd.Description != nil {
		description, err := NewDescription(*cmd.Description)
		if err != nil {
			return err
		}
		s.description = description
	}
	for _, qc := range cmd.Questions {
		if err := s.applyQuestion(qc); err != nil {
			return err
		}
	}
	return nil
}

func (s *Survey) applyQuestion(qc UpdateQuestionCommand) error {
	if qc.ID == nil {
		q, err := questionFromChangeset(qc)
		if err != nil {
			return err
		}
		s.questions = append(s.questions, q)
		return nil
	}

	q, err := s.findQuestion(*qc.ID)
	if err != nil {
		return err
	}
	if qc.Title != nil {
		title, err := newTitle("question.title", *qc.Title)
		if err != nil {
			return err
		}
		q.title = title
	}
	if qc.QuestionType != nil {
		qt, err := ParseQuestionType(*qc.QuestionType)
		if err != nil {
			return err
		}
		q.questionType = qt
	}
	for _, cc := range qc.Choices {
		if err := q.applyChoice(cc); err != nil {
			return err
		}
	}
	return nil
}

func (q *Question) applyChoice(cc UpdateChoiceCommand) error {
	if cc.ID == nil {
		c, err := choiceFromChangeset(cc)
		if err != nil {
			return err
		}
		q.choices = append(q.choices, c)
		return nil
	}

	c, err := q.findChoice(*cc.ID)
	if err != nil {
		return err
	}
	if cc.Title != nil {
		title, err := NewChoiceTitle(*cc.Title)
		if err != nil {
			return err
		}
		c.title = title
	}
	if cc.ContentType != nil {
		ct, err := ParseContentType(*cc.ContentType)
		if err != nil {
			return err
		}
		c.contentType = ct
	}
	if cc.Content != nil {
		// new content is tagged with the (possibly just patched) content type
		content, err := buildContent(c.contentType, cc.Content.Value)
		if err != nil {
			return err
		}
		c.content = content
	}
	return c.checkContent()
}

// questionFromChangeset turns an id-less question changeset into a new
// question. Unlike an update, every required field must be present.
func questionFromChangeset(qc UpdateQuestionCommand) (Question, error) {
	if qc.QuestionType == nil {
		return Question{}, missing("question.question_type")
	}
	if qc.Title == nil {
		return Question{}, missing("question.title")
	}
	if len(qc.Choices) == 0 {
		return Question{}, invalid("question.choices", "adding a question requires at least one choice")
	}

	choices := make([]CreateChoiceCommand, 0, len(qc.Choices))
	for _, cc := range qc.Choices {
		if cc.ID != nil {
			return Question{}, notFound("choice", *cc.ID)
		}
		cmd, err := createChoiceFromChangeset(cc)
		if err != nil {
			return Question{}, err
		}
		choices = append(choices, cmd)
	}

	return newQuestion(CreateQuestionCommand{
		QuestionType: *qc.QuestionType,
		Title:        *qc.Title,
		Choices:      choices,
	})
}

func choiceFromChangeset(cc UpdateChoiceCommand) (Choice, error) {
	cmd, err := createChoiceFromChangeset(cc)
	if err != nil {
		return Choice{}, err
	}
	return newChoice(cmd)
}

func createChoiceFromChangeset(cc UpdateChoiceCommand) (CreateChoiceCommand, error) {
	if cc.ContentType == nil {
		return CreateChoiceCommand{}, missing("choice.content_type")
	}
	if cc.Title == nil {
		return CreateChoiceCommand{}, missing("choice.title")
	}
	cmd := CreateChoiceCommand{
		ContentType: *cc.ContentType,
		Title:       *cc.Title,
	}
	if cc.Content != nil {
		cmd.Content = cc.Content.Value
	}
	return cmd, nil
}
