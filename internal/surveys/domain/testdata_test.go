package domain

func strPtr(s string) *string { return &s }

func bandPollCommand() CreateSurveyCommand {
	return CreateSurveyCommand{
		Author:      "alice",
		Title:       "Favorite bands poll",
		Description: "Pick your favorite band from the options below please",
		Category:    "music",
		Questions: []CreateQuestionCommand{
			{
				QuestionType: "ranked",
				Title:        "Rank these bands",
				Choices: []CreateChoiceCommand{
					{Content: nil, ContentType: "text", Title: "Band A"},
				},
			},
		},
	}
}

func mustSurvey(cmd CreateSurveyCommand) *Survey {
	s, err := NewSurvey(cmd)
	if err != nil {
		panic(err)
	}
	return s
}
