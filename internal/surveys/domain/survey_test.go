package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSurvey(t *testing.T) {
	t.Run("builds the band poll", func(t *testing.T) {
		before := time.Now().UTC()
		s, err := NewSurvey(bandPollCommand())
		require.NoError(t, err)

		_, err = uuid.Parse(s.ID())
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), s.Version())
		assert.Equal(t, "alice", s.Author().String())
		assert.Equal(t, CategoryMusic, s.Category())
		assert.False(t, s.CreatedOn().Before(before))

		qs := s.Questions()
		require.Len(t, qs, 1)
		assert.Equal(t, QuestionRanked, qs[0].QuestionType())
		assert.NotEmpty(t, qs[0].ID())

		cs := qs[0].Choices()
		require.Len(t, cs, 1)
		assert.Equal(t, "Band A", cs[0].Title().String())
		assert.Equal(t, ContentText, cs[0].ContentType())
		assert.Nil(t, cs[0].Content())
	})

	t.Run("assigns distinct ids", func(t *testing.T) {
		cmd := bandPollCommand()
		cmd.Questions = append(cmd.Questions, cmd.Questions[0])
		s, err := NewSurvey(cmd)
		require.NoError(t, err)

		seen := map[string]bool{s.ID(): true}
		for _, q := range s.Questions() {
			assert.False(t, seen[q.ID()])
			seen[q.ID()] = true
			for _, c := range q.Choices() {
				assert.False(t, seen[c.ID()])
				seen[c.ID()] = true
			}
		}
		assert.Len(t, seen, 5)
	})

	t.Run("tags content with the choice content type", func(t *testing.T) {
		cmd := bandPollCommand()
		cmd.Questions[0].Choices = []CreateChoiceCommand{
			{Content: strPtr("dQw4w9WgXcQ"), ContentType: "youtube", Title: "A video"},
		}
		s, err := NewSurvey(cmd)
		require.NoError(t, err)

		content := s.Questions()[0].Choices()[0].Content()
		require.NotNil(t, content)
		assert.Equal(t, ContentYoutube, content.Kind)
		assert.Equal(t, "dQw4w9WgXcQ", content.Ref.String())
	})

	failures := []struct {
		name   string
		mutate func(*CreateSurveyCommand)
		field  string
	}{
		{"short author", func(c *CreateSurveyCommand) { c.Author = "al" }, "author"},
		{"short title", func(c *CreateSurveyCommand) { c.Title = "Bands" }, "title"},
		{"short description", func(c *CreateSurveyCommand) { c.Description = "too short" }, "description"},
		{"unknown category", func(c *CreateSurveyCommand) { c.Category = "sports" }, "category"},
		{"unknown question type", func(c *CreateSurveyCommand) { c.Questions[0].QuestionType = "essay" }, "question_type"},
		{"short question title", func(c *CreateSurveyCommand) { c.Questions[0].Title = "Rank" }, "question.title"},
		{"unknown content type", func(c *CreateSurveyCommand) { c.Questions[0].Choices[0].ContentType = "vimeo" }, "content_type"},
		{"blank choice title", func(c *CreateSurveyCommand) { c.Questions[0].Choices[0].Title = "  " }, "choice.title"},
		{"content on a text choice", func(c *CreateSurveyCommand) { c.Questions[0].Choices[0].Content = strPtr("abc") }, "content"},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			cmd := bandPollCommand()
			tt.mutate(&cmd)
			s, err := NewSurvey(cmd)
			assert.Nil(t, s)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSurvey_BelongsTo(t *testing.T) {
	s := mustSurvey(bandPollCommand())
	assert.True(t, s.BelongsTo("alice"))
	assert.False(t, s.BelongsTo("bob"))
	assert.False(t, s.BelongsTo("Alice"))
}

func TestSurvey_CreatedEvent(t *testing.T) {
	s := mustSurvey(bandPollCommand())
	e := s.CreatedEvent()

	assert.Equal(t, EventSurveyCreated, e.EventName())
	assert.Equal(t, s.ID(), e.SurveyID())
	assert.NotEqual(t, s.ID(), e.ID)
	assert.Equal(t, s.Document(), e.Survey)
}

func TestSurvey_StoredVersion(t *testing.T) {
	s := mustSurvey(bandPollCommand())
	assert.Equal(t, uint64(0), s.StoredVersion())

	_, err := s.Apply(UpdateSurveyCommand{ID: s.ID(), Author: "alice", Title: strPtr("Best bands of all time")})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Version())
	assert.Equal(t, uint64(0), s.StoredVersion())

	s.MarkPersisted()
	assert.Equal(t, uint64(1), s.StoredVersion())
}
