package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextValueObjects(t *testing.T) {
	tests := []struct {
		name    string
		build   func(string) (string, error)
		field   string
		valid   []string
		invalid []string
	}{
		{
			name: "author",
			build: func(s string) (string, error) {
				v, err := NewAuthor(s)
				return v.String(), err
			},
			field:   "author",
			valid:   []string{"bob", strings.Repeat("a", 32), "añé"},
			invalid: []string{"", "al", strings.Repeat("a", 33)},
		},
		{
			name: "title",
			build: func(s string) (string, error) {
				v, err := NewTitle(s)
				return v.String(), err
			},
			field:   "title",
			valid:   []string{"Band poll", strings.Repeat("t", 128)},
			invalid: []string{"short", strings.Repeat("t", 129)},
		},
		{
			name: "description",
			build: func(s string) (string, error) {
				v, err := NewDescription(s)
				return v.String(), err
			},
			field:   "description",
			valid:   []string{strings.Repeat("d", 20), strings.Repeat("d", 256)},
			invalid: []string{strings.Repeat("d", 19), strings.Repeat("d", 257)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, raw := range tt.valid {
				first, err := tt.build(raw)
				require.NoError(t, err, raw)
				second, err := tt.build(raw)
				require.NoError(t, err)
				assert.Equal(t, raw, first)
				assert.Equal(t, first, second)
			}
			for _, raw := range tt.invalid {
				_, err := tt.build(raw)
				require.Error(t, err, raw)
				assert.True(t, errors.Is(err, ErrValidation))

				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.field, verr.Field)

				_, again := tt.build(raw)
				assert.Equal(t, err, again)
			}
		})
	}
}

func TestContentRef(t *testing.T) {
	ref, err := NewContentRef("dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", ref.String())

	_, err = NewContentRef("   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewContentRef(strings.Repeat("x", 2049))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEnumsParseAndRender(t *testing.T) {
	for _, tok := range []string{"music", "funny", "technology", "memes"} {
		c, err := ParseCategory(tok)
		require.NoError(t, err)
		assert.Equal(t, tok, c.String())
	}
	for _, tok := range []string{"text", "youtube", "spotify", "soundcloud"} {
		ct, err := ParseContentType(tok)
		require.NoError(t, err)
		assert.Equal(t, tok, ct.String())
	}
	for _, tok := range []string{"ranked", "multiple_choice"} {
		qt, err := ParseQuestionType(tok)
		require.NoError(t, err)
		assert.Equal(t, tok, qt.String())
	}

	_, err := ParseCategory("Music")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ParseContentType("vimeo")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ParseQuestionType("free_text")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEnumsJSON(t *testing.T) {
	type wrapper struct {
		Category     Category     `json:"category"`
		ContentType  ContentType  `json:"content_type"`
		QuestionType QuestionType `json:"question_type"`
	}

	b, err := json.Marshal(wrapper{CategoryMemes, ContentSoundcloud, QuestionMultipleChoice})
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"memes","content_type":"soundcloud","question_type":"multiple_choice"}`, string(b))

	var w wrapper
	err = json.Unmarshal([]byte(`{"category":"cats","content_type":"text","question_type":"ranked"}`), &w)
	assert.Error(t, err)

	_, err = json.Marshal(wrapper{})
	assert.Error(t, err, "zero enums are not renderable")
}

func TestContentTypeEmbeds(t *testing.T) {
	assert.False(t, ContentText.Embeds())
	assert.True(t, ContentYoutube.Embeds())
	assert.True(t, ContentSpotify.Embeds())
	assert.True(t, ContentSoundcloud.Embeds())
}
