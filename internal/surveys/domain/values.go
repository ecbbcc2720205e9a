package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	authorMinLen      = 3
	authorMaxLen      = 32
	titleMinLen       = 8
	titleMaxLen       = 128
	choiceTitleMinLen = 1
	descriptionMinLen = 20
	descriptionMaxLen = 256
	contentRefMaxLen  = 2048
)

func checkLength(field, raw string, min, max int) error {
	n := utf8.RuneCountInString(raw)
	if n < min || n > max {
		return invalid(field, "length must be between %d and %d", min, max)
	}
	return nil
}

// Title names a survey or a question.
type Title struct{ value string }

func NewTitle(raw string) (Title, error) {
	return newTitle("title", raw)
}

func newTitle(field, raw string) (Title, error) {
	if err := checkLength(field, raw, titleMinLen, titleMaxLen); err != nil {
		return Title{}, err
	}
	return Title{value: raw}, nil
}

func (t Title) String() string { return t.value }

// ChoiceTitle labels a choice. Choices are often short ("Band A"), so the
// lower bound is looser than Title's.
type ChoiceTitle struct{ value string }

func NewChoiceTitle(raw string) (ChoiceTitle, error) {
	if strings.TrimSpace(raw) == "" {
		return ChoiceTitle{}, invalid("choice.title", "must not be blank")
	}
	if err := checkLength("choice.title", raw, choiceTitleMinLen, titleMaxLen); err != nil {
		return ChoiceTitle{}, err
	}
	return ChoiceTitle{value: raw}, nil
}

func (t ChoiceTitle) String() string { return t.value }

type Description struct{ value string }

func NewDescription(raw string) (Description, error) {
	if err := checkLength("description", raw, descriptionMinLen, descriptionMaxLen); err != nil {
		return Description{}, err
	}
	return Description{value: raw}, nil
}

func (d Description) String() string { return d.value }

type Author struct{ value string }

func NewAuthor(raw string) (Author, error) {
	if err := checkLength("author", raw, authorMinLen, authorMaxLen); err != nil {
		return Author{}, err
	}
	return Author{value: raw}, nil
}

func (a Author) String() string { return a.value }

// ContentRef is the reference wrapped by a content variant, e.g. an embed id
// or URL.
type ContentRef struct{ value string }

func NewContentRef(raw string) (ContentRef, error) {
	if strings.TrimSpace(raw) == "" {
		return ContentRef{}, invalid("content", "must not be blank")
	}
	if utf8.RuneCountInString(raw) > contentRefMaxLen {
		return ContentRef{}, invalid("content", "length must be at most %d", contentRefMaxLen)
	}
	return ContentRef{value: raw}, nil
}

func (c ContentRef) String() string { return c.value }

type Category uint8

const (
	CategoryMusic Category = iota + 1
	CategoryFunny
	CategoryTechnology
	CategoryMemes
)

var categoryTokens = map[Category]string{
	CategoryMusic:      "music",
	CategoryFunny:      "funny",
	CategoryTechnology: "technology",
	CategoryMemes:      "memes",
}

func ParseCategory(raw string) (Category, error) {
	for c, tok := range categoryTokens {
		if tok == raw {
			return c, nil
		}
	}
	return 0, invalid("category", "%q is not a valid category", raw)
}

func (c Category) String() string { return categoryTokens[c] }

func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryTokens[c]; !ok {
		return nil, fmt.Errorf("invalid category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

type ContentType uint8

const (
	ContentText ContentType = iota + 1
	ContentYoutube
	ContentSpotify
	ContentSoundcloud
)

var contentTypeTokens = map[ContentType]string{
	ContentText:       "text",
	ContentYoutube:    "youtube",
	ContentSpotify:    "spotify",
	ContentSoundcloud: "soundcloud",
}

func ParseContentType(raw string) (ContentType, error) {
	for ct, tok := range contentTypeTokens {
		if tok == raw {
			return ct, nil
		}
	}
	return 0, invalid("content_type", "%q is not a valid content type", raw)
}

func (ct ContentType) String() string { return contentTypeTokens[ct] }

// Embeds reports whether choices of this type may carry content.
func (ct ContentType) Embeds() bool {
	return ct == ContentYoutube || ct == ContentSpotify || ct == ContentSoundcloud
}

func (ct ContentType) MarshalText() ([]byte, error) {
	if _, ok := contentTypeTokens[ct]; !ok {
		return nil, fmt.Errorf("invalid content type %d", uint8(ct))
	}
	return []byte(ct.String()), nil
}

func (ct *ContentType) UnmarshalText(b []byte) error {
	parsed, err := ParseContentType(string(b))
	if err != nil {
		return err
	}
	*ct = parsed
	return nil
}

type QuestionType uint8

const (
	QuestionRanked QuestionType = iota + 1
	QuestionMultipleChoice
)

var questionTypeTokens = map[QuestionType]string{
	QuestionRanked:         "ranked",
	QuestionMultipleChoice: "multiple_choice",
}

func ParseQuestionType(raw string) (QuestionType, error) {
	for qt, tok := range questionTypeTokens {
		if tok == raw {
			return qt, nil
		}
	}
	return 0, invalid("question_type", "%q is not a valid question type", raw)
}

func (qt QuestionType) String() string { return questionTypeTokens[qt] }

func (qt QuestionType) MarshalText() ([]byte, error) {
	if _, ok := questionTypeTokens[qt]; !ok {
		return nil, fmt.Errorf("invalid question type %d", uint8(qt))
	}
	return []byte(qt.String()), nil
}

func (qt *QuestionType) UnmarshalText(b []byte) error {
	parsed, err := ParseQuestionType(string(b))
	if err != nil {
		return err
	}
	*qt = parsed
	return nil
}
