package domain

import "github.com/google/uuid"

// Content is an embedded media reference tagged with its source.
type Content struct {
	Kind ContentType
	Ref  ContentRef
}

type Choice struct {
	id          string
	content     *Content
	contentType ContentType
	title       ChoiceTitle
}

func (c Choice) ID() string               { return c.id }
func (c Choice) ContentType() ContentType { return c.contentType }
func (c Choice) Title() ChoiceTitle       { return c.title }

// Content returns the choice's embedded content, or nil for plain choices.
func (c Choice) Content() *Content {
	if c.content == nil {
		return nil
	}
	cp := *c.content
	return &cp
}

func newChoice(cmd CreateChoiceCommand) (Choice, error) {
	ct, err := ParseContentType(cmd.ContentType)
	if err != nil {
		return Choice{}, err
	}
	content, err := buildContent(ct, cmd.Content)
	if err != nil {
		return Choice{}, err
	}
	title, err := NewChoiceTitle(cmd.Title)
	if err != nil {
		return Choice{}, err
	}
	return Choice{
		id:          uuid.New().String(),
		content:     content,
		contentType: ct,
		title:       title,
	}, nil
}

func newChoices(cmds []CreateChoiceCommand) ([]Choice, error) {
	choices := make([]Choice, 0, len(cmds))
	for _, cmd := range cmds {
		c, err := newChoice(cmd)
		if err != nil {
			return nil, err
		}
		choices = append(choices, c)
	}
	return choices, nil
}

// buildContent tags raw with ct. A nil raw means "no content".
func buildContent(ct ContentType, raw *string) (*Content, error) {
	if raw == nil {
		return nil, nil
	}
	if !ct.Embeds() {
		return nil, invalid("content", "content_type %s does not carry content", ct)
	}
	ref, err := NewContentRef(*raw)
	if err != nil {
		return nil, err
	}
	return &Content{Kind: ct, Ref: ref}, nil
}

// checkContent enforces that content, when present, matches content_type.
func (c Choice) checkContent() error {
	if c.content == nil {
		return nil
	}
	if c.content.Kind != c.contentType {
		return invalid("content_type", "content is %s but content_type is %s", c.content.Kind, c.contentType)
	}
	return nil
}
