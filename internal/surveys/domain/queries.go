package domain

import "math"

const DefaultPageSize = 20

type FindSurveyQuery struct {
	ID               string
	RequestingAuthor string
}

type FindSurveysByAuthorQuery struct {
	Author string
	Page   *PageConfig
}

// PageConfig selects a 1-indexed page.
type PageConfig struct {
	PageNum  int
	PageSize int
}

// Bounds returns the half-open [lower, upper) slice bounds for the page.
func (p *PageConfig) Bounds() (lower, upper int, err error) {
	if p == nil {
		return 0, DefaultPageSize, nil
	}
	if p.PageNum < 1 {
		return 0, 0, invalid("page_num", "must be at least 1")
	}
	if p.PageSize < 1 {
		return 0, 0, invalid("page_size", "must be at least 1")
	}
	if p.PageNum > math.MaxInt/p.PageSize {
		return 0, 0, invalid("page_num", "out of range for page_size %d", p.PageSize)
	}
	return (p.PageNum - 1) * p.PageSize, p.PageNum * p.PageSize, nil
}

// ListViewSurvey is the trimmed survey shown in an author's list.
type ListViewSurvey struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type SurveyList struct {
	Surveys []ListViewSurvey `json:"surveys"`
}

// Bounded returns the [lower, upper) window of the list, or nil when lower is
// past the end or the bounds are inverted.
func (l *SurveyList) Bounded(lower, upper int) *SurveyList {
	if l == nil || lower < 0 || upper < lower || lower >= len(l.Surveys) {
		return nil
	}
	if upper > len(l.Surveys) {
		upper = len(l.Surveys)
	}
	out := make([]ListViewSurvey, upper-lower)
	copy(out, l.Surveys[lower:upper])
	return &SurveyList{Surveys: out}
}
