package domain

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageConfig_Bounds(t *testing.T) {
	var none *PageConfig
	lower, upper, err := none.Bounds()
	require.NoError(t, err)
	assert.Equal(t, 0, lower)
	assert.Equal(t, DefaultPageSize, upper)

	lower, upper, err = (&PageConfig{PageNum: 3, PageSize: 10}).Bounds()
	require.NoError(t, err)
	assert.Equal(t, 20, lower)
	assert.Equal(t, 30, upper)

	_, _, err = (&PageConfig{PageNum: 0, PageSize: 10}).Bounds()
	assert.ErrorIs(t, err, ErrValidation)
	_, _, err = (&PageConfig{PageNum: 1, PageSize: 0}).Bounds()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPageConfig_BoundsOverflow(t *testing.T) {
	t.Run("product past MaxInt is rejected", func(t *testing.T) {
		_, _, err := (&PageConfig{PageNum: math.MaxInt - 1, PageSize: math.MaxInt}).Bounds()
		require.ErrorIs(t, err, ErrValidation)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "page_num", verr.Field)
	})

	t.Run("largest page that fits is accepted", func(t *testing.T) {
		lower, upper, err := (&PageConfig{PageNum: math.MaxInt / 10, PageSize: 10}).Bounds()
		require.NoError(t, err)
		assert.Less(t, lower, upper)
	})

	t.Run("inverted bounds yield no page", func(t *testing.T) {
		list := &SurveyList{Surveys: make([]ListViewSurvey, 5)}
		assert.NotPanics(t, func() {
			assert.Nil(t, list.Bounded(3, math.MinInt+2))
		})
	})
}

func TestSurveyList_Bounded(t *testing.T) {
	list := &SurveyList{}
	for i := 0; i < 5; i++ {
		list.Surveys = append(list.Surveys, ListViewSurvey{ID: fmt.Sprintf("s%d", i)})
	}

	page := list.Bounded(0, 2)
	require.NotNil(t, page)
	assert.Equal(t, []ListViewSurvey{{ID: "s0"}, {ID: "s1"}}, page.Surveys)

	page = list.Bounded(4, 8)
	require.NotNil(t, page)
	assert.Equal(t, []ListViewSurvey{{ID: "s4"}}, page.Surveys)

	assert.Nil(t, list.Bounded(5, 10))
	assert.Nil(t, (&SurveyList{}).Bounded(0, 20))

	var nilList *SurveyList
	assert.Nil(t, nilList.Bounded(0, 20))
	assert.Len(t, list.Surveys, 5, "bounding does not consume the cached list")
}
