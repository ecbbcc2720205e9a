package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/survey-manager/survey-backend/internal/auth"
	"github.com/survey-manager/survey-backend/internal/surveys/domain"
)

func (h *Handler) create(c *gin.Context) {
	var req createSurveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	id, err := h.commands.CreateSurvey(c.Request.Context(), req.command(auth.Username(c)))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) update(c *gin.Context) {
	var req updateSurveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res, err := h.commands.UpdateSurvey(c.Request.Context(), req.command(c.Param("id"), auth.Username(c)))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": res.ID, "version": res.Version})
}

func (h *Handler) remove(c *gin.Context) {
	id, err := h.commands.RemoveSurvey(c.Request.Context(), domain.RemoveSurveyCommand{
		ID:               c.Param("id"),
		RequestingAuthor: auth.Username(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

func (h *Handler) get(c *gin.Context) {
	h.find(c, false)
}

func (h *Handler) getUncached(c *gin.Context) {
	h.find(c, true)
}

func (h *Handler) find(c *gin.Context, uncached bool) {
	q := domain.FindSurveyQuery{ID: c.Param("id"), RequestingAuthor: auth.Username(c)}

	find := h.queries.FindSurvey
	if uncached {
		find = h.queries.FindSurveyUncached
	}

	doc, err := find(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "survey": doc})
}

func (h *Handler) list(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	list, err := h.queries.FindSurveysByAuthor(c.Request.Context(), domain.FindSurveysByAuthorQuery{
		Author: auth.Username(c),
		Page:   page,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "surveys": list.Surveys})
}

// pageFromQuery returns nil when neither page_num nor page_size is given.
// A lone parameter takes the default for the other.
func pageFromQuery(c *gin.Context) (*domain.PageConfig, error) {
	rawNum, hasNum := c.GetQuery("page_num")
	rawSize, hasSize := c.GetQuery("page_size")
	if !hasNum && !hasSize {
		return nil, nil
	}

	page := &domain.PageConfig{PageNum: 1, PageSize: domain.DefaultPageSize}
	if hasNum {
		n, err := strconv.Atoi(rawNum)
		if err != nil {
			return nil, errInvalidQuery("page_num")
		}
		page.PageNum = n
	}
	if hasSize {
		n, err := strconv.Atoi(rawSize)
		if err != nil {
			return nil, errInvalidQuery("page_size")
		}
		page.PageSize = n
	}
	return page, nil
}

type errInvalidQuery string

func (e errInvalidQuery) Error() string {
	return "invalid query parameter " + string(e)
}
