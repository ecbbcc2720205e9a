package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/survey-manager/survey-backend/internal/surveys/domain"
)

// writeError maps a service error onto a status code. Repo failures are
// checked first: a corrupt row wraps both a repo failure and a validation
// error, and must surface as a server fault.
func (h *Handler) writeError(c *gin.Context, err error) {
	var status int
	body := gin.H{"ok": false, "error": err.Error()}

	switch {
	case errors.Is(err, domain.ErrRepoFailure):
		status = http.StatusInternalServerError
		body["error"] = "internal error"
	case errors.Is(err, domain.ErrConcurrencyFailure):
		status = http.StatusInternalServerError
		body["retryable"] = true
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusUnprocessableEntity
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			body["field"] = verr.Field
		}
	case errors.Is(err, domain.ErrResourceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		body["error"] = "internal error"
	}

	if status >= http.StatusInternalServerError {
		h.log.ForContext(c.Request.Context()).Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}
	c.JSON(status, body)
}
