package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IssueToken hands out a short-lived token for a throwaway user id. It is
// only registered outside production.
func (h *Handler) IssueToken(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		username = defaultUsername
	}

	token, expires, err := h.tokens.Issue(username, uuid.New().String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token, ExpiresAt: expires.Unix()})
}
