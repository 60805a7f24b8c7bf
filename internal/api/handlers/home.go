package handlers

import (
	"net/http"

	"github.com/frogstagram/frogstagram/internal/config"
	"github.com/gin-gonic/gin"
)

// RootHandler is the guarded landing page. The access guard has already
// verified the session, so the payload mirrors what every page load
// receives: the projected session user.
func (h *Handler) RootHandler(c *gin.Context) {
	tok := h.currentToken(c)
	if tok == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil, "app_version": config.AppVersion})
		return
	}

	body := gin.H{"user": tok.SessionUser()}
	if tok.Error != "" {
		body["error"] = tok.Error
	}
	c.JSON(http.StatusOK, gin.H{"session": body, "app_version": config.AppVersion})
}
