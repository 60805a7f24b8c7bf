package handlers

import (
	"encoding/json"

	"github.com/frogstagram/frogstagram/internal/auth"
	"github.com/frogstagram/frogstagram/internal/blobstore"
	"github.com/frogstagram/frogstagram/internal/config"
	"github.com/frogstagram/frogstagram/internal/enrich"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionTokenKey = "auth_token"

type Handler struct {
	Store    blobstore.Store
	Auth     *auth.Service
	Enricher *enrich.Client
	Config   *config.AppConfig
}

func NewHandler(store blobstore.Store, authService *auth.Service, enricher *enrich.Client, cfg *config.AppConfig) *Handler {
	return &Handler{
		Store:    store,
		Auth:     authService,
		Enricher: enricher,
		Config:   cfg,
	}
}

// sessionToken reads the token record out of the cookie session.
func (h *Handler) sessionToken(c *gin.Context) *auth.Token {
	session := sessions.Default(c)
	raw := session.Get(sessionTokenKey)
	if raw == nil {
		return nil
	}
	encoded, ok := raw.(string)
	if !ok {
		return nil
	}
	tok := &auth.Token{}
	if err := json.Unmarshal([]byte(encoded), tok); err != nil {
		return nil
	}
	return tok
}

func (h *Handler) saveSessionToken(c *gin.Context, tok *auth.Token) {
	encoded, err := json.Marshal(tok)
	if err != nil {
		return
	}
	session := sessions.Default(c)
	session.Set(sessionTokenKey, string(encoded))
	session.Save()
}

// CurrentUserID resolves the session's user id for the access guard,
// empty when nobody is logged in.
func (h *Handler) CurrentUserID(c *gin.Context) string {
	tok := h.sessionToken(c)
	if tok == nil {
		return ""
	}
	return tok.User.ID
}

// currentToken runs the token lifecycle for this request, persisting the
// token when the refresh changed it.
func (h *Handler) currentToken(c *gin.Context) *auth.Token {
	tok := h.sessionToken(c)
	if tok == nil {
		return nil
	}
	tok, changed := h.Auth.Evaluate(c.Request.Context(), tok)
	if changed {
		h.saveSessionToken(c, tok)
	}
	return tok
}
