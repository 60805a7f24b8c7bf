// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SignUpHandler(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username, email and password are required"})
		return
	}

	if err := h.Auth.SignUp(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		log.Println("Sign-up error:", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": signUpFailureMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "username": req.Username})
}

func (h *Handler) VerifyHandler(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and code are required"})
		return
	}

	if err := h.Auth.ConfirmSignUp(c.Request.Context(), req.Username, req.Code); err != nil {
		log.Println("Confirmation error:", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verifyFailureMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	tok, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Println("Authorization error:", err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	h.saveSessionToken(c, tok)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": tok.SessionUser()})
}

func (h *Handler) LogoutHandler(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SessionHandler exposes the current session to the frontend, running
// the refresh lifecycle first.
func (h *Handler) SessionHandler(c *gin.Context) {
	tok := h.currentToken(c)
	if tok == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}

	body := gin.H{"user": tok.SessionUser()}
	if tok.Error != "" {
		body["error"] = tok.Error
	}
	c.JSON(http.StatusOK, gin.H{"session": body})
}

func signUpFailureMessage(err error) string {
	if err == nil {
		return "Failed to create account"
	}
	return err.Error()
}

func verifyFailureMessage(err error) string {
	if err == nil {
		return "Failed to verify account"
	}
	return err.Error()
}
