// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"log"
	"net/http"

	"github.com/frogstagram/frogstagram/internal/documents"
	"github.com/gin-gonic/gin"
)

func (h *Handler) LikeHandler(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username required"})
		return
	}

	postID := c.Param("postId")
	ctx := c.Request.Context()

	post, err := documents.LoadPost(ctx, h.Store, postID)
	if err != nil {
		log.Println("Error updating like:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like"})
		return
	}

	if post.Like(req.Username) {
		if err := documents.SavePost(ctx, h.Store, postID, post); err != nil {
			log.Println("Error updating like:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) UnlikeHandler(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username required"})
		return
	}

	postID := c.Param("postId")
	ctx := c.Request.Context()

	post, err := documents.LoadPost(ctx, h.Store, postID)
	if err != nil {
		log.Println("Error removing like:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove like"})
		return
	}

	if post.Unlike(req.Username) {
		if err := documents.SavePost(ctx, h.Store, postID, post); err != nil {
			log.Println("Error removing like:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove like"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
