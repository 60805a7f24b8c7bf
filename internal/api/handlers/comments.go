// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"log"
	"net/http"

	"github.com/frogstagram/frogstagram/internal/documents"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CommentHandler(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and text required"})
		return
	}

	postID := c.Param("postId")
	ctx := c.Request.Context()

	post, err := documents.LoadPost(ctx, h.Store, postID)
	if err != nil {
		log.Println("Error adding comment:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	comment := post.AddComment(req.Username, req.Text)

	if err := documents.SavePost(ctx, h.Store, postID, post); err != nil {
		log.Println("Error adding comment:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}
