// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const presignExpiry = time.Hour

// PresignedURLHandler issues a time-limited signed PUT URL for the
// given key. The key's shape is not validated here; authorization
// happens upstream.
func (h *Handler) PresignedURLHandler(c *gin.Context) {
	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" || req.ContentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Key and contentType are required"})
		return
	}

	url, err := h.Store.PresignPut(c.Request.Context(), req.Key, req.ContentType, presignExpiry)
	if err != nil {
		log.Println("Error generating pre-signed URL:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate pre-signed URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *Handler) DeleteObjectHandler(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Key is required"})
		return
	}

	if err := h.Store.Delete(c.Request.Context(), req.Key); err != nil {
		log.Println("Error deleting object:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete object"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Object deleted successfully"})
}
