// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateDetailsHandler proxies a post-creation enrichment request to
// the detection service and relays its JSON response.
func (h *Handler) CreateDetailsHandler(c *gin.Context) {
	var req DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body, status, err := h.Enricher.CreateDetails(c.Request.Context(), req.Bucket, req.Key)
	if err != nil {
		log.Println("Error calling Lambda function:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if status < 200 || status >= 300 {
		c.JSON(status, gin.H{"error": "Failed to call Lambda function"})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
