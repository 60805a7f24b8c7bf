// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"log"
	"net/http"

	"github.com/frogstagram/frogstagram/internal/documents"
	"github.com/gin-gonic/gin"
)

// FollowStatusHandler returns the requestor's connection data. With the
// profile parameter it additionally resolves the profile user's
// follower/following counts.
func (h *Handler) FollowStatusHandler(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username required"})
		return
	}

	ctx := c.Request.Context()

	userConns, err := documents.LoadConnections(ctx, h.Store, username)
	if err != nil {
		log.Println("Error fetching connections:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch connections"})
		return
	}

	profile := c.Query("profile")
	if profile != "" {
		profileConns, err := documents.LoadConnections(ctx, h.Store, profile)
		if err != nil {
			log.Println("Error fetching connections:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch connections"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"following": userConns.Following,
			"stats": gin.H{
				"followers": len(profileConns.Followers),
				"following": len(profileConns.Following),
			},
		})
		return
	}

	c.JSON(http.StatusOK, userConns)
}

// FollowHandler adds the edge to both users' documents. The two writes
// are independent; a failure in between leaves the graph asymmetric.
func (h *Handler) FollowHandler(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Follower == "" || req.Following == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both users required"})
		return
	}

	ctx := c.Request.Context()

	followerConns, err := documents.LoadConnections(ctx, h.Store, req.Follower)
	if err != nil {
		log.Println("Error updating follow:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update follow"})
		return
	}
	followingConns, err := documents.LoadConnections(ctx, h.Store, req.Following)
	if err != nil {
		log.Println("Error updating follow:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update follow"})
		return
	}

	if followerConns.AddFollowing(req.Following) {
		if err := documents.SaveConnections(ctx, h.Store, req.Follower, followerConns); err != nil {
			log.Println("Error updating follow:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update follow"})
			return
		}
	}

	if followingConns.AddFollower(req.Follower) {
		if err := documents.SaveConnections(ctx, h.Store, req.Following, followingConns); err != nil {
			log.Println("Error updating follow:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update follow"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) UnfollowHandler(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Follower == "" || req.Following == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both users required"})
		return
	}

	ctx := c.Request.Context()

	followerConns, err := documents.LoadConnections(ctx, h.Store, req.Follower)
	if err != nil {
		log.Println("Error updating follow:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update follow"})
		return
	}
	followingConns, err := documents.LoadConnections(ctx, h.Store, req.Following)
	if err != nil {
		log.Println("Error updating follow:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update follow"})
		return
	}

	followerConns.RemoveFollowing(req.Following)
	if err := documents.SaveConnections(ctx, h.Store, req.Follower, followerConns); err != nil {
		log.Println("Error updating follow:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update follow"})
		return
	}

	followingConns.RemoveFollower(req.Follower)
	if err := documents.SaveConnections(ctx, h.Store, req.Following, followingConns); err != nil {
		log.Println("Error updating follow:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update follow"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
