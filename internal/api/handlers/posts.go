// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/frogstagram/frogstagram/internal/documents"
	"github.com/gin-gonic/gin"
)

const postsPrefix = "metadata/"
const postsPageSize = 10

// PostsHandler lists the feed one page at a time. The cursor is the
// last key seen on the previous page, without the metadata prefix.
// Owner filtering happens after pagination, so a page may come back
// short, or empty, while hasMore is still true.
func (h *Handler) PostsHandler(c *gin.Context) {
	cursor := c.Query("cursor")
	owner := c.Query("owner")

	ctx := c.Request.Context()

	startAfter := ""
	if cursor != "" {
		startAfter = postsPrefix + cursor
	}

	listing, err := h.Store.List(ctx, postsPrefix, startAfter, postsPageSize)
	if err != nil {
		log.Println("Error fetching posts:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	posts := make([]*documents.Post, 0, len(listing.Keys))
	for _, key := range listing.Keys {
		if !strings.HasSuffix(key, "post.json") {
			continue
		}
		obj, err := h.Store.Get(ctx, key)
		if err != nil {
			log.Println("Error fetching posts:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
			return
		}
		post := &documents.Post{}
		if err := json.Unmarshal(obj.Data, post); err != nil {
			continue
		}
		posts = append(posts, post)
	}

	if owner != "" {
		filtered := posts[:0]
		for _, p := range posts {
			if p.Owner == owner {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	// ISO-8601 timestamps sort lexicographically.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp > posts[j].Timestamp
	})

	c.JSON(http.StatusOK, gin.H{
		"posts":   posts,
		"hasMore": listing.Truncated,
	})
}
