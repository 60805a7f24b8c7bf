// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/frogstagram/frogstagram/internal/blobstore"
	"github.com/gin-gonic/gin"
)

// ImageHandler streams an object's bytes with the content type recorded
// in storage. Uploaded images never change under a key, so the response
// is cacheable for a year.
func (h *Handler) ImageHandler(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("path"), "/")

	obj, err := h.Store.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, blobstore.ErrObjectNotFound) {
			c.String(http.StatusNotFound, "Image not found")
			return
		}
		log.Println("Error fetching image:", err)
		c.String(http.StatusInternalServerError, "Failed to fetch image")
		return
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	c.Header("Cache-Control", "public, max-age=31536000")
	c.Data(http.StatusOK, contentType, obj.Data)
}
