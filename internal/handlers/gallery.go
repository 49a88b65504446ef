package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"amelias/api/internal/ids"
	"amelias/api/internal/models"
)

func (h HandlerSet) ListGallery(c *gin.Context) {
	items := h.store.Gallery()
	if items == nil {
		items = []models.GalleryItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"items": items,
	})
}

func (h HandlerSet) PublishGalleryItem(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		title = "Untitled"
	}
	category := strings.TrimSpace(c.PostForm("category"))
	if category == "" {
		category = "other"
	}

	stored, err := h.uploads.StoreWithThumbnail(file, header)
	if err != nil {
		h.uploadError(c, err)
		return
	}

	item := models.GalleryItem{
		ID:        ids.NewWithPrefix(ids.PrefixGallery),
		Title:     title,
		Category:  category,
		URL:       stored.Path,
		ThumbURL:  stored.ThumbPath,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.store.AddGalleryItem(item); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"item": item,
	})
}
