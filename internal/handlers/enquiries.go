package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"amelias/api/internal/ids"
	"amelias/api/internal/models"
	"amelias/api/internal/store"
)

type enquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`

	// The oldest contact form posts these field names; keep accepting them.
	LegacyName    string `json:"cname"`
	LegacyEmail   string `json:"cemail"`
	LegacyMessage string `json:"cmsg"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func (h HandlerSet) SubmitEnquiry(c *gin.Context) {
	var req enquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	name := firstNonEmpty(req.Name, req.LegacyName)
	email := firstNonEmpty(req.Email, req.LegacyEmail)
	message := firstNonEmpty(req.Message, req.LegacyMessage)
	if name == "" || email == "" || message == "" {
		fail(c, http.StatusBadRequest, "name, email, message required")
		return
	}

	now := time.Now().UTC()
	record := models.Enquiry{
		ID:        ids.NewWithPrefix(ids.PrefixEnquiry),
		Name:      name,
		Email:     email,
		Message:   message,
		Refs:      []models.UploadRef{},
		Status:    models.StatusNew,
		Notes:     "",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.store.AddEnquiry(record); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h HandlerSet) AdminListEnquiries(c *gin.Context) {
	items := h.store.Enquiries()
	if items == nil {
		items = []models.Enquiry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"items": items,
	})
}

func (h HandlerSet) PatchEnquiry(c *gin.Context) {
	var req patchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	patch, msg := buildPatch(req)
	if msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.store.UpdateEnquiry(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "enquiry not found")
			return
		}
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"item": updated,
	})
}
