package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"amelias/api/internal/ids"
	"amelias/api/internal/models"
	"amelias/api/internal/store"
)

const maxReferenceFiles = 3

func (h HandlerSet) SubmitCommission(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	brief := strings.TrimSpace(c.PostForm("brief"))
	if name == "" || email == "" || brief == "" {
		fail(c, http.StatusBadRequest, "name, email, brief required")
		return
	}

	commissionType := strings.TrimSpace(c.PostForm("type"))
	if commissionType == "" {
		commissionType = "custom"
	}
	size := strings.TrimSpace(c.PostForm("size"))
	if size == "" {
		size = "digital"
	}

	var fileHeaders []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		fileHeaders = form.File["refs"]
	}
	if len(fileHeaders) > maxReferenceFiles {
		fail(c, http.StatusBadRequest, "max 3 reference images")
		return
	}

	refs := make([]models.UploadRef, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		ref, err := h.storeReference(header)
		if err != nil {
			h.uploadError(c, err)
			return
		}
		refs = append(refs, ref)
	}

	now := time.Now().UTC()
	record := models.CommissionRequest{
		ID:        ids.NewWithPrefix(ids.PrefixCommission),
		Name:      name,
		Email:     email,
		Type:      commissionType,
		Size:      size,
		Brief:     brief,
		Refs:      refs,
		Status:    models.StatusNew,
		Notes:     "",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.store.AddCommission(record); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"commission": record,
	})
}

func (h HandlerSet) storeReference(header *multipart.FileHeader) (models.UploadRef, error) {
	file, err := header.Open()
	if err != nil {
		return models.UploadRef{}, err
	}
	defer file.Close()

	stored, err := h.uploads.Store(file, header)
	if err != nil {
		return models.UploadRef{}, err
	}

	return models.UploadRef{
		URL:      stored.Path,
		Filename: stored.Filename,
		MIME:     stored.MIME,
		Size:     stored.Size,
	}, nil
}

func (h HandlerSet) AdminListCommissions(c *gin.Context) {
	items := h.store.Commissions()
	if items == nil {
		items = []models.CommissionRequest{}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"items": items,
	})
}

type patchRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// buildPatch normalizes status aliases at the boundary and rejects anything
// outside the alias table, so stored records only ever hold canonical values.
func buildPatch(req patchRequest) (store.SubmissionPatch, string) {
	var patch store.SubmissionPatch
	if req.Status != nil {
		status, ok := models.ParseSubmissionStatus(*req.Status)
		if !ok {
			return store.SubmissionPatch{}, "unknown status"
		}
		patch.Status = &status
	}
	patch.Notes = req.Notes
	if patch.Status == nil && patch.Notes == nil {
		return store.SubmissionPatch{}, "nothing to update"
	}
	return patch, ""
}

func (h HandlerSet) PatchCommission(c *gin.Context) {
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

	updated, err := h.store.UpdateCommission(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "commission not found")
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
