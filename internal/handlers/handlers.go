package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"amelias/api/internal/config"
	"amelias/api/internal/middleware"
	"amelias/api/internal/store"
	"amelias/api/internal/upload"
)

type HandlerSet struct {
	log     zerolog.Logger
	cfg     *config.AppConfig
	store   *store.Store
	uploads *upload.Processor
}

func NewHandlerSet(log zerolog.Logger, cfg *config.AppConfig, st *store.Store, uploads *upload.Processor) HandlerSet {
	return HandlerSet{
		log:     log,
		cfg:     cfg,
		store:   st,
		uploads: uploads,
	}
}

// Register attaches the route table to one group. The server calls it twice,
// once bare and once under /api, because both path styles are live across
// frontend iterations.
func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/health", h.Health)

	auth := router.Group("/auth")
	auth.POST("/login", h.Login)
	auth.GET("/me", middleware.AdminAuth(h.cfg), h.Me)

	router.GET("/gallery", h.ListGallery)
	router.POST("/upload", middleware.AdminAuth(h.cfg), h.PublishGalleryItem)

	router.POST("/commissions", h.SubmitCommission)
	router.POST("/enquiries", h.SubmitEnquiry)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth(h.cfg))
	admin.GET("/commissions", h.AdminListCommissions)
	admin.PATCH("/commissions/:id", h.PatchCommission)
	admin.GET("/enquiries", h.AdminListEnquiries)
	admin.PATCH("/enquiries/:id", h.PatchEnquiry)
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "error": msg})
}

func (h HandlerSet) uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, upload.ErrUnsupportedType):
		fail(c, http.StatusBadRequest, "only PNG, JPEG or WEBP images are allowed")
	case errors.Is(err, upload.ErrTooLarge):
		fail(c, http.StatusBadRequest, "file too large")
	case errors.Is(err, upload.ErrInvalidImage):
		fail(c, http.StatusBadRequest, "file is not a valid image")
	default:
		h.log.Error().Err(err).Msg("upload failed")
		fail(c, http.StatusInternalServerError, "upload failed")
	}
}

func (h HandlerSet) storeError(c *gin.Context, err error) {
	h.log.Error().Err(err).Msg("store write failed")
	fail(c, http.StatusInternalServerError, "could not save record")
}
