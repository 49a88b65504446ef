package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"amelias/api/internal/middleware"
	"amelias/api/internal/security"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "email and password required")
		return
	}

	emailOK := strings.EqualFold(strings.TrimSpace(req.Email), h.cfg.Admin.Email)
	passwordOK := security.VerifyAdminPassword(req.Password, h.cfg.Admin.Password)
	if !emailOK || !passwordOK {
		fail(c, http.StatusUnauthorized, "invalid login")
		return
	}

	token, err := security.GenerateAdminToken(h.cfg.Auth.TokenSecret, h.cfg.Admin.Email, h.cfg.Auth.TokenTTL)
	if err != nil {
		h.log.Error().Err(err).Msg("token generation failed")
		fail(c, http.StatusInternalServerError, "could not issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"email": h.cfg.Admin.Email,
	})
}

func (h HandlerSet) Me(c *gin.Context) {
	claimsVal, exists := c.Get(middleware.AdminClaimsKey)
	if !exists {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	claims, ok := claimsVal.(security.AdminClaims)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"email": claims.Email,
		"role":  claims.Role,
	})
}
