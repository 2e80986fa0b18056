package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerbrew/careerbrew-api/internal/middleware"
	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/internal/services"
)

// ProfileHandler handles mentee profile HTTP requests
type ProfileHandler struct {
	service services.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service services.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateSkills handles PUT /api/v1/profile/skills
func (h *ProfileHandler) UpdateSkills(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	profile, err := h.service.UpdateSkills(c.Request.Context(), session, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadAvatar handles POST /api/v1/profile/avatar
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.UploadAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	url, err := h.service.UploadAvatar(c.Request.Context(), session, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}
