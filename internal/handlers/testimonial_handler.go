package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerbrew/careerbrew-api/internal/middleware"
	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/internal/services"
)

// TestimonialHandler handles testimonial HTTP requests
type TestimonialHandler struct {
	service services.TestimonialServiceInterface
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(service services.TestimonialServiceInterface) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// GetStats handles GET /api/v1/mentors/:mentorId/testimonials/stats
func (h *TestimonialHandler) GetStats(c *gin.Context) {
	mentorID := c.Param("mentorId")
	if mentorID == "" {
		respondError(c, http.StatusBadRequest, "Missing mentor ID", nil)
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), mentorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// List handles GET /api/v1/mentors/:mentorId/testimonials?limit=10&offset=0
func (h *TestimonialHandler) List(c *gin.Context) {
	mentorID := c.Param("mentorId")
	if mentorID == "" {
		respondError(c, http.StatusBadRequest, "Missing mentor ID", nil)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.service.List(c.Request.Context(), mentorID, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// CanWrite handles GET /api/v1/mentors/:mentorId/testimonials/can-write
func (h *TestimonialHandler) CanWrite(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	mentorID := c.Param("mentorId")
	if mentorID == "" {
		respondError(c, http.StatusBadRequest, "Missing mentor ID", nil)
		return
	}

	resp, err := h.service.CanWrite(c.Request.Context(), session, mentorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Submit handles POST /api/v1/mentors/:mentorId/testimonials
func (h *TestimonialHandler) Submit(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	mentorID := c.Param("mentorId")
	if mentorID == "" {
		respondError(c, http.StatusBadRequest, "Missing mentor ID", nil)
		return
	}

	var req models.SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	testimonial, err := h.service.Submit(c.Request.Context(), session, mentorID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}
