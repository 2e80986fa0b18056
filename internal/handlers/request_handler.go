package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/careerbrew/careerbrew-api/internal/middleware"
	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/internal/services"
)

// RequestHandler handles mentorship request HTTP requests
type RequestHandler struct {
	service services.RequestServiceInterface
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(service services.RequestServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

// CheckDuplicate handles GET /api/v1/requests/check
func (h *RequestHandler) CheckDuplicate(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	resp, err := h.service.CheckDuplicate(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateRequest handles POST /api/v1/requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var payload models.CreateRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.service.CreateRequest(c.Request.Context(), session, &payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListRequests handles GET /api/v1/requests?status=pending,accepted
func (h *RequestHandler) ListRequests(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	statuses, err := parseStatusFilter(c.Query("status"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	requests, err := h.service.ListRequests(c.Request.Context(), session, statuses)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    len(requests),
	})
}

// UpdateStatus handles POST /api/v1/requests/:id/status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	requestID := c.Param("id")
	if requestID == "" {
		respondError(c, http.StatusBadRequest, "Missing request ID", nil)
		return
	}

	var payload models.UpdateRequestStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondValidationError(c, err)
		return
	}

	request, err := h.service.UpdateStatus(c.Request.Context(), session, requestID, &payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func parseStatusFilter(raw string) ([]models.RequestStatus, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	statuses := make([]models.RequestStatus, 0, len(parts))
	for _, part := range parts {
		status := models.RequestStatus(strings.TrimSpace(part))
		if !status.IsValid() {
			return nil, fmt.Errorf("unknown status %q", part)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
