package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerbrew/careerbrew-api/internal/middleware"
	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/internal/services"
)

// MatchHandler handles matching session HTTP requests
type MatchHandler struct {
	service services.MatchingServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(service services.MatchingServiceInterface) *MatchHandler {
	return &MatchHandler{service: service}
}

// StartMatching handles POST /api/v1/matches/start
func (h *MatchHandler) StartMatching(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	resp, err := h.service.StartMatching(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CurrentMatch handles GET /api/v1/matches/current
func (h *MatchHandler) CurrentMatch(c *gin.Context) {
	h.step(c, h.service.CurrentMatch)
}

// NextMatch handles POST /api/v1/matches/next
func (h *MatchHandler) NextMatch(c *gin.Context) {
	h.step(c, h.service.NextMatch)
}

// PreviousMatch handles POST /api/v1/matches/previous
func (h *MatchHandler) PreviousMatch(c *gin.Context) {
	h.step(c, h.service.PreviousMatch)
}

// GetMatches handles GET /api/v1/matches
func (h *MatchHandler) GetMatches(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	results, err := h.service.GetMatches(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": results,
		"total":   len(results),
	})
}

type stepFunc func(ctx context.Context, session *models.Session) (*services.MatchStepResponse, error)

func (h *MatchHandler) step(c *gin.Context, fn stepFunc) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	resp, err := fn(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
