package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerbrew/careerbrew-api/internal/services"
	apperrors "github.com/careerbrew/careerbrew-api/pkg/errors"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error
// (not the error interface), so errcheck is suppressed intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin
// context for request logging
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps service-layer errors onto HTTP statuses. Anything
// outside the known taxonomy is a 500 with a generic message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrNotAuthenticated):
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
	case apperrors.Is(err, apperrors.ErrAccessDenied):
		respondError(c, http.StatusForbidden, "Access denied", err)
	case apperrors.Is(err, apperrors.ErrNotFound), apperrors.Is(err, apperrors.ErrProfileMissing):
		respondError(c, http.StatusNotFound, "Not found", err)
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "Invalid input", err)
	case apperrors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, "Already exists", err)
	case apperrors.Is(err, services.ErrInvalidTransition):
		respondError(c, http.StatusConflict, "Request status cannot be changed", err)
	case apperrors.Is(err, services.ErrNoActiveSession):
		respondError(c, http.StatusNotFound, "No active matching session", err)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
