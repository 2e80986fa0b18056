package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerbrew/careerbrew-api/internal/middleware"
	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/pkg/jwt"
)

func sessionTestRouter(tm *jwt.TokenManager) (*gin.Engine, *models.Session) {
	gin.SetMode(gin.TestMode)
	captured := &models.Session{}

	router := gin.New()
	router.Use(middleware.SessionMiddleware(tm))
	router.GET("/protected", func(c *gin.Context) {
		session, err := middleware.GetSession(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		*captured = *session
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, captured
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	tm := jwt.NewTokenManager("test-secret", "careerbrew-auth", 24)
	router, captured := sessionTestRouter(tm)

	token, err := tm.GenerateToken("user-123", "mentee@example.com", "Jordan Mentee", models.RoleMentee)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", captured.UserID)
	assert.Equal(t, "Jordan Mentee", captured.Name)
	assert.Equal(t, models.RoleMentee, captured.Role)
}

func TestSessionMiddleware_MissingToken(t *testing.T) {
	tm := jwt.NewTokenManager("test-secret", "careerbrew-auth", 24)
	router, _ := sessionTestRouter(tm)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddleware_MalformedHeader(t *testing.T) {
	tm := jwt.NewTokenManager("test-secret", "careerbrew-auth", 24)
	router, _ := sessionTestRouter(tm)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddleware_WrongSecret(t *testing.T) {
	tm := jwt.NewTokenManager("test-secret", "careerbrew-auth", 24)
	other := jwt.NewTokenManager("other-secret", "careerbrew-auth", 24)
	router, _ := sessionTestRouter(tm)

	token, err := other.GenerateToken("user-123", "mentee@example.com", "Jordan Mentee", models.RoleMentee)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
