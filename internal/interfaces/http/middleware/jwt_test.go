package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bottleops/backend/internal/infrastructure/auth"
	"github.com/bottleops/backend/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-for-middleware-tests-01",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "bottleops-test",
		MaxRefreshCount:        5,
	})
}

func newAuthedEngine(jwtService *auth.JWTService) *gin.Engine {
	engine := gin.New()
	engine.Use(JWTAuthMiddlewareWithConfig(JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths:  []string{"/public"},
	}))
	engine.GET("/public", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/private", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetJWTUserID(c),
			"role":    GetJWTRole(c),
		})
	})
	engine.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestJWTAuthMiddleware_SkipPath(t *testing.T) {
	engine := newAuthedEngine(newTestJWTService())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/public", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	engine := newAuthedEngine(newTestJWTService())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/private", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	engine := newAuthedEngine(newTestJWTService())

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set(AuthHeaderKey, "Basic abc123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	engine := newAuthedEngine(jwtService)

	userID := uuid.New()
	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   userID,
		Username: "admin",
		Role:     "admin",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "admin")
}

func TestJWTAuthMiddleware_GarbageToken(t *testing.T) {
	engine := newAuthedEngine(newTestJWTService())

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+"not.a.token")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	jwtService := newTestJWTService()
	engine := newAuthedEngine(jwtService)

	deliveryPair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "driver",
		Role:     "delivery",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+deliveryPair.AccessToken)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminPair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "admin",
		Role:     "admin",
	})
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+adminPair.AccessToken)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
