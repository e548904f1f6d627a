package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsorbit-api/config"
	"newsorbit-api/middleware"
	"newsorbit-api/mocks"
	"newsorbit-api/models"
)

func gateRouter(userRepo *mocks.MockUserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	dashboard := router.Group("/admin")
	dashboard.Use(middleware.AuthMiddleware(userRepo), middleware.RequireRole(models.RoleAdmin))
	dashboard.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func signToken(t *testing.T, userID uint) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(time.Hour).Unix(),
		"iat":     now.Unix(),
	})
	signed, err := token.SignedString(config.JWTSecret)
	require.NoError(t, err)
	return signed
}

func seedUser(repo *mocks.MockUserRepository, role models.UserRole, blocked bool) *models.User {
	user := &models.User{
		Name:      "Gate Test",
		Email:     string(role) + "@x.com",
		Password:  "hashed",
		Role:      role,
		Status:    models.UserStatusActive,
		IsBlocked: blocked,
		CanPost:   true,
	}
	repo.Create(user)
	return user
}

func TestGateNoSessionRedirectsToLogin(t *testing.T) {
	router := gateRouter(mocks.NewMockUserRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestGateInvalidTokenRedirectsToLogin(t *testing.T) {
	router := gateRouter(mocks.NewMockUserRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestGateRoleMismatchSilentlyRedirectsHome(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	user := seedUser(userRepo, models.RoleReporter, false)
	router := gateRouter(userRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, user.ID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "error", "the redirect is silent")
}

func TestGateBlockedAccountGetsDenialNotRedirect(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	user := seedUser(userRepo, models.RoleAdmin, true)
	router := gateRouter(userRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, user.ID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), middleware.BlockedAccountMessage)
}

func TestGateAllowsMatchingRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	user := seedUser(userRepo, models.RoleAdmin, false)
	router := gateRouter(userRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, user.ID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGateBlockedCheckComesAfterRoleCheck(t *testing.T) {
	// A blocked reporter hitting an admin route gets the silent redirect, not
	// the denial: the role gate fires first.
	userRepo := mocks.NewMockUserRepository()
	user := seedUser(userRepo, models.RoleReporter, true)
	router := gateRouter(userRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, user.ID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestGateUsesLiveAccountFlags(t *testing.T) {
	// Blocking takes effect on the next request even though the token was
	// issued before the block: the gate reads the store, not the claims.
	userRepo := mocks.NewMockUserRepository()
	user := seedUser(userRepo, models.RoleAdmin, false)
	router := gateRouter(userRepo)
	token := signToken(t, user.ID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	userRepo.UpdateFields(user.ID, map[string]interface{}{"is_blocked": true})

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
