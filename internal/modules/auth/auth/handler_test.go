package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minbar-media/admin-core/internal/middleware"
	"github.com/minbar-media/admin-core/internal/models"
)

func setupRouter(t *testing.T, tokenInfoURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, db := setupService(t, tokenInfoURL)

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"), middleware.Auth(db))
	return r
}

func post(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSignInEndpoint(t *testing.T) {
	srv := fakeTokenInfo(t, "user@example.com", "User", testClientID)
	r := setupRouter(t, srv.URL)

	rec := post(r, "/api/users/auth", "Bearer valid")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user@example.com", resp.Email)
	assert.Equal(t, models.RoleEditor, resp.Role)
	assert.NotEmpty(t, resp.Token)

	// The issued session token opens the profile endpoint.
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	profileRec := httptest.NewRecorder()
	r.ServeHTTP(profileRec, req)
	require.Equal(t, http.StatusOK, profileRec.Code)
	assert.Contains(t, profileRec.Body.String(), "user@example.com")
}

func TestSignInEndpoint_NoToken(t *testing.T) {
	srv := fakeTokenInfo(t, "user@example.com", "User", testClientID)
	r := setupRouter(t, srv.URL)

	rec := post(r, "/api/users/auth", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token provided")
}

func TestSignInEndpoint_InvalidToken(t *testing.T) {
	srv := fakeTokenInfo(t, "user@example.com", "User", testClientID)
	r := setupRouter(t, srv.URL)

	rec := post(r, "/api/users/auth", "Bearer forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid identity token")
}

func TestProfileEndpoint_RequiresSession(t *testing.T) {
	srv := fakeTokenInfo(t, "user@example.com", "User", testClientID)
	r := setupRouter(t, srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
