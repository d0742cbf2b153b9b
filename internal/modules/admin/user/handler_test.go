package user

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/minbar-media/admin-core/internal/middleware"
	"github.com/minbar-media/admin-core/internal/models"
	"github.com/minbar-media/admin-core/internal/pkg/jwt"
)

func setupRouter(t *testing.T) (*gin.Engine, *Service, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, db := setupService(t)

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"), middleware.Auth(db), middleware.RequireAdmin())
	return r, svc, db
}

func sessionToken(t *testing.T, db *gorm.DB, role string) string {
	t.Helper()
	u := models.UserModel{Name: "Session", Email: role + "-session@example.com", Role: role, IsActive: true}
	require.NoError(t, db.Create(&u).Error)
	token, err := jwt.Sign(u.ID, u.Email, time.Minute)
	require.NoError(t, err)
	return token
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUsersEndpointIsAdminOnly(t *testing.T) {
	r, _, db := setupRouter(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/users", "", "").Code)

	editor := sessionToken(t, db, models.RoleEditor)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/users", editor, "").Code)

	admin := sessionToken(t, db, models.RoleAdmin)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/users", admin, "").Code)
}

func TestListEndpoint(t *testing.T) {
	r, svc, db := setupRouter(t)
	admin := sessionToken(t, db, models.RoleAdmin)

	_, err := svc.Create(&UserFormDTO{Name: "E", Email: "e@example.com", Role: models.RoleEditor})
	require.NoError(t, err)

	rec := do(r, http.MethodGet, "/api/users", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total int64              `json:"total"`
		Users []models.UserModel `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Includes the session account created by the test setup.
	assert.Equal(t, int64(2), resp.Total)
	assert.Len(t, resp.Users, 2)
}

func TestCreateEndpoint_Validation(t *testing.T) {
	r, _, db := setupRouter(t)
	admin := sessionToken(t, db, models.RoleAdmin)

	rec := do(r, http.MethodPost, "/api/users", admin,
		`{"name": "X", "email": "not-an-email", "role": "editor"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPost, "/api/users", admin,
		`{"name": "X", "email": "x@example.com", "role": "owner"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "role must be admin or editor")
}

func TestCreateEndpoint_DuplicateEmail(t *testing.T) {
	r, _, db := setupRouter(t)
	admin := sessionToken(t, db, models.RoleAdmin)

	payload := `{"name": "X", "email": "x@example.com", "role": "editor"}`
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/users", admin, payload).Code)

	rec := do(r, http.MethodPost, "/api/users", admin, payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already in use")
}

func TestBanEndpoint(t *testing.T) {
	r, svc, db := setupRouter(t)
	admin := sessionToken(t, db, models.RoleAdmin)

	u, err := svc.Create(&UserFormDTO{Name: "T", Email: "t@example.com", Role: models.RoleEditor})
	require.NoError(t, err)

	rec := do(r, http.MethodPost, fmt.Sprintf("/api/users/%d/ban", u.ID), admin, "")
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := svc.GetByID(u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	rec = do(r, http.MethodPost, fmt.Sprintf("/api/users/%d/unban", u.ID), admin, "")
	require.Equal(t, http.StatusOK, rec.Code)

	got, err = svc.GetByID(u.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestEndpoints_UnknownUser(t *testing.T) {
	r, _, db := setupRouter(t)
	admin := sessionToken(t, db, models.RoleAdmin)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/users/999", admin, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/users/999", admin, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/users/999/ban", admin, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/users/abc", admin, "").Code)
}
