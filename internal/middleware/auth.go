package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/minbar-media/admin-core/internal/models"
	"github.com/minbar-media/admin-core/internal/pkg/jwt"
	"github.com/minbar-media/admin-core/internal/pkg/response"
	"gorm.io/gorm"
)

const contextKeyIdentity = "identity"

// Identity is the authenticated principal attached to the request context.
type Identity struct {
	UserID uint
	Email  string
	Name   string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool { return i.Role == models.RoleAdmin }

// Auth returns a middleware that enforces session token authentication. The
// user row is re-read on every request so role changes and bans take effect
// immediately; banned accounts fail closed.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := resolveIdentity(db, extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(contextKeyIdentity, identity)
		c.Next()
	}
}

// RequireAdmin rejects non-admin identities. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).IsAdmin() {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

func resolveIdentity(db *gorm.DB, rawToken string) (Identity, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return Identity{}, errors.New("token is required")
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return Identity{}, err
	}

	var u models.UserModel
	if err := db.First(&u, "id = ?", claims.UserID).Error; err != nil {
		return Identity{}, err
	}
	if !u.IsActive {
		return Identity{}, errors.New("account is deactivated")
	}

	return Identity{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}, nil
}

// CurrentIdentity extracts the authenticated identity from context. The zero
// Identity means the request is unauthenticated.
func CurrentIdentity(c *gin.Context) Identity {
	v, _ := c.Get(contextKeyIdentity)
	identity, _ := v.(Identity)
	return identity
}

// IsAuthenticated reports whether the request carries a resolved identity.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentIdentity(c).UserID != 0
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
